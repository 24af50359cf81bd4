package pagination

import (
	"errors"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

var (
	ErrInvalidPage = errors.New("invalid page")
)

const (
	PageParam     = "page"
	PageSizeParam = "page_size"
)

// Config define tamaño por defecto y tope para page_size.
type Config struct {
	PageSize    int
	MaxPageSize int
}

// Params es la página pedida por el cliente (1-based).
type Params struct {
	Page     int
	PageSize int
}

func (p Params) Limit() int  { return p.PageSize }
func (p Params) Offset() int { return (p.Page - 1) * p.PageSize }

// FromRequest lee ?page y ?page_size. Un page que no es entero positivo, o cuyo offset
// no entra en un int, es ErrInvalidPage; un page_size inválido se ignora y uno mayor al
// tope se recorta.
func FromRequest(r *http.Request, cfg Config) (Params, error) {
	size := cfg.PageSize
	if size <= 0 {
		size = 10
	}
	max := cfg.MaxPageSize
	if max < size {
		max = size
	}

	q := r.URL.Query()
	if v := strings.TrimSpace(q.Get(PageSizeParam)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			size = n
			if size > max {
				size = max
			}
		}
	}

	page := 1
	if v := strings.TrimSpace(q.Get(PageParam)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n-1 > math.MaxInt/size {
			return Params{}, ErrInvalidPage
		}
		page = n
	}

	return Params{Page: page, PageSize: size}, nil
}

// Check valida que la página exista dado el total. La página 1 siempre existe.
func (p Params) Check(total int) error {
	if p.Page > 1 && p.Offset() >= total {
		return ErrInvalidPage
	}
	return nil
}

// Page es el sobre JSON de una lista paginada.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// NewPage arma el sobre con links absolutos a la página siguiente/anterior,
// preservando el resto de los query params (p.ej. ?trait=).
func NewPage[T any](r *http.Request, p Params, total int, results []T) Page[T] {
	if results == nil {
		results = make([]T, 0)
	}
	out := Page[T]{Count: total, Results: results}

	if p.Offset()+len(results) < total {
		next := pageURL(r, p.Page+1)
		out.Next = &next
	}
	if p.Page > 1 {
		prev := pageURL(r, p.Page-1)
		out.Previous = &prev
	}
	return out
}

func pageURL(r *http.Request, page int) string {
	u := url.URL{
		Scheme: requestScheme(r),
		Host:   r.Host,
		Path:   r.URL.Path,
	}
	q := r.URL.Query()
	if page <= 1 {
		q.Del(PageParam)
	} else {
		q.Set(PageParam, strconv.Itoa(page))
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func requestScheme(r *http.Request) string {
	if v := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")); v != "" {
		return strings.ToLower(v)
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
