package middleware

import (
	"net/http"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// maxRequestIDLen evita que un cliente meta ids gigantes en los logs.
const maxRequestIDLen = 128

// RequestID envuelve chimw.RequestID: si el cliente/proxy no manda X-Request-Id (o manda
// uno demasiado largo) se usa un uuid, y el id final se devuelve en la respuesta.
// Se lee con chimw.GetReqID.
func RequestID(next http.Handler) http.Handler {
	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(chimw.RequestIDHeader, chimw.GetReqID(r.Context()))
		next.ServeHTTP(w, r)
	})
	withID := chimw.RequestID(echo)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(chimw.RequestIDHeader))
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		r.Header.Set(chimw.RequestIDHeader, id)
		withID.ServeHTTP(w, r)
	})
}
