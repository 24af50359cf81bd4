package traits

import (
	"encoding/json"
	"net/http"

	"pets-api/internal/platform/logger"
	"pets-api/internal/platform/pagination"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service, pager pagination.Config, log logger.Logger) {
	if log == nil {
		log = logger.NewNop()
	}
	r.Get("/traits", listTraitsHandler(svc, pager, log))
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// listTraitsHandler godoc
// @Summary Listar características
// @Description Lista paginada de traits. Con `name` filtra por substring sin distinguir mayúsculas.
// @Tags traits
// @Produce json
// @Param name query string false "Substring del nombre"
// @Param page query int false "Número de página (desde 1)"
// @Param page_size query int false "Tamaño de página (tope configurable)"
// @Success 200 {object} pagination.Page[Response]
// @Failure 404 {object} errorResponse "Invalid page."
// @Failure 500 {object} errorResponse
// @Router /traits [get]
func listTraitsHandler(svc *Service, pager pagination.Config, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := pagination.FromRequest(r, pager)
		if err != nil {
			writeJSON(w, http.StatusNotFound, errorResponse{Detail: "Invalid page."})
			return
		}

		items, total, err := svc.List(r.Context(), ListFilter{
			Name:   r.URL.Query().Get("name"),
			Limit:  params.Limit(),
			Offset: params.Offset(),
		})
		if err != nil {
			log.Error("traits: list failed", map[string]any{
				"err":        err,
				"path":       r.URL.Path,
				"request_id": chimw.GetReqID(r.Context()),
			})
			writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "A server error occurred."})
			return
		}
		if err := params.Check(total); err != nil {
			writeJSON(w, http.StatusNotFound, errorResponse{Detail: "Invalid page."})
			return
		}

		out := make([]Response, 0, len(items))
		for _, t := range items {
			out = append(out, ToResponse(t))
		}
		writeJSON(w, http.StatusOK, pagination.NewPage(r, params, total, out))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
