package groups

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
	r.Get("/groups", listGroupsHandler(svc, pager, log))
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// listGroupsHandler godoc
// @Summary Listar grupos
// @Description Lista paginada de grupos taxonómicos. Los grupos se crean al registrar o editar mascotas.
// @Tags groups
// @Produce json
// @Param page query int false "Número de página (desde 1)"
// @Param page_size query int false "Tamaño de página (tope configurable)"
// @Success 200 {object} pagination.Page[Response]
// @Failure 404 {object} errorResponse "Invalid page."
// @Failure 500 {object} errorResponse
// @Router /groups [get]
func listGroupsHandler(svc *Service, pager pagination.Config, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := pagination.FromRequest(r, pager)
		if err != nil {
			writeJSON(w, http.StatusNotFound, errorResponse{Detail: "Invalid page."})
			return
		}

		items, total, err := svc.List(r.Context(), ListFilter{Limit: params.Limit(), Offset: params.Offset()})
		if err != nil {
			log.Error("groups: list failed", map[string]any{
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
		for _, g := range items {
			out = append(out, ToResponse(g))
		}
		writeJSON(w, http.StatusOK, pagination.NewPage(r, params, total, out))
	}
}

// writeJSON se repite en cada módulo (pets/groups/traits) para no crear un paquete
// compartido sólo por esto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
