package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"pets-api/internal/platform/logger"
	"pets-api/internal/platform/pagination"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service, pager pagination.Config, log logger.Logger) {
	if log == nil {
		log = logger.NewNop()
	}

	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc, pager, log))
		pr.Post("/", createPetHandler(svc, log))

		pr.Get("/{petID}", getPetHandler(svc, log))
		pr.Patch("/{petID}", updatePetHandler(svc, log))
		pr.Delete("/{petID}", deletePetHandler(svc, log))
	})
}

// errorResponse es el body de 404/500 y de JSON mal formado.
type errorResponse struct {
	Detail string `json:"detail"`
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Lista paginada de mascotas ordenadas por id. Con `trait` devuelve sólo las que tienen al menos una característica cuyo nombre contiene el texto (sin distinguir mayúsculas).
// @Tags pets
// @Produce json
// @Param trait query string false "Substring del nombre de una característica"
// @Param page query int false "Número de página (desde 1)"
// @Param page_size query int false "Tamaño de página (tope configurable)"
// @Success 200 {object} pagination.Page[petResponse]
// @Failure 404 {object} errorResponse "Invalid page."
// @Failure 500 {object} errorResponse
// @Router /pets [get]
func listPetsHandler(svc *Service, pager pagination.Config, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := pagination.FromRequest(r, pager)
		if err != nil {
			writeJSON(w, http.StatusNotFound, errorResponse{Detail: "Invalid page."})
			return
		}

		items, total, err := svc.List(r.Context(), ListFilter{
			Trait:  r.URL.Query().Get("trait"),
			Limit:  params.Limit(),
			Offset: params.Offset(),
		})
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		if err := params.Check(total); err != nil {
			writeJSON(w, http.StatusNotFound, errorResponse{Detail: "Invalid page."})
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, pagination.NewPage(r, params, total, out))
	}
}

// createPetHandler godoc
// @Summary Registrar mascota
// @Description Crea una mascota. El grupo se busca por scientific_name sin distinguir mayúsculas y se crea si no existe; lo mismo para cada característica por name. Todo ocurre en una sola transacción.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body petRequest true "Datos de la mascota; sex por defecto Not Informed"
// @Success 201 {object} petResponse
// @Failure 400 {object} map[string]any "Errores por campo"
// @Failure 500 {object} errorResponse
// @Router /pets [post]
func createPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		obj, err := readObject(r.Body)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		in, err := decodeCreate(obj)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		p, err := svc.Create(r.Context(), in)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 404 {object} errorResponse "Not found."
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(r)
		if !ok {
			writeNotFound(w)
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Editar mascota (parcial)
// @Description Actualiza sólo los campos enviados. Si viene `group` se resuelve o crea y se reasigna. Si vienen `traits` cada una se resuelve o crea y se agrega a las existentes. La existencia de la mascota se verifica antes de validar el body.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Param payload body petRequest true "Campos a modificar"
// @Success 200 {object} petResponse
// @Failure 400 {object} map[string]any "Errores por campo"
// @Failure 404 {object} errorResponse "Not found."
// @Failure 500 {object} errorResponse
// @Router /pets/{petID} [patch]
func updatePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(r)
		if !ok {
			writeNotFound(w)
			return
		}

		// 404 antes que 400: no validar payloads de mascotas inexistentes.
		if _, err := svc.GetByID(r.Context(), id); err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		obj, err := readObject(r.Body)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		in, err := decodeUpdate(obj)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		updated, err := svc.Update(r.Context(), id, in)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(updated))
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Description Borra la mascota y sus asociaciones con características. Grupo y características quedan.
// @Tags pets
// @Param petID path int true "ID de la mascota"
// @Success 204
// @Failure 404 {object} errorResponse "Not found."
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(r)
		if !ok {
			writeNotFound(w)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func petIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(chi.URLParam(r, "petID")), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// writeServiceError traduce errores a status: validación 400, parse 400, not found 404,
// el resto 500 (logueado con el request id).
func writeServiceError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	if fields, ok := asValidationError(err); ok {
		writeJSON(w, http.StatusBadRequest, fields)
		return
	}

	var perr *ParseError
	switch {
	case errors.As(err, &perr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: perr.Error()})
	case errors.Is(err, ErrNotFound):
		writeNotFound(w)
	case errors.Is(err, ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: err.Error()})
	default:
		log.Error("pets: request failed", map[string]any{
			"err":        err,
			"method":     r.Method,
			"path":       r.URL.Path,
			"request_id": chimw.GetReqID(r.Context()),
		})
		writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "A server error occurred."})
	}
}

func writeNotFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, errorResponse{Detail: "Not found."})
}

// writeJSON se repite en cada módulo (pets/groups/traits) para no crear un paquete
// compartido sólo por esto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
