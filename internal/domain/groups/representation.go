package groups

import (
	"time"

	"pets-api/internal/platform/validation"
)

// Input es un group recibido en el payload de una mascota, ya validado.
type Input struct {
	ScientificName string
}

// DecodeInput valida un objeto group. scientific_name es obligatorio incluso en PATCH:
// es la clave con la que se resuelve (o crea) el grupo.
// id y created_at son de solo lectura y se ignoran.
func DecodeInput(obj validation.Object) (Input, validation.Errors) {
	errs := validation.Errors{}
	name, _ := obj.String("scientific_name", true, MaxScientificNameLength, errs)
	return Input{ScientificName: name}, errs
}

// Response es la representación de un group en la API.
type Response struct {
	ID             int64     `json:"id"`
	ScientificName string    `json:"scientific_name"`
	CreatedAt      time.Time `json:"created_at"`
}

func ToResponse(g Group) Response {
	return Response{
		ID:             g.ID,
		ScientificName: g.ScientificName,
		CreatedAt:      g.CreatedAt,
	}
}
