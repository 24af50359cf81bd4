package traits

import (
	"time"

	"pets-api/internal/platform/validation"
)

// Input es un trait recibido en el payload de una mascota, ya validado.
type Input struct {
	Name string
}

// DecodeInput valida un objeto trait; name siempre es obligatorio.
func DecodeInput(obj validation.Object) (Input, validation.Errors) {
	errs := validation.Errors{}
	name, _ := obj.String("name", true, MaxNameLength, errs)
	return Input{Name: name}, errs
}

type Response struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func ToResponse(t Trait) Response {
	return Response{
		ID:        t.ID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
	}
}
