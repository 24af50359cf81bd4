package pets

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"pets-api/internal/domain/groups"
	"pets-api/internal/domain/traits"
	"pets-api/internal/platform/validation"
)

// maxBodyBytes limita lo que se lee de un request de escritura.
const maxBodyBytes = 1 << 20

// ParseError es un body que no es JSON válido (400 con "detail").
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "JSON parse error - " + e.Reason
}

// petResponse es la representación de una mascota en la API.
type petResponse struct {
	ID     int64             `json:"id"`
	Name   string            `json:"name"`
	Age    int               `json:"age"`
	Weight float64           `json:"weight"`
	Sex    Sex               `json:"sex" enums:"Male,Female,Not Informed"`
	Group  groups.Response   `json:"group"`
	Traits []traits.Response `json:"traits"`
}

// petRequest documenta el body de POST/PATCH para swagger; el decode real es campo por campo.
type petRequest struct {
	Name   string         `json:"name" maxLength:"50"`
	Age    int            `json:"age"`
	Weight float64        `json:"weight"`
	Sex    Sex            `json:"sex" enums:"Male,Female,Not Informed" default:"Not Informed"`
	Group  groupRequest   `json:"group"`
	Traits []traitRequest `json:"traits"`
}

type groupRequest struct {
	ScientificName string `json:"scientific_name" maxLength:"50"`
}

type traitRequest struct {
	Name string `json:"name" maxLength:"20"`
}

func toPetResponse(p Pet) petResponse {
	out := petResponse{
		ID:     p.ID,
		Name:   p.Name,
		Age:    p.Age,
		Weight: p.Weight,
		Sex:    p.Sex,
		Group:  groups.ToResponse(p.Group),
		Traits: make([]traits.Response, 0, len(p.Traits)),
	}
	for _, t := range p.Traits {
		out.Traits = append(out.Traits, traits.ToResponse(t))
	}
	return out
}

// readObject lee el body y exige un objeto JSON. Body vacío cuenta como {}.
func readObject(body io.Reader) (validation.Object, error) {
	raw, err := io.ReadAll(io.LimitReader(body, maxBodyBytes))
	if err != nil {
		return nil, &ParseError{Reason: err.Error()}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return validation.Object{}, nil
	}

	var probe json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, &ParseError{Reason: err.Error()}
	}

	obj, msg, ok := validation.DecodeObject(probe)
	if !ok {
		return nil, validation.Errors{validation.NonFieldErrors: []string{msg}}.Err()
	}
	return obj, nil
}

// petFields son los campos presentes y válidos de un payload; nil = ausente.
type petFields struct {
	Name   *string
	Age    *int
	Weight *float64
	Sex    *Sex
	Group  *groups.Input
	Traits []traits.Input
}

// decodePet valida el shape completo; con partial=true los campos ausentes no son obligatorios.
// Cualquier error invalida el payload entero.
func decodePet(obj validation.Object, partial bool) (petFields, error) {
	errs := validation.Errors{}
	required := !partial

	var f petFields
	if v, ok := obj.String("name", required, MaxNameLength, errs); ok {
		f.Name = &v
	}
	if v, ok := obj.Int("age", required, errs); ok {
		f.Age = &v
	}
	if v, ok := obj.Float("weight", required, errs); ok {
		f.Weight = &v
	}
	if v, ok := obj.Choice("sex", false, SexChoices(), errs); ok {
		s := Sex(v)
		f.Sex = &s
	}

	if g, ok := obj.Nested("group", required, errs); ok {
		in, gerrs := groups.DecodeInput(g)
		if gerrs.Empty() {
			f.Group = &in
		} else {
			errs.Nest("group", gerrs)
		}
	}

	if items, ok := obj.List("traits", required, errs); ok {
		list, itemErrs := decodeTraits(items)
		if itemErrs == nil {
			f.Traits = list
		} else {
			errs.Nest("traits", itemErrs)
		}
	}

	if err := errs.Err(); err != nil {
		return petFields{}, err
	}
	return f, nil
}

// decodeTraits devuelve nil como errores si todos los items son válidos; si no, un
// Errors por item (vacío para los válidos) para que el cliente ubique el problema.
func decodeTraits(items []json.RawMessage) ([]traits.Input, []validation.Errors) {
	list := make([]traits.Input, 0, len(items))
	itemErrs := make([]validation.Errors, len(items))
	failed := false

	for i, raw := range items {
		obj, msg, ok := validation.DecodeObject(raw)
		if !ok {
			itemErrs[i] = validation.Errors{validation.NonFieldErrors: []string{msg}}
			failed = true
			continue
		}
		in, errs := traits.DecodeInput(obj)
		itemErrs[i] = errs
		if !errs.Empty() {
			failed = true
			continue
		}
		list = append(list, in)
	}

	if failed {
		return nil, itemErrs
	}
	return list, nil
}

func decodeCreate(obj validation.Object) (CreateInput, error) {
	f, err := decodePet(obj, false)
	if err != nil {
		return CreateInput{}, err
	}

	in := CreateInput{
		Name:   *f.Name,
		Age:    *f.Age,
		Weight: *f.Weight,
		Sex:    SexNotInformed,
		Group:  *f.Group,
		Traits: f.Traits,
	}
	if f.Sex != nil {
		in.Sex = *f.Sex
	}
	return in, nil
}

func decodeUpdate(obj validation.Object) (UpdateInput, error) {
	f, err := decodePet(obj, true)
	if err != nil {
		return UpdateInput{}, err
	}
	return UpdateInput{
		Name:   f.Name,
		Age:    f.Age,
		Weight: f.Weight,
		Sex:    f.Sex,
		Group:  f.Group,
		Traits: f.Traits,
	}, nil
}

// asValidationError extrae los errores de campo, si err los trae.
func asValidationError(err error) (validation.Errors, bool) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return verr.Fields, true
	}
	return nil, false
}
