// Package validation decodifica objetos JSON campo por campo y acumula errores
// con la forma {"campo": ["mensaje", ...]} que devuelve la API en un 400.
package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	MsgRequired       = "This field is required."
	MsgNull           = "This field may not be null."
	MsgBlank          = "This field may not be blank."
	MsgInvalidString  = "Not a valid string."
	MsgInvalidInteger = "A valid integer is required."
	MsgInvalidNumber  = "A valid number is required."

	// NonFieldErrors es la key para errores que no pertenecen a un campo.
	NonFieldErrors = "non_field_errors"
)

// Errors mapea campo -> []string, o a otro Errors / []Errors para objetos anidados.
type Errors map[string]any

func (e Errors) Add(field, msg string) {
	if cur, ok := e[field].([]string); ok {
		e[field] = append(cur, msg)
		return
	}
	e[field] = []string{msg}
}

// Nest guarda los errores de un sub-objeto (Errors) o de una lista ([]Errors).
func (e Errors) Nest(field string, nested any) {
	e[field] = nested
}

func (e Errors) Empty() bool { return len(e) == 0 }

// Err devuelve nil si no hubo errores; si no, un *Error listo para propagar.
func (e Errors) Err() error {
	if e.Empty() {
		return nil
	}
	return &Error{Fields: e}
}

// Error es el error de validación que los handlers traducen a 400.
type Error struct {
	Fields Errors
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "validation failed: " + strings.Join(keys, ", ")
}

// Object es un objeto JSON decodificado a nivel de keys; los valores quedan crudos.
type Object map[string]json.RawMessage

// DecodeObject exige un objeto JSON. Si el valor es de otro tipo, devuelve el mensaje
// "Invalid data. Expected a dictionary, but got <tipo>." y ok=false.
func DecodeObject(raw json.RawMessage) (Object, string, bool) {
	if kind := KindOf(raw); kind != "dict" {
		return nil, fmt.Sprintf("Invalid data. Expected a dictionary, but got %s.", kind), false
	}
	var obj Object
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Sprintf("Invalid data. Expected a dictionary, but got %s.", KindOf(raw)), false
	}
	return obj, "", true
}

// KindOf nombra el tipo JSON del valor como lo reporta la API (dict, list, str, int, float, bool, null).
func KindOf(raw json.RawMessage) string {
	b := bytes.TrimSpace(raw)
	if len(b) == 0 {
		return "null"
	}
	switch b[0] {
	case '{':
		return "dict"
	case '[':
		return "list"
	case '"':
		return "str"
	case 't', 'f':
		return "bool"
	case 'n':
		return "null"
	default:
		if bytes.ContainsAny(b, ".eE") {
			return "float"
		}
		return "int"
	}
}

func isNull(raw json.RawMessage) bool {
	return KindOf(raw) == "null"
}

// lookup resuelve presencia/null. Devuelve (valor, true) sólo si hay algo que decodificar.
func (o Object) lookup(key string, required bool, errs Errors) (json.RawMessage, bool) {
	raw, present := o[key]
	if !present {
		if required {
			errs.Add(key, MsgRequired)
		}
		return nil, false
	}
	if isNull(raw) {
		errs.Add(key, MsgNull)
		return nil, false
	}
	return raw, true
}

// Has indica si la key vino en el payload (aunque sea null).
func (o Object) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// Raw devuelve el valor crudo de la key.
func (o Object) Raw(key string) (json.RawMessage, bool) {
	raw, ok := o[key]
	return raw, ok
}

// String decodifica un texto: acepta strings y números, recorta espacios,
// rechaza vacío y controla el largo máximo en caracteres (maxLen <= 0 = sin límite).
func (o Object) String(key string, required bool, maxLen int, errs Errors) (string, bool) {
	raw, ok := o.lookup(key, required, errs)
	if !ok {
		return "", false
	}

	var s string
	switch KindOf(raw) {
	case "str":
		if err := json.Unmarshal(raw, &s); err != nil {
			errs.Add(key, MsgInvalidString)
			return "", false
		}
	case "int", "float":
		s = string(bytes.TrimSpace(raw))
	default:
		errs.Add(key, MsgInvalidString)
		return "", false
	}

	s = strings.TrimSpace(s)
	if s == "" {
		errs.Add(key, MsgBlank)
		return "", false
	}
	if maxLen > 0 && utf8.RuneCountInString(s) > maxLen {
		errs.Add(key, fmt.Sprintf("Ensure this field has no more than %d characters.", maxLen))
		return "", false
	}
	return s, true
}

// Int acepta enteros JSON, floats con parte decimal cero y strings numéricos.
func (o Object) Int(key string, required bool, errs Errors) (int, bool) {
	raw, ok := o.lookup(key, required, errs)
	if !ok {
		return 0, false
	}

	text, ok := numericText(raw)
	if !ok {
		errs.Add(key, MsgInvalidInteger)
		return 0, false
	}
	if n, err := strconv.Atoi(text); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) ||
		f >= float64(math.MaxInt64) || f < float64(math.MinInt64) {
		errs.Add(key, MsgInvalidInteger)
		return 0, false
	}
	return int(f), true
}

// Float acepta números JSON y strings numéricos finitos.
func (o Object) Float(key string, required bool, errs Errors) (float64, bool) {
	raw, ok := o.lookup(key, required, errs)
	if !ok {
		return 0, false
	}

	text, ok := numericText(raw)
	if !ok {
		errs.Add(key, MsgInvalidNumber)
		return 0, false
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		errs.Add(key, MsgInvalidNumber)
		return 0, false
	}
	return f, true
}

// Choice exige que el valor sea uno de choices.
func (o Object) Choice(key string, required bool, choices []string, errs Errors) (string, bool) {
	raw, ok := o.lookup(key, required, errs)
	if !ok {
		return "", false
	}

	var s string
	switch KindOf(raw) {
	case "str":
		if err := json.Unmarshal(raw, &s); err != nil {
			errs.Add(key, MsgInvalidString)
			return "", false
		}
	case "int", "float", "bool":
		s = string(bytes.TrimSpace(raw))
	default:
		errs.Add(key, fmt.Sprintf("%q is not a valid choice.", string(bytes.TrimSpace(raw))))
		return "", false
	}

	for _, c := range choices {
		if s == c {
			return s, true
		}
	}
	errs.Add(key, fmt.Sprintf("%q is not a valid choice.", s))
	return "", false
}

// List exige un array JSON y devuelve sus elementos crudos.
func (o Object) List(key string, required bool, errs Errors) ([]json.RawMessage, bool) {
	raw, ok := o.lookup(key, required, errs)
	if !ok {
		return nil, false
	}
	if kind := KindOf(raw); kind != "list" {
		errs.Nest(key, Errors{NonFieldErrors: []string{
			fmt.Sprintf("Expected a list of items but got type %q.", kind),
		}})
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		errs.Nest(key, Errors{NonFieldErrors: []string{"Invalid data."}})
		return nil, false
	}
	return items, true
}

// Nested exige un objeto JSON en key; el mensaje de tipo va como non_field_errors anidado.
func (o Object) Nested(key string, required bool, errs Errors) (Object, bool) {
	raw, ok := o.lookup(key, required, errs)
	if !ok {
		return nil, false
	}
	obj, msg, ok := DecodeObject(raw)
	if !ok {
		errs.Nest(key, Errors{NonFieldErrors: []string{msg}})
		return nil, false
	}
	return obj, true
}

func numericText(raw json.RawMessage) (string, bool) {
	switch KindOf(raw) {
	case "int", "float":
		return string(bytes.TrimSpace(raw)), true
	case "str":
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		s = strings.TrimSpace(s)
		return s, s != ""
	default:
		return "", false
	}
}
