package pets

import (
	"pets-api/internal/domain/groups"
	"pets-api/internal/domain/traits"
)

// MaxNameLength es el largo máximo (en caracteres) del nombre de la mascota.
const MaxNameLength = 50

// Sex define el sexo de la mascota.
// @Enum Male, Female, Not Informed
type Sex string

const (
	SexMale        Sex = "Male"
	SexFemale      Sex = "Female"
	SexNotInformed Sex = "Not Informed"
)

// SexChoices devuelve los valores aceptados, en el orden en que se documentan.
func SexChoices() []string {
	return []string{string(SexMale), string(SexFemale), string(SexNotInformed)}
}

func (s Sex) Valid() bool {
	switch s {
	case SexMale, SexFemale, SexNotInformed:
		return true
	default:
		return false
	}
}

// Pet representa una mascota con su grupo y sus características ya resueltas.
type Pet struct {
	ID int64

	Name   string
	Age    int
	Weight float64
	Sex    Sex // Male, Female, Not Informed

	Group  groups.Group
	Traits []traits.Trait
}
