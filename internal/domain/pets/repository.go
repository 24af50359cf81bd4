package pets

import (
	"context"

	"pets-api/internal/domain/groups"
	"pets-api/internal/domain/traits"
)

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Pet, int, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
	Delete(ctx context.Context, id int64) error

	// WithTx ejecuta fn como una unidad: si fn devuelve error no queda nada escrito
	// (ni la mascota, ni grupos/traits creados, ni asociaciones).
	WithTx(ctx context.Context, fn func(tx Tx) error) error
}

// Tx son las operaciones disponibles dentro de WithTx.
type Tx interface {
	GetByID(ctx context.Context, id int64) (Pet, error)

	// Insert guarda escalares + p.Group.ID y devuelve el id asignado. Ignora p.Traits.
	Insert(ctx context.Context, p Pet) (int64, error)
	// Update reemplaza escalares + p.Group.ID. Ignora p.Traits.
	Update(ctx context.Context, p Pet) error
	// AddTraits asocia traits existentes; asociar uno ya asociado no hace nada.
	AddTraits(ctx context.Context, petID int64, traitIDs ...int64) error

	// GetOrCreateGroup busca por groups.Key(ScientificName) y, si no existe, lo crea.
	// created indica si la fila es nueva. Seguro ante requests concurrentes con la misma key.
	GetOrCreateGroup(ctx context.Context, g groups.Group) (out groups.Group, created bool, err error)
	// GetOrCreateTrait es el equivalente para traits, por traits.Key(Name).
	GetOrCreateTrait(ctx context.Context, t traits.Trait) (out traits.Trait, created bool, err error)
}

type ListFilter struct {
	// Trait filtra mascotas con al menos un trait cuyo nombre contenga el texto
	// (case-insensitive). Vacío = todas.
	Trait  string
	Limit  int
	Offset int
}
