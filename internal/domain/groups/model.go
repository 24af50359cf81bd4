package groups

import (
	"strings"
	"time"
)

// MaxScientificNameLength es el largo máximo (en caracteres) de scientific_name.
const MaxScientificNameLength = 50

// Group es la clasificación taxonómica de una mascota.
// Su identidad funcional es el scientific_name sin distinguir mayúsculas (ver Key).
type Group struct {
	ID             int64
	ScientificName string
	CreatedAt      time.Time
}

// Key normaliza scientific_name para búsquedas y unicidad case-insensitive.
func Key(scientificName string) string {
	return strings.ToLower(strings.TrimSpace(scientificName))
}
