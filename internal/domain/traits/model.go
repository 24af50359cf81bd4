package traits

import (
	"strings"
	"time"
)

// MaxNameLength es el largo máximo (en caracteres) de name.
const MaxNameLength = 20

// Trait es una etiqueta descriptiva; una mascota puede tener varias y una etiqueta
// puede estar en varias mascotas. Se identifica por name sin distinguir mayúsculas.
type Trait struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
