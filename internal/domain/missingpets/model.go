package missingpets

import "time"

// PetType define las especies soportadas.
// @Enum dog, cat, bird, rabbit, other
type PetType string

const (
	TypeDog    PetType = "dog"
	TypeCat    PetType = "cat"
	TypeBird   PetType = "bird"
	TypeRabbit PetType = "rabbit"
	TypeOther  PetType = "other"
)

// Status del aviso. La transición missing -> found es de ida en el uso
// esperado, pero no se fuerza desde el store.
type Status string

const (
	StatusMissing Status = "missing"
	StatusFound   Status = "found"
)

// MissingPet es un aviso de mascota perdida publicado por un usuario.
type MissingPet struct {
	ID     int64
	UserID int64

	Name             string
	Type             PetType
	Colour           string
	LostDate         time.Time // solo fecha
	LastSeenLocation string
	Photo            string // referencia al archivo subido; vacío = sin foto
	Comment          string
	Status           Status
	FoundDate        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
