package foundpets

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

// Status del aviso de mascota encontrada.
type Status string

const (
	StatusUnclaimed Status = "unclaimed"
	StatusClaimed   Status = "claimed"
)

// FoundPet es un aviso de mascota encontrada publicado por un usuario.
type FoundPet struct {
	ID     int64
	UserID int64

	Type          PetType
	Colour        string
	FoundDate     time.Time // solo fecha
	FoundLocation string
	Photo         string // referencia al archivo subido; vacío = sin foto
	Comment       string
	Status        Status
	ClaimedDate   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
