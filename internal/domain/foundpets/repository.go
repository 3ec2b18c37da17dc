package foundpets

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("found pet not found")

type Repository interface {
	Create(ctx context.Context, p FoundPet) (FoundPet, error)
	GetByID(ctx context.Context, id int64) (FoundPet, error)

	List(ctx context.Context) ([]FoundPet, error)
	ListByUser(ctx context.Context, userID int64) ([]FoundPet, error)
	ListByType(ctx context.Context, t PetType) ([]FoundPet, error)
	ListByStatus(ctx context.Context, s Status) ([]FoundPet, error)
	ListByLocation(ctx context.Context, location string) ([]FoundPet, error)

	Update(ctx context.Context, p FoundPet) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
