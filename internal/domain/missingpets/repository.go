package missingpets

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("missing pet not found")

type Repository interface {
	Create(ctx context.Context, p MissingPet) (MissingPet, error)
	GetByID(ctx context.Context, id int64) (MissingPet, error)

	// List ordena por updatedAt descendente (lo último que se movió, primero).
	List(ctx context.Context) ([]MissingPet, error)
	ListByUser(ctx context.Context, userID int64) ([]MissingPet, error)
	ListByType(ctx context.Context, t PetType) ([]MissingPet, error)
	ListByStatus(ctx context.Context, s Status) ([]MissingPet, error)
	ListByLocation(ctx context.Context, location string) ([]MissingPet, error)

	Update(ctx context.Context, p MissingPet) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
