package messages

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("message not found")

type Repository interface {
	Create(ctx context.Context, m Message) (Message, error)
	GetByID(ctx context.Context, id int64) (Message, error)

	List(ctx context.Context) ([]Message, error)
	ListByUser(ctx context.Context, userID int64) ([]Message, error)
	ListByMissingPet(ctx context.Context, missingPetID int64) ([]Message, error)

	Update(ctx context.Context, m Message) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
