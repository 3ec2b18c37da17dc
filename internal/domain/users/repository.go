package users

import (
	"context"
	"errors"
)

// ErrNotFound es el contrato de "no existe" entre adapters y este dominio.
var ErrNotFound = errors.New("user not found")

type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)

	// Update y Delete devuelven la cantidad de registros afectados;
	// cero se mapea a not-found más arriba.
	Update(ctx context.Context, u User) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
