package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials cubre tanto email inexistente como password
// incorrecto; no distinguimos para no filtrar cuál falló.
var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name     string
	Email    string
	Password string // texto plano; se hashea acá
}

func (s *Service) Create(ctx context.Context, in CreateInput) (User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	now := s.now()
	u := User{
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Password:  string(hashed),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.repo.Create(ctx, u)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (User, error) {
	return s.repo.GetByID(ctx, id)
}

// EmailTaken responde si otro usuario (distinto de excludeID) ya usa el email.
func (s *Service) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	u, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return u.ID != excludeID, nil
}

// Authenticate compara el password contra el hash guardado.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	u, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

type UpdateInput struct {
	// Punteros para update parcial: nil = no tocar.
	Name     *string
	Email    *string
	Password *string // texto plano; se re-hashea si viene
}

// Update mergea los campos presentes sobre el registro existente y devuelve
// la cantidad de registros afectados (0 = not found).
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (int64, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	if in.Name != nil {
		current.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		current.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return 0, err
		}
		current.Password = string(hashed)
	}
	current.UpdatedAt = s.now()

	return s.repo.Update(ctx, current)
}

func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	return s.repo.Delete(ctx, id)
}
