package missingpets

import (
	"context"
	"errors"
	"strings"
	"time"
)

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
	Name             string
	Type             string
	Colour           string
	LostDate         time.Time
	LastSeenLocation string
	Photo            string
	Comment          string
	Status           string
	FoundDate        *time.Time
}

// Create arma el aviso con el userID autenticado; el id lo asigna el store.
func (s *Service) Create(ctx context.Context, userID int64, in CreateInput) (MissingPet, error) {
	status := Status(strings.TrimSpace(in.Status))
	if status == "" {
		status = StatusMissing
	}

	now := s.now()
	p := MissingPet{
		UserID:           userID,
		Name:             strings.TrimSpace(in.Name),
		Type:             PetType(strings.TrimSpace(in.Type)),
		Colour:           strings.TrimSpace(in.Colour),
		LostDate:         in.LostDate,
		LastSeenLocation: strings.TrimSpace(in.LastSeenLocation),
		Photo:            in.Photo,
		Comment:          in.Comment,
		Status:           status,
		FoundDate:        in.FoundDate,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) GetByID(ctx context.Context, id int64) (MissingPet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]MissingPet, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]MissingPet, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) ListByType(ctx context.Context, t string) ([]MissingPet, error) {
	return s.repo.ListByType(ctx, PetType(t))
}

func (s *Service) ListByStatus(ctx context.Context, st string) ([]MissingPet, error) {
	return s.repo.ListByStatus(ctx, Status(st))
}

func (s *Service) ListByLocation(ctx context.Context, location string) ([]MissingPet, error) {
	return s.repo.ListByLocation(ctx, location)
}

type UpdateInput struct {
	// Punteros para update parcial: nil = no tocar.
	Name             *string
	Type             *string
	Colour           *string
	LostDate         *time.Time
	LastSeenLocation *string
	Photo            *string
	Comment          *string
	Status           *string
	FoundDate        *time.Time
}

// Update mergea lo presente sobre el registro actual; devuelve registros
// afectados (0 = not found).
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
	if in.Type != nil {
		current.Type = PetType(strings.TrimSpace(*in.Type))
	}
	if in.Colour != nil {
		current.Colour = strings.TrimSpace(*in.Colour)
	}
	if in.LostDate != nil {
		current.LostDate = *in.LostDate
	}
	if in.LastSeenLocation != nil {
		current.LastSeenLocation = strings.TrimSpace(*in.LastSeenLocation)
	}
	if in.Photo != nil {
		current.Photo = *in.Photo
	}
	if in.Comment != nil {
		current.Comment = *in.Comment
	}
	if in.Status != nil {
		current.Status = Status(strings.TrimSpace(*in.Status))
	}
	if in.FoundDate != nil {
		current.FoundDate = in.FoundDate
	}
	current.UpdatedAt = s.now()

	return s.repo.Update(ctx, current)
}

func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	return s.repo.Delete(ctx, id)
}
