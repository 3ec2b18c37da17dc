package messages

import (
	"context"
	"errors"
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
	MissingPetID int64
	Comment      string
}

// Create registra el mensaje con el remitente autenticado. La existencia
// del aviso referenciado la garantiza la FK del store, no este servicio.
func (s *Service) Create(ctx context.Context, userID int64, in CreateInput) (Message, error) {
	now := s.now()
	m := Message{
		UserID:       userID,
		MissingPetID: in.MissingPetID,
		Comment:      in.Comment,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return s.repo.Create(ctx, m)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Message, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Message, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]Message, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) ListByMissingPet(ctx context.Context, missingPetID int64) ([]Message, error) {
	return s.repo.ListByMissingPet(ctx, missingPetID)
}

type UpdateInput struct {
	MissingPetID *int64
	Comment      *string
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (int64, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	if in.MissingPetID != nil {
		current.MissingPetID = *in.MissingPetID
	}
	if in.Comment != nil {
		current.Comment = *in.Comment
	}
	current.UpdatedAt = s.now()

	return s.repo.Update(ctx, current)
}

func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	return s.repo.Delete(ctx, id)
}
