package foundpets

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
	Type          string
	Colour        string
	FoundDate     time.Time
	FoundLocation string
	Photo         string
	Comment       string
	Status        string
	ClaimedDate   *time.Time
}

func (s *Service) Create(ctx context.Context, userID int64, in CreateInput) (FoundPet, error) {
	status := Status(strings.TrimSpace(in.Status))
	if status == "" {
		status = StatusUnclaimed
	}

	now := s.now()
	p := FoundPet{
		UserID:        userID,
		Type:          PetType(strings.TrimSpace(in.Type)),
		Colour:        strings.TrimSpace(in.Colour),
		FoundDate:     in.FoundDate,
		FoundLocation: strings.TrimSpace(in.FoundLocation),
		Photo:         in.Photo,
		Comment:       in.Comment,
		Status:        status,
		ClaimedDate:   in.ClaimedDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) GetByID(ctx context.Context, id int64) (FoundPet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]FoundPet, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]FoundPet, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) ListByType(ctx context.Context, t string) ([]FoundPet, error) {
	return s.repo.ListByType(ctx, PetType(t))
}

func (s *Service) ListByStatus(ctx context.Context, st string) ([]FoundPet, error) {
	return s.repo.ListByStatus(ctx, Status(st))
}

func (s *Service) ListByLocation(ctx context.Context, location string) ([]FoundPet, error) {
	return s.repo.ListByLocation(ctx, location)
}

type UpdateInput struct {
	// Punteros para update parcial: nil = no tocar.
	Type          *string
	Colour        *string
	FoundDate     *time.Time
	FoundLocation *string
	Photo         *string
	Comment       *string
	Status        *string
	ClaimedDate   *time.Time
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (int64, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	if in.Type != nil {
		current.Type = PetType(strings.TrimSpace(*in.Type))
	}
	if in.Colour != nil {
		current.Colour = strings.TrimSpace(*in.Colour)
	}
	if in.FoundDate != nil {
		current.FoundDate = *in.FoundDate
	}
	if in.FoundLocation != nil {
		current.FoundLocation = strings.TrimSpace(*in.FoundLocation)
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
	if in.ClaimedDate != nil {
		current.ClaimedDate = in.ClaimedDate
	}
	current.UpdatedAt = s.now()

	return s.repo.Update(ctx, current)
}

func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	return s.repo.Delete(ctx, id)
}
