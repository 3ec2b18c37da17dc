package memory

import (
	"context"
	"sort"
	"sync"

	"pet-lost-and-found/internal/domain/foundpets"
)

type foundPetsRepo struct {
	mu     sync.RWMutex
	byID   map[int64]foundpets.FoundPet
	nextID int64
}

func NewFoundPetsRepo() foundpets.Repository {
	return &foundPetsRepo{
		byID:   make(map[int64]foundpets.FoundPet),
		nextID: 1,
	}
}

func (r *foundPetsRepo) Create(ctx context.Context, p foundpets.FoundPet) (foundpets.FoundPet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	r.byID[p.ID] = p
	return p, nil
}

func (r *foundPetsRepo) GetByID(ctx context.Context, id int64) (foundpets.FoundPet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return foundpets.FoundPet{}, foundpets.ErrNotFound
	}
	return p, nil
}

func (r *foundPetsRepo) List(ctx context.Context) ([]foundpets.FoundPet, error) {
	return r.filter(func(foundpets.FoundPet) bool { return true }), nil
}

func (r *foundPetsRepo) ListByUser(ctx context.Context, userID int64) ([]foundpets.FoundPet, error) {
	return r.filter(func(p foundpets.FoundPet) bool { return p.UserID == userID }), nil
}

func (r *foundPetsRepo) ListByType(ctx context.Context, t foundpets.PetType) ([]foundpets.FoundPet, error) {
	return r.filter(func(p foundpets.FoundPet) bool { return p.Type == t }), nil
}

func (r *foundPetsRepo) ListByStatus(ctx context.Context, s foundpets.Status) ([]foundpets.FoundPet, error) {
	return r.filter(func(p foundpets.FoundPet) bool { return p.Status == s }), nil
}

func (r *foundPetsRepo) ListByLocation(ctx context.Context, location string) ([]foundpets.FoundPet, error) {
	return r.filter(func(p foundpets.FoundPet) bool { return p.FoundLocation == location }), nil
}

func (r *foundPetsRepo) Update(ctx context.Context, p foundpets.FoundPet) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; !exists {
		return 0, nil
	}
	r.byID[p.ID] = p
	return 1, nil
}

func (r *foundPetsRepo) Delete(ctx context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return 0, nil
	}
	delete(r.byID, id)
	return 1, nil
}

func (r *foundPetsRepo) filter(keep func(foundpets.FoundPet) bool) []foundpets.FoundPet {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]foundpets.FoundPet, 0)
	for _, p := range r.byID {
		if keep(p) {
			out = append(out, p)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})

	return out
}
