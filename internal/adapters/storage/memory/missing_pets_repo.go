package memory

import (
	"context"
	"sort"
	"sync"

	"pet-lost-and-found/internal/domain/missingpets"
)

type missingPetsRepo struct {
	mu     sync.RWMutex
	byID   map[int64]missingpets.MissingPet
	nextID int64
}

func NewMissingPetsRepo() missingpets.Repository {
	return &missingPetsRepo{
		byID:   make(map[int64]missingpets.MissingPet),
		nextID: 1,
	}
}

func (r *missingPetsRepo) Create(ctx context.Context, p missingpets.MissingPet) (missingpets.MissingPet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	r.byID[p.ID] = p
	return p, nil
}

func (r *missingPetsRepo) GetByID(ctx context.Context, id int64) (missingpets.MissingPet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return missingpets.MissingPet{}, missingpets.ErrNotFound
	}
	return p, nil
}

func (r *missingPetsRepo) List(ctx context.Context) ([]missingpets.MissingPet, error) {
	return r.filter(func(missingpets.MissingPet) bool { return true }), nil
}

func (r *missingPetsRepo) ListByUser(ctx context.Context, userID int64) ([]missingpets.MissingPet, error) {
	return r.filter(func(p missingpets.MissingPet) bool { return p.UserID == userID }), nil
}

func (r *missingPetsRepo) ListByType(ctx context.Context, t missingpets.PetType) ([]missingpets.MissingPet, error) {
	return r.filter(func(p missingpets.MissingPet) bool { return p.Type == t }), nil
}

func (r *missingPetsRepo) ListByStatus(ctx context.Context, s missingpets.Status) ([]missingpets.MissingPet, error) {
	return r.filter(func(p missingpets.MissingPet) bool { return p.Status == s }), nil
}

func (r *missingPetsRepo) ListByLocation(ctx context.Context, location string) ([]missingpets.MissingPet, error) {
	return r.filter(func(p missingpets.MissingPet) bool { return p.LastSeenLocation == location }), nil
}

func (r *missingPetsRepo) Update(ctx context.Context, p missingpets.MissingPet) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; !exists {
		return 0, nil
	}
	r.byID[p.ID] = p
	return 1, nil
}

func (r *missingPetsRepo) Delete(ctx context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return 0, nil
	}
	delete(r.byID, id)
	return 1, nil
}

func (r *missingPetsRepo) filter(keep func(missingpets.MissingPet) bool) []missingpets.MissingPet {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]missingpets.MissingPet, 0)
	for _, p := range r.byID {
		if keep(p) {
			out = append(out, p)
		}
	}

	// Mismo orden que el adapter de Postgres: lo último que cambió, primero.
	sort.Slice(out, func(i, j int) bool {
		if out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})

	return out
}
