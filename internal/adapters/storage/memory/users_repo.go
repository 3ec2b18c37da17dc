package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"pet-lost-and-found/internal/domain/users"
)

type usersRepo struct {
	mu     sync.RWMutex
	byID   map[int64]users.User
	nextID int64
}

func NewUsersRepo() users.Repository {
	return &usersRepo{
		byID:   make(map[int64]users.User),
		nextID: 1,
	}
}

func (r *usersRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u.ID = r.nextID
	r.nextID++
	r.byID[u.ID] = u
	return u, nil
}

func (r *usersRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return users.User{}, users.ErrNotFound
}

func (r *usersRepo) List(ctx context.Context) ([]users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]users.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}

	// Orden estable por id asc (solo para consistencia en dev)
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *usersRepo) Update(ctx context.Context, u users.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[u.ID]; !exists {
		return 0, nil
	}
	r.byID[u.ID] = u
	return 1, nil
}

func (r *usersRepo) Delete(ctx context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return 0, nil
	}
	delete(r.byID, id)
	return 1, nil
}
