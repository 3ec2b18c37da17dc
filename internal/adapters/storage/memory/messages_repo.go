package memory

import (
	"context"
	"sort"
	"sync"

	"pet-lost-and-found/internal/domain/messages"
)

type messagesRepo struct {
	mu     sync.RWMutex
	byID   map[int64]messages.Message
	nextID int64
}

func NewMessagesRepo() messages.Repository {
	return &messagesRepo{
		byID:   make(map[int64]messages.Message),
		nextID: 1,
	}
}

func (r *messagesRepo) Create(ctx context.Context, m messages.Message) (messages.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m.ID = r.nextID
	r.nextID++
	r.byID[m.ID] = m
	return m, nil
}

func (r *messagesRepo) GetByID(ctx context.Context, id int64) (messages.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	if !ok {
		return messages.Message{}, messages.ErrNotFound
	}
	return m, nil
}

func (r *messagesRepo) List(ctx context.Context) ([]messages.Message, error) {
	return r.filter(func(messages.Message) bool { return true }), nil
}

func (r *messagesRepo) ListByUser(ctx context.Context, userID int64) ([]messages.Message, error) {
	return r.filter(func(m messages.Message) bool { return m.UserID == userID }), nil
}

func (r *messagesRepo) ListByMissingPet(ctx context.Context, missingPetID int64) ([]messages.Message, error) {
	return r.filter(func(m messages.Message) bool { return m.MissingPetID == missingPetID }), nil
}

func (r *messagesRepo) Update(ctx context.Context, m messages.Message) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[m.ID]; !exists {
		return 0, nil
	}
	r.byID[m.ID] = m
	return 1, nil
}

func (r *messagesRepo) Delete(ctx context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return 0, nil
	}
	delete(r.byID, id)
	return 1, nil
}

func (r *messagesRepo) filter(keep func(messages.Message) bool) []messages.Message {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]messages.Message, 0)
	for _, m := range r.byID {
		if keep(m) {
			out = append(out, m)
		}
	}

	// Orden estable por created_at asc, como en Postgres.
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out
}
