package missingpets

import (
	"context"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID   map[int64]MissingPet
	nextID int64
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]MissingPet{}, nextID: 1}
}

func (r *testRepo) Create(ctx context.Context, p MissingPet) (MissingPet, error) {
	p.ID = r.nextID
	r.nextID++
	r.byID[p.ID] = p
	return p, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (MissingPet, error) {
	p, ok := r.byID[id]
	if !ok {
		return MissingPet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) List(ctx context.Context) ([]MissingPet, error) {
	return r.filter(func(MissingPet) bool { return true }), nil
}

func (r *testRepo) ListByUser(ctx context.Context, userID int64) ([]MissingPet, error) {
	return r.filter(func(p MissingPet) bool { return p.UserID == userID }), nil
}

func (r *testRepo) ListByType(ctx context.Context, t PetType) ([]MissingPet, error) {
	return r.filter(func(p MissingPet) bool { return p.Type == t }), nil
}

func (r *testRepo) ListByStatus(ctx context.Context, s Status) ([]MissingPet, error) {
	return r.filter(func(p MissingPet) bool { return p.Status == s }), nil
}

func (r *testRepo) ListByLocation(ctx context.Context, location string) ([]MissingPet, error) {
	return r.filter(func(p MissingPet) bool { return p.LastSeenLocation == location }), nil
}

func (r *testRepo) Update(ctx context.Context, p MissingPet) (int64, error) {
	if _, ok := r.byID[p.ID]; !ok {
		return 0, nil
	}
	r.byID[p.ID] = p
	return 1, nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) (int64, error) {
	if _, ok := r.byID[id]; !ok {
		return 0, nil
	}
	delete(r.byID, id)
	return 1, nil
}

func (r *testRepo) filter(keep func(MissingPet) bool) []MissingPet {
	out := make([]MissingPet, 0)
	for _, p := range r.byID {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// -------------------------
// Tests
// -------------------------

func TestCreate_DefaultsStatusAndStampsUser(t *testing.T) {
	svc := NewService(newTestRepo())

	p, err := svc.Create(context.Background(), 7, CreateInput{
		Name:             "Rocky",
		Type:             "dog",
		Colour:           "brown",
		LostDate:         time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		LastSeenLocation: "Lima",
		Comment:          "ran off",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if p.ID == 0 {
		t.Fatal("store must assign an id")
	}
	if p.UserID != 7 {
		t.Fatalf("expected userID 7, got %d", p.UserID)
	}
	if p.Status != StatusMissing {
		t.Fatalf("expected default status missing, got %q", p.Status)
	}
	if p.CreatedAt.IsZero() || !p.CreatedAt.Equal(p.UpdatedAt) {
		t.Fatalf("create must stamp both timestamps equal, got %v / %v", p.CreatedAt, p.UpdatedAt)
	}
}

func TestUpdate_MergesOnlyPresentFields(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), 7, CreateInput{
		Name:             "Rocky",
		Type:             "dog",
		Colour:           "brown",
		LostDate:         time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		LastSeenLocation: "Lima",
		Comment:          "ran off",
		Status:           "missing",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	later := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return later }

	status := "found"
	foundDate := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	n, err := svc.Update(context.Background(), created.ID, UpdateInput{
		Status:    &status,
		FoundDate: &foundDate,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 affected, got %d", n)
	}

	got, _ := repo.GetByID(context.Background(), created.ID)
	if got.Name != "Rocky" || got.Colour != "brown" {
		t.Fatalf("omitted fields must stay, got %+v", got)
	}
	if got.Status != StatusFound {
		t.Fatalf("expected status found, got %q", got.Status)
	}
	if got.FoundDate == nil || !got.FoundDate.Equal(foundDate) {
		t.Fatalf("expected foundDate %v, got %v", foundDate, got.FoundDate)
	}
	if !got.UpdatedAt.Equal(later) {
		t.Fatalf("update must refresh updatedAt, got %v", got.UpdatedAt)
	}
	if !got.CreatedAt.Equal(created.CreatedAt) {
		t.Fatal("update must not touch createdAt")
	}
}

func TestUpdate_UnknownIDIsZeroAffected(t *testing.T) {
	svc := NewService(newTestRepo())

	name := "ghost"
	n, err := svc.Update(context.Background(), 99, UpdateInput{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 affected, got %d", n)
	}
}

func TestListBy_Passthroughs(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	mk := func(userID int64, typ, status, location string) {
		t.Helper()
		_, err := svc.Create(context.Background(), userID, CreateInput{
			Name:             "x",
			Type:             typ,
			Colour:           "c",
			LostDate:         time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
			LastSeenLocation: location,
			Comment:          "c",
			Status:           status,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	mk(1, "dog", "missing", "Lima")
	mk(1, "cat", "found", "Cusco")
	mk(2, "dog", "missing", "Lima")

	if got, _ := svc.ListByUser(context.Background(), 1); len(got) != 2 {
		t.Fatalf("expected 2 for user 1, got %d", len(got))
	}
	if got, _ := svc.ListByType(context.Background(), "dog"); len(got) != 2 {
		t.Fatalf("expected 2 dogs, got %d", len(got))
	}
	if got, _ := svc.ListByStatus(context.Background(), "found"); len(got) != 1 {
		t.Fatalf("expected 1 found, got %d", len(got))
	}
	if got, _ := svc.ListByLocation(context.Background(), "Lima"); len(got) != 2 {
		t.Fatalf("expected 2 in Lima, got %d", len(got))
	}
	if got, _ := svc.ListByType(context.Background(), "bird"); len(got) != 0 {
		t.Fatalf("expected empty list, got %d", len(got))
	}
}
