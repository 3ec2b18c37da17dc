package users

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID   map[int64]User
	nextID int64
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]User{}, nextID: 1}
}

func (r *testRepo) Create(ctx context.Context, u User) (User, error) {
	u.ID = r.nextID
	r.nextID++
	r.byID[u.ID] = u
	return u, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *testRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *testRepo) List(ctx context.Context) ([]User, error) {
	out := make([]User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, u User) (int64, error) {
	if _, ok := r.byID[u.ID]; !ok {
		return 0, nil
	}
	r.byID[u.ID] = u
	return 1, nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) (int64, error) {
	if _, ok := r.byID[id]; !ok {
		return 0, nil
	}
	delete(r.byID, id)
	return 1, nil
}

// -------------------------
// Tests
// -------------------------

func TestCreate_HashesPasswordAndNormalizesEmail(t *testing.T) {
	svc := NewService(newTestRepo())

	u, err := svc.Create(context.Background(), CreateInput{
		Name:     "  Ana ",
		Email:    " ANA@Example.COM ",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if u.Name != "Ana" {
		t.Fatalf("expected trimmed name, got %q", u.Name)
	}
	if u.Email != "ana@example.com" {
		t.Fatalf("expected lowercased email, got %q", u.Email)
	}
	if u.Password == "secret1" {
		t.Fatal("password stored in plain text")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret1")) != nil {
		t.Fatal("stored hash does not match the password")
	}
}

func TestAuthenticate(t *testing.T) {
	svc := NewService(newTestRepo())
	created, err := svc.Create(context.Background(), CreateInput{
		Name: "Ana", Email: "ana@example.com", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	u, err := svc.Authenticate(context.Background(), "Ana@Example.com", "secret1")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if u.ID != created.ID {
		t.Fatalf("expected user %d, got %d", created.ID, u.ID)
	}

	if _, err := svc.Authenticate(context.Background(), "ana@example.com", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "nobody@example.com", "secret1"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestEmailTaken_ExcludesOwnRecord(t *testing.T) {
	svc := NewService(newTestRepo())
	u, err := svc.Create(context.Background(), CreateInput{
		Name: "Ana", Email: "ana@example.com", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	taken, err := svc.EmailTaken(context.Background(), "ana@example.com", 0)
	if err != nil || !taken {
		t.Fatalf("expected taken for another record, got taken=%v err=%v", taken, err)
	}

	taken, err = svc.EmailTaken(context.Background(), "ana@example.com", u.ID)
	if err != nil || taken {
		t.Fatalf("own email must not count as taken, got taken=%v err=%v", taken, err)
	}

	taken, err = svc.EmailTaken(context.Background(), "free@example.com", 0)
	if err != nil || taken {
		t.Fatalf("free email must not count as taken, got taken=%v err=%v", taken, err)
	}
}

func TestUpdate_PartialMergeAndRehash(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC) }

	created, err := svc.Create(context.Background(), CreateInput{
		Name: "Ana", Email: "ana@example.com", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	oldHash := created.Password

	name := "Anita"
	n, err := svc.Update(context.Background(), created.ID, UpdateInput{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 affected, got %d", n)
	}

	got, _ := repo.GetByID(context.Background(), created.ID)
	if got.Name != "Anita" {
		t.Fatalf("expected updated name, got %q", got.Name)
	}
	if got.Email != "ana@example.com" {
		t.Fatalf("omitted email must stay, got %q", got.Email)
	}
	if got.Password != oldHash {
		t.Fatal("omitted password must keep its hash")
	}

	password := "newpass1"
	if _, err := svc.Update(context.Background(), created.ID, UpdateInput{Password: &password}); err != nil {
		t.Fatalf("update password: %v", err)
	}
	got, _ = repo.GetByID(context.Background(), created.ID)
	if got.Password == oldHash {
		t.Fatal("password update must re-hash")
	}
	if bcrypt.CompareHashAndPassword([]byte(got.Password), []byte("newpass1")) != nil {
		t.Fatal("new hash does not match the new password")
	}
}

func TestUpdateAndDelete_NotFoundIsZero(t *testing.T) {
	svc := NewService(newTestRepo())

	name := "ghost"
	n, err := svc.Update(context.Background(), 99, UpdateInput{Name: &name})
	if err != nil || n != 0 {
		t.Fatalf("expected 0 affected for unknown id, got n=%d err=%v", n, err)
	}

	n, err = svc.Delete(context.Background(), 99)
	if err != nil || n != 0 {
		t.Fatalf("expected 0 deleted for unknown id, got n=%d err=%v", n, err)
	}
}
