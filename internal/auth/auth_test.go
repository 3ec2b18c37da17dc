package auth

import (
	"testing"
	"time"

	"pet-lost-and-found/internal/config"
)

func testConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTKey:        "test-secret",
		TokenDuration: time.Hour,
	}
}

func TestTokens_RoundTrip(t *testing.T) {
	tokens := NewTokens(testConfig())

	signed, err := tokens.Issue(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := tokens.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected userID 42, got %d", claims.UserID)
	}
	if claims.Subject != "42" {
		t.Fatalf("expected subject 42, got %q", claims.Subject)
	}
}

func TestTokens_RejectsExpired(t *testing.T) {
	tokens := NewTokens(testConfig())

	issuedAt := time.Now()
	tokens.now = func() time.Time { return issuedAt }
	signed, err := tokens.Issue(7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Avanzamos el reloj más allá del vencimiento.
	tokens.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	if _, err := tokens.Verify(signed); err == nil {
		t.Fatal("expected expired token to fail")
	}
}

func TestTokens_RejectsWrongKey(t *testing.T) {
	signed, err := NewTokens(testConfig()).Issue(7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	other := NewTokens(config.AuthConfig{JWTKey: "other-secret", TokenDuration: time.Hour})
	if _, err := other.Verify(signed); err == nil {
		t.Fatal("expected token signed with another key to fail")
	}
}

func TestTokens_RejectsGarbage(t *testing.T) {
	tokens := NewTokens(testConfig())
	if _, err := tokens.Verify("not-a-token"); err == nil {
		t.Fatal("expected garbage token to fail")
	}
	if _, err := tokens.Verify(""); err == nil {
		t.Fatal("expected empty token to fail")
	}
}
