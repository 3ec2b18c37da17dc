package validate

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"pet-lost-and-found/internal/apperror"
)

func TestRun_CollectsAllViolationsInOrder(t *testing.T) {
	v := Values{"type": "dragon"}
	rules := []Rule{
		Required("name", "Name is required"),
		Required("type", "Type is required"),
		Matches("type", typeTestPattern(), "Invalid type"),
		Required("colour", "Colour is required"),
	}

	violations, err := Run(context.Background(), v, rules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []apperror.FieldError{
		{Field: "name", Message: "Name is required"},
		{Field: "type", Message: "Invalid type"},
		{Field: "colour", Message: "Colour is required"},
	}
	if len(violations) != len(want) {
		t.Fatalf("expected %d violations, got %d: %v", len(want), len(violations), violations)
	}
	for i := range want {
		if violations[i] != want[i] {
			t.Fatalf("violation %d: expected %v, got %v", i, want[i], violations[i])
		}
	}
}

func TestOptional_SkipsAbsentButChecksPresent(t *testing.T) {
	rule := Optional(Date("foundDate", "Invalid found date"))

	if ok, _ := rule.Check(context.Background(), "", false); !ok {
		t.Fatal("absent field must pass an optional rule")
	}
	if ok, _ := rule.Check(context.Background(), "not-a-date", true); ok {
		t.Fatal("present invalid value must fail an optional rule")
	}
	if ok, _ := rule.Check(context.Background(), "2026-08-20", true); !ok {
		t.Fatal("present valid value must pass")
	}
}

func TestUnique_LookupSemantics(t *testing.T) {
	taken := func(_ context.Context, value string) (bool, error) {
		return value == "dup@example.com", nil
	}
	rule := Unique("email", "Email already exists", taken)

	if ok, _ := rule.Check(context.Background(), "dup@example.com", true); ok {
		t.Fatal("taken value must fail")
	}
	if ok, _ := rule.Check(context.Background(), "new@example.com", true); !ok {
		t.Fatal("free value must pass")
	}
	// Ausente o vacío no consulta el store; de eso se encarga Required.
	if ok, _ := rule.Check(context.Background(), "", false); !ok {
		t.Fatal("absent value must pass")
	}
}

func TestRun_LookupFailureAbortsAsInternal(t *testing.T) {
	boom := errors.New("store down")
	rules := []Rule{
		Unique("email", "Email already exists", func(context.Context, string) (bool, error) {
			return false, boom
		}),
	}

	_, err := Run(context.Background(), Values{"email": "a@b.co"}, rules)
	if err == nil {
		t.Fatal("expected error from failed lookup")
	}
	ae, ok := apperror.From(err)
	if !ok || ae.Type != apperror.TypeInternal {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestFromJSON(t *testing.T) {
	v, err := FromJSON(strings.NewReader(`{"name":"Rocky","age":3,"ok":true,"gone":null}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v.Get("name") != "Rocky" {
		t.Fatalf("expected name Rocky, got %q", v.Get("name"))
	}
	if v.Get("age") != "3" {
		t.Fatalf("numbers must keep their raw form, got %q", v.Get("age"))
	}
	if v.Get("ok") != "true" {
		t.Fatalf("expected bool as string, got %q", v.Get("ok"))
	}
	if v.Has("gone") {
		t.Fatal("null must count as absent")
	}

	// Body vacío es un request válido sin campos.
	v, err = FromJSON(strings.NewReader(""))
	if err != nil {
		t.Fatalf("empty body: unexpected error: %v", err)
	}
	if len(v) != 0 {
		t.Fatalf("expected no values, got %v", v)
	}

	if _, err := FromJSON(strings.NewReader("{broken")); err == nil {
		t.Fatal("malformed JSON must error")
	}
}

func TestRequired_RejectsBlank(t *testing.T) {
	rule := Required("name", "Name is required")

	if ok, _ := rule.Check(context.Background(), "   ", true); ok {
		t.Fatal("whitespace-only value must fail")
	}
	if ok, _ := rule.Check(context.Background(), "", false); ok {
		t.Fatal("absent value must fail")
	}
}

func TestEmailAndLength(t *testing.T) {
	email := Email("email", "Invalid email")
	if ok, _ := email.Check(context.Background(), "not-an-email", true); ok {
		t.Fatal("invalid email must fail")
	}
	if ok, _ := email.Check(context.Background(), "a@b.co", true); !ok {
		t.Fatal("valid email must pass")
	}

	length := Length("password", 6, 8, "bad length")
	if ok, _ := length.Check(context.Background(), "12345", true); ok {
		t.Fatal("too short must fail")
	}
	if ok, _ := length.Check(context.Background(), "123456789", true); ok {
		t.Fatal("too long must fail")
	}
	if ok, _ := length.Check(context.Background(), "123456", true); !ok {
		t.Fatal("in range must pass")
	}
}

func typeTestPattern() *regexp.Regexp {
	return regexp.MustCompile(`^(dog|cat|bird|rabbit|other)$`)
}
