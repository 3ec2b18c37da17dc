package validate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"pet-lost-and-found/internal/apperror"
)

// Values son los campos de un request (body, form y path params) como
// strings crudos. La clave ausente se distingue del string vacío, porque
// los rule sets de update solo validan lo que vino.
type Values map[string]string

func (v Values) Has(field string) bool {
	_, ok := v[field]
	return ok
}

func (v Values) Get(field string) string {
	return v[field]
}

func (v Values) Set(field, value string) {
	v[field] = value
}

// FromJSON decodifica un body JSON plano a Values. null cuenta como ausente.
func FromJSON(body io.Reader) (Values, error) {
	dec := json.NewDecoder(body)
	dec.UseNumber()

	raw := map[string]any{}
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Values{}, nil
		}
		return nil, err
	}

	v := Values{}
	for k, val := range raw {
		switch t := val.(type) {
		case nil:
			// ausente
		case string:
			v[k] = t
		case json.Number:
			v[k] = t.String()
		case bool:
			v[k] = strconv.FormatBool(t)
		default:
			v[k] = fmt.Sprint(t)
		}
	}
	return v, nil
}

// FromForm toma los campos de un form ya parseado (urlencoded o multipart).
func FromForm(r *http.Request) Values {
	v := Values{}
	for k, vals := range r.Form {
		if len(vals) > 0 {
			v[k] = vals[0]
		}
	}
	return v
}

// CheckFunc es el predicado de una regla: recibe el valor crudo y si el
// campo vino en el request. El error es solo para fallas del lookup
// (p.ej. store caído), no para violaciones.
type CheckFunc func(ctx context.Context, value string, present bool) (bool, error)

// Rule liga un campo a un predicado y su mensaje de violación.
type Rule struct {
	Field   string
	Message string
	Check   CheckFunc
}

// Run evalúa todas las reglas en orden, sin cortar en la primera violación,
// y devuelve la lista completa.
func Run(ctx context.Context, v Values, rules []Rule) ([]apperror.FieldError, error) {
	violations := make([]apperror.FieldError, 0)
	for _, r := range rules {
		ok, err := r.Check(ctx, v.Get(r.Field), v.Has(r.Field))
		if err != nil {
			return nil, apperror.NewInternal("validation lookup failed", err)
		}
		if !ok {
			violations = append(violations, apperror.FieldError{Field: r.Field, Message: r.Message})
		}
	}
	return violations, nil
}

// Apply corre las reglas y convierte violaciones en un error de validación.
func Apply(ctx context.Context, v Values, rules []Rule) error {
	violations, err := Run(ctx, v, rules)
	if err != nil {
		return err
	}
	if len(violations) > 0 {
		return apperror.NewValidation(violations)
	}
	return nil
}

// ---- constructores de reglas ----

func Required(field, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(_ context.Context, value string, present bool) (bool, error) {
		return present && strings.TrimSpace(value) != "", nil
	}}
}

func Numeric(field, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(_ context.Context, value string, _ bool) (bool, error) {
		_, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		return err == nil, nil
	}}
}

func Matches(field string, pattern *regexp.Regexp, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(_ context.Context, value string, _ bool) (bool, error) {
		return pattern.MatchString(value), nil
	}}
}

// Date exige formato YYYY-MM-DD.
func Date(field, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(_ context.Context, value string, _ bool) (bool, error) {
		_, err := time.Parse("2006-01-02", strings.TrimSpace(value))
		return err == nil, nil
	}}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func Email(field, message string) Rule {
	return Matches(field, emailPattern, message)
}

func Length(field string, min, max int, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(_ context.Context, value string, _ bool) (bool, error) {
		n := len(value)
		return n >= min && n <= max, nil
	}}
}

// LookupFunc responde si un valor ya existe en el store.
type LookupFunc func(ctx context.Context, value string) (bool, error)

// Unique falla cuando el lookup dice que el valor ya está tomado.
// Es la única regla con efectos (consulta al store) y corre en la misma
// pasada que el resto, no como corte temprano.
func Unique(field, message string, lookup LookupFunc) Rule {
	return Rule{Field: field, Message: message, Check: func(ctx context.Context, value string, present bool) (bool, error) {
		if !present || strings.TrimSpace(value) == "" {
			return true, nil
		}
		taken, err := lookup(ctx, value)
		if err != nil {
			return false, err
		}
		return !taken, nil
	}}
}

// Optional hace que una regla pase cuando el campo no vino en el request.
// Es la asimetría create/update: el update valida solo lo presente.
func Optional(r Rule) Rule {
	inner := r.Check
	r.Check = func(ctx context.Context, value string, present bool) (bool, error) {
		if !present {
			return true, nil
		}
		return inner(ctx, value, present)
	}
	return r
}
