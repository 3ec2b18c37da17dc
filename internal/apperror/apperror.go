package apperror

import (
	"errors"
	"net/http"
)

// Type clasifica un error de aplicación para que la capa HTTP
// lo traduzca a un status code sin inspeccionar mensajes.
type Type int

const (
	TypeUnknown Type = iota
	TypeBadRequest
	TypeAuth
	TypeNotFound
	TypeValidation
	TypeDatabase
	TypeInternal
)

// FieldError es una violación de validación sobre un campo concreto.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error es el error de aplicación que viaja desde services/validators
// hasta el normalizador de respuestas.
type Error struct {
	Type    Type
	Message string
	Fields  []FieldError // solo para TypeValidation
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// StatusCode mapea el tipo al status HTTP del contrato.
func (e *Error) StatusCode() int {
	switch e.Type {
	case TypeBadRequest:
		return http.StatusBadRequest
	case TypeAuth:
		return http.StatusUnauthorized
	case TypeNotFound:
		return http.StatusNotFound
	case TypeValidation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func New(t Type, message string, err error) *Error {
	return &Error{Type: t, Message: message, Err: err}
}

func NewBadRequest(message string) *Error {
	return &Error{Type: TypeBadRequest, Message: message}
}

func NewAuth(message string) *Error {
	return &Error{Type: TypeAuth, Message: message}
}

func NewNotFound(message string) *Error {
	return &Error{Type: TypeNotFound, Message: message}
}

func NewValidation(fields []FieldError) *Error {
	return &Error{Type: TypeValidation, Message: "validation failed", Fields: fields}
}

func NewDatabase(message string, err error) *Error {
	return &Error{Type: TypeDatabase, Message: message, Err: err}
}

func NewInternal(message string, err error) *Error {
	return &Error{Type: TypeInternal, Message: message, Err: err}
}

// From extrae el *Error de una cadena de errores, si existe.
func From(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func IsNotFound(err error) bool {
	ae, ok := From(err)
	return ok && ae.Type == TypeNotFound
}

func IsAuth(err error) bool {
	ae, ok := From(err)
	return ok && ae.Type == TypeAuth
}

func IsValidation(err error) bool {
	ae, ok := From(err)
	return ok && ae.Type == TypeValidation
}
