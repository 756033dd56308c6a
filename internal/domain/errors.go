package domain

import "errors"

// Errores de dominio (sin dependencias externas). La capa HTTP los traduce a códigos de estado.
var (
	ErrValidation         = errors.New("entrada inválida")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrDuplicateUsername  = errors.New("el username ya está registrado")
	ErrDuplicateEmail     = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUnauthenticated    = errors.New("no autenticado")
)

// IsDuplicate indica si err es alguno de los conflictos de unicidad de usuario.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateUsername) || errors.Is(err, ErrDuplicateEmail)
}

// ValidationError lleva el mensaje a mostrar al cliente y satisface errors.Is(err, ErrValidation).
type ValidationError struct {
	Message string
}

// NewValidationError construye un error de validación con mensaje para el cliente.
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string { return e.Message }

// Is permite errors.Is(err, ErrValidation).
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
