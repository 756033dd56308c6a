package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/pkg/logger"
)

// Mensajes visibles para el cliente.
const (
	MsgNoToken            = "No token provided"
	MsgTokenExpired       = "Token expired"
	MsgInvalidToken       = "Invalid token"
	MsgUserNotFound       = "User not found"
	MsgInvalidCredentials = "Invalid credentials"
	MsgUsernameExists     = "Username already exists"
	MsgEmailExists        = "Email already exists"
	MsgEmployeeNotFound   = "Employee not found"
	MsgEmployeeDeleted    = "Employee deleted successfully"
	MsgInvalidBody        = "Invalid request body"
	MsgInvalidID          = "Invalid employee id"
	MsgInternal           = "Internal server error"
)

// errorMapping status, código y mensaje para cada error de dominio.
type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

var errorMappings = []errorMapping{
	{domain.ErrDuplicateUsername, fiber.StatusBadRequest, "DUPLICATE_USERNAME", MsgUsernameExists},
	{domain.ErrDuplicateEmail, fiber.StatusBadRequest, "DUPLICATE_EMAIL", MsgEmailExists},
	{domain.ErrInvalidCredentials, fiber.StatusBadRequest, "INVALID_CREDENTIALS", MsgInvalidCredentials},
	{domain.ErrUnauthenticated, fiber.StatusUnauthorized, "UNAUTHENTICATED", MsgInvalidToken},
	{domain.ErrUserNotFound, fiber.StatusNotFound, "USER_NOT_FOUND", MsgUserNotFound},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND", MsgEmployeeNotFound},
}

// respondError traduce err a la respuesta HTTP. Los errores no mapeados se registran y
// responden 500 con un mensaje genérico.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: vErr.Message})
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: m.message})
		}
	}
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: MsgInternal})
}

func unauthorized(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: code, Message: message})
}

func badRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: message})
}
