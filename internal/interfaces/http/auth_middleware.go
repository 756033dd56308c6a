package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Directorio-api/pkg/jwt"
	"github.com/jhoicas/Directorio-api/pkg/logger"
)

// LocalUserID clave en c.Locals para el ID del usuario autenticado.
const LocalUserID = "user_id"

// IdentityResolver confirma que el subject del token sigue existiendo en el Credential Store.
// Lo implementa *usecase.UserUseCase.
type IdentityResolver interface {
	Exists(ctx context.Context, userID int64) (bool, error)
}

// AuthMiddleware valida el Bearer Token y resuelve el usuario contra el store en cada petición
// (sin caché: un usuario borrado pierde acceso de inmediato).
//
//   - sin token            → 401 "No token provided"
//   - token expirado       → 401 "Token expired"
//   - firma/forma inválida → 401 "Invalid token"
//   - usuario inexistente  → 401 "User not found"
//   - error del store      → 500 (no se degrada a 401)
func AuthMiddleware(jwtSecret string, users IdentityResolver, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			log.Warn().Str("path", c.Path()).Str("reason", "missing").Msg("petición sin token")
			return unauthorized(c, "MISSING_TOKEN", MsgNoToken)
		}
		userID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			log.Warn().Err(err).Str("path", c.Path()).Msg("token rechazado")
			if errors.Is(err, jwt.ErrExpired) {
				return unauthorized(c, "TOKEN_EXPIRED", MsgTokenExpired)
			}
			return unauthorized(c, "INVALID_TOKEN", MsgInvalidToken)
		}
		exists, err := users.Exists(c.UserContext(), userID)
		if err != nil {
			return respondError(c, log, err)
		}
		if !exists {
			log.Warn().Int64("user_id", userID).Str("path", c.Path()).Msg("usuario del token no existe")
			return unauthorized(c, "USER_NOT_FOUND", MsgUserNotFound)
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// bearerToken extrae el token de "Bearer <token>". Cualquier otro formato cuenta como ausente.
func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// GetUserID devuelve el ID del usuario autenticado (0 si el middleware no corrió).
func GetUserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalUserID).(int64)
	return id
}
