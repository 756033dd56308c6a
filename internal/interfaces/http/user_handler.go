package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Directorio-api/internal/application/usecase"
	"github.com/jhoicas/Directorio-api/pkg/logger"
)

// UserHandler expone el perfil del usuario autenticado.
type UserHandler struct {
	uc  *usecase.UserUseCase
	log *logger.Logger
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase, log *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, log: log}
}

// Me godoc
// @Summary      Usuario autenticado
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == 0 {
		return unauthorized(c, "UNAUTHENTICATED", MsgNoToken)
	}
	out, err := h.uc.Me(c.UserContext(), userID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
