package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/application/usecase"
	"github.com/jhoicas/Directorio-api/pkg/logger"
)

// EmployeeHandler maneja las peticiones HTTP para Employee (protegido).
type EmployeeHandler struct {
	uc  *usecase.EmployeeUseCase
	log *logger.Logger
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase, log *logger.Logger) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar empleados (más reciente primero)
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.EmployeeResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener empleado por ID
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del empleado"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	id, ok := employeeID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", MsgInvalidID)
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear empleado
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmployeeRequest  true  "name, company, city, phone_number"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", MsgInvalidBody)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	h.log.Info().Int64("employee_id", out.ID).Int64("user_id", GetUserID(c)).Msg("empleado creado")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Reemplazar empleado
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "ID del empleado"
// @Param        body  body  dto.EmployeeRequest  true  "name, company, city, phone_number"
// @Success      200   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, ok := employeeID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", MsgInvalidID)
	}
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", MsgInvalidBody)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar empleado
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del empleado"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, ok := employeeID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", MsgInvalidID)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, h.log, err)
	}
	h.log.Info().Int64("employee_id", id).Int64("user_id", GetUserID(c)).Msg("empleado eliminado")
	return c.JSON(dto.MessageResponse{Message: MsgEmployeeDeleted})
}

func employeeID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
