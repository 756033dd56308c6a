package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Directorio-api/internal/application/auth"
	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/application/usecase"
	"github.com/jhoicas/Directorio-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	EmployeeUC *usecase.EmployeeUseCase
	JWTSecret  string
	Env        string
	Logger     *logger.Logger
}

// Router registra las rutas de la API bajo /api.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Environment: deps.Env})
	})

	requireAuth := AuthMiddleware(deps.JWTSecret, deps.UserUC, log)

	// Users: register/login públicos, /me protegido
	users := api.Group("/users")
	authHandler := NewAuthHandler(deps.AuthUC, log)
	userHandler := NewUserHandler(deps.UserUC, log)
	users.Post("/register", authHandler.Register)
	users.Post("/login", authHandler.Login)
	users.Get("/me", requireAuth, userHandler.Me)

	// Employees (protegido completo)
	employees := api.Group("/employees", requireAuth)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC, log)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)
}
