package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/Directorio-api/internal/application/dto"
)

// AppConfig opciones del servidor Fiber.
type AppConfig struct {
	Name        string
	FrontendURL string // origen permitido por CORS; vacío = sin CORS
}

// NewApp construye la aplicación Fiber con middlewares comunes y las rutas de la API.
func NewApp(cfg AppConfig, deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: jsonErrorHandler,
	})
	if deps.Logger != nil {
		app.Use(RequestLogger(deps.Logger))
	}
	app.Use(recover.New())
	if cfg.FrontendURL != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.FrontendURL,
			AllowCredentials: cfg.FrontendURL != "*",
			AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		}))
	}
	Router(app, deps)
	return app
}

// jsonErrorHandler mantiene el formato {message} también para errores de Fiber (404 de ruta, 405, panics).
func jsonErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := MsgInternal
	var fErr *fiber.Error
	if errors.As(err, &fErr) {
		status = fErr.Code
		message = fErr.Message
	}
	return c.Status(status).JSON(dto.ErrorResponse{Message: message})
}
