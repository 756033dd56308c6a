package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/jhoicas/Directorio-api/docs"
	"github.com/jhoicas/Directorio-api/internal/application/auth"
	"github.com/jhoicas/Directorio-api/internal/application/usecase"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
	"github.com/jhoicas/Directorio-api/internal/infrastructure/memory"
	"github.com/jhoicas/Directorio-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Directorio-api/internal/interfaces/http"
	"github.com/jhoicas/Directorio-api/pkg/config"
	"github.com/jhoicas/Directorio-api/pkg/logger"
)

// @title                       Employee Directory API
// @version                     1.0
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.App.StoreDriver).
		Msg("iniciando aplicación")
	if cfg.JWT.Secret == config.DevJWTSecret {
		log.Warn().Msg("JWT_SECRET no definido, usando secret de desarrollo")
	}

	ctx := context.Background()

	var (
		userRepo     repository.UserRepository
		employeeRepo repository.EmployeeRepository
	)
	switch cfg.App.StoreDriver {
	case config.StoreDriverMemory:
		userRepo = memory.NewUserRepository()
		employeeRepo = memory.NewEmployeeRepository()
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if cfg.DB.AutoMigrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
			log.Info().Msg("esquema de base de datos actualizado")
		}
		userRepo = postgres.NewUserRepository(pool)
		employeeRepo = postgres.NewEmployeeRepository(pool)
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret: cfg.JWT.Secret,
		TTL:    cfg.JWT.TTL(),
		Issuer: cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:        cfg.App.Name,
		FrontendURL: cfg.HTTP.FrontendURL,
	}, httpRouter.RouterDeps{
		AuthUC:     authUC,
		UserUC:     userUC,
		EmployeeUC: employeeUC,
		JWTSecret:  cfg.JWT.Secret,
		Env:        cfg.App.Env,
		Logger:     log,
	})

	// Swagger UI: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.SwaggerFile,
			Path:     "docs",
			Title:    docs.SwaggerInfo.Title,
		}))
	} else {
		log.Warn().Str("file", cfg.App.SwaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
