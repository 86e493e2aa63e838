package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Pinturas-api/internal/application/auth"
	"github.com/jhoicas/Pinturas-api/internal/application/usecase"
	"github.com/jhoicas/Pinturas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Pinturas-api/internal/interfaces/http"
	"github.com/jhoicas/Pinturas-api/pkg/config"
	"github.com/jhoicas/Pinturas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones de esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	interactionRepo := postgres.NewInteractionRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)
	paintOrderRepo := postgres.NewPaintOrderRepository(pool)
	serviceRequestRepo := postgres.NewServiceRequestRepository(pool)
	paintTypeRepo := postgres.NewPaintTypeRepository(pool)
	machineRepo := postgres.NewMachineRepository(pool)

	// Admin inicial si la instalación está vacía
	if err := postgres.EnsureAdmin(userRepo, cfg.Auth, log); err != nil {
		log.Fatal().Err(err).Msg("bootstrap del admin inicial")
	}

	authUC := auth.NewAuthUseCase(userRepo, customerRepo, sessionRepo, auth.Config{
		JWTSecret: cfg.Auth.JWTSecret,
		Issuer:    cfg.Auth.Issuer,
		TokenTTL:  time.Duration(cfg.Auth.TokenTTLHours) * time.Hour,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo, interactionRepo)
	paintOrderUC := usecase.NewPaintOrderUseCase(paintOrderRepo, customerRepo, userRepo)
	serviceRequestUC := usecase.NewServiceRequestUseCase(serviceRequestRepo, customerRepo, userRepo)
	catalogUC := usecase.NewCatalogUseCase(paintTypeRepo, machineRepo)

	// Barrido periódico de sesiones expiradas (higiene: la validación las
	// ignora de todas formas)
	if cfg.Session.SweepMinutes > 0 {
		go func() {
			ticker := time.NewTicker(time.Duration(cfg.Session.SweepMinutes) * time.Minute)
			defer ticker.Stop()
			for range ticker.C {
				n, err := sessionRepo.DeleteExpired(time.Now())
				if err != nil {
					log.Error().Err(err).Msg("barrido de sesiones")
					continue
				}
				if n > 0 {
					log.Debug().Int64("borradas", n).Msg("sesiones expiradas limpiadas")
				}
			}
		}()
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Pinturas CRM API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		UserUC:           userUC,
		CustomerUC:       customerUC,
		PaintOrderUC:     paintOrderUC,
		ServiceRequestUC: serviceRequestUC,
		CatalogUC:        catalogUC,
	})

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
