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

	"github.com/jhoicas/finanzas-api/internal/application/auth"
	appledger "github.com/jhoicas/finanzas-api/internal/application/ledger"
	"github.com/jhoicas/finanzas-api/internal/application/usecase"
	"github.com/jhoicas/finanzas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/finanzas-api/internal/interfaces/http"
	"github.com/jhoicas/finanzas-api/pkg/config"
	"github.com/jhoicas/finanzas-api/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	pocketRepo := postgres.NewPocketRepository(pool)
	subPocketRepo := postgres.NewSubPocketRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	reminderRepo := postgres.NewReminderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	recalculator := appledger.NewRecalculator(movementRepo, accountRepo, pocketRepo, subPocketRepo)
	movementUC := appledger.NewMovementUseCase(
		movementRepo, accountRepo, pocketRepo, subPocketRepo,
		recalculator, reminderRepo, log,
	)
	accountUC := usecase.NewAccountUseCase(accountRepo, txRunner)
	pocketUC := usecase.NewPocketUseCase(pocketRepo, accountRepo, txRunner, recalculator, log)
	subPocketUC := usecase.NewSubPocketUseCase(subPocketRepo, pocketRepo, movementRepo, recalculator, log)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Finanzas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AccountUC:   accountUC,
		PocketUC:    pocketUC,
		SubPocketUC: subPocketUC,
		MovementUC:  movementUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
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
