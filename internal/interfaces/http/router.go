package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finanzas-api/internal/application/auth"
	"github.com/jhoicas/finanzas-api/internal/application/ledger"
	"github.com/jhoicas/finanzas-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AccountUC   *usecase.AccountUseCase
	PocketUC    *usecase.PocketUseCase
	SubPocketUC *usecase.SubPocketUseCase
	MovementUC  *ledger.MovementUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Accounts (protegido)
	accounts := protected.Group("/accounts")
	accountHandler := NewAccountHandler(deps.AccountUC)
	accounts.Post("/", accountHandler.Create)
	accounts.Get("/", accountHandler.List)
	accounts.Get("/:id", accountHandler.GetByID)
	accounts.Put("/:id", accountHandler.Update)
	accounts.Delete("/:id", accountHandler.Delete)

	// Pockets (protegido; creación y listado anidados bajo la cuenta)
	pocketHandler := NewPocketHandler(deps.PocketUC)
	accounts.Post("/:id/pockets", pocketHandler.Create)
	accounts.Get("/:id/pockets", pocketHandler.ListByAccount)
	pockets := protected.Group("/pockets")
	pockets.Get("/:id", pocketHandler.GetByID)
	pockets.Put("/:id", pocketHandler.Update)
	pockets.Delete("/:id", pocketHandler.Delete)

	// SubPockets (protegido; creación y listado anidados bajo el bolsillo)
	subPocketHandler := NewSubPocketHandler(deps.SubPocketUC)
	pockets.Post("/:id/subpockets", subPocketHandler.Create)
	pockets.Get("/:id/subpockets", subPocketHandler.ListByPocket)
	subPockets := protected.Group("/subpockets")
	subPockets.Put("/:id", subPocketHandler.Update)
	subPockets.Delete("/:id", subPocketHandler.Delete)

	// Movements (protegido)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Post("/", movementHandler.Create)
	movements.Get("/", movementHandler.List)
	movements.Post("/restore-orphaned", movementHandler.RestoreOrphaned)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Put("/:id", movementHandler.Update)
	movements.Delete("/:id", movementHandler.Delete)
	movements.Post("/:id/pending", movementHandler.MarkPending)
	movements.Post("/:id/apply", movementHandler.ApplyPending)

	// Ledger (protegido)
	ledgerGroup := protected.Group("/ledger")
	ledgerGroup.Post("/recalculate", movementHandler.Recalculate)
}
