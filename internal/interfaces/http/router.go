package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dreyes/sedestock-api/internal/application/auth"
	"github.com/dreyes/sedestock-api/internal/application/draft"
	"github.com/dreyes/sedestock-api/internal/application/movement"
	"github.com/dreyes/sedestock-api/internal/application/usecase"
	"github.com/dreyes/sedestock-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SedeUC     *usecase.SedeUseCase
	ProductUC  *usecase.ProductUseCase
	StockUC    *usecase.StockUseCase
	ClientUC   *usecase.ClientUseCase
	SupplierUC *usecase.SupplierUseCase
	DraftSvc   *draft.Service
	SubmitUC   *movement.SubmitUseCase
	HistoryUC  *movement.HistoryUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
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

	// Sedes (protegido)
	sedes := protected.Group("/sedes")
	sedeHandler := NewSedeHandler(deps.SedeUC)
	sedes.Get("/", sedeHandler.List)
	sedes.Get("/:id", sedeHandler.GetByID)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	// Stock (protegido)
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Get("/exists", stockHandler.Exists)
	stock.Get("/low", stockHandler.LowStock)

	// Drafts de stock (protegido; solo roles con permiso de escritura)
	drafts := protected.Group("/drafts", RequireRole(entity.RoleAdmin, entity.RoleBodeguero))
	draftHandler := NewDraftHandler(deps.DraftSvc)
	drafts.Post("/", draftHandler.Create)
	drafts.Get("/:id", draftHandler.Get)
	drafts.Delete("/:id", draftHandler.Discard)
	drafts.Post("/:id/sedes", draftHandler.AddSede)
	drafts.Patch("/:id/lines/:key", draftHandler.UpdateLine)
	drafts.Delete("/:id/lines/:key", draftHandler.RemoveLine)
	drafts.Get("/:id/validate", draftHandler.Validate)
	drafts.Post("/:id/commit", draftHandler.Commit)

	// Novedades de stock (protegido)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.SubmitUC, deps.HistoryUC)
	movements.Get("/types", movementHandler.Types)
	movements.Post("/", movementHandler.Create)
	sedes.Get("/:sede_id/movements", movementHandler.ListBySede)

	// Contrapartes (protegido)
	counterpartyHandler := NewCounterpartyHandler(deps.ClientUC, deps.SupplierUC)
	clients := protected.Group("/clients")
	clients.Get("/", counterpartyHandler.ListClients)
	clients.Get("/:id", counterpartyHandler.GetClient)
	suppliers := protected.Group("/suppliers")
	suppliers.Get("/", counterpartyHandler.ListSuppliers)
	suppliers.Get("/:id", counterpartyHandler.GetSupplier)
}
