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

	"github.com/dreyes/sedestock-api/internal/application/auth"
	"github.com/dreyes/sedestock-api/internal/application/draft"
	"github.com/dreyes/sedestock-api/internal/application/movement"
	"github.com/dreyes/sedestock-api/internal/application/usecase"
	"github.com/dreyes/sedestock-api/internal/domain/stockdraft"
	"github.com/dreyes/sedestock-api/internal/infrastructure/postgres"
	httpRouter "github.com/dreyes/sedestock-api/internal/interfaces/http"
	"github.com/dreyes/sedestock-api/pkg/config"
	"github.com/dreyes/sedestock-api/pkg/logger"
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

	sedeRepo := postgres.NewSedeRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	limits := stockdraft.Limits{Ceiling: cfg.Stock.Ceiling}

	sedeUC := usecase.NewSedeUseCase(sedeRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	stockUC := usecase.NewStockUseCase(stockRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)

	draftSvc := draft.NewService(draft.NewStore(), sedeRepo, productRepo, stockRepo, limits, log)
	submitUC := movement.NewSubmitUseCase(txRunner, productRepo, sedeRepo, clientRepo, supplierRepo, stockRepo, limits)
	historyUC := movement.NewHistoryUseCase(movementRepo)

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
		Title:    "SedeStock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SedeUC:     sedeUC,
		ProductUC:  productUC,
		StockUC:    stockUC,
		ClientUC:   clientUC,
		SupplierUC: supplierUC,
		DraftSvc:   draftSvc,
		SubmitUC:   submitUC,
		HistoryUC:  historyUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
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
