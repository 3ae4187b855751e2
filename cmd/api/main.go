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

	"github.com/dcastano/inventario-taller/internal/application/auth"
	"github.com/dcastano/inventario-taller/internal/application/inventory"
	"github.com/dcastano/inventario-taller/internal/application/orders"
	"github.com/dcastano/inventario-taller/internal/infrastructure/docstore"
	"github.com/dcastano/inventario-taller/internal/infrastructure/excel"
	infrapdf "github.com/dcastano/inventario-taller/internal/infrastructure/pdf"
	"github.com/dcastano/inventario-taller/internal/infrastructure/postgres"
	httpRouter "github.com/dcastano/inventario-taller/internal/interfaces/http"
	"github.com/dcastano/inventario-taller/pkg/config"
	"github.com/dcastano/inventario-taller/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:       cfg.App.Env,
		Level:     "info",
		Component: "api",
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

	docs, err := docstore.NewLocalStore(cfg.Docs.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("almacén de documentos")
	}

	userRepo := postgres.NewUserRepository(pool)
	stockRepo := postgres.NewStockItemRepository(pool)
	movRepo := postgres.NewMovementRepository(pool)
	orderRepo := postgres.NewPurchaseOrderRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	sugRepo := postgres.NewReorderSuggestionRepository(pool)
	noteRepo := postgres.NewWorkshopNoteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	movementUC := inventory.NewMovementUseCase(txRunner)
	productionUC := inventory.NewProductionUseCase(txRunner, stockRepo)
	reconcileUC := inventory.NewReconcileUseCase(txRunner)
	stockQueries := inventory.NewStockQueryUseCase(stockRepo, movRepo, sugRepo, noteRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.TallerName)
	createOrderUC := orders.NewCreateOrderUseCase(txRunner, orderRepo, pdfGenerator, docs)
	paymentUC := orders.NewPaymentUseCase(txRunner)
	orderQueries := orders.NewOrderQueryUseCase(orderRepo, paymentRepo, docs)

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
		Title:    "Inventario Taller API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		MovementUC:   movementUC,
		ProductionUC: productionUC,
		ReconcileUC:  reconcileUC,
		StockQueries: stockQueries,
		CreateOrder:  createOrderUC,
		PaymentUC:    paymentUC,
		OrderQueries: orderQueries,
		Exporter:     excel.NewReorderExporter(),
		RunMigrations: func() error {
			return postgres.RunMigrations(cfg.DB.ConnectionString(), cfg.Docs.MigrationsDir)
		},
		SeedPassword: cfg.Docs.SeedPassword,
		JWTSecret:    cfg.JWT.Secret,
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
