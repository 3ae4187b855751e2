package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dcastano/inventario-taller/internal/application/auth"
	"github.com/dcastano/inventario-taller/internal/application/inventory"
	"github.com/dcastano/inventario-taller/internal/application/orders"
	"github.com/dcastano/inventario-taller/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	MovementUC    *inventory.MovementUseCase
	ProductionUC  *inventory.ProductionUseCase
	ReconcileUC   *inventory.ReconcileUseCase
	StockQueries  *inventory.StockQueryUseCase
	CreateOrder   *orders.CreateOrderUseCase
	PaymentUC     *orders.PaymentUseCase
	OrderQueries  *orders.OrderQueryUseCase
	Exporter      reorderExporter
	RunMigrations func() error
	SeedPassword  string
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Setup (público, idempotente)
	setupHandler := NewSetupHandler(deps.RunMigrations, deps.AuthUC, deps.SeedPassword)
	setup := api.Group("/setup")
	setup.Post("/init-db", setupHandler.InitDB)
	setup.Post("/seed-users", setupHandler.SeedUsers)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	anyRole := RequireRole(entity.RoleAdmin, entity.RoleTaller, entity.RoleMaquila)

	// Libro de stock y nota del taller
	stockHandler := NewStockHandler(deps.StockQueries)
	protected.Get("/stock", anyRole, stockHandler.List)
	protected.Get("/stock/pendientes", RequireRole(entity.RoleMaquila, entity.RoleAdmin), stockHandler.ListInProduction)
	protected.Get("/stock/bajo-minimos", RequireRole(entity.RoleAdmin), stockHandler.ListBelowMinimum)
	protected.Get("/movimientos", RequireRole(entity.RoleAdmin), stockHandler.RecentMovements)
	protected.Get("/nota", anyRole, stockHandler.GetNote)
	protected.Put("/nota", RequireRole(entity.RoleTaller, entity.RoleAdmin), stockHandler.SaveNote)

	// Movimientos por lotes
	movementHandler := NewMovementHandler(deps.MovementUC)
	protected.Post("/salidas", RequireRole(entity.RoleTaller, entity.RoleAdmin), movementHandler.RegisterOutbound)
	protected.Post("/envios", RequireRole(entity.RoleMaquila, entity.RoleAdmin), movementHandler.RegisterInbound)

	// Administración
	adminHandler := NewAdminHandler(deps.ProductionUC, deps.ReconcileUC, deps.StockQueries, deps.Exporter)
	admin := protected.Group("/", RequireRole(entity.RoleAdmin))
	admin.Post("/produccion", adminHandler.SetProduction)
	admin.Post("/minimos/aumentar", adminHandler.RaiseMinimums)
	admin.Post("/sync", adminHandler.Sync)
	admin.Get("/faltantes", adminHandler.ReorderReport)
	admin.Get("/faltantes/xlsx", adminHandler.ExportReorderReport)

	// Órdenes de compra (admin)
	orderHandler := NewOrderHandler(deps.CreateOrder, deps.PaymentUC, deps.OrderQueries)
	ordenes := admin.Group("/ordenes")
	ordenes.Post("/", orderHandler.Create)
	ordenes.Get("/", orderHandler.List)
	ordenes.Get("/:id", orderHandler.GetByID)
	ordenes.Post("/:id/pagos", orderHandler.RecordPayment)
	ordenes.Get("/:id/pagos", orderHandler.ListPayments)
	ordenes.Get("/:id/pdf", orderHandler.DownloadPDF)
}
