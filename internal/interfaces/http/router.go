package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger/internal/application/analytics"
	"github.com/jhoicas/stock-ledger/internal/application/auth"
	"github.com/jhoicas/stock-ledger/internal/application/ledger"
	"github.com/jhoicas/stock-ledger/internal/application/orders"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LedgerUC    *ledger.UseCase
	AnalyticsUC *analytics.UseCase
	AuthUC      *auth.UseCase
	OrdersUC    *orders.UseCase
	ActivityLog repository.ActivityLogRepository
	XLSXExport  orders.Exporter
	PDFExport   orders.Exporter
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público solo el login; register queda detrás del token)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	canView := RequireCapability(entity.CapView)
	canMutate := RequireCapability(entity.CapMutateLedger)
	canDelete := RequireCapability(entity.CapDeleteHistory)
	canManage := RequireCapability(entity.CapManageUsers)

	// Ledger (escritura: editor+; borrado de historial: admin+)
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	ledgerGroup := protected.Group("/ledger")
	ledgerGroup.Post("/add", canMutate, ledgerHandler.AddStock)
	ledgerGroup.Post("/sell", canMutate, ledgerHandler.SellStock)
	ledgerGroup.Delete("/history/add/:id", canDelete, ledgerHandler.DeleteAddEntry)
	ledgerGroup.Delete("/history/sell/:id", canDelete, ledgerHandler.DeleteSellEntry)

	// Analytics (lectura: cualquier rol)
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	protected.Get("/summary", canView, analyticsHandler.Summary)
	protected.Get("/summary/enhanced", canView, analyticsHandler.EnhancedSummary)
	protected.Get("/summary/range", canView, analyticsHandler.RangeSummary)
	protected.Get("/history/daily", canView, analyticsHandler.DailyHistory)
	protected.Get("/history/transactions", canView, analyticsHandler.TransactionHistory)
	protected.Get("/products", canView, analyticsHandler.ProductNames)

	// Users (gestión: admin+)
	protected.Post("/auth/register", canManage, authHandler.Register)
	users := protected.Group("/users")
	users.Get("/me", authHandler.Me)
	users.Put("/me", authHandler.UpdateMe)
	users.Get("/", canManage, authHandler.ListUsers)
	users.Delete("/:id", canManage, authHandler.DeleteUser)

	// Activity logs (admin+)
	activityHandler := NewActivityHandler(deps.ActivityLog)
	protected.Get("/activity-logs", canManage, activityHandler.List)

	// Orders (crear/listar: editor+; exports: admin+)
	orderHandler := NewOrderHandler(deps.OrdersUC, deps.XLSXExport, deps.PDFExport)
	ordersGroup := protected.Group("/orders")
	ordersGroup.Get("/export", canManage, orderHandler.ExportXLSX)
	ordersGroup.Get("/export/pdf", canManage, orderHandler.ExportPDF)
	ordersGroup.Post("/", canMutate, orderHandler.Create)
	ordersGroup.Get("/", canView, orderHandler.List)
}
