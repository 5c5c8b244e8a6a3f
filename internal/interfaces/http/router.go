package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-dashboard-api/internal/application/usecase"
	"github.com/jhoicas/retail-dashboard-api/internal/infrastructure/realtime"
	"github.com/jhoicas/retail-dashboard-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Snapshots  *usecase.SnapshotService
	InsightsUC *usecase.InsightsUseCase
	UploadUC   *usecase.UploadUseCase
	ProductUC  *usecase.ProductUseCase
	BusinessUC *usecase.BusinessUseCase
	SettingsUC *usecase.SettingsUseCase
	ReportUC   *usecase.ReportUseCase
	Hub        *realtime.Hub
	UploadDir  string
	Log        *logger.Logger
}

// Router registra las rutas de la API y el canal en tiempo real.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Panel
	dashboardHandler := NewDashboardHandler(deps.InsightsUC)
	api.Get("/dashboard", dashboardHandler.GetDashboard)
	api.Get("/sales", dashboardHandler.ListSales)

	// Inventario y alertas
	inventoryHandler := NewInventoryHandler(deps.InsightsUC)
	api.Get("/inventory", inventoryHandler.GetInventory)
	api.Get("/inventory/products", inventoryHandler.ListProducts)
	api.Get("/alerts", inventoryHandler.ListAlerts)

	// Pronóstico y análisis
	analyticsHandler := NewAnalyticsHandler(deps.InsightsUC)
	api.Get("/forecast", analyticsHandler.GetForecast)
	api.Get("/analytics/sales", analyticsHandler.GetSalesAnalytics)

	// Carga de archivos de ventas
	uploadHandler := NewUploadHandler(deps.UploadUC, deps.UploadDir, deps.Log.Named("upload"))
	api.Post("/upload-csv", uploadHandler.Upload)

	// Productos
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)

	// Negocio y ajustes
	businessHandler := NewBusinessHandler(deps.BusinessUC, deps.SettingsUC)
	api.Post("/business", businessHandler.SaveBusiness)
	api.Get("/business", businessHandler.GetBusiness)
	api.Get("/settings", businessHandler.GetSettings)
	api.Put("/settings", businessHandler.UpdateSettings)

	// Reportes
	reportHandler := NewReportHandler(deps.ReportUC)
	api.Get("/reports/inventory", reportHandler.InventoryPDF)

	// Tiempo real
	wsHandler := NewWSHandler(deps.Hub, deps.Snapshots, deps.Log.Named("ws"))
	app.Get("/ws", wsHandler.RequireUpgrade, wsHandler.Handler())
}
