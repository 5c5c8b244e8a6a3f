package dto

import "time"

// ── Pronóstico ────────────────────────────────────────────────────────────────

// ForecastDTO pronóstico de ingresos y demanda (GET /api/forecast).
type ForecastDTO struct {
	CurrentRevenue   int64               `json:"currentRevenue"`
	NextMonthRevenue int64               `json:"nextMonthRevenue"`
	ForecastedGrowth int64               `json:"forecastedGrowth"`
	ConfidenceLevel  int                 `json:"confidenceLevel"`
	DemandForecast   []DemandForecastDTO `json:"demandForecast"`
	GeneratedAt      time.Time           `json:"generatedAt"`
}

// Recomendaciones del pronóstico de demanda.
const (
	RecommendIncrease = "Increase Stock"
	RecommendMaintain = "Maintain Stock"
	RecommendRestock  = "Critical Restock"
)

// DemandForecastDTO demanda proyectada de un producto del top.
type DemandForecastDTO struct {
	Product         string `json:"product"`
	CurrentStock    int    `json:"currentStock"`
	CurrentDemand   int    `json:"currentDemand"`
	PredictedDemand int    `json:"predictedDemand"`
	Confidence      int    `json:"confidence"`
	Recommendation  string `json:"recommendation"`
}

// ── Analítica de ventas ──────────────────────────────────────────────────────

// SalesAnalyticsDTO resumen de ventas (GET /api/analytics/sales).
type SalesAnalyticsDTO struct {
	TotalRevenue      int64              `json:"totalRevenue"`
	TotalOrders       int                `json:"totalOrders"`
	AverageOrderValue int64              `json:"averageOrderValue"`
	SalesByCategory   []CategorySalesDTO `json:"salesByCategory"`
	TopProducts       []ProductSalesDTO  `json:"topProducts"`
}

// CategorySalesDTO ingresos por categoría; Percentage es entero 0-100.
type CategorySalesDTO struct {
	Category   string `json:"category"`
	Revenue    int64  `json:"revenue"`
	Percentage int    `json:"percentage"`
	Orders     int    `json:"orders"`
}

// ProductSalesDTO producto del top con crecimiento porcentual.
type ProductSalesDTO struct {
	Name    string `json:"name"`
	Revenue int64  `json:"revenue"`
	Units   int    `json:"units"`
	Growth  int    `json:"growth"`
}

// ── Alertas ──────────────────────────────────────────────────────────────────

// Tipos de alerta de inventario.
const (
	InventoryAlertCritical  = "critical"
	InventoryAlertLowStock  = "low-stock"
	InventoryAlertDeadStock = "dead-stock"
)

// AlertsQuery filtros de GET /api/alerts.
type AlertsQuery struct {
	PageRequest
	Type   string `query:"type"`
	Search string `query:"search"`
}

// InventoryAlertDTO alerta derivada del inventario. TypeClass es el valor filtrable.
type InventoryAlertDTO struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	TypeClass    string `json:"typeClass"`
	Product      string `json:"product"`
	Category     string `json:"category"`
	Stock        int    `json:"stock"`
	ReorderLevel int    `json:"reorderLevel"`
	Status       string `json:"status"`
	Description  string `json:"description"`
}

// AlertCounts contadores de la vista de alertas.
type AlertCounts struct {
	TotalAlerts    int `json:"totalAlerts"`
	LowStockAlerts int `json:"lowStockAlerts"`
	CriticalAlerts int `json:"criticalAlerts"`
	DeadStock      int `json:"deadStock"`
}

// AlertsPage página de la vista de alertas.
type AlertsPage struct {
	Alerts []InventoryAlertDTO `json:"alerts"`
	Counts AlertCounts         `json:"counts"`
	Page   PageResponse        `json:"page"`
}
