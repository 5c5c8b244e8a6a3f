package dto

import "time"

// DashboardSnapshot estadísticas del panel principal.
type DashboardSnapshot struct {
	TotalSales          int64           `json:"totalSales"`
	ForecastedGrowth    int64           `json:"forecastedGrowth"`
	BestSellingProduct  *ProductSummary `json:"bestSellingProduct"`
	WorstSellingProduct *ProductSummary `json:"worstSellingProduct"`
	Alerts              []AlertDTO      `json:"alerts"`
	DeadStock           []DeadStockDTO  `json:"deadStock"`
	TopProducts         []TopProductDTO `json:"topProducts"`
	LastUpdated         time.Time       `json:"lastUpdated"`
}

// ProductSummary acumulado de un producto para mejor/peor vendido.
type ProductSummary struct {
	Name          string  `json:"name"`
	TotalQuantity int     `json:"totalQuantity"`
	TotalRevenue  float64 `json:"totalRevenue"`
	Category      string  `json:"category"`
}

// Tipos de alerta del panel.
const (
	AlertCritical = "critical"
	AlertSafe     = "safe"
)

// AlertDTO alerta de volumen de ventas. Units solo aplica a las críticas.
type AlertDTO struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Units    int    `json:"units,omitempty"`
}

// DeadStockDTO producto sin rotación.
type DeadStockDTO struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Value  int64  `json:"value"`
}

// TopProductDTO producto del ranking por demanda.
type TopProductDTO struct {
	Name    string `json:"name"`
	Demand  int    `json:"demand"`
	Revenue int64  `json:"revenue"`
}
