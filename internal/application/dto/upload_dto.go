package dto

import "time"

// UploadResult cuerpo de respuesta de POST /api/upload-csv.
type UploadResult struct {
	RecordsProcessed int                `json:"recordsProcessed"`
	TotalRecords     int                `json:"totalRecords"`
	DashboardStats   *DashboardSnapshot `json:"dashboardStats,omitempty"`
	InventoryStats   *InventorySnapshot `json:"inventoryStats,omitempty"`
}

// SalesRecordDTO registro de venta tal como lo devuelve GET /api/sales.
type SalesRecordDTO struct {
	ID          string    `json:"id"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Category    string    `json:"category"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}
