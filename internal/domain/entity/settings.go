package entity

import "time"

// Settings preferencias de la tienda agrupadas por sección.
type Settings struct {
	Business      BusinessSettings
	Notifications NotificationSettings
	Inventory     InventorySettings
	System        SystemSettings
	UpdatedAt     time.Time
}

// BusinessSettings datos de contacto y fiscales de la tienda.
type BusinessSettings struct {
	StoreName string
	OwnerName string
	Address   string
	Phone     string
	Email     string
	GSTNumber string
	Currency  string
	Timezone  string
}

// NotificationSettings canales y reportes activos.
type NotificationSettings struct {
	LowStockAlerts     bool
	DailyReports       bool
	WeeklyReports      bool
	MonthlyReports     bool
	CriticalAlerts     bool
	EmailNotifications bool
	SMSNotifications   bool
	PushNotifications  bool
}

// InventorySettings políticas de inventario.
type InventorySettings struct {
	AutoReorder      bool
	ReorderThreshold int
	LeadTime         int    // días
	StockValuation   string // FIFO, LIFO, Weighted Average
	TrackExpiry      bool
	BarcodeScanning  bool
	MultiLocation    bool
	NegativeStock    bool
}

// SystemSettings preferencias de presentación y mantenimiento.
type SystemSettings struct {
	Language        string
	DateFormat      string
	NumberFormat    string
	BackupFrequency string
	DataRetention   string
	APIAccess       bool
	DebugMode       bool
	MaintenanceMode bool
}

// DefaultSettings valores con los que arranca una tienda nueva.
func DefaultSettings() Settings {
	return Settings{
		Business: BusinessSettings{
			StoreName: "Fresh Mart Grocery Store",
			OwnerName: "Rajesh Kumar",
			Address:   "123 Main Street, Mumbai, Maharashtra 400001",
			Phone:     "+91 98765 43210",
			Email:     "rajesh@freshmart.com",
			GSTNumber: "27ABCDE1234F1Z5",
			Currency:  "INR",
			Timezone:  "Asia/Kolkata",
		},
		Notifications: NotificationSettings{
			LowStockAlerts:     true,
			DailyReports:       true,
			MonthlyReports:     true,
			CriticalAlerts:     true,
			EmailNotifications: true,
			PushNotifications:  true,
		},
		Inventory: InventorySettings{
			ReorderThreshold: 20,
			LeadTime:         7,
			StockValuation:   "FIFO",
			TrackExpiry:      true,
		},
		System: SystemSettings{
			Language:        "English",
			DateFormat:      "DD/MM/YYYY",
			NumberFormat:    "Indian",
			BackupFrequency: "Daily",
			DataRetention:   "2 years",
		},
	}
}
