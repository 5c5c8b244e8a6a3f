package dto

// SettingsDTO preferencias de la tienda (GET/PUT /api/settings).
type SettingsDTO struct {
	Business      BusinessSettingsDTO     `json:"business"`
	Notifications NotificationSettingsDTO `json:"notifications"`
	Inventory     InventorySettingsDTO    `json:"inventory"`
	System        SystemSettingsDTO       `json:"system"`
}

type BusinessSettingsDTO struct {
	StoreName string `json:"storeName"`
	OwnerName string `json:"ownerName"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	GSTNumber string `json:"gstNumber"`
	Currency  string `json:"currency"`
	Timezone  string `json:"timezone"`
}

type NotificationSettingsDTO struct {
	LowStockAlerts     bool `json:"lowStockAlerts"`
	DailyReports       bool `json:"dailyReports"`
	WeeklyReports      bool `json:"weeklyReports"`
	MonthlyReports     bool `json:"monthlyReports"`
	CriticalAlerts     bool `json:"criticalAlerts"`
	EmailNotifications bool `json:"emailNotifications"`
	SMSNotifications   bool `json:"smsNotifications"`
	PushNotifications  bool `json:"pushNotifications"`
}

type InventorySettingsDTO struct {
	AutoReorder      bool   `json:"autoReorder"`
	ReorderThreshold int    `json:"reorderThreshold"`
	LeadTime         int    `json:"leadTime"`
	StockValuation   string `json:"stockValuation"`
	TrackExpiry      bool   `json:"trackExpiry"`
	BarcodeScanning  bool   `json:"barcodeScanning"`
	MultiLocation    bool   `json:"multiLocation"`
	NegativeStock    bool   `json:"negativeStock"`
}

type SystemSettingsDTO struct {
	Language        string `json:"language"`
	DateFormat      string `json:"dateFormat"`
	NumberFormat    string `json:"numberFormat"`
	BackupFrequency string `json:"backupFrequency"`
	DataRetention   string `json:"dataRetention"`
	APIAccess       bool   `json:"apiAccess"`
	DebugMode       bool   `json:"debugMode"`
	MaintenanceMode bool   `json:"maintenanceMode"`
}
