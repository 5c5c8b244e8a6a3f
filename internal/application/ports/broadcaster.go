package ports

import "github.com/jhoicas/retail-dashboard-api/internal/domain/entity"

// Eventos emitidos por el canal en tiempo real.
const (
	EventDashboardUpdate   = "dashboardUpdate"
	EventInventoryUpdate   = "inventoryUpdate"
	EventBusinessUpdate    = "businessUpdate"
	EventProductAdded      = "productAdded"
	EventSalesDataUploaded = "salesDataUploaded"
	EventSettingsUpdate    = "settingsUpdate"
)

// Broadcaster difunde un evento a todos los suscriptores conectados.
// Es fire-and-forget: no bloquea ni informa fallos por suscriptor.
type Broadcaster interface {
	Broadcast(event string, payload any)
}

// EventSource produce el siguiente cambio simulado sobre la colección.
// Devuelve false si no hay nada que cambiar.
type EventSource interface {
	Next(records []entity.SalesRecord) (entity.StockChange, bool)
}

// Event evento con su carga, para publicar junto a una actualización.
type Event struct {
	Name    string
	Payload any
}
