package entity

import "time"

// BusinessProfile datos del negocio capturados en la configuración inicial.
type BusinessProfile struct {
	BusinessName string
	BusinessType string
	Currency     string
	TimeZone     string
	Location     string
	UpdatedAt    time.Time
}
