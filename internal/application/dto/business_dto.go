package dto

import "time"

// BusinessRequest cuerpo de POST /api/business.
type BusinessRequest struct {
	BusinessName string `json:"businessName"`
	BusinessType string `json:"businessType"`
	Currency     string `json:"currency"`
	TimeZone     string `json:"timeZone"`
	Location     string `json:"location"`
}

// BusinessResponse perfil guardado.
type BusinessResponse struct {
	BusinessName string    `json:"businessName"`
	BusinessType string    `json:"businessType"`
	Currency     string    `json:"currency"`
	TimeZone     string    `json:"timeZone"`
	Location     string    `json:"location,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
