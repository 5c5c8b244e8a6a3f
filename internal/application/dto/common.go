package dto

import "math"

// APIResponse sobre común de las respuestas exitosas: {success, message?, data}.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// OK envuelve data en una respuesta exitosa.
func OK(data any) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// ErrorResponse cuerpo de error HTTP: {success:false, message, error}.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Fail construye un ErrorResponse; cause puede ser nil.
func Fail(code, message string, cause error) ErrorResponse {
	out := ErrorResponse{Code: code, Message: message}
	if cause != nil {
		out.Error = cause.Error()
	}
	return out
}

// PageRequest paginación para las vistas filtradas.
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// DefaultPageSize tamaño de página de las vistas del panel.
const DefaultPageSize = 5

// MaxPageSize límite superior de Limit.
const MaxPageSize = 100

// DefaultPage aplica valores por defecto si Page/Limit son cero o inválidos.
func (p *PageRequest) DefaultPage() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	// Offset no debe desbordar int.
	if maxPage := math.MaxInt / p.Limit; p.Page > maxPage {
		p.Page = maxPage
	}
}

// Offset índice del primer elemento de la página.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}
