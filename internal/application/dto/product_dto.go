package dto

import "time"

// CreateProductRequest cuerpo de POST /api/products. Acepta productName o name.
type CreateProductRequest struct {
	ProductName string  `json:"productName"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Quantity    int     `json:"quantity"`
	Date        string  `json:"date"`
}

// DisplayName devuelve productName o, si falta, name.
func (r CreateProductRequest) DisplayName() string {
	if r.ProductName != "" {
		return r.ProductName
	}
	return r.Name
}

// ProductResponse producto del catálogo.
type ProductResponse struct {
	ID          string    `json:"id"`
	ProductName string    `json:"productName"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Quantity    int       `json:"quantity"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}
