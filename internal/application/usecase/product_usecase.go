package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-dashboard-api/internal/application/dto"
	"github.com/jhoicas/retail-dashboard-api/internal/application/ports"
	"github.com/jhoicas/retail-dashboard-api/internal/domain"
	"github.com/jhoicas/retail-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/retail-dashboard-api/internal/domain/repository"
)

const defaultCategory = "General"

// ProductUseCase alta y listado de productos manuales.
type ProductUseCase struct {
	repo      repository.ProductRepository
	snapshots *SnapshotService
	now       func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, snapshots *SnapshotService, now func() time.Time) *ProductUseCase {
	return &ProductUseCase{repo: repo, snapshots: snapshots, now: now}
}

// Create guarda el producto en el catálogo. Si declara unidades vendidas también
// entra en la colección de ventas. Publica productAdded y las estadísticas nuevas.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.DisplayName())
	if name == "" {
		return nil, fmt.Errorf("producto: nombre requerido: %w", domain.ErrInvalidInput)
	}
	if in.Price < 0 || in.Stock < 0 || in.Quantity < 0 {
		return nil, fmt.Errorf("producto: price, stock y quantity no pueden ser negativos: %w", domain.ErrInvalidInput)
	}

	now := uc.now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      name,
		Category:  strings.TrimSpace(in.Category),
		Price:     decimal.NewFromFloat(in.Price),
		Stock:     in.Stock,
		Quantity:  in.Quantity,
		Date:      strings.TrimSpace(in.Date),
		CreatedAt: now,
	}
	if product.Category == "" {
		product.Category = defaultCategory
	}
	if product.Date == "" {
		product.Date = now.Format("2006-01-02")
	}

	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	out := toProductResponse(product)

	_, err := uc.snapshots.Update(func(sales repository.SalesRepository) error {
		if product.Quantity > 0 {
			sales.Append(product.AsSalesRecord())
		}
		return nil
	}, ports.Event{Name: ports.EventProductAdded, Payload: out})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List productos del catálogo en orden de alta.
func (uc *ProductUseCase) List() ([]*dto.ProductResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		ProductName: p.Name,
		Category:    p.Category,
		Price:       p.Price.InexactFloat64(),
		Stock:       p.Stock,
		Quantity:    p.Quantity,
		Date:        p.Date,
		CreatedAt:   p.CreatedAt,
	}
}
