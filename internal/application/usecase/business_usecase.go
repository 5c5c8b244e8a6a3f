package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/retail-dashboard-api/internal/application/dto"
	"github.com/jhoicas/retail-dashboard-api/internal/application/ports"
	"github.com/jhoicas/retail-dashboard-api/internal/domain"
	"github.com/jhoicas/retail-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/retail-dashboard-api/internal/domain/repository"
)

// BusinessUseCase perfil del negocio.
type BusinessUseCase struct {
	repo repository.BusinessRepository
	bus  ports.Broadcaster
	now  func() time.Time
}

// NewBusinessUseCase construye el caso de uso.
func NewBusinessUseCase(repo repository.BusinessRepository, bus ports.Broadcaster, now func() time.Time) *BusinessUseCase {
	return &BusinessUseCase{repo: repo, bus: bus, now: now}
}

// Save reemplaza el perfil y publica businessUpdate.
func (uc *BusinessUseCase) Save(in dto.BusinessRequest) (*dto.BusinessResponse, error) {
	if strings.TrimSpace(in.BusinessName) == "" {
		return nil, fmt.Errorf("negocio: businessName requerido: %w", domain.ErrInvalidInput)
	}
	profile := &entity.BusinessProfile{
		BusinessName: strings.TrimSpace(in.BusinessName),
		BusinessType: in.BusinessType,
		Currency:     in.Currency,
		TimeZone:     in.TimeZone,
		Location:     in.Location,
		UpdatedAt:    uc.now(),
	}
	if err := uc.repo.Save(profile); err != nil {
		return nil, err
	}
	out := toBusinessResponse(profile)
	uc.bus.Broadcast(ports.EventBusinessUpdate, out)
	return out, nil
}

// Get perfil vigente; domain.ErrNotFound si aún no se registró.
func (uc *BusinessUseCase) Get() (*dto.BusinessResponse, error) {
	profile, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	return toBusinessResponse(profile), nil
}

func toBusinessResponse(p *entity.BusinessProfile) *dto.BusinessResponse {
	return &dto.BusinessResponse{
		BusinessName: p.BusinessName,
		BusinessType: p.BusinessType,
		Currency:     p.Currency,
		TimeZone:     p.TimeZone,
		Location:     p.Location,
		UpdatedAt:    p.UpdatedAt,
	}
}
