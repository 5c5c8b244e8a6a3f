package usecase

import (
	"fmt"
	"time"

	"github.com/jhoicas/retail-dashboard-api/internal/application/dto"
	"github.com/jhoicas/retail-dashboard-api/internal/application/ports"
	"github.com/jhoicas/retail-dashboard-api/internal/domain"
	"github.com/jhoicas/retail-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/retail-dashboard-api/internal/domain/repository"
)

var stockValuations = map[string]bool{"FIFO": true, "LIFO": true, "Weighted Average": true}

// SettingsUseCase preferencias de la tienda.
type SettingsUseCase struct {
	repo repository.SettingsRepository
	bus  ports.Broadcaster
	now  func() time.Time
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository, bus ports.Broadcaster, now func() time.Time) *SettingsUseCase {
	return &SettingsUseCase{repo: repo, bus: bus, now: now}
}

// Get preferencias vigentes.
func (uc *SettingsUseCase) Get() (*dto.SettingsDTO, error) {
	s, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	return toSettingsDTO(s), nil
}

// Update reemplaza todas las secciones y publica settingsUpdate.
func (uc *SettingsUseCase) Update(in dto.SettingsDTO) (*dto.SettingsDTO, error) {
	if in.Inventory.ReorderThreshold < 0 || in.Inventory.LeadTime < 0 {
		return nil, fmt.Errorf("ajustes: reorderThreshold y leadTime no pueden ser negativos: %w", domain.ErrInvalidInput)
	}
	if in.Inventory.StockValuation != "" && !stockValuations[in.Inventory.StockValuation] {
		return nil, fmt.Errorf("ajustes: stockValuation %q: %w", in.Inventory.StockValuation, domain.ErrInvalidInput)
	}
	s := fromSettingsDTO(in)
	if s.Inventory.StockValuation == "" {
		s.Inventory.StockValuation = entity.DefaultSettings().Inventory.StockValuation
	}
	s.UpdatedAt = uc.now()
	if err := uc.repo.Save(s); err != nil {
		return nil, err
	}
	out := toSettingsDTO(s)
	uc.bus.Broadcast(ports.EventSettingsUpdate, out)
	return out, nil
}

func toSettingsDTO(s entity.Settings) *dto.SettingsDTO {
	return &dto.SettingsDTO{
		Business: dto.BusinessSettingsDTO{
			StoreName: s.Business.StoreName,
			OwnerName: s.Business.OwnerName,
			Address:   s.Business.Address,
			Phone:     s.Business.Phone,
			Email:     s.Business.Email,
			GSTNumber: s.Business.GSTNumber,
			Currency:  s.Business.Currency,
			Timezone:  s.Business.Timezone,
		},
		Notifications: dto.NotificationSettingsDTO(s.Notifications),
		Inventory: dto.InventorySettingsDTO{
			AutoReorder:      s.Inventory.AutoReorder,
			ReorderThreshold: s.Inventory.ReorderThreshold,
			LeadTime:         s.Inventory.LeadTime,
			StockValuation:   s.Inventory.StockValuation,
			TrackExpiry:      s.Inventory.TrackExpiry,
			BarcodeScanning:  s.Inventory.BarcodeScanning,
			MultiLocation:    s.Inventory.MultiLocation,
			NegativeStock:    s.Inventory.NegativeStock,
		},
		System: dto.SystemSettingsDTO{
			Language:        s.System.Language,
			DateFormat:      s.System.DateFormat,
			NumberFormat:    s.System.NumberFormat,
			BackupFrequency: s.System.BackupFrequency,
			DataRetention:   s.System.DataRetention,
			APIAccess:       s.System.APIAccess,
			DebugMode:       s.System.DebugMode,
			MaintenanceMode: s.System.MaintenanceMode,
		},
	}
}

func fromSettingsDTO(in dto.SettingsDTO) entity.Settings {
	return entity.Settings{
		Business: entity.BusinessSettings{
			StoreName: in.Business.StoreName,
			OwnerName: in.Business.OwnerName,
			Address:   in.Business.Address,
			Phone:     in.Business.Phone,
			Email:     in.Business.Email,
			GSTNumber: in.Business.GSTNumber,
			Currency:  in.Business.Currency,
			Timezone:  in.Business.Timezone,
		},
		Notifications: entity.NotificationSettings(in.Notifications),
		Inventory: entity.InventorySettings{
			AutoReorder:      in.Inventory.AutoReorder,
			ReorderThreshold: in.Inventory.ReorderThreshold,
			LeadTime:         in.Inventory.LeadTime,
			StockValuation:   in.Inventory.StockValuation,
			TrackExpiry:      in.Inventory.TrackExpiry,
			BarcodeScanning:  in.Inventory.BarcodeScanning,
			MultiLocation:    in.Inventory.MultiLocation,
			NegativeStock:    in.Inventory.NegativeStock,
		},
		System: entity.SystemSettings{
			Language:        in.System.Language,
			DateFormat:      in.System.DateFormat,
			NumberFormat:    in.System.NumberFormat,
			BackupFrequency: in.System.BackupFrequency,
			DataRetention:   in.System.DataRetention,
			APIAccess:       in.System.APIAccess,
			DebugMode:       in.System.DebugMode,
			MaintenanceMode: in.System.MaintenanceMode,
		},
	}
}
