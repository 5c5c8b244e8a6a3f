package repository

import "github.com/jhoicas/retail-dashboard-api/internal/domain/entity"

// BusinessRepository guarda el perfil del negocio. Get devuelve (nil, nil) si aún no existe.
type BusinessRepository interface {
	Save(profile *entity.BusinessProfile) error
	Get() (*entity.BusinessProfile, error)
}

// SettingsRepository guarda las preferencias de la tienda.
type SettingsRepository interface {
	Get() (entity.Settings, error)
	Save(settings entity.Settings) error
}
