package memory

import (
	"sync"

	"github.com/jhoicas/retail-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/retail-dashboard-api/internal/domain/repository"
)

// BusinessStore guarda el último perfil de negocio recibido.
type BusinessStore struct {
	mu      sync.RWMutex
	profile *entity.BusinessProfile
}

var _ repository.BusinessRepository = (*BusinessStore)(nil)

func NewBusinessStore() *BusinessStore {
	return &BusinessStore{}
}

func (s *BusinessStore) Save(profile *entity.BusinessProfile) error {
	cp := *profile
	s.mu.Lock()
	s.profile = &cp
	s.mu.Unlock()
	return nil
}

func (s *BusinessStore) Get() (*entity.BusinessProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil, nil
	}
	cp := *s.profile
	return &cp, nil
}

// SettingsStore guarda las preferencias; arranca con DefaultSettings.
type SettingsStore struct {
	mu       sync.RWMutex
	settings entity.Settings
}

var _ repository.SettingsRepository = (*SettingsStore)(nil)

func NewSettingsStore() *SettingsStore {
	return &SettingsStore{settings: entity.DefaultSettings()}
}

func (s *SettingsStore) Get() (entity.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings, nil
}

func (s *SettingsStore) Save(settings entity.Settings) error {
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
	return nil
}
