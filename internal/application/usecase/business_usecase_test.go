package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-dashboard-api/internal/application/dto"
	"github.com/jhoicas/retail-dashboard-api/internal/application/ports"
	"github.com/jhoicas/retail-dashboard-api/internal/application/usecase"
	"github.com/jhoicas/retail-dashboard-api/internal/domain"
	"github.com/jhoicas/retail-dashboard-api/internal/infrastructure/memory"
)

func TestBusinessUseCase_SaveYGet(t *testing.T) {
	bus := &recordingBus{}
	uc := usecase.NewBusinessUseCase(memory.NewBusinessStore(), bus, clock)

	_, err := uc.Get()
	assert.ErrorIs(t, err, domain.ErrNotFound)

	out, err := uc.Save(dto.BusinessRequest{BusinessName: " SmartShop ", BusinessType: "Retail Store", Currency: "INR"})
	require.NoError(t, err)
	assert.Equal(t, "SmartShop", out.BusinessName)

	got, err := uc.Get()
	require.NoError(t, err)
	assert.Equal(t, out, got)
	assert.Equal(t, []string{ports.EventBusinessUpdate}, bus.names())

	_, err = uc.Save(dto.BusinessRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsUseCase_Update(t *testing.T) {
	bus := &recordingBus{}
	uc := usecase.NewSettingsUseCase(memory.NewSettingsStore(), bus, clock)

	current, err := uc.Get()
	require.NoError(t, err)
	assert.Equal(t, "FIFO", current.Inventory.StockValuation)

	current.Inventory.LeadTime = 3
	current.Notifications.SMSNotifications = true
	updated, err := uc.Update(*current)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Inventory.LeadTime)
	assert.True(t, updated.Notifications.SMSNotifications)
	assert.Equal(t, []string{ports.EventSettingsUpdate}, bus.names())

	current.Inventory.StockValuation = "Random"
	_, err = uc.Update(*current)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
