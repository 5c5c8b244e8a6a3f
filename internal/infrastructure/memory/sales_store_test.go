package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-dashboard-api/internal/domain"
	"github.com/jhoicas/retail-dashboard-api/internal/domain/entity"
)

func TestSalesStore_ReplaceCopiaLaEntrada(t *testing.T) {
	input := SampleSalesRecords(time.Now())
	s := NewSalesStore(input)

	input[0].Stock = 999
	all := s.All()
	all[1].Stock = 999

	assert.Equal(t, 25, s.Len())
	assert.Equal(t, 85, s.All()[0].Stock)
	assert.Equal(t, 180, s.All()[1].Stock)
}

func TestSalesStore_ApplyLimitaStockEnCero(t *testing.T) {
	s := NewSalesStore(SampleSalesRecords(time.Now()))

	got, err := s.Apply(entity.StockChange{Index: 7, StockDelta: -50, QuantityDelta: 2})

	require.NoError(t, err)
	assert.Equal(t, 0, got.Stock)
	assert.Equal(t, 27, got.Quantity)
	assert.Equal(t, got, s.All()[7])

	_, err = s.Apply(entity.StockChange{Index: 25})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSalesStore_AppendYReset(t *testing.T) {
	s := NewSalesStore(nil)
	s.Append(entity.SalesRecord{ProductName: "A", Quantity: 1})
	s.Append(entity.SalesRecord{ProductName: "B", Quantity: 1})

	require.Equal(t, 2, s.Len())
	assert.Equal(t, "B", s.All()[1].ProductName)

	s.Reset()
	assert.Zero(t, s.Len())
	assert.Empty(t, s.All())
}

func TestSettingsStore_ArrancaConValoresPorDefecto(t *testing.T) {
	s := NewSettingsStore()

	got, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSettings(), got)
}

func TestBusinessStore_GetSinPerfil(t *testing.T) {
	got, err := NewBusinessStore().Get()

	require.NoError(t, err)
	assert.Nil(t, got)
}
