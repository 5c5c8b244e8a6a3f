package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/retail-dashboard-api/internal/application/ports"
	"github.com/jhoicas/retail-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/retail-dashboard-api/internal/domain/repository"
)

func TestSnapshotService_EstadoInicialSinPublicar(t *testing.T) {
	f := newFixture(true)

	snaps := f.snapshots.Current()

	assert.Equal(t, 25, snaps.Inventory.TotalProducts)
	assert.Equal(t, analytics.Compute(f.sales.All(), testNow), snaps)
	assert.Empty(t, f.bus.names())
}

func TestSnapshotService_UpdatePublicaEnOrden(t *testing.T) {
	f := newFixture(false)

	snaps, err := f.snapshots.Update(func(repo repository.SalesRepository) error {
		repo.Append(entity.SalesRecord{ProductName: "A", Quantity: 3, Stock: 60})
		return nil
	}, ports.Event{Name: ports.EventProductAdded, Payload: "A"})

	require.NoError(t, err)
	assert.Equal(t, []string{ports.EventProductAdded, ports.EventDashboardUpdate, ports.EventInventoryUpdate}, f.bus.names())
	assert.Equal(t, 1, snaps.Inventory.TotalProducts)
	assert.Equal(t, 1, snaps.Inventory.DeadStock)

	inv, ok := f.bus.last(ports.EventInventoryUpdate)
	require.True(t, ok)
	assert.Equal(t, snaps.Inventory, inv, "lo publicado es el mismo par que queda vigente")
	assert.Equal(t, snaps, f.snapshots.Current())
}

func TestSnapshotService_UpdateConErrorNoPublica(t *testing.T) {
	f := newFixture(true)
	before := f.snapshots.Current()
	boom := errors.New("boom")

	_, err := f.snapshots.Update(func(repository.SalesRepository) error { return boom })

	assert.ErrorIs(t, err, boom)
	assert.Empty(t, f.bus.names())
	assert.Equal(t, before, f.snapshots.Current())
}

func TestSnapshotService_WithCurrent(t *testing.T) {
	f := newFixture(true)

	var seen analytics.Snapshots
	f.snapshots.WithCurrent(func(s analytics.Snapshots) { seen = s })

	assert.Equal(t, f.snapshots.Current(), seen)
	assert.Empty(t, f.bus.names())
}
