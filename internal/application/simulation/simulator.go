// Package simulation genera actividad de inventario sintética para que el panel
// se mueva sin ventas reales.
package simulation

import (
	"context"
	"errors"

	"github.com/jhoicas/retail-dashboard-api/internal/application/ports"
	"github.com/jhoicas/retail-dashboard-api/internal/application/usecase"
	"github.com/jhoicas/retail-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/retail-dashboard-api/internal/domain/repository"
	"github.com/jhoicas/retail-dashboard-api/pkg/logger"
)

const (
	stockDeltaMin  = -5 // variación de stock en [-5, +4]
	stockDeltaSpan = 10
	soldDeltaSpan  = 3 // ventas nuevas en [0, 2]
)

var errIdle = errors.New("sin registros que simular")

// RandomWalk EventSource que elige un registro al azar y mueve su stock y ventas.
type RandomWalk struct {
	rnd ports.RandomSource
}

var _ ports.EventSource = (*RandomWalk)(nil)

// NewRandomWalk construye la fuente.
func NewRandomWalk(rnd ports.RandomSource) *RandomWalk {
	return &RandomWalk{rnd: rnd}
}

// Next elige el siguiente cambio; false con la colección vacía.
func (w *RandomWalk) Next(records []entity.SalesRecord) (entity.StockChange, bool) {
	if len(records) == 0 {
		return entity.StockChange{}, false
	}
	return entity.StockChange{
		Index:         w.rnd.IntN(len(records)),
		StockDelta:    stockDeltaMin + w.rnd.IntN(stockDeltaSpan),
		QuantityDelta: w.rnd.IntN(soldDeltaSpan),
	}, true
}

// Simulator aplica un cambio por tick y publica las estadísticas resultantes.
type Simulator struct {
	source    ports.EventSource
	snapshots *usecase.SnapshotService
	log       *logger.Logger
}

// NewSimulator construye el simulador.
func NewSimulator(source ports.EventSource, snapshots *usecase.SnapshotService, log *logger.Logger) *Simulator {
	return &Simulator{source: source, snapshots: snapshots, log: log}
}

// Tick aplica el siguiente cambio. Devuelve false sin error si no había nada que cambiar.
func (s *Simulator) Tick(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	var changed entity.SalesRecord
	_, err := s.snapshots.Update(func(repo repository.SalesRepository) error {
		change, ok := s.source.Next(repo.All())
		if !ok {
			return errIdle
		}
		rec, err := repo.Apply(change)
		if err != nil {
			return err
		}
		changed = rec
		return nil
	})
	if errors.Is(err, errIdle) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	s.log.Info().
		Str("product", changed.ProductName).
		Int("stock", changed.Stock).
		Int("quantity", changed.Quantity).
		Msg("actualización simulada")
	return true, nil
}
