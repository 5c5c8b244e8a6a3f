package usecase_test

import (
	"sync"
	"time"

	"github.com/jhoicas/retail-dashboard-api/internal/application/ingest"
	"github.com/jhoicas/retail-dashboard-api/internal/application/usecase"
	"github.com/jhoicas/retail-dashboard-api/internal/infrastructure/memory"
	"github.com/jhoicas/retail-dashboard-api/pkg/logger"
)

var testNow = time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return testNow }

type published struct {
	Event   string
	Payload any
}

// recordingBus guarda los eventos publicados en orden.
type recordingBus struct {
	mu     sync.Mutex
	events []published
}

func (b *recordingBus) Broadcast(event string, payload any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, published{Event: event, Payload: payload})
}

func (b *recordingBus) names() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, 0, len(b.events))
	for _, e := range b.events {
		out = append(out, e.Event)
	}
	return out
}

func (b *recordingBus) last(event string) (any, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := len(b.events) - 1; i >= 0; i-- {
		if b.events[i].Event == event {
			return b.events[i].Payload, true
		}
	}
	return nil, false
}

type fixedRand int

func (f fixedRand) IntN(n int) int { return int(f) % n }

type fixture struct {
	sales     *memory.SalesStore
	bus       *recordingBus
	snapshots *usecase.SnapshotService
}

func newFixture(withSample bool) fixture {
	sales := memory.NewSalesStore(nil)
	if withSample {
		sales = memory.NewSalesStore(memory.SampleSalesRecords(testNow))
	}
	bus := &recordingBus{}
	return fixture{
		sales:     sales,
		bus:       bus,
		snapshots: usecase.NewSnapshotService(sales, bus, clock, logger.Nop()),
	}
}

func (f fixture) uploader() *usecase.UploadUseCase {
	return usecase.NewUploadUseCase(ingest.NewParser(fixedRand(0), clock), f.snapshots, logger.Nop())
}
