package usecase

import (
	"fmt"
	"os"

	"github.com/jhoicas/retail-dashboard-api/internal/application/dto"
	"github.com/jhoicas/retail-dashboard-api/internal/application/ingest"
	"github.com/jhoicas/retail-dashboard-api/internal/application/ports"
	"github.com/jhoicas/retail-dashboard-api/internal/domain/repository"
	"github.com/jhoicas/retail-dashboard-api/pkg/logger"
)

// UploadUseCase procesa un archivo de ventas y reemplaza la colección completa.
type UploadUseCase struct {
	parser    *ingest.Parser
	snapshots *SnapshotService
	log       *logger.Logger
}

// NewUploadUseCase construye el caso de uso.
func NewUploadUseCase(parser *ingest.Parser, snapshots *SnapshotService, log *logger.Logger) *UploadUseCase {
	return &UploadUseCase{parser: parser, snapshots: snapshots, log: log}
}

// ProcessFile lee el archivo temporal en path y lo elimina siempre al terminar.
// Si la lectura falla, la colección anterior queda intacta.
func (uc *UploadUseCase) ProcessFile(originalName, path string) (*dto.UploadResult, error) {
	defer func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			uc.log.Warn().Err(err).Str("path", path).Msg("no se pudo eliminar el archivo temporal")
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("upload: abrir archivo: %w", err)
	}
	defer f.Close()

	res, err := uc.parser.ParseFile(originalName, f)
	if err != nil {
		return nil, fmt.Errorf("upload: %s: %w", originalName, err)
	}

	processed := len(res.Records)
	summary := dto.UploadResult{RecordsProcessed: processed, TotalRecords: processed}
	snaps, err := uc.snapshots.Update(func(repo repository.SalesRepository) error {
		repo.Replace(res.Records)
		return nil
	}, ports.Event{Name: ports.EventSalesDataUploaded, Payload: summary})
	if err != nil {
		return nil, fmt.Errorf("upload: reemplazar registros: %w", err)
	}

	uc.log.Info().
		Str("file", originalName).
		Int("rows", res.Rows).
		Int("records", processed).
		Int("skipped", res.Skipped()).
		Msg("archivo de ventas procesado")

	summary.DashboardStats = &snaps.Dashboard
	summary.InventoryStats = &snaps.Inventory
	return &summary, nil
}
