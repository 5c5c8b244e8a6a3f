package http

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/retail-dashboard-api/internal/application/dto"
	"github.com/jhoicas/retail-dashboard-api/internal/application/usecase"
	"github.com/jhoicas/retail-dashboard-api/internal/domain"
	"github.com/jhoicas/retail-dashboard-api/pkg/logger"
)

// uploadField nombre del campo multipart con el archivo de ventas.
const uploadField = "csvFile"

// UploadHandler recibe archivos de ventas.
type UploadHandler struct {
	uc  *usecase.UploadUseCase
	dir string
	log *logger.Logger
}

// NewUploadHandler construye el handler; dir es el directorio temporal de archivos.
func NewUploadHandler(uc *usecase.UploadUseCase, dir string, log *logger.Logger) *UploadHandler {
	return &UploadHandler{uc: uc, dir: dir, log: log}
}

// Upload godoc
// @Summary      Cargar archivo de ventas
// @Description  Reemplaza todos los registros con el contenido del archivo (.csv o .xlsx). Las filas inválidas se descartan.
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        csvFile  formData  file  true  "Archivo de ventas"
// @Success      200  {object}  dto.APIResponse{data=dto.UploadResult}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/upload-csv [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile(uploadField)
	if err != nil || fh == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("NO_FILE", "No file uploaded", nil))
	}

	path := filepath.Join(h.dir, uuid.NewString()+"-"+filepath.Base(fh.Filename))
	if err := c.SaveFile(fh, path); err != nil {
		h.log.Error().Err(err).Str("file", fh.Filename).Msg("guardar archivo subido")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", "Error processing CSV file", err))
	}

	out, err := h.uc.ProcessFile(fh.Filename, path)
	if err != nil {
		h.log.Error().Err(err).Str("file", fh.Filename).Msg("procesar archivo de ventas")
		status := fiber.StatusInternalServerError
		if errors.Is(err, domain.ErrUnsupportedFile) {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(dto.Fail("UPLOAD", "Error processing CSV file", err))
	}

	return c.JSON(dto.APIResponse{
		Success: true,
		Message: fmt.Sprintf("Successfully processed %d records", out.RecordsProcessed),
		Data:    out,
	})
}
