package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-dashboard-api/internal/application/dto"
	"github.com/jhoicas/retail-dashboard-api/internal/application/usecase"
)

// DashboardHandler expone las estadísticas del panel y los registros crudos.
type DashboardHandler struct {
	uc *usecase.InsightsUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.InsightsUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetDashboard godoc
// @Summary      Estadísticas del panel
// @Description  Ventas totales, proyección, mejor/peor vendido, alertas, stock muerto y top 5.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.DashboardSnapshot}
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	return c.JSON(dto.OK(h.uc.Dashboard()))
}

// ListSales godoc
// @Summary      Registros de venta vigentes
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=[]dto.SalesRecordDTO}
// @Router       /api/sales [get]
func (h *DashboardHandler) ListSales(c *fiber.Ctx) error {
	return c.JSON(dto.OK(h.uc.Sales()))
}
