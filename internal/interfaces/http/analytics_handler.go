package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-dashboard-api/internal/application/dto"
	"github.com/jhoicas/retail-dashboard-api/internal/application/usecase"
)

// AnalyticsHandler pronóstico y análisis de ventas.
type AnalyticsHandler struct {
	uc *usecase.InsightsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *usecase.InsightsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// GetForecast godoc
// @Summary      Pronóstico del próximo mes
// @Description  Ingreso proyectado y demanda por producto del top 5 con recomendación de reposición.
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.ForecastDTO}
// @Router       /api/forecast [get]
func (h *AnalyticsHandler) GetForecast(c *fiber.Ctx) error {
	return c.JSON(dto.OK(h.uc.Forecast()))
}

// GetSalesAnalytics godoc
// @Summary      Ventas por categoría y por producto
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.SalesAnalyticsDTO}
// @Router       /api/analytics/sales [get]
func (h *AnalyticsHandler) GetSalesAnalytics(c *fiber.Ctx) error {
	return c.JSON(dto.OK(h.uc.SalesAnalytics()))
}
