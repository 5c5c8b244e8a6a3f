package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-dashboard-api/internal/application/dto"
	"github.com/jhoicas/retail-dashboard-api/internal/application/usecase"
)

// InventoryHandler expone el inventario y sus vistas filtradas.
type InventoryHandler struct {
	uc *usecase.InsightsUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InsightsUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// GetInventory godoc
// @Summary      Estado del inventario
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.InventorySnapshot}
// @Router       /api/inventory [get]
func (h *InventoryHandler) GetInventory(c *fiber.Ctx) error {
	return c.JSON(dto.OK(h.uc.Inventory()))
}

// ListProducts godoc
// @Summary      Productos del inventario filtrados y paginados
// @Tags         inventory
// @Produce      json
// @Param        search    query  string  false  "Texto en nombre o categoría"
// @Param        category  query  string  false  "Categoría exacta"
// @Param        sort      query  string  false  "low-stock | high-stock | price-asc | price-desc | name"  default(low-stock)
// @Param        page      query  int     false  "Página"  default(1)
// @Param        limit     query  int     false  "Tamaño de página"  default(5)
// @Success      200  {object}  dto.APIResponse{data=dto.InventoryPage}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/products [get]
func (h *InventoryHandler) ListProducts(c *fiber.Ctx) error {
	q := dto.InventoryQuery{
		PageRequest: pageRequest(c),
		Search:      c.Query("search"),
		Category:    c.Query("category"),
		Sort:        c.Query("sort"),
	}
	out, err := h.uc.InventoryPage(q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// ListAlerts godoc
// @Summary      Alertas de inventario
// @Tags         inventory
// @Produce      json
// @Param        type    query  string  false  "critical | low-stock | dead-stock"
// @Param        search  query  string  false  "Texto en el nombre del producto"
// @Param        page    query  int     false  "Página"  default(1)
// @Param        limit   query  int     false  "Tamaño de página"  default(5)
// @Success      200  {object}  dto.APIResponse{data=dto.AlertsPage}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/alerts [get]
func (h *InventoryHandler) ListAlerts(c *fiber.Ctx) error {
	q := dto.AlertsQuery{
		PageRequest: pageRequest(c),
		Type:        c.Query("type"),
		Search:      c.Query("search"),
	}
	out, err := h.uc.Alerts(q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.OK(out))
}

func pageRequest(c *fiber.Ctx) dto.PageRequest {
	p := dto.PageRequest{Page: c.QueryInt("page", 1), Limit: c.QueryInt("limit", dto.DefaultPageSize)}
	p.DefaultPage()
	return p
}
