package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-dashboard-api/internal/application/dto"
	"github.com/jhoicas/retail-dashboard-api/internal/application/usecase"
)

// BusinessHandler perfil del negocio y ajustes de la tienda.
type BusinessHandler struct {
	business *usecase.BusinessUseCase
	settings *usecase.SettingsUseCase
}

// NewBusinessHandler construye el handler.
func NewBusinessHandler(business *usecase.BusinessUseCase, settings *usecase.SettingsUseCase) *BusinessHandler {
	return &BusinessHandler{business: business, settings: settings}
}

// SaveBusiness godoc
// @Summary      Guardar perfil del negocio
// @Tags         business
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BusinessRequest  true  "Perfil"
// @Success      200   {object}  dto.APIResponse{data=dto.BusinessResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/business [post]
func (h *BusinessHandler) SaveBusiness(c *fiber.Ctx) error {
	var in dto.BusinessRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, err)
	}
	out, err := h.business.Save(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.APIResponse{Success: true, Message: "Business information saved", Data: out})
}

// GetBusiness godoc
// @Summary      Perfil del negocio
// @Tags         business
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.BusinessResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/business [get]
func (h *BusinessHandler) GetBusiness(c *fiber.Ctx) error {
	out, err := h.business.Get()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// GetSettings godoc
// @Summary      Ajustes de la tienda
// @Tags         settings
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.SettingsDTO}
// @Router       /api/settings [get]
func (h *BusinessHandler) GetSettings(c *fiber.Ctx) error {
	out, err := h.settings.Get()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// UpdateSettings godoc
// @Summary      Actualizar ajustes de la tienda
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SettingsDTO  true  "Ajustes completos"
// @Success      200   {object}  dto.APIResponse{data=dto.SettingsDTO}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings [put]
func (h *BusinessHandler) UpdateSettings(c *fiber.Ctx) error {
	var in dto.SettingsDTO
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, err)
	}
	out, err := h.settings.Update(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.APIResponse{Success: true, Message: "Settings saved", Data: out})
}
