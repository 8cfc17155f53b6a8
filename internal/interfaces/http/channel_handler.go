package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Rentabilidad-api/internal/application/dto"
	"github.com/jhoicas/Rentabilidad-api/internal/application/usecase"
)

// ChannelHandler catálogo de canales y canales de un producto.
type ChannelHandler struct {
	uc *usecase.SalesChannelUseCase
}

// NewChannelHandler construye el handler.
func NewChannelHandler(uc *usecase.SalesChannelUseCase) *ChannelHandler {
	return &ChannelHandler{uc: uc}
}

// Catalog godoc
// @Summary      Catálogo de canales
// @Description  Tipos de canal agrupados por categoría, con costos por defecto y campos obligatorios.
// @Tags         channels
// @Produce      json
// @Success      200  {array}  dto.ChannelGroupResponse
// @Router       /api/channels [get]
func (h *ChannelHandler) Catalog(c *fiber.Ctx) error {
	return c.JSON(h.uc.Catalog())
}

// List godoc
// @Summary      Canales del producto
// @Tags         channels
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {array}   dto.SalesChannelResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/channels [get]
func (h *ChannelHandler) List(c *fiber.Ctx) error {
	companyID, ok := companyOr401(c)
	if !ok {
		return nil
	}
	out, err := h.uc.List(c.UserContext(), companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar canal del producto
// @Description  Edición parcial: sólo se aplican los campos enviados. clear_fields borra límites opcionales de comisión.
// @Tags         channels
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        type  path  string  true  "Tipo de canal (ej. amazon_fba)"
// @Param        body  body  dto.UpdateSalesChannelRequest  true  "Cambios"
// @Success      200   {object}  dto.SalesChannelResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/channels/{type} [patch]
func (h *ChannelHandler) Update(c *fiber.Ctx) error {
	companyID, ok := companyOr401(c)
	if !ok {
		return nil
	}
	var in dto.UpdateSalesChannelRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), companyID, c.Params("id"), c.Params("type"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
