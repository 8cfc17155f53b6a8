package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Rentabilidad-api/internal/application/dto"
	"github.com/jhoicas/Rentabilidad-api/internal/application/usecase"
)

// ProfitabilityHandler evaluación de rentabilidad por canal y consolidada.
type ProfitabilityHandler struct {
	uc *usecase.ProfitabilityUseCase
}

// NewProfitabilityHandler construye el handler.
func NewProfitabilityHandler(uc *usecase.ProfitabilityUseCase) *ProfitabilityHandler {
	return &ProfitabilityHandler{uc: uc}
}

// EvaluateChannel godoc
// @Summary      Rentabilidad de un canal
// @Description  Un resultado inválido se responde 200 con is_valid=false, montos en cero y la lista de errores.
// @Tags         profitability
// @Security     Bearer
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        type  path  string  true  "Tipo de canal"
// @Success      200   {object}  dto.ChannelProfitabilityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/channels/{type}/profitability [get]
func (h *ProfitabilityHandler) EvaluateChannel(c *fiber.Ctx) error {
	companyID, ok := companyOr401(c)
	if !ok {
		return nil
	}
	out, err := h.uc.EvaluateChannel(c.UserContext(), companyID, c.Params("id"), c.Params("type"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// EvaluateProduct godoc
// @Summary      Rentabilidad consolidada del producto
// @Tags         profitability
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.PortfolioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/profitability [get]
func (h *ProfitabilityHandler) EvaluateProduct(c *fiber.Ctx) error {
	companyID, ok := companyOr401(c)
	if !ok {
		return nil
	}
	out, err := h.uc.EvaluateProduct(c.UserContext(), companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Preview godoc
// @Summary      Vista previa sin guardar
// @Description  Evalúa canales sin persistir nada; pensado para recalcular mientras el usuario edita.
// @Tags         profitability
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PreviewRequest  true  "Producto y canales"
// @Success      200   {object}  dto.PortfolioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/profitability/preview [post]
func (h *ProfitabilityHandler) Preview(c *fiber.Ctx) error {
	var in dto.PreviewRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Preview(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Reporte PDF de rentabilidad
// @Tags         profitability
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/profitability/report.pdf [get]
func (h *ProfitabilityHandler) Report(c *fiber.Ctx) error {
	companyID, ok := companyOr401(c)
	if !ok {
		return nil
	}
	id := c.Params("id")
	pdf, err := h.uc.Report(c.UserContext(), companyID, id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="rentabilidad-%s.pdf"`, id))
	return c.Send(pdf)
}

