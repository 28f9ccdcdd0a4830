package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/pos-views/internal/application/dto"
	"github.com/invorya/pos-views/internal/application/stockview"
)

// StockViewHandler sirve la página de listado de stock (protegido).
type StockViewHandler struct {
	uc *stockview.UseCase
}

// NewStockViewHandler construye el handler.
func NewStockViewHandler(uc *stockview.UseCase) *StockViewHandler {
	return &StockViewHandler{uc: uc}
}

// GetPage godoc
// @Summary      Página de stock del taller
// @Tags         views
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockPageResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/views/stock [get]
func (h *StockViewHandler) GetPage(c *fiber.Ctx) error {
	page, err := h.uc.Page(c.UserContext())
	if err != nil {
		// Los adaptadores propagan el fallo sin tragarlo: aquí se traduce a HTTP.
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: "no se pudo cargar el stock"})
	}
	return c.JSON(page)
}

// Export godoc
// @Summary      Exportar listado de stock (XLSX)
// @Tags         views
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    file
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/views/stock/export [get]
func (h *StockViewHandler) Export(c *fiber.Ctx) error {
	doc, filename, err := h.uc.ExportXLSX(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: "no se pudo exportar el stock"})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(doc)
}
