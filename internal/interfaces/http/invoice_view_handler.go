package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/pos-views/internal/application/dto"
	"github.com/invorya/pos-views/internal/application/invoiceview"
	"github.com/invorya/pos-views/internal/domain"
	"github.com/invorya/pos-views/internal/infrastructure/notify"
	"github.com/invorya/pos-views/pkg/format"
	"github.com/invorya/pos-views/pkg/logger"
)

// InvoiceViewHandler sirve la vista de factura imprimible (protegido).
// Cada petición monta su propia sesión de vista: no hay estado compartido.
type InvoiceViewHandler struct {
	sales   invoiceview.SaleFetcher
	printer invoiceview.Printer
	fmtr    *format.Formatter
	log     *logger.Logger
	backURL string
}

// InvoiceViewDeps dependencias del handler.
type InvoiceViewDeps struct {
	Sales     invoiceview.SaleFetcher
	Printer   invoiceview.Printer
	Formatter *format.Formatter
	Log       *logger.Logger
	BackURL   string
}

// NewInvoiceViewHandler construye el handler.
func NewInvoiceViewHandler(deps InvoiceViewDeps) *InvoiceViewHandler {
	return &InvoiceViewHandler{
		sales:   deps.Sales,
		printer: deps.Printer,
		fmtr:    deps.Formatter,
		log:     deps.Log,
		backURL: deps.BackURL,
	}
}

// staticNavigator resuelve la acción "volver" hacia un destino fijo de configuración.
type staticNavigator struct {
	url string
}

func (n staticNavigator) BackURL() string { return n.url }

func (h *InvoiceViewHandler) newSession(collector *notify.Collector) *invoiceview.Session {
	return invoiceview.NewSession(invoiceview.Deps{
		Sales:     h.sales,
		Notifier:  notify.Multi(collector, notify.NewLogNotifier(h.log)),
		Printer:   h.printer,
		Navigator: staticNavigator{url: h.backURL},
		Formatter: h.fmtr,
		Log:       h.log,
	})
}

// GetView godoc
// @Summary      Vista de factura imprimible
// @Tags         views
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {object}  dto.InvoiceViewResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/views/invoice/{id} [get]
func (h *InvoiceViewHandler) GetView(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}

	collector := notify.NewCollector()
	sess := h.newSession(collector)

	view, err := sess.Load(c.UserContext(), int64(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		// Fallo de carga: la página degrada a "sin datos" con su único aviso,
		// nunca a un error duro hacia el cliente.
		return c.JSON(dto.InvoiceViewResponse{
			State:         string(sess.State()),
			BackURL:       sess.Back(),
			Notifications: collector.Items(),
		})
	}

	return c.JSON(dto.InvoiceViewResponse{
		State:   string(invoiceview.StateLoaded),
		View:    view,
		BackURL: sess.Back(),
	})
}

// Print godoc
// @Summary      Imprimir factura (PDF)
// @Tags         views
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/views/invoice/{id}/print [get]
func (h *InvoiceViewHandler) Print(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}

	sess := h.newSession(notify.NewCollector())
	if _, err := sess.Load(c.UserContext(), int64(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: "no se pudo cargar la factura"})
	}

	doc, filename, err := sess.Print(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(doc)
}
