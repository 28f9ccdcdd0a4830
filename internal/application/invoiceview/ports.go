package invoiceview

import (
	"context"

	"github.com/invorya/pos-views/internal/domain/entity"
)

// SaleFetcher obtiene la venta desde el backend POS.
type SaleFetcher interface {
	GetCounterpartySale(ctx context.Context, id int64) (*entity.Sale, error)
}

// Printer es la capacidad de impresión del entorno, inyectada para poder
// sustituirla en tests. La implementación de producción genera un PDF.
type Printer interface {
	PrintInvoice(ctx context.Context, view *InvoiceView) ([]byte, error)
}

// Navigator resuelve la acción "volver" de la vista.
type Navigator interface {
	BackURL() string
}

// Notification aviso transitorio dirigido al usuario.
type Notification struct {
	ID      string `json:"id"`
	Level   string `json:"level"`
	Message string `json:"message"`
}

// LevelError nivel de aviso para fallos de carga.
const LevelError = "error"

// Notifier entrega avisos al usuario sin bloquear la vista.
type Notifier interface {
	Notify(n Notification)
}
