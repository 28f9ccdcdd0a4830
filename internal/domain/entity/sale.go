package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta a contraparte tal como la entrega el backend POS.
// Es inmutable una vez cargada: las vistas la leen, nunca la modifican.
type Sale struct {
	ID                      int64
	CreatedAt               time.Time
	CreatedByName           *string
	CounterpartyName        *string
	CounterpartyCompanyName *string
	CounterpartyPhone       *string
	Items                   []SaleItem
}

// SaleItem es una línea de la venta: un producto con cantidad y precio unitario.
type SaleItem struct {
	ID          int64
	ProductID   int64
	ProductName *string
	Quantity    decimal.Decimal
	Price       decimal.Decimal
}

// Subtotal devuelve cantidad × precio. Valor derivado, nunca almacenado.
func (i SaleItem) Subtotal() decimal.Decimal {
	return i.Quantity.Mul(i.Price)
}

// Total suma los subtotales de todas las líneas; cero para una venta sin líneas.
// Se recalcula en cada llamada: es una función pura sobre Items.
func (s Sale) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}
