package entity

import "github.com/shopspring/decimal"

// StockEntry es la forma genérica de stock que consume la página compartida,
// ya normalizada desde el esquema propio del backend (available_qty -> Quantity).
// Limit ausente se mantiene ausente, nunca se convierte en cero.
type StockEntry struct {
	ID            int64
	Name          string
	Quantity      decimal.Decimal
	Limit         *int64
	PurchasePrice *decimal.Decimal // siempre nil en este contexto: el backend no lo expone aquí
}

// LowStockItem es una violación de umbral de stock para una sucursal.
type LowStockItem struct {
	ID       int64
	Name     string
	Branch   string
	Quantity decimal.Decimal
	Limit    int64
}
