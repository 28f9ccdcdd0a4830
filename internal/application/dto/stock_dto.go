package dto

import "github.com/shopspring/decimal"

// BranchResponse sucursal en la forma genérica que consume la página de stock.
type BranchResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// StockEntryResponse entrada de stock normalizada.
// Limit y PurchasePrice ausentes se serializan como null, nunca como cero.
type StockEntryResponse struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	Quantity      decimal.Decimal  `json:"quantity"`
	Limit         *int64           `json:"limit"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
}

// LowStockItemResponse violación de umbral de stock.
type LowStockItemResponse struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Branch   string          `json:"branch"`
	Quantity decimal.Decimal `json:"quantity"`
	Limit    int64           `json:"limit"`
}

// StockPageResponse composición completa que consume la página compartida.
type StockPageResponse struct {
	Branches []BranchResponse       `json:"branches"`
	Stock    []StockEntryResponse   `json:"stock"`
	LowStock []LowStockItemResponse `json:"low_stock"`
}
