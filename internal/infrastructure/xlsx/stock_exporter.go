// Package xlsx exporta el listado de stock a un libro Excel.
package xlsx

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/invorya/pos-views/internal/domain/entity"
)

// StockExporter implementa stockview.Exporter con excelize.
type StockExporter struct{}

// NewStockExporter construye el exportador.
func NewStockExporter() *StockExporter { return &StockExporter{} }

// WriteStockListing escribe una hoja con una fila por entrada de stock.
// El límite ausente queda como celda vacía, nunca como cero.
func (e *StockExporter) WriteStockListing(branch *entity.Branch, entries []entity.StockEntry) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{"id", "producto", "cantidad", "limite", "sucursal"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: cabecera: %w", err)
	}

	branchName := ""
	if branch != nil {
		branchName = branch.Name
	}

	rowN := 2
	for _, entry := range entries {
		var limit interface{}
		if entry.Limit != nil {
			limit = *entry.Limit
		}
		rowValues := []interface{}{
			entry.ID,
			entry.Name,
			entry.Quantity.InexactFloat64(),
			limit,
			branchName,
		}
		cell := fmt.Sprintf("A%d", rowN)
		if err := f.SetSheetRow(sheet, cell, &rowValues); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", rowN, err)
		}
		rowN++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}
