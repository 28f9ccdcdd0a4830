package invoiceview

import (
	"strconv"

	"github.com/invorya/pos-views/internal/domain/entity"
	"github.com/invorya/pos-views/pkg/format"
)

// Placeholder para campos de texto ausentes en el documento.
const placeholder = "—"

// InvoiceView es el modelo de presentación de la factura imprimible: todos los
// montos ya formateados y todos los campos opcionales ya resueltos a texto.
type InvoiceView struct {
	SaleID       int64         `json:"sale_id"`
	Number       string        `json:"number"`
	Date         string        `json:"date"`
	CreatedBy    string        `json:"created_by"`
	Counterparty string        `json:"counterparty"`
	Company      string        `json:"company"`
	Phone        string        `json:"phone"`
	Lines        []InvoiceLine `json:"lines"`
	Total        string        `json:"total"`
}

// InvoiceLine una línea del documento con sus importes formateados.
type InvoiceLine struct {
	ProductID int64  `json:"product_id"`
	Product   string `json:"product"`
	Quantity  string `json:"quantity"`
	Price     string `json:"price"`
	Amount    string `json:"amount"`
}

// buildView arma el modelo de presentación desde la entidad. El total y los
// importes por línea se derivan aquí, nunca vienen del backend.
func buildView(sale *entity.Sale, f *format.Formatter) *InvoiceView {
	lines := make([]InvoiceLine, 0, len(sale.Items))
	for _, item := range sale.Items {
		name := "Producto " + strconv.FormatInt(item.ProductID, 10) // fallback
		if item.ProductName != nil && *item.ProductName != "" {
			name = *item.ProductName
		}
		lines = append(lines, InvoiceLine{
			ProductID: item.ProductID,
			Product:   name,
			Quantity:  f.Quantity(item.Quantity),
			Price:     f.Amount(item.Price),
			Amount:    f.Amount(item.Subtotal()),
		})
	}

	date := ""
	if !sale.CreatedAt.IsZero() {
		date = sale.CreatedAt.Format("02/01/2006 15:04")
	}

	return &InvoiceView{
		SaleID:       sale.ID,
		Number:       "Nº " + strconv.FormatInt(sale.ID, 10),
		Date:         date,
		CreatedBy:    orPlaceholder(sale.CreatedByName),
		Counterparty: orPlaceholder(sale.CounterpartyName),
		Company:      orPlaceholder(sale.CounterpartyCompanyName),
		Phone:        orPlaceholder(sale.CounterpartyPhone),
		Lines:        lines,
		Total:        f.Amount(sale.Total()),
	}
}

func orPlaceholder(s *string) string {
	if s == nil || *s == "" {
		return placeholder
	}
	return *s
}
