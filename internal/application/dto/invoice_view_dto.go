package dto

import "github.com/invorya/pos-views/internal/application/invoiceview"

// InvoiceViewResponse estado de la página de factura para el cliente.
// En fallo de carga, View queda vacío y Notifications lleva el único aviso.
type InvoiceViewResponse struct {
	State         string                     `json:"state"`
	View          *invoiceview.InvoiceView   `json:"view,omitempty"`
	BackURL       string                     `json:"back_url,omitempty"`
	Notifications []invoiceview.Notification `json:"notifications,omitempty"`
}
