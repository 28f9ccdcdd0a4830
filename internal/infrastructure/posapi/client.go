// Package posapi implementa el cliente tipado del backend POS. Aquí vive la
// frontera de normalización: los campos opcionales del backend se decodifican
// como punteros con sus valores por defecto explícitos, de modo que una
// respuesta incompleta degrada la vista en lugar de romperla.
package posapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/invorya/pos-views/internal/domain"
	"github.com/invorya/pos-views/internal/domain/entity"
	"github.com/invorya/pos-views/pkg/logger"
)

// Config parámetros del cliente.
type Config struct {
	BaseURL string
	Token   string // Bearer token de servicio; vacío = sin header Authorization
	Timeout time.Duration
}

// Client cliente HTTP del backend POS.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
	log     *logger.Logger
}

// NewClient construye el cliente.
func NewClient(cfg Config, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		httpc:   &http.Client{Timeout: timeout},
		log:     log,
	}
}

// GetCounterpartySale obtiene la venta a contraparte por ID.
// GET /api/counterparty-sales/{id}
func (c *Client) GetCounterpartySale(ctx context.Context, id int64) (*entity.Sale, error) {
	var payload salePayload
	if err := c.get(ctx, "counterparty_sale", fmt.Sprintf("/api/counterparty-sales/%d", id), nil, &payload); err != nil {
		return nil, err
	}
	return payload.toEntity(), nil
}

// GetWorkshopBranch obtiene la sucursal fija del taller.
// GET /api/workshop/branch
func (c *Client) GetWorkshopBranch(ctx context.Context) (*entity.Branch, error) {
	var payload branchPayload
	if err := c.get(ctx, "workshop_branch", "/api/workshop/branch", nil, &payload); err != nil {
		return nil, err
	}
	return &entity.Branch{ID: payload.ID, Name: payload.Name}, nil
}

// GetWorkshopStock obtiene el stock del taller ya normalizado a la forma genérica.
// GET /api/workshop/stock
func (c *Client) GetWorkshopStock(ctx context.Context) ([]entity.StockEntry, error) {
	var payload []stockPayload
	if err := c.get(ctx, "workshop_stock", "/api/workshop/stock", nil, &payload); err != nil {
		return nil, err
	}
	entries := make([]entity.StockEntry, 0, len(payload))
	for _, p := range payload {
		entries = append(entries, p.toEntity())
	}
	return entries, nil
}

// GetLowStock obtiene las violaciones de umbral de stock filtradas por sucursal.
// GET /api/products/low-stock?branch_id={id}
func (c *Client) GetLowStock(ctx context.Context, branchID int64) ([]entity.LowStockItem, error) {
	query := url.Values{"branch_id": {strconv.FormatInt(branchID, 10)}}
	var payload []lowStockPayload
	if err := c.get(ctx, "low_stock", "/api/products/low-stock", query, &payload); err != nil {
		return nil, err
	}
	items := make([]entity.LowStockItem, 0, len(payload))
	for _, p := range payload {
		items = append(items, entity.LowStockItem{
			ID:       p.ID,
			Name:     p.Name,
			Branch:   p.Branch,
			Quantity: p.Quantity,
			Limit:    p.Limit,
		})
	}
	return items, nil
}

// get ejecuta un GET JSON contra el backend y decodifica la respuesta en out.
// 404 se traduce a domain.ErrNotFound; cualquier otro fallo a domain.ErrUpstream.
func (c *Client) get(ctx context.Context, endpoint, path string, query url.Values, out any) error {
	requestsTotal.WithLabelValues(endpoint).Inc()

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		failuresTotal.WithLabelValues(endpoint).Inc()
		return fmt.Errorf("posapi: crear petición: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		failuresTotal.WithLabelValues(endpoint).Inc()
		c.log.Error().Err(err).Str("endpoint", endpoint).Msg("petición al backend POS fallida")
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, path)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		failuresTotal.WithLabelValues(endpoint).Inc()
		c.log.Error().Int("status", resp.StatusCode).Str("endpoint", endpoint).Msg("estado inesperado del backend POS")
		return fmt.Errorf("%w: estado %d en %s", domain.ErrUpstream, resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		failuresTotal.WithLabelValues(endpoint).Inc()
		return fmt.Errorf("%w: respuesta ilegible: %v", domain.ErrUpstream, err)
	}
	return nil
}

// ── Payloads del backend ──────────────────────────────────────────────────────

type saleItemPayload struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	ProductName *string         `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

type salePayload struct {
	ID                      int64             `json:"id"`
	CreatedAt               apiTime           `json:"created_at"`
	CreatedByName           *string           `json:"created_by_name"`
	CounterpartyName        *string           `json:"counterparty_name"`
	CounterpartyCompanyName *string           `json:"counterparty_company_name"`
	CounterpartyPhone       *string           `json:"counterparty_phone"`
	Items                   []saleItemPayload `json:"items"`
}

func (p salePayload) toEntity() *entity.Sale {
	items := make([]entity.SaleItem, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, entity.SaleItem{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}
	return &entity.Sale{
		ID:                      p.ID,
		CreatedAt:               p.CreatedAt.Time,
		CreatedByName:           p.CreatedByName,
		CounterpartyName:        p.CounterpartyName,
		CounterpartyCompanyName: p.CounterpartyCompanyName,
		CounterpartyPhone:       p.CounterpartyPhone,
		Items:                   items,
	}
}

type branchPayload struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// stockPayload es el esquema propio del backend; toEntity hace el renombre
// available_qty -> Quantity y deja Limit ausente como ausente.
type stockPayload struct {
	ProductID    int64           `json:"product_id"`
	Name         string          `json:"name"`
	AvailableQty decimal.Decimal `json:"available_qty"`
	Limit        *int64          `json:"limit"`
}

func (p stockPayload) toEntity() entity.StockEntry {
	return entity.StockEntry{
		ID:            p.ProductID,
		Name:          p.Name,
		Quantity:      p.AvailableQty,
		Limit:         p.Limit,
		PurchasePrice: nil, // el backend no expone precio de compra en este contexto
	}
}

type lowStockPayload struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Branch   string          `json:"branch"`
	Quantity decimal.Decimal `json:"quantity"`
	Limit    int64           `json:"limit"`
}

// apiTime tolera los dos formatos de fecha que emite el backend:
// RFC 3339 con zona y el ISO 8601 sin zona de FastAPI.
type apiTime struct {
	time.Time
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

func (t *apiTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	// Una fecha ilegible no tumba la vista: queda en cero y se muestra vacía.
	t.Time = time.Time{}
	return nil
}
