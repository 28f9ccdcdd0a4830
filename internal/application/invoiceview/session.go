// Package invoiceview implementa la vista de factura imprimible: carga la venta
// por identificador, deriva el total, y expone las acciones de imprimir y volver.
//
// Máquina de estados de la página: Loading -> Loaded | Failed. Una sola carga
// por identificador; un cambio de identificador durante una carga en vuelo hace
// que la respuesta vieja se descarte (guardia de obsolescencia).
package invoiceview

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/invorya/pos-views/internal/domain"
	"github.com/invorya/pos-views/pkg/format"
	"github.com/invorya/pos-views/pkg/logger"
)

// State estado de la vista.
type State string

const (
	StateLoading State = "loading"
	StateLoaded  State = "loaded"
	StateFailed  State = "failed"
)

// MsgLoadFailed mensaje del aviso único que se emite cuando la carga falla.
const MsgLoadFailed = "no se pudo cargar la factura"

// Deps dependencias de la sesión.
type Deps struct {
	Sales     SaleFetcher
	Notifier  Notifier
	Printer   Printer
	Navigator Navigator
	Formatter *format.Formatter
	Log       *logger.Logger
}

// Session es una instancia montada de la vista de factura. Cada sesión posee
// en exclusiva su registro cargado; no hay estado compartido entre sesiones.
type Session struct {
	deps Deps

	current atomic.Int64 // identificador vigente; las respuestas ajenas se descartan

	mu    sync.RWMutex
	state State
	view  *InvoiceView
}

// NewSession construye una sesión en estado Loading.
func NewSession(deps Deps) *Session {
	if deps.Formatter == nil {
		deps.Formatter = format.New("ru")
	}
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	return &Session{deps: deps, state: StateLoading}
}

// Load obtiene la venta indicada y construye el modelo de presentación.
//
// La carga queda atada al identificador: si otro Load cambió el identificador
// vigente mientras esta petición estaba en vuelo, la respuesta se descarta con
// domain.ErrStaleResponse, sin transición de estado ni aviso al usuario.
//
// En fallo de carga se emite exactamente un aviso, el estado pasa a Failed y
// la vista queda sin datos; el error nunca escala como pánico.
func (s *Session) Load(ctx context.Context, saleID int64) (*InvoiceView, error) {
	s.current.Store(saleID)
	s.setState(StateLoading, nil)

	sale, err := s.deps.Sales.GetCounterpartySale(ctx, saleID)

	if s.current.Load() != saleID {
		return nil, domain.ErrStaleResponse
	}
	if err != nil {
		s.deps.Log.Error().Err(err).Int64("sale_id", saleID).Msg("carga de factura fallida")
		s.notify(Notification{
			ID:      uuid.NewString(),
			Level:   LevelError,
			Message: MsgLoadFailed,
		})
		s.setState(StateFailed, nil)
		return nil, fmt.Errorf("cargar venta %d: %w", saleID, err)
	}

	view := buildView(sale, s.deps.Formatter)
	s.setState(StateLoaded, view)
	return view, nil
}

// State devuelve el estado actual de la vista.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// View devuelve el modelo cargado, o nil si la vista no está en Loaded.
func (s *Session) View() *InvoiceView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// Print dispara la capacidad de impresión sobre la factura cargada y devuelve
// el documento con su nombre de archivo sugerido.
func (s *Session) Print(ctx context.Context) (doc []byte, filename string, err error) {
	s.mu.RLock()
	state, view := s.state, s.view
	s.mu.RUnlock()

	if state != StateLoaded || view == nil {
		return nil, "", fmt.Errorf("%w: no hay factura cargada para imprimir", domain.ErrInvalidInput)
	}
	doc, err = s.deps.Printer.PrintInvoice(ctx, view)
	if err != nil {
		return nil, "", fmt.Errorf("imprimir factura %d: %w", view.SaleID, err)
	}
	return doc, fmt.Sprintf("factura_%d.pdf", view.SaleID), nil
}

// Back resuelve la acción de volver de la vista.
func (s *Session) Back() string {
	return s.deps.Navigator.BackURL()
}

func (s *Session) setState(state State, view *InvoiceView) {
	s.mu.Lock()
	s.state = state
	s.view = view
	s.mu.Unlock()
}

func (s *Session) notify(n Notification) {
	if s.deps.Notifier != nil {
		s.deps.Notifier.Notify(n)
	}
}
