package invoiceview_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/pos-views/internal/application/invoiceview"
	"github.com/invorya/pos-views/internal/domain"
	"github.com/invorya/pos-views/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeSales devuelve ventas precargadas por ID; fn, si está definido, toma el
// control total de la llamada (para provocar carreras de obsolescencia).
type fakeSales struct {
	sales map[int64]*entity.Sale
	err   error
	fn    func(ctx context.Context, id int64) (*entity.Sale, error)
}

func (f *fakeSales) GetCounterpartySale(ctx context.Context, id int64) (*entity.Sale, error) {
	if f.fn != nil {
		return f.fn(ctx, id)
	}
	if f.err != nil {
		return nil, f.err
	}
	sale, ok := f.sales[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return sale, nil
}

type fakeNotifier struct {
	mu    sync.Mutex
	items []invoiceview.Notification
}

func (f *fakeNotifier) Notify(n invoiceview.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, n)
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

type fakePrinter struct {
	doc     []byte
	err     error
	printed *invoiceview.InvoiceView
}

func (f *fakePrinter) PrintInvoice(_ context.Context, view *invoiceview.InvoiceView) ([]byte, error) {
	f.printed = view
	return f.doc, f.err
}

type fakeNavigator struct{ url string }

func (f fakeNavigator) BackURL() string { return f.url }

func strPtr(s string) *string { return &s }

func testSale() *entity.Sale {
	return &entity.Sale{
		ID:               42,
		CreatedByName:    strPtr("Iván"),
		CounterpartyName: strPtr("Romashka"),
		Items: []entity.SaleItem{
			{ID: 1, ProductID: 7, ProductName: strPtr("Tornillo"), Quantity: decimal.NewFromInt(2), Price: decimal.NewFromInt(100)},
			{ID: 2, ProductID: 9, Quantity: decimal.NewFromInt(3), Price: decimal.NewFromInt(50)},
		},
	}
}

func newSession(sales invoiceview.SaleFetcher, n invoiceview.Notifier, p invoiceview.Printer) *invoiceview.Session {
	return invoiceview.NewSession(invoiceview.Deps{
		Sales:     sales,
		Notifier:  n,
		Printer:   p,
		Navigator: fakeNavigator{url: "/sales"},
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Carga: Loading -> Loaded
// ──────────────────────────────────────────────────────────────────────────────

func TestLoad_ConstruyeVistaConTotalDerivado(t *testing.T) {
	sales := &fakeSales{sales: map[int64]*entity.Sale{42: testSale()}}
	notifier := &fakeNotifier{}
	sess := newSession(sales, notifier, nil)

	view, err := sess.Load(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, view)

	assert.Equal(t, invoiceview.StateLoaded, sess.State())
	assert.Equal(t, "350,00", view.Total, "2×100 + 3×50 = 350, formateado")
	assert.Equal(t, "Nº 42", view.Number)
	assert.Zero(t, notifier.count(), "una carga exitosa no emite avisos")

	require.Len(t, view.Lines, 2)
	assert.Equal(t, "Tornillo", view.Lines[0].Product)
	assert.Equal(t, "200,00", view.Lines[0].Amount)
	assert.Equal(t, "Producto 9", view.Lines[1].Product, "nombre ausente usa etiqueta genérica")
	assert.Equal(t, "150,00", view.Lines[1].Amount)
}

func TestLoad_CamposAusentesUsanPlaceholder(t *testing.T) {
	sale := &entity.Sale{ID: 7} // sin contraparte, sin autor, sin líneas
	sales := &fakeSales{sales: map[int64]*entity.Sale{7: sale}}
	sess := newSession(sales, &fakeNotifier{}, nil)

	view, err := sess.Load(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, "—", view.Counterparty)
	assert.Equal(t, "—", view.Company)
	assert.Equal(t, "—", view.Phone)
	assert.Equal(t, "—", view.CreatedBy)
	assert.Equal(t, "0,00", view.Total, "venta sin líneas totaliza cero")
	assert.Empty(t, view.Lines)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallo de carga: Loading -> Failed, exactamente un aviso, sin datos
// ──────────────────────────────────────────────────────────────────────────────

func TestLoad_FalloEmiteUnSoloAvisoYDegrada(t *testing.T) {
	sales := &fakeSales{err: domain.ErrUpstream}
	notifier := &fakeNotifier{}
	sess := newSession(sales, notifier, nil)

	view, err := sess.Load(context.Background(), 42)

	assert.Nil(t, view)
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Equal(t, invoiceview.StateFailed, sess.State())
	assert.Nil(t, sess.View(), "la página queda sin datos, no con datos viejos")

	require.Equal(t, 1, notifier.count(), "exactamente un aviso por fallo")
	assert.Equal(t, invoiceview.LevelError, notifier.items[0].Level)
	assert.Equal(t, invoiceview.MsgLoadFailed, notifier.items[0].Message)
	assert.NotEmpty(t, notifier.items[0].ID)
}

func TestLoad_VentaInexistenteTambienDegrada(t *testing.T) {
	sales := &fakeSales{sales: map[int64]*entity.Sale{}}
	notifier := &fakeNotifier{}
	sess := newSession(sales, notifier, nil)

	_, err := sess.Load(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, invoiceview.StateFailed, sess.State())
	assert.Equal(t, 1, notifier.count())
}

// ──────────────────────────────────────────────────────────────────────────────
// Guardia de obsolescencia: la respuesta de una navegación anterior se descarta
// ──────────────────────────────────────────────────────────────────────────────

func TestLoad_RespuestaObsoletaSeDescarta(t *testing.T) {
	firstInFlight := make(chan struct{})
	releaseFirst := make(chan struct{})
	sales := &fakeSales{fn: func(_ context.Context, id int64) (*entity.Sale, error) {
		if id == 1 {
			close(firstInFlight)
			<-releaseFirst // retiene la primera respuesta en vuelo
		}
		return &entity.Sale{ID: id}, nil
	}}
	notifier := &fakeNotifier{}
	sess := newSession(sales, notifier, nil)

	done := make(chan error, 1)
	go func() {
		_, err := sess.Load(context.Background(), 1)
		done <- err
	}()
	<-firstInFlight

	// Segunda navegación mientras la primera sigue en vuelo: el identificador
	// vigente pasa a ser 2 y la respuesta de 1 debe descartarse.
	view2, err2 := sess.Load(context.Background(), 2)
	require.NoError(t, err2)
	assert.Equal(t, int64(2), view2.SaleID)

	close(releaseFirst) // libera la primera respuesta, que ya es obsoleta
	err1 := <-done
	assert.ErrorIs(t, err1, domain.ErrStaleResponse)

	// La vista sigue mostrando la navegación vigente.
	assert.Equal(t, invoiceview.StateLoaded, sess.State())
	assert.Equal(t, int64(2), sess.View().SaleID)
	assert.Zero(t, notifier.count(), "una respuesta descartada no emite avisos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Imprimir y volver
// ──────────────────────────────────────────────────────────────────────────────

func TestPrint_GeneraDocumentoDeLaVistaCargada(t *testing.T) {
	sales := &fakeSales{sales: map[int64]*entity.Sale{42: testSale()}}
	printer := &fakePrinter{doc: []byte("%PDF-fake")}
	sess := newSession(sales, &fakeNotifier{}, printer)

	_, err := sess.Load(context.Background(), 42)
	require.NoError(t, err)

	doc, filename, err := sess.Print(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), doc)
	assert.Equal(t, "factura_42.pdf", filename)
	require.NotNil(t, printer.printed)
	assert.Equal(t, "350,00", printer.printed.Total)
}

func TestPrint_SinFacturaCargadaEsError(t *testing.T) {
	sess := newSession(&fakeSales{}, &fakeNotifier{}, &fakePrinter{})

	_, _, err := sess.Print(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPrint_FalloDelImpresorSePropaga(t *testing.T) {
	sales := &fakeSales{sales: map[int64]*entity.Sale{42: testSale()}}
	printer := &fakePrinter{err: errors.New("sin tinta")}
	sess := newSession(sales, &fakeNotifier{}, printer)

	_, err := sess.Load(context.Background(), 42)
	require.NoError(t, err)

	_, _, err = sess.Print(context.Background())
	assert.ErrorContains(t, err, "sin tinta")
}

func TestBack_DelegaEnElNavegador(t *testing.T) {
	sess := newSession(&fakeSales{}, &fakeNotifier{}, nil)
	assert.Equal(t, "/sales", sess.Back())
}
