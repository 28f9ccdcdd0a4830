// Package notify implementaciones del puerto invoiceview.Notifier.
package notify

import (
	"sync"

	"github.com/invorya/pos-views/internal/application/invoiceview"
	"github.com/invorya/pos-views/pkg/logger"
)

// LogNotifier registra los avisos en el log estructurado.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el notificador de log.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	if log == nil {
		log = logger.Nop()
	}
	return &LogNotifier{log: log}
}

// Notify implementa invoiceview.Notifier.
func (n *LogNotifier) Notify(notification invoiceview.Notification) {
	n.log.Warn().
		Str("notification_id", notification.ID).
		Str("level", notification.Level).
		Msg(notification.Message)
}

// Collector acumula los avisos de una petición para devolverlos en la respuesta.
type Collector struct {
	mu    sync.Mutex
	items []invoiceview.Notification
}

// NewCollector construye un colector vacío.
func NewCollector() *Collector { return &Collector{} }

// Notify implementa invoiceview.Notifier.
func (c *Collector) Notify(n invoiceview.Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, n)
}

// Items devuelve los avisos acumulados.
func (c *Collector) Items() []invoiceview.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]invoiceview.Notification, len(c.items))
	copy(out, c.items)
	return out
}

// multi reparte cada aviso a varios notificadores.
type multi struct {
	targets []invoiceview.Notifier
}

// Multi combina notificadores; los nil se ignoran.
func Multi(targets ...invoiceview.Notifier) invoiceview.Notifier {
	clean := make([]invoiceview.Notifier, 0, len(targets))
	for _, t := range targets {
		if t != nil {
			clean = append(clean, t)
		}
	}
	return &multi{targets: clean}
}

func (m *multi) Notify(n invoiceview.Notification) {
	for _, t := range m.targets {
		t.Notify(n)
	}
}
