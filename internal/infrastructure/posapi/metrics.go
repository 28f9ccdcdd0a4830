package posapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Métricas del cliente, expuestas en /metrics del servidor HTTP.
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pos_views",
		Subsystem: "posapi",
		Name:      "requests_total",
		Help:      "Peticiones emitidas al backend POS por endpoint.",
	}, []string{"endpoint"})

	failuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pos_views",
		Subsystem: "posapi",
		Name:      "failures_total",
		Help:      "Peticiones al backend POS fallidas (red o estado no exitoso).",
	}, []string{"endpoint"})
)
