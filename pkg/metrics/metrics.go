// Package metrics содержит Prometheus-метрики сервиса диспетчеризации.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics - счётчики ключевых операций ядра
type Metrics struct {
	registry *prometheus.Registry

	// Поток геолокации
	FixesAccepted prometheus.Counter
	FixesRejected prometheus.Counter

	// Жизненный цикл инцидентов
	IncidentsCreated    prometheus.Counter
	IncidentTransitions *prometheus.CounterVec
	Dispatches          prometheus.Counter
}

// New создает набор метрик на собственном реестре
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		FixesAccepted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "dispatch",
			Subsystem: "presence",
			Name:      "fixes_accepted_total",
			Help:      "Location fixes accepted by the update policy.",
		}),
		FixesRejected: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "dispatch",
			Subsystem: "presence",
			Name:      "fixes_rejected_total",
			Help:      "Location fixes rejected by the update policy.",
		}),
		IncidentsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "dispatch",
			Subsystem: "incidents",
			Name:      "created_total",
			Help:      "Incidents created.",
		}),
		IncidentTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dispatch",
			Subsystem: "incidents",
			Name:      "transitions_total",
			Help:      "Incident status transitions by target status.",
		}, []string{"target"}),
		Dispatches: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "dispatch",
			Subsystem: "incidents",
			Name:      "dispatches_total",
			Help:      "Subjects dispatched to incidents.",
		}),
	}
}

// Handler возвращает HTTP-обработчик для экспорта метрик
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
