package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics - счетчики Prometheus для HTTP-запросов, пайплайна обогащения и кэша
type Metrics struct {
	HTTPRequests *prometheus.CounterVec // labels: method, path, status

	ExtractionRequests *prometheus.CounterVec // labels: outcome={success,error,empty}
	GeocodeRequests    *prometheus.CounterVec // labels: outcome={success,error,empty}
	CacheLookups       *prometheus.CounterVec // labels: class={extraction,geocode,social,feed}, result={hit,miss}

	EventsPublished *prometheus.CounterVec // labels: event
}

// NewMetrics создает и регистрирует метрики в реестре Prometheus по умолчанию
func NewMetrics() *Metrics {
	return newMetrics(prometheus.DefaultRegisterer)
}

// NewMetricsForTesting создает метрики в изолированном реестре
func NewMetricsForTesting() *Metrics {
	return newMetrics(prometheus.NewRegistry())
}

func newMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "disaster_response",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests handled.",
		}, []string{"method", "path", "status"}),
		ExtractionRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "disaster_response",
			Name:      "extraction_requests_total",
			Help:      "Total location extraction calls to the language model.",
		}, []string{"outcome"}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "disaster_response",
			Name:      "geocode_requests_total",
			Help:      "Total forward geocoding calls.",
		}, []string{"outcome"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "disaster_response",
			Name:      "cache_lookups_total",
			Help:      "Cache lookups by key class.",
		}, []string{"class", "result"}),
		EventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "disaster_response",
			Name:      "events_published_total",
			Help:      "Change notifications published to the fan-out channel.",
		}, []string{"event"}),
	}

	reg.MustRegister(
		m.HTTPRequests,
		m.ExtractionRequests,
		m.GeocodeRequests,
		m.CacheLookups,
		m.EventsPublished,
	)
	return m
}
