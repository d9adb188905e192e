package telemetry

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"aicompare/internal/domain"
)

type PrometheusMetrics struct {
	mutations *prometheus.CounterVec
	queries   *prometheus.CounterVec
	tools     prometheus.Gauge
	useCases  prometheus.Gauge
}

func NewPrometheusMetrics(registerer prometheus.Registerer) *PrometheusMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &PrometheusMetrics{
		mutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aicompare_catalog_mutations_total",
				Help: "Total number of catalog mutation requests",
			},
			[]string{"op", "status"},
		),
		queries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aicompare_catalog_queries_total",
				Help: "Total number of catalog queries and derived views",
			},
			[]string{"view", "status"},
		),
		tools: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "aicompare_catalog_tools",
				Help: "Current number of tools in the catalog",
			},
		),
		useCases: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "aicompare_catalog_use_cases",
				Help: "Current number of use cases in the catalog",
			},
		),
	}
}

func (p *PrometheusMetrics) ObserveMutation(op string, err error) {
	p.mutations.WithLabelValues(op, string(domain.StatusFromError(err))).Inc()
}

func (p *PrometheusMetrics) ObserveQuery(view string, err error) {
	p.queries.WithLabelValues(view, string(domain.StatusFromError(err))).Inc()
}

func (p *PrometheusMetrics) SetCatalogSize(tools int, useCases int) {
	p.tools.Set(float64(tools))
	p.useCases.Set(float64(useCases))
}

var _ domain.Metrics = (*PrometheusMetrics)(nil)

// WriteText writes every gathered metric family in the text exposition format.
func WriteText(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	encoder := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range families {
		if err := encoder.Encode(family); err != nil {
			return fmt.Errorf("encode metric %s: %w", family.GetName(), err)
		}
	}
	return nil
}
