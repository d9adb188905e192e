package app

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"aicompare/internal/domain"
	"aicompare/internal/infra/catalog"
	"aicompare/internal/infra/telemetry"
)

func NewMetricsRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	registry.MustRegister(prometheus.NewGoCollector())
	return registry
}

func NewMetrics(registry *prometheus.Registry) domain.Metrics {
	return telemetry.NewPrometheusMetrics(registry)
}

func NewLoader(logger *zap.Logger) *catalog.Loader {
	return catalog.NewLoader(logger)
}

// NewSeed loads the configured seed file, or the built-in dataset when
// no path is set.
func NewSeed(ctx context.Context, cfg Config, loader *catalog.Loader) (catalog.Seed, error) {
	if cfg.SeedPath == "" {
		return catalog.Seed{Snapshot: catalog.DefaultSeed()}, nil
	}
	return loader.Load(ctx, cfg.SeedPath)
}

func NewStore(seed catalog.Seed, logger *zap.Logger, metrics domain.Metrics) (*catalog.Store, error) {
	return catalog.New(seed.Snapshot, catalog.WithLogger(logger), catalog.WithMetrics(metrics))
}

// NewPriorities resolves the priority table. A table in the config file
// replaces the default outright; a table carried by the seed file is
// layered over the default.
func NewPriorities(cfg Config, seed catalog.Seed) domain.PriorityTable {
	if len(cfg.Priorities) > 0 {
		return cfg.Priorities.Clone()
	}
	table := domain.DefaultPriorityTable()
	for key, tool := range seed.Priorities {
		table[key] = tool
	}
	return table
}
