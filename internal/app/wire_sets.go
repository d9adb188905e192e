//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
)

var TelemetrySet = wire.NewSet(
	NewLogger,
	NewMetricsRegistry,
	NewMetrics,
)

var CatalogSet = wire.NewSet(
	NewLoader,
	NewSeed,
	NewStore,
	NewPriorities,
)

var AppSet = wire.NewSet(
	TelemetrySet,
	CatalogSet,
	NewSession,
	wire.Struct(new(ApplicationOptions), "*"),
	NewApplication,
)
