package app

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"aicompare/internal/domain"
	"aicompare/internal/infra/catalog"
	"aicompare/internal/infra/telemetry"
)

// Session owns one catalog for its lifetime. Nothing outlives it.
type Session struct {
	ID               string
	StartedAt        time.Time
	Store            *catalog.Store
	Priorities       domain.PriorityTable
	LeaderCategories []string
	TeamMetrics      domain.TeamMetricTable

	logger *zap.Logger
}

// NewSession starts a session over store.
func NewSession(store *catalog.Store, priorities domain.PriorityTable, cfg Config, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	categories := cfg.LeaderCategories
	if len(categories) == 0 {
		categories = domain.DefaultLeaderCategories()
	}
	teamMetrics := cfg.TeamMetrics
	if len(teamMetrics) == 0 {
		teamMetrics = domain.DefaultTeamMetrics()
	}
	id := uuid.NewString()
	s := &Session{
		ID:               id,
		StartedAt:        time.Now(),
		Store:            store,
		Priorities:       priorities.Clone(),
		LeaderCategories: append([]string(nil), categories...),
		TeamMetrics:      teamMetrics.Clone(),
		logger:           logger.With(telemetry.SessionIDField(id)),
	}
	s.logger.Info("session started",
		telemetry.EventField(telemetry.EventSessionStart),
		zap.Int("tools", len(store.ToolNames())),
		zap.Int("useCases", len(store.UseCaseNames())),
		zap.Int("priorities", len(s.Priorities)),
	)
	return s
}

// Logger returns the session-scoped logger.
func (s *Session) Logger() *zap.Logger {
	return s.logger
}

// Close ends the session; the catalog is discarded with it.
func (s *Session) Close() {
	s.logger.Info("session ended",
		telemetry.EventField(telemetry.EventSessionEnd),
		zap.Duration("duration", time.Since(s.StartedAt)),
	)
}
