package app

import (
	"context"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"aicompare/internal/domain"
	"aicompare/internal/infra/catalog"
	"aicompare/internal/infra/hashutil"
	"aicompare/internal/infra/telemetry"
)

// Application serves catalog queries and edits for one session.
type Application struct {
	config   Config
	logger   *zap.Logger
	registry *prometheus.Registry
	metrics  domain.Metrics
	loader   *catalog.Loader
	session  *Session
	now      func() time.Time
}

// ApplicationOptions captures dependencies and settings for Application.
type ApplicationOptions struct {
	Config   Config
	Logger   *zap.Logger
	Registry *prometheus.Registry
	Metrics  domain.Metrics
	Loader   *catalog.Loader
	Session  *Session
}

// NewApplication constructs the application around an open session.
func NewApplication(opts ApplicationOptions) *Application {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = domain.NoopMetrics{}
	}
	loader := opts.Loader
	if loader == nil {
		loader = catalog.NewLoader(logger)
	}
	if opts.Session != nil {
		logger = opts.Session.Logger()
	}
	return &Application{
		config:   opts.Config,
		logger:   logger,
		registry: opts.Registry,
		metrics:  metrics,
		loader:   loader,
		session:  opts.Session,
		now:      time.Now,
	}
}

// Recommendation is a resolved priority lookup.
type Recommendation struct {
	Key  string      `json:"key"`
	Name string      `json:"name"`
	Tool domain.Tool `json:"tool"`
}

func (a *Application) SessionID() string {
	return a.session.ID
}

func (a *Application) Config() Config {
	return a.config
}

func (a *Application) ToolNames() []string {
	return a.session.Store.ToolNames()
}

func (a *Application) Tool(name string) (domain.Tool, error) {
	return a.session.Store.GetTool(name)
}

// EditTool applies an edit-form submission to a tool.
func (a *Application) EditTool(name string, edit catalog.ToolEdit) (domain.Tool, error) {
	return catalog.ApplyToolEdit(a.session.Store, name, edit)
}

func (a *Application) UseCaseNames() []string {
	return a.session.Store.UseCaseNames()
}

func (a *Application) UseCase(name string) ([]string, error) {
	return a.session.Store.GetUseCase(name)
}

func (a *Application) SetUseCase(name string, tools []string) error {
	return a.session.Store.SetUseCase(name, tools)
}

func (a *Application) AddUseCase(name string, tools []string) error {
	return a.session.Store.AddUseCase(name, tools)
}

// PriorityKeys lists the keys of the session's priority table.
func (a *Application) PriorityKeys() []string {
	return a.session.Priorities.Keys()
}

// Recommend resolves a priority key to a tool record.
func (a *Application) Recommend(key string) (Recommendation, error) {
	tool, err := domain.RecommendFor(a.snapshot(), key, a.session.Priorities)
	a.metrics.ObserveQuery("recommend", err)
	if err != nil {
		return Recommendation{}, err
	}
	name, _ := a.session.Priorities.Lookup(key)
	return Recommendation{Key: key, Name: name, Tool: tool}, nil
}

// Leaders computes the category leaders board. Empty categories fall back
// to the configured leader categories; empty names select every tool.
func (a *Application) Leaders(categories []string, names []string) ([]domain.Leader, error) {
	if len(categories) == 0 {
		categories = a.session.LeaderCategories
	}
	if len(names) == 0 {
		names = a.ToolNames()
	}
	leaders, err := domain.CategoryLeaders(a.snapshot(), categories, names)
	a.metrics.ObserveQuery("leaders", err)
	return leaders, err
}

func (a *Application) Compare(nameA, nameB string) (domain.ToolPair, error) {
	pair, err := domain.SideBySide(a.snapshot(), nameA, nameB)
	a.metrics.ObserveQuery("compare", err)
	return pair, err
}

// Table builds the detailed comparison table; empty names select every tool.
func (a *Application) Table(names []string) ([]domain.ComparisonRow, error) {
	if len(names) == 0 {
		names = a.ToolNames()
	}
	rows, err := domain.ComparisonTable(a.snapshot(), names)
	a.metrics.ObserveQuery("table", err)
	return rows, err
}

// Matrix lays out scores for heatmaps and charts; empty names select every tool.
func (a *Application) Matrix(names []string, categories []string) (domain.ScoreMatrix, error) {
	if len(names) == 0 {
		names = a.ToolNames()
	}
	matrix, err := domain.BuildScoreMatrix(a.snapshot(), names, categories)
	a.metrics.ObserveQuery("matrix", err)
	return matrix, err
}

// TeamMetrics lays out the team performance ratings of names; empty names
// select every tool.
func (a *Application) TeamMetrics(names []string) (domain.ScoreMatrix, error) {
	if len(names) == 0 {
		names = a.ToolNames()
	}
	matrix, err := domain.BuildTeamMetricMatrix(a.snapshot(), a.session.TeamMetrics, names)
	a.metrics.ObserveQuery("team_metrics", err)
	return matrix, err
}

func (a *Application) Summary() domain.CatalogSummary {
	summary := domain.BuildCatalogSummary(a.snapshot())
	a.metrics.ObserveQuery("summary", nil)
	return summary
}

// Diff compares the session catalog against the seed file at path.
func (a *Application) Diff(ctx context.Context, path string) (domain.CatalogDiff, error) {
	other, err := a.loader.Load(ctx, path)
	if err != nil {
		a.metrics.ObserveQuery("diff", err)
		return domain.CatalogDiff{}, err
	}
	diff := domain.DiffSnapshots(a.snapshot(), other.Snapshot)
	a.metrics.ObserveQuery("diff", nil)
	return diff, nil
}

// Validate loads the seed file at path without touching the session and
// summarizes it.
func (a *Application) Validate(ctx context.Context, path string) (domain.CatalogSummary, error) {
	seed, err := a.loader.Load(ctx, path)
	if err != nil {
		return domain.CatalogSummary{}, err
	}
	summary := domain.BuildCatalogSummary(seed.Snapshot)
	a.logger.Info("seed validated",
		zap.String("path", path),
		zap.Int("tools", summary.TotalTools),
		zap.Int("useCases", summary.TotalUseCases),
	)
	return summary, nil
}

// Export writes the session catalog and returns the file path. Empty
// format and dir fall back to the configured values.
func (a *Application) Export(format string, dir string) (string, error) {
	resolved := a.config.Export.Format
	if format != "" || resolved == "" {
		parsed, err := catalog.ParseFormat(format)
		if err != nil {
			return "", err
		}
		resolved = parsed
	}
	if dir == "" {
		dir = a.config.Export.Dir
	}
	snapshot := a.snapshot()
	path, err := catalog.WriteExport(dir, snapshot, resolved, a.now())
	if err != nil {
		return "", err
	}
	a.logger.Info("catalog exported",
		telemetry.EventField(telemetry.EventExportWritten),
		zap.String("path", path),
		zap.String("format", string(resolved)),
		zap.String("etag", hashutil.SnapshotETag(a.logger, snapshot)),
	)
	return path, nil
}

// ETag returns a content hash of the session catalog.
func (a *Application) ETag() string {
	return hashutil.SnapshotETag(a.logger, a.snapshot())
}

// Snapshot returns a deep copy of the session catalog.
func (a *Application) Snapshot() domain.Snapshot {
	return a.snapshot()
}

func (a *Application) Schema() ([]byte, error) {
	return catalog.SnapshotSchemaJSON()
}

// WriteMetrics dumps the session's metrics in Prometheus text format.
func (a *Application) WriteMetrics(w io.Writer) error {
	if a.registry == nil {
		return nil
	}
	return telemetry.WriteText(w, a.registry)
}

// Close ends the session.
func (a *Application) Close() {
	if a.session != nil {
		a.session.Close()
	}
	_ = a.logger.Sync()
}

func (a *Application) snapshot() domain.Snapshot {
	return a.session.Store.ExportSnapshot()
}
