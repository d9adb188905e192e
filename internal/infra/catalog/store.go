package catalog

import (
	"strings"

	"go.uber.org/zap"

	"aicompare/internal/domain"
	"aicompare/internal/infra/catalog/validator"
	"aicompare/internal/infra/telemetry"
)

// Store is the in-memory tool catalog owned by a single session.
// Reads return copies and never mutate; writes validate the whole request
// before touching any state. A Store is not safe for concurrent use.
type Store struct {
	tools    map[string]domain.Tool
	useCases map[string][]string
	logger   *zap.Logger
	metrics  domain.Metrics
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger.Named("catalog")
		}
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(metrics domain.Metrics) Option {
	return func(s *Store) {
		if metrics != nil {
			s.metrics = metrics
		}
	}
}

// New builds a store from seed after validating every tool and use case.
func New(seed domain.Snapshot, opts ...Option) (*Store, error) {
	if err := ValidateSnapshot(seed); err != nil {
		return nil, err
	}

	s := &Store{
		logger:  zap.NewNop(),
		metrics: domain.NoopMetrics{},
	}
	for _, opt := range opts {
		opt(s)
	}
	copied := seed.Clone()
	for name, tool := range copied.Tools {
		copied.Tools[name] = withEmptyLists(tool)
	}
	s.tools = copied.Tools
	s.useCases = copied.UseCases
	s.metrics.SetCatalogSize(len(s.tools), len(s.useCases))
	s.logger.Debug("catalog initialized",
		telemetry.EventField(telemetry.EventCatalogInit),
		zap.Int("tools", len(s.tools)),
		zap.Int("useCases", len(s.useCases)),
	)
	return s, nil
}

// ValidateSnapshot checks a full dataset: every tool, then every use case
// against the dataset's own tools.
func ValidateSnapshot(snapshot domain.Snapshot) error {
	const op = "validate catalog"
	var problems []domain.Problem
	for _, name := range domain.ToolNames(snapshot) {
		for _, p := range validator.ValidateTool(name, snapshot.Tools[name]) {
			p.Detail = "tools[" + name + "]: " + p.Detail
			problems = append(problems, p)
		}
	}
	var unknown []string
	for _, name := range domain.UseCaseNames(snapshot) {
		useCaseProblems, missing := validator.ValidateUseCase(name, snapshot.UseCases[name], snapshot.Tools)
		for _, p := range useCaseProblems {
			p.Detail = "useCases[" + name + "]: " + p.Detail
			problems = append(problems, p)
		}
		for _, tool := range missing {
			unknown = append(unknown, name+": "+tool)
		}
	}
	if len(unknown) > 0 {
		problems = append(problems, domain.Problem{Err: domain.ErrUnknownTools, Detail: "unknown tools: " + strings.Join(unknown, ", ")})
	}
	if len(problems) > 0 {
		return domain.Invalid(op, domain.ErrInvalidCatalog, problems...)
	}
	return nil
}

// GetTool returns a copy of the named tool.
func (s *Store) GetTool(name string) (domain.Tool, error) {
	tool, ok := s.tools[name]
	if !ok {
		err := domain.NotFound("get tool", domain.ErrToolNotFound, name)
		s.metrics.ObserveQuery("get_tool", err)
		return domain.Tool{}, err
	}
	s.metrics.ObserveQuery("get_tool", nil)
	return tool.Clone(), nil
}

// SetTool inserts or replaces a tool. Scores must be within [0,10] and
// the paid price must not be negative.
func (s *Store) SetTool(name string, tool domain.Tool) error {
	const op = "set tool"
	if problems := validator.ValidateTool(name, tool); len(problems) > 0 {
		err := domain.Invalid(op, domain.ErrInvalidTool, problems...).WithMeta("tool", name)
		s.reject(op, err, telemetry.ToolField(name))
		return err
	}
	_, existed := s.tools[name]
	s.tools[name] = withEmptyLists(tool.Clone())
	s.accept(op, telemetry.ToolField(name), zap.Bool("replaced", existed))
	return nil
}

// GetUseCase returns a copy of the named use case's ranked tool list.
func (s *Store) GetUseCase(name string) ([]string, error) {
	tools, ok := s.useCases[name]
	if !ok {
		err := domain.NotFound("get use case", domain.ErrUseCaseNotFound, name)
		s.metrics.ObserveQuery("get_use_case", err)
		return nil, err
	}
	s.metrics.ObserveQuery("get_use_case", nil)
	return append([]string(nil), tools...), nil
}

// SetUseCase inserts or replaces a use case. Every referenced tool must exist.
func (s *Store) SetUseCase(name string, tools []string) error {
	const op = "set use case"
	if err := s.validateUseCase(op, name, tools); err != nil {
		s.reject(op, err, telemetry.UseCaseField(name))
		return err
	}
	_, existed := s.useCases[name]
	s.useCases[name] = append([]string(nil), tools...)
	s.accept(op, telemetry.UseCaseField(name), zap.Bool("replaced", existed))
	return nil
}

// AddUseCase inserts a new use case and fails if the name is taken.
func (s *Store) AddUseCase(name string, tools []string) error {
	const op = "add use case"
	if _, exists := s.useCases[name]; exists {
		err := domain.Conflict(op, domain.ErrUseCaseExists, name)
		s.reject(op, err, telemetry.UseCaseField(name))
		return err
	}
	if err := s.validateUseCase(op, name, tools); err != nil {
		s.reject(op, err, telemetry.UseCaseField(name))
		return err
	}
	s.useCases[name] = append([]string(nil), tools...)
	s.accept(op, telemetry.UseCaseField(name))
	return nil
}

// ExportSnapshot returns a deep copy of the current catalog.
func (s *Store) ExportSnapshot() domain.Snapshot {
	return domain.Snapshot{Tools: s.tools, UseCases: s.useCases}.Clone()
}

// ToolNames returns tool names in sorted order.
func (s *Store) ToolNames() []string {
	return domain.ToolNames(domain.Snapshot{Tools: s.tools})
}

// UseCaseNames returns use-case names in sorted order.
func (s *Store) UseCaseNames() []string {
	return domain.UseCaseNames(domain.Snapshot{UseCases: s.useCases})
}

func (s *Store) validateUseCase(op, name string, tools []string) error {
	problems, unknown := validator.ValidateUseCase(name, tools, s.tools)
	switch {
	case len(problems) == 0 && len(unknown) == 0:
		return nil
	case len(problems) == 0:
		return domain.UnknownToolsError(op, unknown).WithMeta("useCase", name)
	}
	if len(unknown) > 0 {
		problems = append(problems, domain.Problem{Err: domain.ErrUnknownTools, Detail: "unknown tools: " + strings.Join(unknown, ", ")})
	}
	err := domain.Invalid(op, domain.ErrInvalidUseCase, problems...).WithMeta("useCase", name)
	if len(unknown) > 0 {
		err = err.WithMeta("unknown", strings.Join(unknown, ","))
	}
	return err
}

// withEmptyLists replaces nil lists so exports encode [] rather than null.
func withEmptyLists(tool domain.Tool) domain.Tool {
	if tool.Strengths == nil {
		tool.Strengths = []string{}
	}
	if tool.Weaknesses == nil {
		tool.Weaknesses = []string{}
	}
	if tool.Nuances == nil {
		tool.Nuances = []string{}
	}
	if tool.Scores == nil {
		tool.Scores = map[string]int{}
	}
	return tool
}

func (s *Store) accept(op string, fields ...zap.Field) {
	s.metrics.ObserveMutation(op, nil)
	s.metrics.SetCatalogSize(len(s.tools), len(s.useCases))
	fields = append(fields, telemetry.EventField(telemetry.EventMutationApplied), telemetry.OpField(op))
	s.logger.Debug("catalog updated", fields...)
}

func (s *Store) reject(op string, err error, fields ...zap.Field) {
	s.metrics.ObserveMutation(op, err)
	fields = append(fields, telemetry.EventField(telemetry.EventMutationRejected), telemetry.OpField(op), zap.Error(err))
	s.logger.Info("catalog update rejected", fields...)
}
