package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"aicompare/internal/domain"
	"aicompare/internal/infra/envutil"
	"aicompare/internal/infra/telemetry"
)

// Seed is a decoded seed file.
type Seed struct {
	Snapshot domain.Snapshot
	// Priorities holds a "recommendations" table found in the file, if any.
	Priorities domain.PriorityTable
}

type Loader struct {
	logger *zap.Logger
}

func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		return &Loader{logger: zap.NewNop()}
	}
	return &Loader{logger: logger.Named("seed")}
}

// Load reads a YAML, JSON or TOML seed file; TOML is picked by the .toml
// extension. Files exported by earlier dashboard versions (best_for,
// use_cases, recommendations) are accepted.
func (l *Loader) Load(ctx context.Context, path string) (Seed, error) {
	if strings.TrimSpace(path) == "" {
		return Seed{}, errors.New("seed path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return Seed{}, err
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		data, err = tomlToYAML(data)
		if err != nil {
			return Seed{}, err
		}
	}

	seed, err := l.Decode(data)
	if err != nil {
		return Seed{}, fmt.Errorf("load seed %s: %w", path, err)
	}
	l.logger.Info("seed loaded",
		telemetry.EventField(telemetry.EventSeedLoaded),
		zap.String("path", path),
		zap.Int("tools", len(seed.Snapshot.Tools)),
		zap.Int("useCases", len(seed.Snapshot.UseCases)),
	)
	return seed, nil
}

// Decode parses seed content, validates it against the snapshot schema
// and the catalog rules, and returns the normalized result.
func (l *Loader) Decode(data []byte) (Seed, error) {
	expanded, missing, err := envutil.ExpandYAML(data)
	if err != nil {
		return Seed{}, err
	}
	if len(missing) > 0 {
		l.logger.Warn("missing environment variables in seed", zap.Strings("missing", missing))
	}

	var doc map[string]any
	if err := yaml.Unmarshal(expanded, &doc); err != nil {
		return Seed{}, fmt.Errorf("parse seed: %w", err)
	}
	if doc == nil {
		return Seed{}, errors.New("seed is empty")
	}

	priorities, err := migrateLegacyKeys(doc)
	if err != nil {
		return Seed{}, err
	}

	normalized, err := json.Marshal(doc)
	if err != nil {
		return Seed{}, fmt.Errorf("encode seed: %w", err)
	}
	if err := ValidateSnapshotJSON(normalized); err != nil {
		return Seed{}, err
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal(normalized, &snapshot); err != nil {
		return Seed{}, fmt.Errorf("decode seed: %w", err)
	}
	snapshot = normalizeSnapshot(snapshot)

	if err := ValidateSnapshot(snapshot); err != nil {
		return Seed{}, err
	}
	return Seed{Snapshot: snapshot, Priorities: priorities}, nil
}

func tomlToYAML(data []byte) ([]byte, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse seed toml: %w", err)
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("convert seed toml: %w", err)
	}
	return out, nil
}

func migrateLegacyKeys(doc map[string]any) (domain.PriorityTable, error) {
	if legacy, ok := doc["use_cases"]; ok {
		if _, exists := doc["useCases"]; !exists {
			doc["useCases"] = legacy
		}
		delete(doc, "use_cases")
	}
	if tools, ok := doc["tools"].(map[string]any); ok {
		for _, raw := range tools {
			tool, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			if legacy, ok := tool["best_for"]; ok {
				if _, exists := tool["bestFor"]; !exists {
					tool["bestFor"] = legacy
				}
				delete(tool, "best_for")
			}
		}
	}

	raw, ok := doc["recommendations"]
	if !ok {
		return nil, nil
	}
	delete(doc, "recommendations")
	entries, ok := raw.(map[string]any)
	if !ok {
		return nil, errors.New("recommendations must be a mapping of key to tool name")
	}
	table := make(domain.PriorityTable, len(entries))
	for key, value := range entries {
		name, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("recommendations[%s] must be a tool name", key)
		}
		table[key] = name
	}
	return table, nil
}

func normalizeSnapshot(snapshot domain.Snapshot) domain.Snapshot {
	out := domain.Snapshot{
		Tools:    make(map[string]domain.Tool, len(snapshot.Tools)),
		UseCases: make(map[string][]string, len(snapshot.UseCases)),
	}
	for name, tool := range snapshot.Tools {
		tool.BestFor = strings.TrimSpace(tool.BestFor)
		tool.Logo = strings.TrimSpace(tool.Logo)
		tool.Strengths = cleanLines(tool.Strengths)
		tool.Weaknesses = cleanLines(tool.Weaknesses)
		tool.Nuances = cleanLines(tool.Nuances)
		out.Tools[name] = tool
	}
	for name, tools := range snapshot.UseCases {
		out.UseCases[name] = append([]string(nil), tools...)
	}
	return out
}

// cleanLines trims entries and drops blank ones.
func cleanLines(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
