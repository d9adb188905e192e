package app

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"aicompare/internal/domain"
	"aicompare/internal/infra/catalog"
	"aicompare/internal/infra/envutil"
)

// Config is the resolved application configuration.
type Config struct {
	SeedPath         string
	Export           ExportConfig
	Log              LogConfig
	LeaderCategories []string
	// Priorities is nil unless the config file sets a table.
	Priorities domain.PriorityTable
	// TeamMetrics is nil unless the config file sets a table.
	TeamMetrics domain.TeamMetricTable
}

type ExportConfig struct {
	Dir    string
	Format catalog.Format
}

type LogConfig struct {
	Level  string
	Format string
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Export: ExportConfig{
			Dir:    domain.DefaultExportDir,
			Format: catalog.Format(domain.DefaultExportFormat),
		},
		Log: LogConfig{
			Level:  domain.DefaultLogLevel,
			Format: domain.DefaultLogFormat,
		},
		LeaderCategories: domain.DefaultLeaderCategories(),
	}
}

type rawConfig struct {
	SeedPath         string          `mapstructure:"seedPath"`
	Export           rawExportConfig `mapstructure:"export"`
	Log              rawLogConfig    `mapstructure:"log"`
	LeaderCategories []string        `mapstructure:"leaderCategories"`
	Priorities       []rawPriority   `mapstructure:"priorities"`
	TeamMetrics      []rawTeamMetric `mapstructure:"teamMetrics"`
}

type rawExportConfig struct {
	Dir    string `mapstructure:"dir"`
	Format string `mapstructure:"format"`
}

type rawLogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// rawPriority is a list entry rather than a map key because viper
// lowercases map keys.
type rawPriority struct {
	Key  string `mapstructure:"key"`
	Tool string `mapstructure:"tool"`
}

// rawTeamMetric is one rating; ratings of the same metric are grouped in
// order of first appearance.
type rawTeamMetric struct {
	Metric string `mapstructure:"metric"`
	Tool   string `mapstructure:"tool"`
	Score  *int   `mapstructure:"score"`
}

func newConfigViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(domain.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setConfigDefaults(v)
	return v
}

func setConfigDefaults(v *viper.Viper) {
	v.SetDefault("seedPath", "")
	v.SetDefault("export.dir", domain.DefaultExportDir)
	v.SetDefault("export.format", domain.DefaultExportFormat)
	v.SetDefault("log.level", domain.DefaultLogLevel)
	v.SetDefault("log.format", domain.DefaultLogFormat)
	v.SetDefault("leaderCategories", domain.DefaultLeaderCategories())
}

// LoadConfig reads the YAML config at path, expanding ${VAR} references.
// An empty path yields the defaults, still subject to AICOMPARE_*
// environment overrides.
func LoadConfig(path string, logger *zap.Logger) (Config, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	v := newConfigViper()

	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if len(bytes.TrimSpace(data)) > 0 {
			expanded, missing, err := envutil.ExpandYAML(data)
			if err != nil {
				return Config{}, err
			}
			if len(missing) > 0 {
				logger.Warn("missing environment variables in config", zap.String("path", path), zap.Strings("missing", missing))
			}
			if err := v.ReadConfig(bytes.NewReader(expanded)); err != nil {
				return Config{}, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	var raw rawConfig
	if err := v.Unmarshal(&raw); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg, validationErrors := normalizeConfig(raw)
	if len(validationErrors) > 0 {
		return Config{}, errors.New(strings.Join(validationErrors, "; "))
	}
	return cfg, nil
}

func normalizeConfig(raw rawConfig) (Config, []string) {
	var validationErrors []string
	cfg := Config{
		SeedPath: strings.TrimSpace(raw.SeedPath),
		Export: ExportConfig{
			Dir: strings.TrimSpace(raw.Export.Dir),
		},
		Log: LogConfig{
			Level:  strings.ToLower(strings.TrimSpace(raw.Log.Level)),
			Format: strings.ToLower(strings.TrimSpace(raw.Log.Format)),
		},
	}

	if cfg.Export.Dir == "" {
		cfg.Export.Dir = domain.DefaultExportDir
	}
	format, err := catalog.ParseFormat(raw.Export.Format)
	if err != nil {
		validationErrors = append(validationErrors, "export.format: "+err.Error())
	}
	cfg.Export.Format = format

	if _, err := zapcore.ParseLevel(cfg.Log.Level); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("log.level: unknown level %q", raw.Log.Level))
	}
	switch cfg.Log.Format {
	case "":
		cfg.Log.Format = domain.DefaultLogFormat
	case "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("log.format: must be console or json, got %q", raw.Log.Format))
	}

	seen := make(map[string]struct{}, len(raw.LeaderCategories))
	for i, category := range raw.LeaderCategories {
		category = strings.TrimSpace(category)
		if category == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("leaderCategories[%d]: must not be empty", i))
			continue
		}
		if _, dup := seen[category]; dup {
			continue
		}
		seen[category] = struct{}{}
		cfg.LeaderCategories = append(cfg.LeaderCategories, category)
	}

	if len(raw.Priorities) > 0 {
		cfg.Priorities = make(domain.PriorityTable, len(raw.Priorities))
		for i, entry := range raw.Priorities {
			key := strings.TrimSpace(entry.Key)
			tool := strings.TrimSpace(entry.Tool)
			switch {
			case key == "":
				validationErrors = append(validationErrors, fmt.Sprintf("priorities[%d]: key is required", i))
			case tool == "":
				validationErrors = append(validationErrors, fmt.Sprintf("priorities[%d]: tool is required for %q", i, key))
			default:
				if _, dup := cfg.Priorities[key]; dup {
					validationErrors = append(validationErrors, fmt.Sprintf("priorities[%d]: duplicate key %q", i, key))
					continue
				}
				cfg.Priorities[key] = tool
			}
		}
	}

	teamMetrics, teamErrors := normalizeTeamMetrics(raw.TeamMetrics)
	cfg.TeamMetrics = teamMetrics
	validationErrors = append(validationErrors, teamErrors...)
	return cfg, validationErrors
}

func normalizeTeamMetrics(entries []rawTeamMetric) (domain.TeamMetricTable, []string) {
	if len(entries) == 0 {
		return nil, nil
	}
	var validationErrors []string
	var table domain.TeamMetricTable
	index := make(map[string]int)
	for i, entry := range entries {
		metric := strings.TrimSpace(entry.Metric)
		tool := strings.TrimSpace(entry.Tool)
		switch {
		case metric == "":
			validationErrors = append(validationErrors, fmt.Sprintf("teamMetrics[%d]: metric is required", i))
			continue
		case tool == "":
			validationErrors = append(validationErrors, fmt.Sprintf("teamMetrics[%d]: tool is required for %q", i, metric))
			continue
		case entry.Score == nil:
			validationErrors = append(validationErrors, fmt.Sprintf("teamMetrics[%d]: score is required for %q/%q", i, metric, tool))
			continue
		}
		pos, ok := index[metric]
		if !ok {
			pos = len(table)
			index[metric] = pos
			table = append(table, domain.TeamMetric{Name: metric, Scores: make(map[string]int)})
		}
		if _, dup := table[pos].Scores[tool]; dup {
			validationErrors = append(validationErrors, fmt.Sprintf("teamMetrics[%d]: duplicate rating of %q for %q", i, tool, metric))
			continue
		}
		table[pos].Scores[tool] = *entry.Score
	}
	if err := table.Validate(); err != nil {
		validationErrors = append(validationErrors, "teamMetrics: "+err.Error())
	}
	return table, validationErrors
}
