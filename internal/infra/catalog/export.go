package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"aicompare/internal/domain"
)

// Format is an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat accepts json, yaml, yml or toml, case-insensitively.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (want json, yaml or toml)", value)
	}
}

// ExportFileName returns the date-stamped file name for an export taken at now.
func ExportFileName(format Format, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", domain.ExportFilePrefix, now.Format(domain.ExportDateLayout), format)
}

// EncodeSnapshot serializes a snapshot. JSON uses two-space indentation.
func EncodeSnapshot(snapshot domain.Snapshot, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(snapshot, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode snapshot json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(snapshot); err != nil {
			return nil, fmt.Errorf("encode snapshot yaml: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return nil, fmt.Errorf("encode snapshot yaml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatTOML:
		data, err := toml.Marshal(snapshot)
		if err != nil {
			return nil, fmt.Errorf("encode snapshot toml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

// WriteExport encodes snapshot into dir under the date-stamped file name
// and returns the written path.
func WriteExport(dir string, snapshot domain.Snapshot, format Format, now time.Time) (string, error) {
	data, err := EncodeSnapshot(snapshot, format)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(dir) == "" {
		dir = domain.DefaultExportDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("ensure export dir: %w", err)
	}
	path := filepath.Join(dir, ExportFileName(format, now))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}
