package envutil

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ExpandYAML substitutes ${VAR} references in string scalars of a YAML or
// JSON document. Unquoted scalars that expand to a number or bool keep
// that type, so `paid: ${PRO_PRICE}` decodes as a number. It returns the
// re-encoded YAML and the sorted names of unset variables.
func ExpandYAML(raw []byte) ([]byte, []string, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return nil, nil, fmt.Errorf("parse document: %w", err)
	}

	missing := make(map[string]struct{})
	walkScalars(&root, func(node *yaml.Node) {
		expandScalar(node, missing)
	})

	expanded, err := yaml.Marshal(&root)
	if err != nil {
		return nil, nil, fmt.Errorf("encode expanded document: %w", err)
	}

	names := make([]string, 0, len(missing))
	for name := range missing {
		names = append(names, name)
	}
	sort.Strings(names)
	return expanded, names, nil
}

func walkScalars(node *yaml.Node, fn func(*yaml.Node)) {
	switch node.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, child := range node.Content {
			walkScalars(child, fn)
		}
	case yaml.MappingNode:
		// keys are never expanded
		for i := 0; i+1 < len(node.Content); i += 2 {
			walkScalars(node.Content[i+1], fn)
		}
	case yaml.AliasNode:
		if node.Alias != nil {
			walkScalars(node.Alias, fn)
		}
	case yaml.ScalarNode:
		fn(node)
	}
}

func expandScalar(node *yaml.Node, missing map[string]struct{}) {
	if node.Tag != "" && node.Tag != "!!str" {
		return
	}
	if !strings.Contains(node.Value, "$") {
		return
	}

	expanded := os.Expand(node.Value, func(key string) string {
		if val, ok := os.LookupEnv(key); ok {
			return val
		}
		missing[key] = struct{}{}
		return ""
	})
	if expanded == node.Value {
		return
	}

	node.Value = expanded
	if node.Style != 0 {
		node.Tag = "!!str"
		return
	}
	node.Tag = scalarTag(expanded)
	if node.Tag != "!!str" {
		node.Value = strings.TrimSpace(expanded)
	}
}

func scalarTag(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "!!str"
	}
	if trimmed == "true" || trimmed == "false" {
		return "!!bool"
	}
	if _, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return "!!int"
	}
	if _, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return "!!float"
	}
	return "!!str"
}
