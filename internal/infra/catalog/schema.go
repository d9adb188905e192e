package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"

	"aicompare/internal/domain"
)

var (
	schemaOnce     sync.Once
	snapshotSchema *jsonschema.Schema
	resolvedSchema *jsonschema.Resolved
	schemaErr      error
)

// SnapshotSchema returns the JSON Schema describing an exported snapshot.
func SnapshotSchema() (*jsonschema.Schema, error) {
	loadSchema()
	return snapshotSchema, schemaErr
}

// SnapshotSchemaJSON returns the schema as indented JSON.
func SnapshotSchemaJSON() ([]byte, error) {
	schema, err := SnapshotSchema()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(schema, "", "  ")
}

// ValidateSnapshotDocument checks a decoded JSON document (maps, slices,
// float64, string, bool) against the snapshot schema.
func ValidateSnapshotDocument(doc any) error {
	loadSchema()
	if schemaErr != nil {
		return schemaErr
	}
	if err := resolvedSchema.Validate(doc); err != nil {
		return domain.Invalid("validate seed", domain.ErrInvalidCatalog, domain.Problem{Detail: err.Error()})
	}
	return nil
}

// ValidateSnapshotJSON checks raw JSON against the snapshot schema.
func ValidateSnapshotJSON(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode snapshot json: %w", err)
	}
	return ValidateSnapshotDocument(doc)
}

func loadSchema() {
	schemaOnce.Do(func() {
		schema, err := jsonschema.For[domain.Snapshot](nil)
		if err != nil {
			schemaErr = fmt.Errorf("build snapshot schema: %w", err)
			return
		}
		schema.Title = "aicompare catalog snapshot"
		resolved, err := schema.Resolve(nil)
		if err != nil {
			schemaErr = fmt.Errorf("resolve snapshot schema: %w", err)
			return
		}
		snapshotSchema = schema
		resolvedSchema = resolved
	})
}
