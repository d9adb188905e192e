package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aicompare/internal/domain"
)

func TestSnapshotSchema(t *testing.T) {
	schema, err := SnapshotSchema()
	require.NoError(t, err)
	assert.Equal(t, "aicompare catalog snapshot", schema.Title)
	assert.Contains(t, schema.Properties, "tools")
	assert.Contains(t, schema.Properties, "useCases")

	data, err := SnapshotSchemaJSON()
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "object", decoded["type"])
}

func TestValidateSnapshotJSON(t *testing.T) {
	valid := `{"tools": {"Claude": {"bestFor": "Writers", "strengths": [], "weaknesses": [], "nuances": [],
		"price": {"free": true, "paid": 20}, "scores": {"Writing": 10}}}, "useCases": {}}`
	require.NoError(t, ValidateSnapshotJSON([]byte(valid)))

	cases := map[string]string{
		"missing use cases": `{"tools": {}}`,
		"score not integer": `{"tools": {"Claude": {"bestFor": "Writers", "strengths": [], "weaknesses": [], "nuances": [],
			"price": {"free": true, "paid": 20}, "scores": {"Writing": "ten"}}}, "useCases": {}}`,
		"price missing": `{"tools": {"Claude": {"bestFor": "Writers", "strengths": [], "weaknesses": [], "nuances": [],
			"scores": {}}}, "useCases": {}}`,
	}
	for name, doc := range cases {
		err := ValidateSnapshotJSON([]byte(doc))
		require.ErrorIs(t, err, domain.ErrInvalidCatalog, name)
	}

	require.Error(t, ValidateSnapshotJSON([]byte("{not json")))
}
