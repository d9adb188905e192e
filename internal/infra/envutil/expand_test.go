package envutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExpandYAML_TypesAndMissing(t *testing.T) {
	t.Setenv("PRICE", "19.5")
	t.Setenv("ENABLED", "true")
	t.Setenv("NAME", "Claude")

	raw := []byte(`
title: "${NAME}"
price: ${PRICE}
enabled: ${ENABLED}
quoted: "${PRICE}"
missing: ${NOT_SET_A}x${NOT_SET_B}
${NAME}: key stays
`)
	expanded, missing, err := ExpandYAML(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"NOT_SET_A", "NOT_SET_B"}, missing)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(expanded, &doc))
	assert.Equal(t, "Claude", doc["title"])
	assert.Equal(t, 19.5, doc["price"])
	assert.Equal(t, true, doc["enabled"])
	assert.Equal(t, "19.5", doc["quoted"])
	assert.Equal(t, "x", doc["missing"])
	assert.Equal(t, "key stays", doc["${NAME}"])
}

func TestExpandYAML_InvalidDocument(t *testing.T) {
	_, _, err := ExpandYAML([]byte("a: [unterminated"))
	require.Error(t, err)
}
