package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildCatalogSummary(t *testing.T) {
	snapshot := testSnapshot()
	snapshot.Tools["Empty"] = Tool{Price: Price{Free: true, Paid: 0}}

	summary := BuildCatalogSummary(snapshot)

	assert.Equal(t, 5, summary.TotalTools)
	assert.Equal(t, 2, summary.TotalUseCases)
	assert.Equal(t, 4, summary.FreeTierTools)
	assert.Equal(t, []string{"Creative", "Research", "Writing"}, summary.Categories)
	assert.Equal(t, []string{"Empty"}, summary.UnscoredTools)
	assert.InDelta(t, 7.0, summary.OverallScores["Gemini"], 1e-9)
	assert.NotContains(t, summary.OverallScores, "Empty")
	assert.Equal(t, 0.0, summary.LowestProPrice)
	assert.Equal(t, map[string]int{"Perplexity": 1, "Claude": 1}, summary.PrimaryPicks)
}
