package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTeamMetrics(t *testing.T) {
	table := DefaultTeamMetrics()
	assert.Equal(t, []string{
		"Marketing Content", "Data Analysis", "Market Research", "Report Writing", "Team Collaboration",
	}, table.Names())
	require.NoError(t, table.Validate())

	score, ok := table.Score("Market Research", "Perplexity")
	assert.True(t, ok)
	assert.Equal(t, 10, score)

	score, ok = table.Score("Market Research", "Copilot")
	assert.True(t, ok)
	assert.Equal(t, DefaultTeamMetricScore, score)

	_, ok = table.Score("Sales Decks", "Claude")
	assert.False(t, ok)
}

func TestDefaultTeamMetrics_ReturnsFreshTable(t *testing.T) {
	table := DefaultTeamMetrics()
	table[0].Scores["ChatGPT"] = 1
	table[1].Name = "changed"

	fresh := DefaultTeamMetrics()
	assert.Equal(t, 10, fresh[0].Scores["ChatGPT"])
	assert.Equal(t, "Data Analysis", fresh[1].Name)
}

func TestTeamMetricTable_CloneIsIndependent(t *testing.T) {
	table := DefaultTeamMetrics()
	clone := table.Clone()
	clone[0].Scores["Claude"] = 0

	assert.Equal(t, 8, table[0].Scores["Claude"])
	assert.Nil(t, TeamMetricTable(nil).Clone())
}

func TestTeamMetricTable_Validate(t *testing.T) {
	table := TeamMetricTable{
		{Name: "Pitching", Scores: map[string]int{"Claude": 11}},
		{Name: "Pitching"},
		{Name: ""},
	}
	err := table.Validate()
	require.ErrorIs(t, err, ErrInvalidTeamMetrics)
	require.ErrorIs(t, err, ErrInvalidScore)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), `"Pitching": duplicate metric`)
	assert.Contains(t, err.Error(), "Pitching[Claude] must be within [0,10], got 11")
	assert.Contains(t, err.Error(), "[2]: name is required")

	assert.NoError(t, TeamMetricTable(nil).Validate())
}

func TestBuildTeamMetricMatrix(t *testing.T) {
	snapshot := testSnapshot()
	table := TeamMetricTable{
		{Name: "Pitching", Scores: map[string]int{"Claude": 9}},
		{Name: "Reporting", Scores: map[string]int{"Claude": 7, "Gemini": 2}},
	}

	matrix, err := BuildTeamMetricMatrix(snapshot, table, []string{"Gemini", "Claude"})
	require.NoError(t, err)
	want := ScoreMatrix{
		Tools:      []string{"Gemini", "Claude"},
		Categories: []string{"Pitching", "Reporting"},
		Values:     [][]int{{DefaultTeamMetricScore, 2}, {9, 7}},
	}
	if diff := cmp.Diff(want, matrix); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}

	_, err = BuildTeamMetricMatrix(snapshot, table, []string{"Claude", "Copilot"})
	require.ErrorIs(t, err, ErrToolNotFound)
	assert.True(t, IsNotFound(err))
}
