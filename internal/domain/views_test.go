package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverallScore_Mean(t *testing.T) {
	score, err := OverallScore(Tool{Scores: map[string]int{"A": 10, "B": 0}})
	require.NoError(t, err)
	assert.Equal(t, 5.0, score)

	score, err = OverallScore(testSnapshot().Tools["ChatGPT"])
	require.NoError(t, err)
	assert.InDelta(t, 25.0/3.0, score, 1e-9)
}

func TestOverallScore_EmptyScores(t *testing.T) {
	_, err := OverallScore(Tool{})
	require.ErrorIs(t, err, ErrEmptyScores)
	assert.True(t, IsValidation(err))
}

func TestCategoryLeader(t *testing.T) {
	snapshot := testSnapshot()

	leader, err := CategoryLeader(snapshot, "Research", []string{"Perplexity", "Claude", "Gemini"})
	require.NoError(t, err)
	assert.Equal(t, "Perplexity", leader)

	leader, err = CategoryLeader(snapshot, "Writing", []string{"ChatGPT", "Gemini"})
	require.NoError(t, err)
	assert.Equal(t, "ChatGPT", leader)
}

func TestCategoryLeader_TieGoesToFirst(t *testing.T) {
	snapshot := testSnapshot()
	snapshot.Tools["Gemini"] = Tool{Scores: map[string]int{"Research": 10}}

	leader, err := CategoryLeader(snapshot, "Research", []string{"Gemini", "Perplexity"})
	require.NoError(t, err)
	assert.Equal(t, "Gemini", leader)

	leader, err = CategoryLeader(snapshot, "Research", []string{"Perplexity", "Gemini"})
	require.NoError(t, err)
	assert.Equal(t, "Perplexity", leader)
}

func TestCategoryLeader_MissingCategoryCountsAsZero(t *testing.T) {
	snapshot := testSnapshot()

	leader, err := CategoryLeader(snapshot, "Video", []string{"Claude", "ChatGPT"})
	require.NoError(t, err)
	assert.Equal(t, "Claude", leader)
}

func TestCategoryLeader_Errors(t *testing.T) {
	snapshot := testSnapshot()

	_, err := CategoryLeader(snapshot, "Research", nil)
	require.ErrorIs(t, err, ErrEmptySelection)

	_, err = CategoryLeader(snapshot, "Research", []string{"Claude", "Ghost"})
	require.ErrorIs(t, err, ErrToolNotFound)
	assert.True(t, IsNotFound(err))
}

func TestCategoryLeaders(t *testing.T) {
	leaders, err := CategoryLeaders(testSnapshot(), []string{"Writing", "Research"}, []string{"ChatGPT", "Claude", "Gemini", "Perplexity"})
	require.NoError(t, err)

	want := []Leader{
		{Category: "Writing", Tool: "Claude", Score: 10},
		{Category: "Research", Tool: "Perplexity", Score: 10},
	}
	if diff := cmp.Diff(want, leaders); diff != "" {
		t.Fatalf("leaders mismatch (-want +got):\n%s", diff)
	}
}

func TestRecommendFor(t *testing.T) {
	snapshot := testSnapshot()
	table := DefaultPriorityTable()

	tool, err := RecommendFor(snapshot, "Research with citations", table)
	require.NoError(t, err)
	assert.Equal(t, "Researchers", tool.BestFor)

	_, err = RecommendFor(snapshot, "Interpretive dance", table)
	require.ErrorIs(t, err, ErrPriorityNotFound)
	assert.True(t, IsNotFound(err))

	_, err = RecommendFor(snapshot, "x", PriorityTable{"x": "Ghost"})
	require.ErrorIs(t, err, ErrToolNotFound)
}

func TestRecommendFor_ReturnsCopy(t *testing.T) {
	snapshot := testSnapshot()

	tool, err := RecommendFor(snapshot, "Code Quality", DefaultPriorityTable())
	require.NoError(t, err)
	tool.Strengths[0] = "mutated"
	tool.Scores["Writing"] = 0

	assert.Equal(t, "Long documents", snapshot.Tools["Claude"].Strengths[0])
	assert.Equal(t, 10, snapshot.Tools["Claude"].Scores["Writing"])
}

func TestSideBySide(t *testing.T) {
	snapshot := testSnapshot()

	pair, err := SideBySide(snapshot, "ChatGPT", "Claude")
	require.NoError(t, err)
	assert.Equal(t, "ChatGPT", pair.LeftName)
	assert.Equal(t, "Claude", pair.RightName)
	if diff := cmp.Diff(snapshot.Tools["Claude"], pair.Right); diff != "" {
		t.Fatalf("right tool mismatch (-want +got):\n%s", diff)
	}

	_, err = SideBySide(snapshot, "ChatGPT", "ChatGPT")
	require.ErrorIs(t, err, ErrSelfComparison)
	assert.True(t, IsValidation(err))

	_, err = SideBySide(snapshot, "ChatGPT", "Ghost")
	require.ErrorIs(t, err, ErrToolNotFound)
	assert.True(t, IsValidation(err))
}

func TestComparisonTable(t *testing.T) {
	rows, err := ComparisonTable(testSnapshot(), []string{"Gemini", "Perplexity"})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Gemini", rows[0].Tool)
	assert.Equal(t, "", rows[0].TopStrength)
	assert.Equal(t, "", rows[0].UniqueFeature)
	assert.InDelta(t, 7.0, rows[0].OverallScore, 1e-9)

	assert.Equal(t, "Real-time research", rows[1].TopStrength)
	assert.Equal(t, "Academic citations", rows[1].UniqueFeature)
	assert.False(t, rows[1].Free)
	assert.Equal(t, 25.0, rows[1].ProPrice)
}

func TestComparisonTable_UnscoredTool(t *testing.T) {
	snapshot := testSnapshot()
	snapshot.Tools["Empty"] = Tool{BestFor: "nothing"}

	_, err := ComparisonTable(snapshot, []string{"Claude", "Empty"})
	require.ErrorIs(t, err, ErrEmptyScores)
}

func TestBuildScoreMatrix(t *testing.T) {
	snapshot := testSnapshot()
	snapshot.Tools["Gemini"] = Tool{Scores: map[string]int{"Research": 8, "Video": 10}}

	matrix, err := BuildScoreMatrix(snapshot, []string{"Claude", "Gemini"}, nil)
	require.NoError(t, err)

	want := ScoreMatrix{
		Tools:      []string{"Claude", "Gemini"},
		Categories: []string{"Creative", "Research", "Video", "Writing"},
		Values: [][]int{
			{9, 5, 0, 10},
			{0, 8, 10, 0},
		},
	}
	if diff := cmp.Diff(want, matrix); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}

	_, err = BuildScoreMatrix(snapshot, []string{"Ghost"}, []string{"Writing"})
	require.ErrorIs(t, err, ErrToolNotFound)
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "8.0/10", FormatScore(8))
	assert.Equal(t, "7.9/10", FormatScore(55.0/7.0))
}
