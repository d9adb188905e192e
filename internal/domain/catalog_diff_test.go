package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiffSnapshots(t *testing.T) {
	prev := testSnapshot()
	next := prev.Clone()

	delete(next.Tools, "Gemini")
	claude := next.Tools["Claude"]
	claude.Scores["Research"] = 7
	next.Tools["Claude"] = claude
	next.Tools["Copilot"] = Tool{Scores: map[string]int{"Coding": 9}}
	next.UseCases["Developers"] = []string{"ChatGPT", "Claude"}
	next.UseCases["Designers"] = []string{"ChatGPT"}
	delete(next.UseCases, "Researchers")

	diff := DiffSnapshots(prev, next)

	require.Equal(t, []string{"Copilot"}, diff.AddedTools)
	require.Equal(t, []string{"Gemini"}, diff.RemovedTools)
	require.Equal(t, []string{"Claude"}, diff.UpdatedTools)
	require.Equal(t, []string{"Designers"}, diff.AddedUseCases)
	require.Equal(t, []string{"Researchers"}, diff.RemovedUseCases)
	require.Equal(t, []string{"Developers"}, diff.ReorderedUseCase)
	require.False(t, diff.IsEmpty())
}

func TestDiffSnapshots_Identical(t *testing.T) {
	prev := testSnapshot()
	require.True(t, DiffSnapshots(prev, prev.Clone()).IsEmpty())
}
