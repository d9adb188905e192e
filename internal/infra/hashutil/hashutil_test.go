package hashutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"aicompare/internal/domain"
)

func TestSnapshotETag(t *testing.T) {
	snapshot := domain.Snapshot{
		Tools: map[string]domain.Tool{
			"Claude": {BestFor: "Writers", Scores: map[string]int{"Writing": 10, "Coding": 9}},
			"Gemini": {BestFor: "Teams", Scores: map[string]int{"Writing": 7}},
		},
		UseCases: map[string][]string{"Writers": {"Claude", "Gemini"}},
	}

	etag := SnapshotETag(zap.NewNop(), snapshot)
	assert.Len(t, etag, 64)
	assert.Equal(t, etag, SnapshotETag(nil, snapshot.Clone()))

	changed := snapshot.Clone()
	changed.UseCases["Writers"] = []string{"Gemini", "Claude"}
	assert.NotEqual(t, etag, SnapshotETag(nil, changed))
}
