package hashutil

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"aicompare/internal/domain"
)

// SnapshotETag returns a content hash of a catalog snapshot and logs on
// failure. Equal catalogs hash equal regardless of map order.
func SnapshotETag(logger *zap.Logger, snapshot domain.Snapshot) string {
	return hashWithLogger(logger, "snapshot", func() (string, error) {
		data, err := json.Marshal(snapshot)
		if err != nil {
			return "", err
		}
		sum := sha256.Sum256(data)
		return hex.EncodeToString(sum[:]), nil
	})
}

func hashWithLogger(logger *zap.Logger, label string, fn func() (string, error)) string {
	etag, err := fn()
	if err != nil {
		if logger != nil {
			logger.Warn(fmt.Sprintf("%s hash failed", label), zap.Error(err))
		}
		return ""
	}
	return etag
}
