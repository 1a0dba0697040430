package refcache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"time"
)

// Cache memoizes parsed reference data (lexicons, stopword sets) so batch
// runs over many datasets parse each file once. Values are immutable once
// stored; callers share them read-only.
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any, ttl time.Duration)
}

// Key derives a cache key from a reference file's path and mtime, so an
// edited file is re-parsed rather than served stale.
func Key(path string) string {
	stamp := ""
	if info, err := os.Stat(path); err == nil {
		stamp = fmt.Sprintf("%d:%d", info.ModTime().UnixNano(), info.Size())
	}
	hash := sha256.Sum256([]byte(path + "|" + stamp))
	return "emotia:v1:" + hex.EncodeToString(hash[:])
}
