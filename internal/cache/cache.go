package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/ppiankov/nameparser/internal/model"
)

// Cache defines the interface for caching parse results
type Cache interface {
	Get(key string) (model.ParsedName, bool)
	Set(key string, value model.ParsedName, ttl time.Duration)
	Delete(key string)
	Clear()
	Len() int
}

// CacheKey generates a cache key from a raw name
func CacheKey(input string) string {
	hash := sha256.Sum256([]byte(input))
	return "nameparser:v1:" + hex.EncodeToString(hash[:])
}
