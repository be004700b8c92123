package config

import (
	"os"
	"strconv"
	"time"
)

// CacheConfig defines settings for the product lookup cache middleware.
// When Enabled is false or no Redis client is configured, caching is
// disabled and every lookup goes to the database.  TTL defines the
// lifetime of cache entries; the catalog is immutable reference data,
// so a generous TTL is safe.  Prefix namespaces the keys and
// MaxBodyBytes bounds the size of responses that will be stored.
type CacheConfig struct {
	Enabled      bool
	TTL          time.Duration
	Prefix       string
	MaxBodyBytes int
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      getenv("CACHE_ENABLED", "true") == "true",
		TTL:          parseDur(getenv("CACHE_TTL", "5m")),
		Prefix:       getenv("CACHE_PREFIX", "pos:product"),
		MaxBodyBytes: atoi(getenv("CACHE_MAX_BODY_BYTES", "65536")),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Minute
	}
	return d
}
