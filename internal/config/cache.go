package config

import (
	"os"
	"time"
)

// CacheConfig controls the Redis response cache applied to the catalog
// listing endpoints.  Stations and prices change only by administrative
// action, so short TTLs are purely a staleness bound, not a correctness
// requirement.  When Enabled is false or no Redis client could be
// created, caching is disabled and requests pass straight through.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
}

// LoadCacheConfig builds a CacheConfig from environment variables,
// falling back to defaults when unset.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled: getenv("CACHE_ENABLED", "true") == "true",
		TTL:     parseDur(getenv("CACHE_TTL", "60s")),
		Prefix:  getenv("CACHE_PREFIX", "catalog"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Minute
	}
	return d
}
