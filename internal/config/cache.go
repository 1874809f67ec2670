package config

import (
	"strings"
	"time"
)

// CacheConfig tunes the Redis response cache in front of the read
// endpoints. TTL bounds how stale a cached listing or recommendation
// response can get after a write; MaxBodyBytes keeps oversized payloads
// out of Redis.
type CacheConfig struct {
	Enabled      bool
	Methods      map[string]bool // HTTP methods worth caching, usually just GET
	TTL          time.Duration
	Prefix       string
	MaxBodyBytes int
}

// LoadCacheConfig reads CACHE_* variables with sensible defaults.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      envBool("CACHE_ENABLED", true),
		Methods:      parseMethods(envStr("CACHE_METHODS", "GET")),
		TTL:          envDur("CACHE_TTL", 30*time.Second),
		Prefix:       envStr("CACHE_PREFIX", "books"),
		MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
	}
}

func parseMethods(s string) map[string]bool {
	m := map[string]bool{}
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(strings.ToUpper(p))
		if p != "" {
			m[p] = true
		}
	}
	return m
}
