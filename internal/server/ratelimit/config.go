package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variables are read with this prefix, e.g. RATE_LIMIT_ENABLED
const envPrefix = "RATE_LIMIT_"

// EndpointConfig limits one method and path. A Path ending in "/" matches
// everything below it.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int // requests per Window; 0 is unlimited
	Window time.Duration
	Burst  int // bucket capacity; Limit when 0
}

// LoadConfig reads RATE_LIMIT_* environment variables. Unset or malformed values use defaults.
func LoadConfig() *Config {
	if !envBool("ENABLED", true) {
		return &Config{Enabled: false}
	}

	endpoints := DefaultEndpointConfigs()
	if perHour := envInt("PARSE_RESUME_PER_HOUR", 0); perHour > 0 {
		for i := range endpoints {
			if endpoints[i].Path == "/api/parse-resume" {
				endpoints[i].Limit = perHour
				endpoints[i].Burst = min(endpoints[i].Burst, perHour)
			}
		}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    envInt("DEFAULT_LIMIT", 1000),
		DefaultWindow:   envDuration("DEFAULT_WINDOW", time.Minute),
		CleanupInterval: envDuration("CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       ipSet(os.Getenv(envPrefix + "WHITELIST")),
		Blacklist:       ipSet(os.Getenv(envPrefix + "BLACKLIST")),
		EndpointConfigs: endpoints,
	}
}

// DefaultEndpointConfigs returns the per-endpoint limits. Requests to other
// paths use the default limit.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// every call is a paid model request
		{Path: "/api/parse-resume", Method: "POST", Limit: 10, Window: time.Hour, Burst: 2},
		{Path: "/api/optimize", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
	}
}

func envValue(name string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(envPrefix + name))
	return v, v != ""
}

func envInt(name string, fallback int) int {
	if v, ok := envValue(name); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(name string, fallback bool) bool {
	if v, ok := envValue(name); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(name string, fallback time.Duration) time.Duration {
	if v, ok := envValue(name); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

// ipSet parses a comma-separated address list
func ipSet(list string) map[string]bool {
	set := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			set[ip] = true
		}
	}
	return set
}
