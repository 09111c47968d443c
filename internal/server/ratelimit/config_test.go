package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 1000, cfg.DefaultLimit)
	assert.Equal(t, time.Minute, cfg.DefaultWindow)
	assert.Equal(t, 5*time.Minute, cfg.CleanupInterval)
	assert.Empty(t, cfg.Whitelist)
	assert.Equal(t, DefaultEndpointConfigs(), cfg.EndpointConfigs)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "50")
	t.Setenv("RATE_LIMIT_DEFAULT_WINDOW", "30s")
	t.Setenv("RATE_LIMIT_WHITELIST", "10.0.0.1, 10.0.0.2,")
	t.Setenv("RATE_LIMIT_BLACKLIST", "192.168.0.9")

	cfg := LoadConfig()
	assert.Equal(t, 50, cfg.DefaultLimit)
	assert.Equal(t, 30*time.Second, cfg.DefaultWindow)
	assert.Equal(t, map[string]bool{"10.0.0.1": true, "10.0.0.2": true}, cfg.Whitelist)
	assert.True(t, cfg.Blacklist["192.168.0.9"])
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "lots")
	t.Setenv("RATE_LIMIT_DEFAULT_WINDOW", "soon")

	cfg := LoadConfig()
	assert.Equal(t, 1000, cfg.DefaultLimit)
	assert.Equal(t, time.Minute, cfg.DefaultWindow)
}

func TestLoadConfig_ParseResumePerHour(t *testing.T) {
	t.Setenv("RATE_LIMIT_PARSE_RESUME_PER_HOUR", "1")

	parse := MatchEndpoint("/api/parse-resume", "POST", LoadConfig().EndpointConfigs)
	require.NotNil(t, parse)
	assert.Equal(t, 1, parse.Limit)
	assert.Equal(t, 1, parse.Burst, "burst never exceeds the hourly limit")
	assert.Equal(t, 10, DefaultEndpointConfigs()[0].Limit, "defaults are not modified")
}

func TestIPSet(t *testing.T) {
	assert.Empty(t, ipSet(""))
	assert.Equal(t, map[string]bool{"::1": true, "10.0.0.1": true}, ipSet(" ::1 ,,10.0.0.1"))
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	assert.False(t, LoadConfig().Enabled)
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/api/optimize", Method: "POST", Limit: 5},
		{Path: "/files/", Method: "GET", Limit: 7},
	}

	match := MatchEndpoint("/api/optimize", "POST", configs)
	require.NotNil(t, match)
	assert.Equal(t, 5, match.Limit)

	match = MatchEndpoint("/files/resume.tex", "GET", configs)
	require.NotNil(t, match)
	assert.Equal(t, 7, match.Limit)

	assert.Nil(t, MatchEndpoint("/api/optimize", "GET", configs))
	assert.Nil(t, MatchEndpoint("/api/optimize/extra", "POST", configs), "prefix match needs a trailing slash")

	health := MatchEndpoint("/health", "GET", configs)
	require.NotNil(t, health)
	assert.Zero(t, health.Limit)

	preflight := MatchEndpoint("/api/optimize", "OPTIONS", configs)
	require.NotNil(t, preflight)
	assert.Zero(t, preflight.Limit)
	preflight.Limit = 99
	assert.Zero(t, MatchEndpoint("/health", "GET", configs).Limit, "returned copies are independent")
}

func TestMatchEndpoint_LongestPrefix(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/api/", Method: "POST", Limit: 1},
		{Path: "/api/files/", Method: "POST", Limit: 2},
	}

	assert.Equal(t, 2, MatchEndpoint("/api/files/a.tex", "POST", configs).Limit)
	assert.Equal(t, 1, MatchEndpoint("/api/optimize", "POST", configs).Limit)
}

func TestDefaultEndpointConfigs_ParseResumeIsStrictest(t *testing.T) {
	parse := MatchEndpoint("/api/parse-resume", "POST", DefaultEndpointConfigs())
	optimize := MatchEndpoint("/api/optimize", "POST", DefaultEndpointConfigs())
	require.NotNil(t, parse)
	require.NotNil(t, optimize)

	perSecond := func(c *EndpointConfig) float64 { return float64(c.Limit) / c.Window.Seconds() }
	assert.Less(t, perSecond(parse), perSecond(optimize))
}
