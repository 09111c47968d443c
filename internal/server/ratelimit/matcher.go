package ratelimit

import (
	"net/http"
	"strings"
)

// unlimited is returned for requests that never consume tokens
var unlimited = EndpointConfig{}

// MatchEndpoint returns the configuration for method and path, or nil when the
// default limit applies. Exact paths win over prefixes; a config path ending in
// "/" matches everything below it. Health checks and CORS preflights are unlimited.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if method == http.MethodOptions || (method == http.MethodGet && path == "/health") {
		match := unlimited
		return &match
	}

	var prefix *EndpointConfig
	for i := range configs {
		c := &configs[i]
		if c.Method != method {
			continue
		}
		if c.Path == path {
			return c
		}
		// longest prefix wins
		if strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) &&
			(prefix == nil || len(c.Path) > len(prefix.Path)) {
			prefix = c
		}
	}
	return prefix
}
