package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-tailor/internal/server/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// newTestServer creates a server with rate limiting disabled
func newTestServer(t *testing.T, opts ...func(*Config)) *Server {
	t.Helper()

	cfg := Config{
		APIKey:    "test-api-key",
		RateLimit: &ratelimit.Config{Enabled: false},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s, err := New(cfg)
	require.NoError(t, err)
	return s
}

func TestNew_InvalidPort(t *testing.T) {
	_, err := New(Config{Port: 70000})
	assert.Error(t, err)
}

func TestNew_Defaults(t *testing.T) {
	s := newTestServer(t, func(c *Config) { c.Port = 9090 })
	assert.Equal(t, ":9090", s.Addr())
	assert.NotNil(t, s.optimizer)
	assert.NotNil(t, s.extractors)
	assert.NotNil(t, s.jobPages)
	assert.NotNil(t, s.logger)
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORSMiddleware(t *testing.T) {
	s := newTestServer(t)

	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Methods"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), RequestIDHeader)
	assert.Equal(t, RequestIDHeader, w.Header().Get("Access-Control-Expose-Headers"))
}

func TestCORSMiddleware_OPTIONS(t *testing.T) {
	s := newTestServer(t)

	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("should not reach here")) //nolint:errcheck
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/optimize", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, w.Body.Len(), "OPTIONS response should have empty body")
}

func TestRequestIDMiddleware(t *testing.T) {
	s := newTestServer(t)

	var seen string
	handler := s.withRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	t.Run("generates an ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
		assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
	})

	t.Run("keeps a valid incoming ID", func(t *testing.T) {
		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(RequestIDHeader, id)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, id, seen)
		assert.Equal(t, id, w.Header().Get(RequestIDHeader))
	})

	t.Run("replaces a malformed incoming ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(RequestIDHeader, "not-a-uuid\r\nX-Injected: 1")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.NotEqual(t, "not-a-uuid\r\nX-Injected: 1", seen)
		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
	})
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))
}

func TestLoggingMiddleware(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	s := newTestServer(t, func(c *Config) { c.Logger = zap.New(core) })

	called := false
	handler := s.withRequestID(s.withLogging(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.True(t, called, "logging middleware should call next handler")
	assert.Equal(t, http.StatusTeapot, w.Code)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/test", fields["path"])
	assert.EqualValues(t, http.StatusTeapot, fields["status"])
	assert.Equal(t, w.Header().Get(RequestIDHeader), fields["request_id"])
}

func TestLoggingMiddleware_ImplicitOK(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	s := newTestServer(t, func(c *Config) { c.Logger = zap.New(core) })

	handler := s.withLogging(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("hello")) //nolint:errcheck
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, http.StatusOK, entries[0].ContextMap()["status"])
	assert.EqualValues(t, 5, entries[0].ContextMap()["bytes"])
}

func TestRateLimitMiddleware(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	s := newTestServer(t, func(c *Config) {
		c.Logger = zap.New(core)
		c.RateLimit = &ratelimit.Config{
			Enabled: true,
			EndpointConfigs: []ratelimit.EndpointConfig{
				{Path: "/api/optimize", Method: http.MethodPost, Limit: 1, Window: time.Hour},
			},
		}
	})
	t.Cleanup(s.rateLimiter.Stop)

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/optimize", nil)
		req.RemoteAddr = "203.0.113.7:4567"
		w := httptest.NewRecorder()
		s.Handler().ServeHTTP(w, req)
		return w
	}

	first := send()
	assert.NotEqual(t, http.StatusTooManyRequests, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", first.Header().Get("X-RateLimit-Remaining"))

	second := send()
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))

	var resp map[string]any
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &resp))
	assert.Equal(t, "rate_limit_exceeded", resp["error"])
	assert.EqualValues(t, 1, resp["limit"])
	assert.Equal(t, 1, logs.FilterMessage("rate limit exceeded").Len())

	health := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "203.0.113.7:4567"
	s.Handler().ServeHTTP(health, req)
	assert.Equal(t, http.StatusOK, health.Code, "health is never limited")
}

func TestExtractClientID(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.1:1234"
	req.Header.Set("X-Forwarded-For", "10.0.0.1")
	assert.Equal(t, "198.51.100.1", s.extractClientID(req))

	req.RemoteAddr = "no-port"
	assert.Equal(t, "no-port", s.extractClientID(req))
}

func TestJSONResponse(t *testing.T) {
	s := newTestServer(t)
	w := httptest.NewRecorder()

	s.jsonResponse(w, http.StatusOK, map[string]string{"key": "value"})

	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "value", resp["key"])
}

func TestErrorResponse(t *testing.T) {
	s := newTestServer(t)
	w := httptest.NewRecorder()

	s.errorResponse(w, http.StatusBadRequest, "test error")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "test error", resp["error"])
}

func TestServe_GracefulShutdown(t *testing.T) {
	s := newTestServer(t)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, listener) }()

	url := "http://" + listener.Addr().String() + "/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
