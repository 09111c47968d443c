// Package server provides the HTTP API for resume extraction and optimization.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/resume-tailor/internal/extraction"
	"github.com/jonathan/resume-tailor/internal/fetch"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/optimizer"
	"github.com/jonathan/resume-tailor/internal/server/ratelimit"
	"github.com/jonathan/resume-tailor/internal/types"
	"go.uber.org/zap"
)

// maxRequestBytes caps request bodies; uploads arrive base64-encoded.
const maxRequestBytes = 20 << 20

// ResumeExtractor turns an uploaded resume into structured data.
type ResumeExtractor interface {
	ExtractResume(ctx context.Context, req types.ParseResumeRequest) (*types.MasterResume, error)
}

// ExtractorFactory creates an extractor for one request. The returned close
// func is called when the request finishes.
type ExtractorFactory func(ctx context.Context, apiKey string) (ResumeExtractor, func() error, error)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	handler     http.Handler
	apiKey      string
	logger      *zap.Logger
	rateLimiter *ratelimit.Limiter
	optimizer   *optimizer.Optimizer
	extractors  ExtractorFactory
	jobPages    *fetch.CachedFetcher
}

// Config holds server configuration
type Config struct {
	Port   int
	APIKey string
	Logger *zap.Logger
	// RateLimit nil loads RATE_LIMIT_* environment settings.
	RateLimit *ratelimit.Config
	// Optimizer nil uses the default LaTeX optimizer.
	Optimizer *optimizer.Optimizer
	// Extractors nil creates a Gemini-backed extractor per request.
	Extractors ExtractorFactory
	// LLM selects Gemini models for the default extractor factory.
	LLM *llm.Config
	// JobPages fetches jobUrl postings; nil uses NewJobPageCache(fetch.DefaultCacheTTL).
	JobPages *fetch.CachedFetcher
}

// NewJobPageCache returns the cache used for jobUrl postings. It only
// connects to public addresses since the URL is chosen by the API caller.
func NewJobPageCache(ttl time.Duration) *fetch.CachedFetcher {
	opts := fetch.DefaultOptions()
	opts.PublicOnly = true
	return fetch.NewCachedFetcher(opts, ttl)
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Port < 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	rateConfig := cfg.RateLimit
	if rateConfig == nil {
		rateConfig = ratelimit.LoadConfig()
	}

	opt := cfg.Optimizer
	if opt == nil {
		opt = optimizer.New(nil, optimizer.WithLogger(logger))
	}

	extractors := cfg.Extractors
	if extractors == nil {
		extractors = geminiExtractors(cfg.LLM, logger)
	}

	jobPages := cfg.JobPages
	if jobPages == nil {
		jobPages = NewJobPageCache(fetch.DefaultCacheTTL)
	}

	s := &Server{
		apiKey:      cfg.APIKey,
		logger:      logger,
		rateLimiter: ratelimit.NewLimiter(rateConfig),
		optimizer:   opt,
		extractors:  extractors,
		jobPages:    jobPages,
	}

	mux := http.NewServeMux()
	// Method checks happen in the handlers so every error is a JSON body
	mux.HandleFunc("/api/parse-resume", s.handleParseResume)
	mux.HandleFunc("/api/optimize", s.handleOptimize)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.handler = s.withRequestID(s.withLogging(s.withCORS(s.withRateLimit(mux))))
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      120 * time.Second, // model calls can be slow
		IdleTimeout:       60 * time.Second,
	}

	return s, nil
}

// geminiExtractors returns a factory that builds a Gemini extractor per request.
func geminiExtractors(config *llm.Config, logger *zap.Logger) ExtractorFactory {
	return func(ctx context.Context, apiKey string) (ResumeExtractor, func() error, error) {
		e, err := extraction.NewFromAPIKey(ctx, apiKey, config, extraction.WithLogger(logger))
		if err != nil {
			return nil, nil, err
		}
		return e, e.Close, nil
	}
}

// Handler returns the root handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", listener.Addr().String()))
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		s.rateLimiter.Stop()
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := s.httpServer.Shutdown(shutdownCtx)
	s.rateLimiter.Stop()
	if err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, types.ErrorResponse{Error: message})
}
