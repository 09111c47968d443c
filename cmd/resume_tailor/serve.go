package main

import (
	"fmt"

	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/logging"
	"github.com/jonathan/resume-tailor/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server exposing /api/parse-resume, /api/optimize and /health.

Job pages requested through jobUrl are cached for fetch_cache_ttl.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 8080, "Port to listen on (default $PORT or 8080)")
	serveCmd.Flags().String("model", "", "Gemini model override for resume extraction")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.APIKey == "" {
		logger.Warn("GEMINI_API_KEY is not set; /api/parse-resume will fail")
	}

	llmConfig := llm.NewConfig(cfg.Model)

	srv, err := server.New(server.Config{
		Port:     cfg.Port,
		APIKey:   cfg.APIKey,
		Logger:   logger,
		LLM:      llmConfig,
		JobPages: server.NewJobPageCache(cfg.CacheTTL()),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	logger.Info("starting resume_tailor API", zap.Int("port", cfg.Port))
	return srv.Start()
}
