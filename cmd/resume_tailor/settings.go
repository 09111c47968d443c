package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath    string
	verboseOutput bool
)

// loadSettings resolves configuration with increasing priority: built-in
// defaults, environment, config file, then flags set on cmd.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config

	path := configPath
	if path == "" {
		path = os.Getenv(config.EnvConfigPath)
	}
	if path != "" {
		fileConfig, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *fileConfig
	}

	cfg = cfg.MergeWithDefaults(config.FromEnv())
	cfg = cfg.MergeWithDefaults(config.Defaults())
	applyFlags(cmd, &cfg)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// applyFlags copies explicitly set flags over cfg. Flags a command does not define are ignored.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	changed := func(name string) bool {
		f := flags.Lookup(name)
		return f != nil && f.Changed
	}
	str := func(name string, dst *string) {
		if changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	num := func(name string, dst *int) {
		if changed(name) {
			*dst, _ = flags.GetInt(name)
		}
	}

	str("resume", &cfg.Resume)
	str("template", &cfg.Template)
	str("out", &cfg.Output)
	str("format", &cfg.Format)
	str("model", &cfg.Model)
	num("max-projects", &cfg.MaxProjects)
	num("limit", &cfg.KeywordLimit)
	num("port", &cfg.Port)
	num("max-pages", &cfg.MaxPages)
	num("max-chars", &cfg.MaxCharsPerLine)

	if changed("forbid") {
		cfg.ForbiddenPhrases, _ = flags.GetStringSlice("forbid")
	}

	if changed("use-browser") {
		cfg.UseBrowser, _ = flags.GetBool("use-browser")
	}
	if changed("verbose") {
		cfg.Verbose, _ = flags.GetBool("verbose")
	}

	// a --job flag replaces any job source from the config file
	if changed("job") {
		source, _ := flags.GetString("job")
		cfg.Job, cfg.JobURL = "", ""
		if ingestion.IsURL(source) {
			cfg.JobURL = source
		} else {
			cfg.Job = source
		}
	}
}

// jobSource returns the configured job description source.
func jobSource(cfg config.Config) string {
	if cfg.JobURL != "" {
		return cfg.JobURL
	}
	return cfg.Job
}

// newLogger builds the stderr logger for a command run.
func newLogger(cfg config.Config) *zap.Logger {
	logger, err := logging.NewCLI(cfg.Verbose)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// writeOutput writes data to path, or to the command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
