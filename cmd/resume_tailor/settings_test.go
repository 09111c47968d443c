package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFlagCommand builds a throwaway command with the flags applyFlags understands.
func newFlagCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("resume", "", "")
	cmd.Flags().String("job", "", "")
	cmd.Flags().String("format", config.FormatLaTeX, "")
	cmd.Flags().Int("max-projects", 3, "")
	cmd.Flags().Int("port", 8080, "")
	cmd.Flags().Bool("use-browser", false, "")
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestApplyFlags_OnlyChangedFlags(t *testing.T) {
	cfg := config.Config{Format: config.FormatJSON, MaxProjects: 5, Port: 9000}
	applyFlags(newFlagCommand(t, "--max-projects", "1"), &cfg)

	assert.Equal(t, config.FormatJSON, cfg.Format, "unset flag keeps config value")
	assert.Equal(t, 1, cfg.MaxProjects)
	assert.Equal(t, 9000, cfg.Port)
	assert.False(t, cfg.UseBrowser)
}

func TestApplyFlags_JobSource(t *testing.T) {
	cfg := config.Config{Job: "old.txt"}
	applyFlags(newFlagCommand(t, "--job", "https://example.com/jobs/1"), &cfg)
	assert.Empty(t, cfg.Job)
	assert.Equal(t, "https://example.com/jobs/1", cfg.JobURL)
	assert.Equal(t, "https://example.com/jobs/1", jobSource(cfg))

	cfg = config.Config{JobURL: "https://example.com/old"}
	applyFlags(newFlagCommand(t, "--job", "-"), &cfg)
	assert.Equal(t, "-", cfg.Job)
	assert.Empty(t, cfg.JobURL)
	assert.Equal(t, "-", jobSource(cfg))
}

func TestApplyFlags_Bools(t *testing.T) {
	var cfg config.Config
	applyFlags(newFlagCommand(t, "--use-browser"), &cfg)
	assert.True(t, cfg.UseBrowser)
}

func TestLoadSettings_Precedence(t *testing.T) {
	dir := t.TempDir()
	configFile := writeFile(t, dir, "tailor.yaml", "format: json\nport: 9001\nfetch_cache_ttl: 1m\n")

	t.Setenv(config.EnvConfigPath, configFile)
	t.Setenv(config.EnvPort, "9002")
	t.Setenv(config.EnvAPIKey, "env-key")
	configPath = ""
	t.Cleanup(func() { configPath = "" })

	cfg, err := loadSettings(newFlagCommand(t, "--port", "9003"))
	require.NoError(t, err)

	assert.Equal(t, config.FormatJSON, cfg.Format, "file beats defaults")
	assert.Equal(t, 9003, cfg.Port, "flag beats file and environment")
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, 12, cfg.KeywordLimit, "defaults fill the rest")
	assert.Equal(t, "1m", cfg.FetchCacheTTL)
}

func TestLoadSettings_EnvBeatsDefaults(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv(config.EnvPort, "9002")
	configPath = ""

	cfg, err := loadSettings(newFlagCommand(t))
	require.NoError(t, err)
	assert.Equal(t, 9002, cfg.Port)
	assert.Equal(t, config.FormatLaTeX, cfg.Format)
}

func TestLoadSettings_Errors(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	configPath = filepath.Join(t.TempDir(), "missing.yaml")
	t.Cleanup(func() { configPath = "" })

	_, err := loadSettings(newFlagCommand(t))
	assert.Error(t, err)

	configPath = ""
	_, err = loadSettings(newFlagCommand(t, "--format", "docx"))
	assert.Error(t, err)
}

func TestWriteOutput(t *testing.T) {
	cmd := &cobra.Command{}
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.txt")

	require.NoError(t, writeOutput(cmd, path, []byte("hello")))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))
}
