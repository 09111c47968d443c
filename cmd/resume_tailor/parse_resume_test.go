package main

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/resume"
	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeResumeExtractor struct {
	result *types.MasterResume
	err    error
	got    types.ParseResumeRequest
	closed bool
}

func (f *fakeResumeExtractor) ExtractResume(_ context.Context, req types.ParseResumeRequest) (*types.MasterResume, error) {
	f.got = req
	return f.result, f.err
}

func (f *fakeResumeExtractor) Close() error {
	f.closed = true
	return nil
}

// useFakeExtractor swaps the extractor constructor for the duration of the test.
func useFakeExtractor(t *testing.T, fake *fakeResumeExtractor) *llm.Config {
	t.Helper()

	var gotConfig llm.Config
	original := newResumeExtractor
	newResumeExtractor = func(_ context.Context, apiKey string, cfg *llm.Config, _ *zap.Logger) (resumeExtractor, error) {
		assert.Equal(t, "test-key", apiKey)
		gotConfig = *cfg
		return fake, nil
	}
	t.Cleanup(func() { newResumeExtractor = original })
	return &gotConfig
}

func TestParseResumeCommand_WritesJSON(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "test-key")
	fake := &fakeResumeExtractor{result: resume.Default()}
	useFakeExtractor(t, fake)

	dir := t.TempDir()
	input := writeFile(t, dir, "resume.txt", "Jake R. Resume\nSoftware Engineer\n")
	outPath := filepath.Join(dir, "master.json")

	stdout, _, err := executeCommand(t, "", "parse-resume", "--file", input, "--out", outPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Successfully extracted resume for Jake R. Resume")

	assert.Equal(t, types.MIMETypePlainText, fake.got.MimeType)
	decoded, err := base64.StdEncoding.DecodeString(fake.got.FileData)
	require.NoError(t, err)
	assert.Equal(t, "Jake R. Resume\nSoftware Engineer\n", string(decoded))
	assert.True(t, fake.closed)

	loaded, err := resume.Load(outPath)
	require.NoError(t, err)
	assert.Equal(t, "Jake R. Resume", loaded.PersonalInfo.FullName)
}

func TestParseResumeCommand_WritesYAML(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "test-key")
	useFakeExtractor(t, &fakeResumeExtractor{result: resume.Default()})

	dir := t.TempDir()
	input := writeFile(t, dir, "resume.txt", "resume text")
	outPath := filepath.Join(dir, "master.yaml")

	_, _, err := executeCommand(t, "", "parse-resume", "--file", input, "-o", outPath)
	require.NoError(t, err)

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "fullName: Jake R. Resume")
}

func TestParseResumeCommand_DetectsPDF(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "test-key")
	fake := &fakeResumeExtractor{result: resume.Default()}
	useFakeExtractor(t, fake)

	dir := t.TempDir()
	input := writeFile(t, dir, "resume.bin", "%PDF-1.4\n%fake\n")

	_, _, err := executeCommand(t, "", "parse-resume", "--file", input)
	require.NoError(t, err)
	assert.Equal(t, types.MIMETypePDF, fake.got.MimeType)
}

func TestParseResumeCommand_ModelOverride(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "test-key")
	gotConfig := useFakeExtractor(t, &fakeResumeExtractor{result: resume.Default()})

	input := writeFile(t, t.TempDir(), "resume.txt", "resume text")
	_, _, err := executeCommand(t, "", "parse-resume", "--file", input, "--model", "gemini-2.0-flash")
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-flash", gotConfig.GetModel(llm.TierStandard))
}

func TestParseResumeCommand_Errors(t *testing.T) {
	t.Run("missing API key", func(t *testing.T) {
		t.Setenv(config.EnvAPIKey, "")
		input := writeFile(t, t.TempDir(), "resume.txt", "text")

		_, _, err := executeCommand(t, "", "parse-resume", "--file", input)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "GEMINI_API_KEY")
	})

	t.Run("missing file flag", func(t *testing.T) {
		_, _, err := executeCommand(t, "", "parse-resume")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `required flag(s) "file" not set`)
	})

	t.Run("file not found", func(t *testing.T) {
		t.Setenv(config.EnvAPIKey, "test-key")
		useFakeExtractor(t, &fakeResumeExtractor{})

		_, _, err := executeCommand(t, "", "parse-resume", "--file", filepath.Join(t.TempDir(), "none.pdf"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read resume file")
	})

	t.Run("extraction failure", func(t *testing.T) {
		t.Setenv(config.EnvAPIKey, "test-key")
		fake := &fakeResumeExtractor{err: errors.New("resume extraction failed: no response from model")}
		useFakeExtractor(t, fake)
		input := writeFile(t, t.TempDir(), "resume.txt", "text")

		_, _, err := executeCommand(t, "", "parse-resume", "--file", input)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no response from model")
		assert.True(t, fake.closed)
	})
}
