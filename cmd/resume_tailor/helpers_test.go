package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/resume"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command in-process with fresh flag values.
func executeCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	resetFlags(rootCmd)
	t.Setenv(config.EnvConfigPath, "")

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// resetFlags restores every flag of cmd and its children to its default value.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		// Set on a slice flag parses DefValue "[]" as an element
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

// writeFile writes content under dir and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// writeSampleInputs writes the bundled sample resume and job description to a temp dir.
func writeSampleInputs(t *testing.T) (dir, resumePath, jobPath string) {
	t.Helper()
	dir = t.TempDir()

	data, err := resume.Encode(resume.Default(), resume.FormatJSON)
	require.NoError(t, err)
	resumePath = writeFile(t, dir, "master.json", string(data))
	jobPath = writeFile(t, dir, "job.txt", resume.SampleJobDescription())
	return dir, resumePath, jobPath
}
