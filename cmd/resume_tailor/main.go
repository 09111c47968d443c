// Package main provides the resume_tailor CLI for tailoring a master resume to a job posting.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_tailor",
	Short: "Resume relevance scoring and content selection",
	Long: "resume_tailor scores a master resume against a job description, keeps the most relevant " +
		"experience, projects and skills, and renders a one-page LaTeX resume.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a JSON or YAML config file (default $RESUME_TAILOR_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseOutput, "verbose", "v", false, "Print detailed progress and debug logs to stderr")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
