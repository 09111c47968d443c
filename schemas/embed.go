// Package schemas holds the JSON Schemas for the documents the tool reads and writes.
package schemas

import (
	"embed"
	"io/fs"
	"sort"
)

// Schema file names
const (
	MasterResume       = "master_resume.schema.json"
	OptimizationResult = "optimization_result.schema.json"
)

//go:embed *.schema.json
var files embed.FS

// Read returns the raw contents of a bundled schema.
func Read(name string) ([]byte, error) {
	return files.ReadFile(name)
}

// Names lists every bundled schema in lexical order.
func Names() []string {
	matches, _ := fs.Glob(files, "*.schema.json")
	sort.Strings(matches)
	return matches
}
