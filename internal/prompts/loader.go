// Package prompts holds the model prompt text, embedded from JSON files so it can
// be edited without touching Go code.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

// parsed prompt files, keyed by file name
var files sync.Map

type promptSet map[string]string

// Get returns the prompt stored under key in filename (e.g. "extraction.json").
func Get(filename, key string) (string, error) {
	set, err := load(filename)
	if err != nil {
		return "", err
	}
	if prompt, ok := set[key]; ok {
		return prompt, nil
	}
	return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
}

// MustGet is Get for prompts the program cannot run without. It panics on a missing prompt.
func MustGet(filename, key string) string {
	prompt, err := Get(filename, key)
	if err != nil {
		panic("prompts: " + err.Error())
	}
	return prompt
}

// Keys returns the prompt keys in filename, sorted.
func Keys(filename string) ([]string, error) {
	set, err := load(filename)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

// ClearCache drops parsed files so the next lookup re-reads them.
func ClearCache() {
	files.Clear()
}

func load(filename string) (promptSet, error) {
	if cached, ok := files.Load(filename); ok {
		return cached.(promptSet), nil
	}

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}
	var set promptSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}
	for key, prompt := range set {
		if strings.TrimSpace(prompt) == "" {
			return nil, fmt.Errorf("prompt %q in %s is empty", key, filename)
		}
	}

	actual, _ := files.LoadOrStore(filename, set)
	return actual.(promptSet), nil
}
