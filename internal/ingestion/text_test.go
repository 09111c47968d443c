package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"only whitespace", "   \n  \n\t ", ""},
		{"collapses inner spaces", "Senior    Go\tEngineer", "Senior Go Engineer"},
		{"line endings", "Go\r\nSQL\rDocker", "Go\nSQL\nDocker"},
		{"blank line runs", "About us\n\n\n\n\nRequirements", "About us\n\nRequirements"},
		{"headings lose indentation", "   ## Requirements\nGo", "## Requirements\nGo"},
		{"bullets keep marker", "- Go\n* SQL", "- Go\n* SQL"},
		{"bullet glyphs normalized", "Stack\n• Go\n· SQL", "Stack\n- Go\n- SQL"},
		{"nested bullets keep indent", "- Backend\n    - Go   services", "- Backend\n    - Go services"},
		{"non-breaking spaces", "Senior\u00a0Go \u00a0 Engineer", "Senior Go Engineer"},
		{"unicode kept", "Café  🚀 équipe", "Café 🚀 équipe"},
		{"trailing whitespace", "Remote   \nUS only\t", "Remote\nUS only"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.input))
		})
	}
}

func TestCleanText_Idempotent(t *testing.T) {
	input := "# Platform Engineer\n\n\n  •  Kubernetes   and  Terraform\r\n* Go"
	once := CleanText(input)
	assert.Equal(t, once, CleanText(once))
}

func TestIngestFromFile_RecordsSourceAndFormat(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "posting.md")
	require.NoError(t, os.WriteFile(testFile, []byte("## Role\n\n\n\nGo   and Kubernetes"), 0644))

	text, metadata, err := IngestFromFile(testFile)
	require.NoError(t, err)

	assert.Equal(t, "## Role\n\nGo and Kubernetes", text)
	assert.Equal(t, testFile, metadata.Source)
	assert.Equal(t, "text/plain", metadata.Format)
	assert.Empty(t, metadata.URL)
	assert.Equal(t, len(text), metadata.Chars)
	assert.Equal(t, computeHash(text), metadata.Hash, "hash covers the cleaned text")
}

func TestIngestFromFile_SameTextSameHash(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	c := filepath.Join(dir, "c.txt")
	require.NoError(t, os.WriteFile(a, []byte("Go  engineer\r\n"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("Go engineer"), 0644))
	require.NoError(t, os.WriteFile(c, []byte("Rust engineer"), 0644))

	_, ma, err := IngestFromFile(a)
	require.NoError(t, err)
	_, mb, err := IngestFromFile(b)
	require.NoError(t, err)
	_, mc, err := IngestFromFile(c)
	require.NoError(t, err)

	assert.Equal(t, ma.Hash, mb.Hash, "formatting differences do not change the hash")
	assert.NotEqual(t, ma.Hash, mc.Hash)
}

func TestIngestFromFile_Errors(t *testing.T) {
	_, metadata, err := IngestFromFile("/nonexistent/file.txt")
	require.Error(t, err)
	assert.Nil(t, metadata)
	assert.Contains(t, err.Error(), "file not found")

	pdf := filepath.Join(t.TempDir(), "posting.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte("not a pdf"), 0644))

	_, _, err = IngestFromFile(pdf)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrContentExtractionFailed)
	assert.Contains(t, err.Error(), "posting.pdf")
}
