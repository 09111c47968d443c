package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"go.uber.org/zap/zapcore"
)

// Metadata describes an ingested job description
type Metadata struct {
	URL       string `json:"url,omitempty"`
	Source    string `json:"source,omitempty"`   // path, URL or "-"
	Format    string `json:"format,omitempty"`   // MIME type the text was extracted from
	Timestamp string `json:"timestamp"`          // RFC3339 format
	Hash      string `json:"hash"`               // SHA256 hex digest of the cleaned text
	Platform  string `json:"platform,omitempty"` // Detected job board platform
	Chars     int    `json:"chars"`
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(content string, url string) *Metadata {
	return &Metadata{
		URL:       url,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(content),
		Chars:     len(content),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// MarshalLogObject implements zapcore.ObjectMarshaler
func (m *Metadata) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if m.Source != "" {
		enc.AddString("source", m.Source)
	}
	if m.URL != "" {
		enc.AddString("url", m.URL)
	}
	if m.Platform != "" {
		enc.AddString("platform", m.Platform)
	}
	if m.Format != "" {
		enc.AddString("format", m.Format)
	}
	enc.AddInt("chars", m.Chars)
	enc.AddString("hash", m.Hash)
	return nil
}
