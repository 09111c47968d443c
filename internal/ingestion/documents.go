package ingestion

import (
	"bytes"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

var (
	// docxRunOrBreakRe matches text runs and paragraph ends in word/document.xml
	docxRunOrBreakRe = regexp.MustCompile(`<w:t(?:\s[^>]*)?>([^<]*)</w:t>|</w:p>|<w:tab/>|<w:br/>`)
)

// MIMETypeForPath maps a file extension to a supported MIME type.
// Unknown extensions are treated as plain text.
func MIMETypeForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return types.MIMETypePDF
	case ".docx":
		return types.MIMETypeDOCX
	default:
		return types.MIMETypePlainText
	}
}

// DetectMIMEType sniffs data for a supported document type and falls back to
// the file extension when the content is not recognised.
func DetectMIMEType(path string, data []byte) string {
	detected := mimetype.Detect(data)
	switch {
	case detected.Is(types.MIMETypePDF):
		return types.MIMETypePDF
	case detected.Is(types.MIMETypeDOCX):
		return types.MIMETypeDOCX
	case detected.Is(types.MIMETypePlainText):
		return types.MIMETypePlainText
	default:
		return MIMETypeForPath(path)
	}
}

// ExtractText returns the plain text of a document.
func ExtractText(mimeType string, data []byte) (string, error) {
	switch mimeType {
	case types.MIMETypePlainText, "text/markdown", "":
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w: text is not valid UTF-8", ErrContentExtractionFailed)
		}
		return string(data), nil
	case types.MIMETypePDF:
		return extractPDF(data)
	case types.MIMETypeDOCX:
		return extractDOCX(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, mimeType)
	}
}

func extractPDF(content []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("%w: open PDF: %w", ErrContentExtractionFailed, err)
	}

	var buf strings.Builder
	numPages := r.NumPage()
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: extract page %d: %w", ErrContentExtractionFailed, i, err)
		}
		buf.WriteString(text)
		if i < numPages {
			buf.WriteByte('\n')
		}
	}
	return buf.String(), nil
}

func extractDOCX(content []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("%w: open DOCX: %w", ErrContentExtractionFailed, err)
	}
	defer func() { _ = doc.Close() }()

	return docxXMLToText(doc.Editable().GetContent()), nil
}

// docxXMLToText keeps run text and turns paragraph ends into newlines
func docxXMLToText(documentXML string) string {
	var sb strings.Builder
	for _, m := range docxRunOrBreakRe.FindAllStringSubmatch(documentXML, -1) {
		switch m[0] {
		case "</w:p>", "<w:br/>":
			sb.WriteByte('\n')
		case "<w:tab/>":
			sb.WriteByte('\t')
		default:
			sb.WriteString(html.UnescapeString(m[1]))
		}
	}
	return sb.String()
}
