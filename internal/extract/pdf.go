// Package extract pulls plain text out of uploaded PDF documents.
package extract

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Document is the extracted content of a PDF.
type Document struct {
	Pages     int
	Text      string
	Truncated bool
}

// Extractor extracts text from a PDF held in memory.
type Extractor interface {
	Extract(r io.ReaderAt, size int64, maxChars int) (*Document, error)
}

// PDFExtractor implements Extractor on top of ledongthuc/pdf.
type PDFExtractor struct{}

// New creates a PDF extractor.
func New() *PDFExtractor {
	return &PDFExtractor{}
}

// Extract opens the PDF, counts its pages and concatenates per-page plain
// text, stopping once maxChars characters have been collected.
func (PDFExtractor) Extract(r io.ReaderAt, size int64, maxChars int) (*Document, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	pages := reader.NumPage()

	var b strings.Builder
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Pages with unsupported fonts or encodings are skipped, not fatal.
			continue
		}

		b.WriteString(text)
		b.WriteByte('\n')

		if maxChars > 0 && b.Len() >= maxChars {
			break
		}
	}

	text, truncated := capText(b.String(), maxChars)

	return &Document{
		Pages:     pages,
		Text:      text,
		Truncated: truncated,
	}, nil
}

// capText truncates s to maxChars bytes. maxChars <= 0 disables the cap.
func capText(s string, maxChars int) (string, bool) {
	if maxChars <= 0 || len(s) <= maxChars {
		return s, false
	}
	return s[:maxChars], true
}
