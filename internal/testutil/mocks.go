// Package testutil provides shared test doubles for handler tests.
package testutil

import (
	"context"
	"io"
	"sync"

	"github.com/pdf-whisperer/backend/internal/extract"
)

// MockSummarizer implements ollama.Summarizer with a canned response.
type MockSummarizer struct {
	mu         sync.Mutex
	Response   string
	Err        error
	Calls      int
	LastModel  string
	LastPrompt string
}

// Summarize returns the configured response or error and records the call.
func (m *MockSummarizer) Summarize(_ context.Context, model, _ string, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	m.LastModel = model
	m.LastPrompt = prompt
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// CallCount returns how many times Summarize ran.
func (m *MockSummarizer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls
}

// MockExtractor implements extract.Extractor without touching real PDF data.
type MockExtractor struct {
	Doc      *extract.Document
	Err      error
	LastSize int64
}

// Extract returns the configured document or error.
func (m *MockExtractor) Extract(_ io.ReaderAt, size int64, maxChars int) (*extract.Document, error) {
	m.LastSize = size
	if m.Err != nil {
		return nil, m.Err
	}
	doc := m.Doc
	if doc == nil {
		doc = &extract.Document{Pages: 1, Text: "extracted text"}
	}
	if maxChars > 0 && len(doc.Text) > maxChars {
		capped := *doc
		capped.Text = doc.Text[:maxChars]
		capped.Truncated = true
		return &capped, nil
	}
	return doc, nil
}
