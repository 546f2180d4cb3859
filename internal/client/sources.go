package client

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pdf-whisperer/backend/internal/models"
)

// Selection is an in-memory implementation of the three input sources
// backing a controller: the selected file, the selected model and the
// parameter form. The CLI uses it directly; an embedding UI would
// implement the source interfaces over its own widget state instead.
type Selection struct {
	mu     sync.Mutex
	file   *SelectedFile
	model  string
	params models.AnalysisParameters
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

// SetFile selects a file, replacing any previous selection. Files that do
// not look like PDFs are rejected and the previous selection is kept.
func (s *Selection) SetFile(name string, data []byte) error {
	if !IsPDF(name) {
		return fmt.Errorf("file must be a PDF: %s", name)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.file = &SelectedFile{
		Name: name,
		Size: int64(len(data)),
		Data: data,
	}
	return nil
}

// ClearFile removes the current file selection.
func (s *Selection) ClearFile() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.file = nil
}

// SetModel selects the model identifier.
func (s *Selection) SetModel(model string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model = model
}

// MergeParameter merges one key/value pair into the parameters, preserving
// all previously set keys.
func (s *Selection) MergeParameter(key string, value interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params.Merge(key, value)
}

// SelectedFile implements FileSource.
func (s *Selection) SelectedFile() *SelectedFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file
}

// SelectedModel implements ModelSource.
func (s *Selection) SelectedModel() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model
}

// Parameters implements ParameterSource.
func (s *Selection) Parameters() models.AnalysisParameters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

// IsPDF checks a file name's extension.
func IsPDF(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pdf")
}
