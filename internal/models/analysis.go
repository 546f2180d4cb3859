// Package models contains domain types for the PDF Whisperer backend.
package models

import "time"

// AnalysisReport is the outcome of a completed PDF analysis.
// Field names follow the wire contract consumed by the browser frontend;
// only Summary is required by clients, the rest is display metadata.
type AnalysisReport struct {
	ID        string    `json:"id,omitempty"`
	Filename  string    `json:"filename,omitempty"`
	Pages     int       `json:"pages,omitempty"`
	CharsSent int       `json:"chars_sent,omitempty"`
	Summary   string    `json:"summary"`
	Model     string    `json:"model,omitempty"`
	Truncated bool      `json:"truncated,omitempty"`
	ElapsedMs int64     `json:"elapsed_ms,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// ModelInfo describes one entry of the frontend's model selector.
type ModelInfo struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}
