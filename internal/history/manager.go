// Package history keeps a bounded in-memory record of recent analyses.
// Records live only for the lifetime of the process; there is no
// persistence by design.
package history

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pdf-whisperer/backend/internal/models"
)

// Status is the terminal state of a recorded analysis.
type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Record is one completed analysis. Report is set for succeeded records,
// Error for failed ones; never both.
type Record struct {
	ID        string                 `json:"id"`
	Status    Status                 `json:"status"`
	Filename  string                 `json:"filename"`
	Model     string                 `json:"model"`
	Report    *models.AnalysisReport `json:"report,omitempty"`
	Error     string                 `json:"error,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// Manager holds recent analysis records behind a mutex.
type Manager struct {
	mu      sync.RWMutex
	records map[string]*Record
	order   []string // insertion order, oldest first
	limit   int
}

// DefaultLimit bounds the history when no limit is configured.
const DefaultLimit = 50

// NewManager creates a history manager keeping at most limit records.
func NewManager(limit int) *Manager {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Manager{
		records: make(map[string]*Record),
		limit:   limit,
	}
}

// AddSuccess records a completed analysis under the report's ID.
func (m *Manager) AddSuccess(report models.AnalysisReport) *Record {
	rec := &Record{
		ID:        report.ID,
		Status:    StatusSucceeded,
		Filename:  report.Filename,
		Model:     report.Model,
		Report:    &report,
		CreatedAt: report.CreatedAt,
	}
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	m.add(rec)
	return rec
}

// AddFailure records an analysis that did not produce a report.
func (m *Manager) AddFailure(filename, model, message string) *Record {
	rec := &Record{
		ID:        uuid.New().String(),
		Status:    StatusFailed,
		Filename:  filename,
		Model:     model,
		Error:     message,
		CreatedAt: time.Now().UTC(),
	}
	m.add(rec)
	return rec
}

func (m *Manager) add(rec *Record) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[rec.ID] = rec
	m.order = append(m.order, rec.ID)

	// Evict oldest records past the limit.
	for len(m.order) > m.limit {
		oldest := m.order[0]
		m.order = m.order[1:]
		delete(m.records, oldest)
	}
}

// Get returns the record with the given ID.
func (m *Manager) Get(id string) (*Record, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[id]
	return rec, ok
}

// Recent returns up to n records, newest first.
func (m *Manager) Recent(n int) []*Record {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Record, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, m.records[m.order[i]])
	}
	return out
}

// Len returns the number of stored records.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// CleanupOld removes records older than maxAge. Returns how many were removed.
func (m *Manager) CleanupOld(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)

	m.mu.Lock()
	defer m.mu.Unlock()

	var kept []string
	removed := 0
	for _, id := range m.order {
		if m.records[id].CreatedAt.Before(cutoff) {
			delete(m.records, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	m.order = kept

	return removed
}
