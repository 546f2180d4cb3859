package history

import (
	"fmt"
	"testing"
	"time"

	"github.com/pdf-whisperer/backend/internal/models"
)

func testReport(id, filename string) models.AnalysisReport {
	return models.AnalysisReport{
		ID:        id,
		Filename:  filename,
		Pages:     3,
		CharsSent: 1200,
		Summary:   "summary of " + filename,
		Model:     "llama3",
		CreatedAt: time.Now().UTC(),
	}
}

func TestAddSuccessAndGet(t *testing.T) {
	m := NewManager(10)

	rec := m.AddSuccess(testReport("id-1", "report.pdf"))

	if rec.Status != StatusSucceeded {
		t.Errorf("expected status %s, got %s", StatusSucceeded, rec.Status)
	}
	if rec.Report == nil || rec.Report.Summary != "summary of report.pdf" {
		t.Error("expected record to carry the report")
	}
	if rec.Error != "" {
		t.Errorf("succeeded record must not carry an error, got %q", rec.Error)
	}

	got, ok := m.Get("id-1")
	if !ok {
		t.Fatal("expected to find record by ID")
	}
	if got.Filename != "report.pdf" {
		t.Errorf("expected filename report.pdf, got %s", got.Filename)
	}
}

func TestAddFailure(t *testing.T) {
	m := NewManager(10)

	rec := m.AddFailure("broken.pdf", "mistral", "model backend error")

	if rec.Status != StatusFailed {
		t.Errorf("expected status %s, got %s", StatusFailed, rec.Status)
	}
	if rec.Report != nil {
		t.Error("failed record must not carry a report")
	}
	if rec.Error != "model backend error" {
		t.Errorf("unexpected error message: %s", rec.Error)
	}
	if rec.ID == "" {
		t.Error("expected a generated ID")
	}
}

func TestRecentNewestFirst(t *testing.T) {
	m := NewManager(10)
	for i := 0; i < 5; i++ {
		m.AddSuccess(testReport(fmt.Sprintf("id-%d", i), fmt.Sprintf("doc%d.pdf", i)))
	}

	recent := m.Recent(3)
	if len(recent) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recent))
	}
	for i, wantID := range []string{"id-4", "id-3", "id-2"} {
		if recent[i].ID != wantID {
			t.Errorf("position %d: expected %s, got %s", i, wantID, recent[i].ID)
		}
	}
}

func TestLimitEvictsOldest(t *testing.T) {
	m := NewManager(3)
	for i := 0; i < 5; i++ {
		m.AddSuccess(testReport(fmt.Sprintf("id-%d", i), "doc.pdf"))
	}

	if m.Len() != 3 {
		t.Fatalf("expected 3 records after eviction, got %d", m.Len())
	}
	if _, ok := m.Get("id-0"); ok {
		t.Error("expected oldest record to be evicted")
	}
	if _, ok := m.Get("id-4"); !ok {
		t.Error("expected newest record to survive eviction")
	}
}

func TestCleanupOld(t *testing.T) {
	m := NewManager(10)

	old := testReport("id-old", "old.pdf")
	old.CreatedAt = time.Now().Add(-2 * time.Hour)
	m.AddSuccess(old)
	m.AddSuccess(testReport("id-new", "new.pdf"))

	removed := m.CleanupOld(time.Hour)
	if removed != 1 {
		t.Errorf("expected 1 record removed, got %d", removed)
	}
	if _, ok := m.Get("id-old"); ok {
		t.Error("expected old record to be cleaned up")
	}
	if _, ok := m.Get("id-new"); !ok {
		t.Error("expected recent record to survive cleanup")
	}
}
