package client

import (
	"context"
	"sync"

	"github.com/pdf-whisperer/backend/internal/models"
)

// State identifies the controller's position in the request lifecycle.
type State string

const (
	StateIdle      State = "idle"
	StateAnalyzing State = "analyzing"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
)

// FileSource yields the currently selected PDF, or nil when none is selected.
type FileSource interface {
	SelectedFile() *SelectedFile
}

// ModelSource yields the currently selected model identifier.
type ModelSource interface {
	SelectedModel() string
}

// ParameterSource yields the current analysis parameters.
type ParameterSource interface {
	Parameters() models.AnalysisParameters
}

// Outcome is the tagged result of the last completed submission. Exactly
// one of Report and Err is set.
type Outcome struct {
	Report *models.AnalysisReport
	Err    string
}

// Succeeded reports whether the outcome carries a report.
func (o *Outcome) Succeeded() bool {
	return o != nil && o.Report != nil
}

// Controller drives the upload-and-analyze lifecycle for one selection.
// At most one request is in flight at a time; a submission attempted while
// one is running, or without a file and model, is silently ignored. There
// is no cancellation: an in-flight request always finishes and its result
// is applied even if the inputs changed meanwhile (last writer wins).
type Controller struct {
	client *Client
	files  FileSource
	model  ModelSource
	params ParameterSource

	mu      sync.Mutex
	state   State
	outcome *Outcome
}

// NewController creates a controller reading its inputs from the given
// sources. A Selection satisfies all three.
func NewController(client *Client, files FileSource, model ModelSource, params ParameterSource) *Controller {
	return &Controller{
		client: client,
		files:  files,
		model:  model,
		params: params,
		state:  StateIdle,
	}
}

// Submit issues one analysis request for the current selection and blocks
// until it resolves. It returns false without any side effect when the
// guard rejects the submission: no file, empty model, or a request already
// in flight. Run it in a goroutine to keep an event loop responsive; the
// guard makes concurrent calls safe.
func (c *Controller) Submit(ctx context.Context) bool {
	file := c.files.SelectedFile()
	model := c.model.SelectedModel()

	c.mu.Lock()
	if file == nil || model == "" || c.state == StateAnalyzing {
		c.mu.Unlock()
		return false
	}
	c.state = StateAnalyzing
	// The previous result is discarded on entry, before the call resolves.
	c.outcome = nil
	c.mu.Unlock()

	report, err := c.client.Analyze(ctx, *file, model, c.params.Parameters())

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = StateFailed
		c.outcome = &Outcome{Err: err.Error()}
		return true
	}
	c.state = StateSucceeded
	c.outcome = &Outcome{Report: report}
	return true
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Outcome returns the result of the last completed submission, or nil when
// none has completed since the last submission started. Reading it has no
// side effects.
func (c *Controller) Outcome() *Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.outcome
}
