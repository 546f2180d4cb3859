// Package client implements the upload-and-analyze lifecycle against the
// PDF Whisperer backend: a thin HTTP client plus the request controller
// that front ends drive.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/pdf-whisperer/backend/internal/models"
)

// DefaultBaseURL is used when no backend origin is configured.
const DefaultBaseURL = "http://localhost:8000"

// SelectedFile is the PDF chosen in the drop zone.
type SelectedFile struct {
	Name string
	Size int64
	Data []byte
}

// Client posts analysis requests to the backend.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a client for the given backend origin. The default HTTP
// client carries no timeout: server-side inference time is unbounded and
// the timeout policy belongs to the caller. Replace or tune HTTPClient to
// impose one.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
	}
}

// Analyze issues one POST /analyze request and interprets the response.
// The request body is a multipart form with three parts: "pdf" (the file),
// "model" (plain string) and "params" (JSON-encoded parameters).
func (c *Client) Analyze(ctx context.Context, file SelectedFile, model string, params models.AnalysisParameters) (*models.AnalysisReport, error) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="pdf"; filename="%s"`, escapeQuotes(file.Name)))
	hdr.Set("Content-Type", "application/pdf")
	part, err := writer.CreatePart(hdr)
	if err != nil {
		return nil, fmt.Errorf("failed to create pdf part: %w", err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return nil, fmt.Errorf("failed to write pdf part: %w", err)
	}

	if err := writer.WriteField("model", model); err != nil {
		return nil, fmt.Errorf("failed to add model field: %w", err)
	}

	encoded, err := params.Encode()
	if err != nil {
		return nil, err
	}
	if err := writer.WriteField("params", encoded); err != nil {
		return nil, fmt.Errorf("failed to add params field: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/analyze", body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, serverError(resp)
	}

	var report models.AnalysisReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, fmt.Errorf("malformed response body: %w", err)
	}
	if report.Summary == "" {
		return nil, errors.New("malformed response: missing summary")
	}

	return &report, nil
}

// serverError derives a failure message from a non-2xx response. The
// backend's structured error message is appended when the body carries one.
func serverError(resp *http.Response) error {
	msg := fmt.Sprintf("server error: %d", resp.StatusCode)

	var apiErr struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&apiErr); err == nil && apiErr.Message != "" {
		msg += ": " + apiErr.Message
	}

	return errors.New(msg)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, `\"`)

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
