package models

import (
	"encoding/json"
	"fmt"
)

// Analysis types accepted by the analysisType parameter.
const (
	AnalysisTypeSummary    = "summary"
	AnalysisTypeDetailed   = "detailed"
	AnalysisTypeExtraction = "extraction"
	AnalysisTypeCustom     = "custom"
)

// AnalysisParameters is the configuration bag filled in by the frontend's
// parameter form. Every field is optional; nil means "not set" and the
// field is omitted from the encoded form. The zero value encodes as "{}".
type AnalysisParameters struct {
	Precision        *int     `json:"precision,omitempty"`
	Language         *string  `json:"language,omitempty"`
	AnalysisType     *string  `json:"analysisType,omitempty"`
	ExtractTables    *bool    `json:"extractTables,omitempty"`
	ExtractImages    *bool    `json:"extractImages,omitempty"`
	GenerateKeywords *bool    `json:"generateKeywords,omitempty"`
	StructuredOutput *bool    `json:"structuredOutput,omitempty"`
	Temperature      *float64 `json:"temperature,omitempty"`
}

// Merge sets a single parameter by its wire key, preserving all previously
// set fields. Unknown keys and values of the wrong type are rejected.
func (p *AnalysisParameters) Merge(key string, value interface{}) error {
	switch key {
	case "precision":
		n, ok := toInt(value)
		if !ok {
			return fmt.Errorf("precision must be an integer, got %T", value)
		}
		if n < 1 || n > 10 {
			return fmt.Errorf("precision must be between 1 and 10, got %d", n)
		}
		p.Precision = &n
	case "language":
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("language must be a string, got %T", value)
		}
		p.Language = &s
	case "analysisType":
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("analysisType must be a string, got %T", value)
		}
		if !validAnalysisType(s) {
			return fmt.Errorf("unknown analysisType: %q", s)
		}
		p.AnalysisType = &s
	case "extractTables":
		return mergeBool(&p.ExtractTables, key, value)
	case "extractImages":
		return mergeBool(&p.ExtractImages, key, value)
	case "generateKeywords":
		return mergeBool(&p.GenerateKeywords, key, value)
	case "structuredOutput":
		return mergeBool(&p.StructuredOutput, key, value)
	case "temperature":
		f, ok := toFloat(value)
		if !ok {
			return fmt.Errorf("temperature must be a number, got %T", value)
		}
		if f < 0 || f > 1 {
			return fmt.Errorf("temperature must be between 0 and 1, got %g", f)
		}
		p.Temperature = &f
	default:
		return fmt.Errorf("unknown parameter: %q", key)
	}
	return nil
}

// Validate checks range constraints on decoded parameters. Merge already
// enforces these; Validate covers parameters that arrived as raw JSON.
func (p *AnalysisParameters) Validate() error {
	if p.Precision != nil && (*p.Precision < 1 || *p.Precision > 10) {
		return fmt.Errorf("precision must be between 1 and 10, got %d", *p.Precision)
	}
	if p.Temperature != nil && (*p.Temperature < 0 || *p.Temperature > 1) {
		return fmt.Errorf("temperature must be between 0 and 1, got %g", *p.Temperature)
	}
	if p.AnalysisType != nil && !validAnalysisType(*p.AnalysisType) {
		return fmt.Errorf("unknown analysisType: %q", *p.AnalysisType)
	}
	return nil
}

// Encode renders the parameters as the JSON string carried in the "params"
// multipart field.
func (p AnalysisParameters) Encode() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to encode parameters: %w", err)
	}
	return string(data), nil
}

func validAnalysisType(s string) bool {
	switch s {
	case AnalysisTypeSummary, AnalysisTypeDetailed, AnalysisTypeExtraction, AnalysisTypeCustom:
		return true
	}
	return false
}

func mergeBool(dst **bool, key string, value interface{}) error {
	b, ok := value.(bool)
	if !ok {
		return fmt.Errorf("%s must be a boolean, got %T", key, value)
	}
	*dst = &b
	return nil
}

// toInt accepts int directly and float64 for values decoded from JSON.
func toInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}
		return int(v), true
	}
	return 0, false
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}
