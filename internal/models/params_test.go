package models

import (
	"encoding/json"
	"testing"
)

func TestParametersMerge(t *testing.T) {
	var p AnalysisParameters

	if err := p.Merge("precision", 7); err != nil {
		t.Fatalf("merge precision: %v", err)
	}
	if err := p.Merge("language", "fr"); err != nil {
		t.Fatalf("merge language: %v", err)
	}

	encoded, err := p.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal([]byte(encoded), &got); err != nil {
		t.Fatalf("unmarshal encoded params: %v", err)
	}

	want := map[string]interface{}{
		"precision": float64(7),
		"language":  "fr",
	}
	if len(got) != len(want) {
		t.Errorf("expected exactly %d keys, got %v", len(want), got)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("key %s: expected %v, got %v", k, v, got[k])
		}
	}
}

func TestParametersMergeOverride(t *testing.T) {
	var p AnalysisParameters

	if err := p.Merge("precision", 3); err != nil {
		t.Fatalf("merge: %v", err)
	}
	if err := p.Merge("precision", 9); err != nil {
		t.Fatalf("merge override: %v", err)
	}
	if p.Precision == nil || *p.Precision != 9 {
		t.Errorf("expected precision 9, got %v", p.Precision)
	}
}

func TestParametersMergeRejects(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value interface{}
	}{
		{"unknown key", "turbo", true},
		{"precision wrong type", "precision", "seven"},
		{"precision too low", "precision", 0},
		{"precision too high", "precision", 11},
		{"precision fractional", "precision", 2.5},
		{"language wrong type", "language", 42},
		{"analysisType unknown", "analysisType", "psychic"},
		{"bool wrong type", "extractTables", "yes"},
		{"temperature wrong type", "temperature", "hot"},
		{"temperature too high", "temperature", 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p AnalysisParameters
			if err := p.Merge(tt.key, tt.value); err == nil {
				t.Errorf("expected error merging %s=%v", tt.key, tt.value)
			}
			if encoded, _ := p.Encode(); encoded != "{}" {
				t.Errorf("rejected merge must not change parameters, got %s", encoded)
			}
		})
	}
}

func TestParametersMergeJSONNumbers(t *testing.T) {
	// JSON decoding hands over float64 for every number.
	var p AnalysisParameters
	if err := p.Merge("precision", float64(5)); err != nil {
		t.Fatalf("merge float64 precision: %v", err)
	}
	if p.Precision == nil || *p.Precision != 5 {
		t.Errorf("expected precision 5, got %v", p.Precision)
	}
}

func TestParametersEncodeEmpty(t *testing.T) {
	var p AnalysisParameters
	encoded, err := p.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if encoded != "{}" {
		t.Errorf("expected empty parameters to encode as {}, got %s", encoded)
	}
}

func TestParametersValidate(t *testing.T) {
	bad := func(raw string) AnalysisParameters {
		var p AnalysisParameters
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
		return p
	}

	tests := []struct {
		name    string
		params  AnalysisParameters
		wantErr bool
	}{
		{"empty", AnalysisParameters{}, false},
		{"valid", bad(`{"precision":10,"temperature":0.3,"analysisType":"summary"}`), false},
		{"precision out of range", bad(`{"precision":42}`), true},
		{"temperature out of range", bad(`{"temperature":2}`), true},
		{"analysisType unknown", bad(`{"analysisType":"vibes"}`), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}
