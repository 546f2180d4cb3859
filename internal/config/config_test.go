package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pdfwhisperer.yaml")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected default config file to be written: %v", err)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", cfg.Server.Port)
	}
	if cfg.Ollama.Host != "http://localhost:11434" {
		t.Errorf("unexpected default ollama host: %s", cfg.Ollama.Host)
	}
	if len(cfg.Models) == 0 {
		t.Error("expected a default model list")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pdfwhisperer.yaml")
	content := []byte("server:\n  port: 9100\nollama:\n  model: mistral\nanalysis:\n  max_chars: 500\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("expected port 9100, got %d", cfg.Server.Port)
	}
	if cfg.Ollama.Model != "mistral" {
		t.Errorf("expected model mistral, got %s", cfg.Ollama.Model)
	}
	if cfg.Analysis.MaxChars != 500 {
		t.Errorf("expected max_chars 500, got %d", cfg.Analysis.MaxChars)
	}
	// Unset sections keep their defaults.
	if cfg.Analysis.MaxConcurrent != 3 {
		t.Errorf("expected default max_concurrent 3, got %d", cfg.Analysis.MaxConcurrent)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "8123")
	t.Setenv("OLLAMA_MODEL", "phi3")
	t.Setenv("OLLAMA_MAX_CHARS", "9000")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "pdfwhisperer.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != 8123 {
		t.Errorf("expected PORT override 8123, got %d", cfg.Server.Port)
	}
	if cfg.Ollama.Model != "phi3" {
		t.Errorf("expected OLLAMA_MODEL override phi3, got %s", cfg.Ollama.Model)
	}
	if cfg.Analysis.MaxChars != 9000 {
		t.Errorf("expected OLLAMA_MAX_CHARS override 9000, got %d", cfg.Analysis.MaxChars)
	}
}

func TestGetServerAddr(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.BindAddress = "127.0.0.1"
	cfg.Server.Port = 8000

	if addr := cfg.GetServerAddr(); addr != "127.0.0.1:8000" {
		t.Errorf("unexpected server addr: %s", addr)
	}
}
