// Package config provides YAML-based configuration for the PDF Whisperer backend.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/pdf-whisperer/backend/internal/models"
)

// AppConfig is the root configuration structure.
type AppConfig struct {
	Server   ServerConfig       `yaml:"server"`
	Ollama   OllamaConfig       `yaml:"ollama"`
	Analysis AnalysisConfig     `yaml:"analysis"`
	Models   []models.ModelInfo `yaml:"models"`
	Logging  LoggingConfig      `yaml:"logging"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port                 int    `yaml:"port"`
	BindAddress          string `yaml:"bind_address"`
	EnableCORS           bool   `yaml:"enable_cors"`
	AllowOrigins         string `yaml:"allow_origins"`
	ReadTimeout          int    `yaml:"read_timeout_seconds"`
	WriteTimeout         int    `yaml:"write_timeout_seconds"`
	IdleTimeout          int    `yaml:"idle_timeout_seconds"`
	BodyLimit            string `yaml:"body_limit"`
	EnableRequestLogging bool   `yaml:"enable_request_logging"`
}

// OllamaConfig locates the Ollama host and the fallback model.
type OllamaConfig struct {
	Host  string `yaml:"host"`
	Model string `yaml:"model"`
}

// AnalysisConfig contains analysis tuning settings.
type AnalysisConfig struct {
	MaxChars       int `yaml:"max_chars"`
	MaxConcurrent  int `yaml:"max_concurrent"`
	TimeoutSeconds int `yaml:"timeout_seconds"`
	HistoryLimit   int `yaml:"history_limit"`
	HistoryMaxAge  int `yaml:"history_max_age_minutes"`
	CleanupPeriod  int `yaml:"cleanup_interval_minutes"`
}

// LoggingConfig defines the logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:                 8000,
			BindAddress:          "0.0.0.0",
			EnableCORS:           true,
			AllowOrigins:         "*",
			ReadTimeout:          60,
			WriteTimeout:         360,
			IdleTimeout:          120,
			BodyLimit:            "50M",
			EnableRequestLogging: true,
		},
		Ollama: OllamaConfig{
			Host:  "http://localhost:11434",
			Model: "llama3",
		},
		Analysis: AnalysisConfig{
			MaxChars:       15000,
			MaxConcurrent:  3,
			TimeoutSeconds: 300,
			HistoryLimit:   50,
			HistoryMaxAge:  240,
			CleanupPeriod:  5,
		},
		Models: []models.ModelInfo{
			{ID: "llama3", Name: "Llama 3 8B"},
			{ID: "llama-3.1-8b", Name: "Llama 3.1 8B"},
			{ID: "mistral", Name: "Mistral 7B"},
			{ID: "phi3", Name: "Phi-3 Mini"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
	}
}

// LoadConfig loads configuration from a YAML file. If the file does not
// exist, the defaults are written there so the deployment has a file to edit.
func LoadConfig(configPath string) (*AppConfig, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := DefaultConfig()
		if err := config.Save(configPath); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		config.applyEnvironmentOverrides()
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyEnvironmentOverrides()

	return config, nil
}

// Save writes the configuration to a YAML file.
func (c *AppConfig) Save(configPath string) error {
	output, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte("# PDF Whisperer backend configuration\n# This file is auto-generated on first run\n\n")
	content := append(header, output...)

	if err := os.WriteFile(configPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyEnvironmentOverrides allows environment variables to override config
// values. The names match the original deployment's .env surface.
func (c *AppConfig) applyEnvironmentOverrides() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("OLLAMA_HOST"); host != "" {
		c.Ollama.Host = host
	}

	if model := os.Getenv("OLLAMA_MODEL"); model != "" {
		c.Ollama.Model = model
	}

	if maxChars := os.Getenv("OLLAMA_MAX_CHARS"); maxChars != "" {
		if n, err := strconv.Atoi(maxChars); err == nil {
			c.Analysis.MaxChars = n
		}
	}
}

// GetServerAddr returns the server bind address.
func (c *AppConfig) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.BindAddress, c.Server.Port)
}
