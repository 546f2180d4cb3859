package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/pdf-whisperer/backend/internal/api"
	"github.com/pdf-whisperer/backend/internal/config"
	"github.com/pdf-whisperer/backend/internal/extract"
	"github.com/pdf-whisperer/backend/internal/history"
	"github.com/pdf-whisperer/backend/internal/logging"
	"github.com/pdf-whisperer/backend/internal/ollama"
)

// Version info (set during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// .env is optional; environment variables win over the YAML file.
	if err := godotenv.Load(); err == nil {
		fmt.Println("Loaded environment from .env")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "pdfwhisperer.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logging.Init(cfg.Logging)

	llm, err := ollama.New(cfg.Ollama.Host, cfg.Analysis.MaxChars*2)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize ollama client")
	}

	hist := history.NewManager(cfg.Analysis.HistoryLimit)

	// Background cleanup of stale history records
	go func() {
		interval := time.Duration(cfg.Analysis.CleanupPeriod) * time.Minute
		if interval <= 0 {
			interval = 5 * time.Minute
		}
		maxAge := time.Duration(cfg.Analysis.HistoryMaxAge) * time.Minute
		if maxAge <= 0 {
			maxAge = 4 * time.Hour
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			if removed := hist.CleanupOld(maxAge); removed > 0 {
				logrus.Debugf("cleaned up %d stale history records", removed)
			}
		}
	}()

	h := api.NewHandler(cfg, hist, llm, extract.New(), Version)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = api.ErrorHandler

	// Configure middleware
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			if !cfg.Server.EnableRequestLogging {
				return true
			}
			path := c.Request().URL.Path
			return path == "/" || path == "/health"
		},
	}))

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize:         1024 * 4,
		DisablePrintStack: false,
	}))

	// The analyze call spans the full server-side inference time, so the
	// per-request timeout must be generous.
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: time.Duration(cfg.Analysis.TimeoutSeconds) * time.Second,
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			return path == "/" || path == "/health"
		},
		ErrorMessage: "Request timeout - analysis took too long",
	}))

	// Body limit middleware
	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// CORS for the browser frontend
	if cfg.Server.EnableCORS {
		origins := strings.Split(cfg.Server.AllowOrigins, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		if len(origins) == 0 || (len(origins) == 1 && origins[0] == "") {
			origins = []string{"*"}
		}
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: origins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		}))
	}

	api.RegisterRoutes(e, h)

	s := &http.Server{
		Addr:         cfg.GetServerAddr(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	logrus.WithFields(logrus.Fields{
		"version":    Version,
		"build_time": BuildTime,
		"listen":     cfg.GetServerAddr(),
		"ollama":     cfg.Ollama.Host,
		"model":      cfg.Ollama.Model,
	}).Info("PDF Whisperer backend starting")

	e.Logger.Fatal(e.StartServer(s))
}
