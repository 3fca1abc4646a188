// ABOUTME: Entry point for the GCP disk advisor backend service
// ABOUTME: Provides HTTP API for machine/disk sizing and bottleneck diagnosis

package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/markalston/gcp-disk-advisor/cache"
	"github.com/markalston/gcp-disk-advisor/config"
	"github.com/markalston/gcp-disk-advisor/handlers"
	"github.com/markalston/gcp-disk-advisor/logger"
	"github.com/markalston/gcp-disk-advisor/middleware"
	"github.com/markalston/gcp-disk-advisor/services"
)

func main() {
	// Load .env if present, then initialize structured logging
	godotenv.Load()
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting GCP Disk Advisor Backend")

	// Load the machine and disk catalogs; reload requires a restart
	catalog, err := services.LoadCatalog(cfg.MachineCatalogPath, cfg.DiskCatalogPath)
	if err != nil {
		slog.Error("Failed to load catalog", "error", err)
		os.Exit(1)
	}
	families, machines, diskTypes := catalog.Counts()
	slog.Info("Catalog loaded", "families", families, "machines", machines, "disk_types", diskTypes)

	// LLM provider is optional; without one the explanation endpoints return 503
	var llm services.TextGenerator
	if cfg.LLMConfigured() {
		llm = newTextGenerator(cfg)
		slog.Info("LLM provider configured", "provider", llm.Provider())
	} else {
		slog.Warn("No LLM credential set, explanation endpoints disabled")
	}

	// Cache for generated LLM text
	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second
	c := cache.New(cacheTTL)
	slog.Info("Cache initialized", "ttl", cacheTTL)

	h := handlers.NewHandler(cfg, catalog, llm, c)

	// Rate limiters per endpoint class; nil disables limiting
	var defaultLimiter, llmLimiter *middleware.RateLimiter
	if cfg.RateLimitEnabled {
		defaultLimiter = middleware.NewRateLimiter(cfg.RateLimitDefault, time.Minute)
		llmLimiter = middleware.NewRateLimiter(cfg.RateLimitLLM, time.Minute)
	}

	mux := http.NewServeMux()
	cors := middleware.CORS(cfg.CORSAllowedOrigins)
	for _, route := range h.Routes() {
		limiter := defaultLimiter
		if route.LLM {
			limiter = llmLimiter
		}
		handler := middleware.Chain(route.Handler, middleware.LogRequest, cors, middleware.Limit(limiter))
		mux.Handle(route.Method+" "+route.Path, handler)
	}

	// Start server
	addr := ":" + cfg.Port
	slog.Info("Server listening", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

// newTextGenerator picks the LLM provider from configured credentials.
// Anthropic wins when both are set.
func newTextGenerator(cfg *config.Config) services.TextGenerator {
	switch {
	case cfg.AnthropicAPIKey != "":
		return services.NewAnthropicGenerator(cfg.AnthropicAPIKey, cfg.LLMModel)
	case cfg.GeminiAPIKey != "":
		return services.NewGeminiGenerator(cfg.GeminiAPIKey, cfg.LLMModel)
	default:
		return nil
	}
}
