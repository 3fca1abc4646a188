// ABOUTME: Configuration loader for the disk advisor service
// ABOUTME: Loads settings from environment variables with defaults

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Server
	Port               string
	CacheTTL           int      // seconds, for LLM response caching
	CORSAllowedOrigins []string // allowed CORS origins (empty = allow all; the API is read-only)

	// Catalog documents, loaded once at startup
	MachineCatalogPath string
	DiskCatalogPath    string

	// LLM providers (optional; explanation endpoints degrade to 503 without one)
	AnthropicAPIKey string
	GeminiAPIKey    string
	LLMModel        string
	LLMTimeout      int // seconds, caller-side bound on each generation call

	// Rate Limiting
	RateLimitEnabled bool // Enable rate limiting (default: true)
	RateLimitLLM     int  // Requests per minute for LLM endpoints (default: 10)
	RateLimitDefault int  // Requests per minute for all other endpoints (default: 100)
}

// LLMConfigured returns true if a credential for any provider is set.
func (c *Config) LLMConfigured() bool {
	return c.AnthropicAPIKey != "" || c.GeminiAPIKey != ""
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		CacheTTL:           getEnvInt("CACHE_TTL", 300),
		CORSAllowedOrigins: getEnvStringList("CORS_ALLOWED_ORIGINS"),

		MachineCatalogPath: getEnv("MACHINE_CATALOG", "data/machines.json"),
		DiskCatalogPath:    getEnv("DISK_CATALOG", "data/disks.json"),

		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		LLMModel:        os.Getenv("LLM_MODEL"),
		LLMTimeout:      getEnvInt("LLM_TIMEOUT", 30),

		RateLimitEnabled: getEnvBool("RATE_LIMIT_ENABLED", true),
		RateLimitLLM:     getEnvInt("RATE_LIMIT_LLM", 10),
		RateLimitDefault: getEnvInt("RATE_LIMIT_DEFAULT", 100),
	}

	if cfg.MachineCatalogPath == "" {
		return nil, fmt.Errorf("MACHINE_CATALOG cannot be empty")
	}
	if cfg.DiskCatalogPath == "" {
		return nil, fmt.Errorf("DISK_CATALOG cannot be empty")
	}
	if cfg.CacheTTL < 0 {
		return nil, fmt.Errorf("CACHE_TTL must be non-negative, got %d", cfg.CacheTTL)
	}
	if cfg.LLMTimeout < 1 || cfg.LLMTimeout > 600 {
		return nil, fmt.Errorf("LLM_TIMEOUT must be between 1 and 600 seconds, got %d", cfg.LLMTimeout)
	}

	for _, rl := range []struct {
		name  string
		value int
	}{
		{"RATE_LIMIT_LLM", cfg.RateLimitLLM},
		{"RATE_LIMIT_DEFAULT", cfg.RateLimitDefault},
	} {
		if rl.value < 1 || rl.value > 10000 {
			return nil, fmt.Errorf("%s must be between 1 and 10000, got %d", rl.name, rl.value)
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvStringList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
