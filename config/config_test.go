package config

import "testing"

func clearEnv(t *testing.T) {
	t.Helper()
	vars := []string{
		"PORT", "CACHE_TTL", "CORS_ALLOWED_ORIGINS",
		"MACHINE_CATALOG", "DISK_CATALOG",
		"ANTHROPIC_API_KEY", "GEMINI_API_KEY", "LLM_MODEL", "LLM_TIMEOUT",
		"RATE_LIMIT_ENABLED", "RATE_LIMIT_LLM", "RATE_LIMIT_DEFAULT",
	}
	for _, v := range vars {
		t.Setenv(v, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Port)
	}
	if cfg.CacheTTL != 300 {
		t.Errorf("Expected default cache TTL 300, got %d", cfg.CacheTTL)
	}
	if cfg.MachineCatalogPath != "data/machines.json" {
		t.Errorf("Unexpected machine catalog path: %s", cfg.MachineCatalogPath)
	}
	if cfg.LLMTimeout != 30 {
		t.Errorf("Expected default LLM timeout 30, got %d", cfg.LLMTimeout)
	}
	if !cfg.RateLimitEnabled {
		t.Error("Expected rate limiting enabled by default")
	}
	if cfg.RateLimitLLM != 10 || cfg.RateLimitDefault != 100 {
		t.Errorf("Unexpected rate limit defaults: %d/%d", cfg.RateLimitLLM, cfg.RateLimitDefault)
	}
	if cfg.LLMConfigured() {
		t.Error("Expected LLM not configured without keys")
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("CACHE_TTL", "600")
	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Port)
	}
	if cfg.CacheTTL != 600 {
		t.Errorf("Expected cache TTL 600, got %d", cfg.CacheTTL)
	}
	if !cfg.LLMConfigured() {
		t.Error("Expected LLM configured with Anthropic key")
	}
	if cfg.RateLimitEnabled {
		t.Error("Expected rate limiting disabled")
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example.com" {
		t.Errorf("Unexpected CORS origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"negative cache TTL", "CACHE_TTL", "-1"},
		{"zero LLM timeout", "LLM_TIMEOUT", "0"},
		{"excessive LLM timeout", "LLM_TIMEOUT", "601"},
		{"zero LLM rate limit", "RATE_LIMIT_LLM", "0"},
		{"excessive default rate limit", "RATE_LIMIT_DEFAULT", "10001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Expected validation error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestGeminiKeyConfiguresLLM(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.LLMConfigured() {
		t.Error("Expected LLM configured with Gemini key")
	}
}
