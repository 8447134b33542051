package config

import (
	"testing"
	"time"
)

// TestParseIntEnv verifies integer parsing and fallback.
func TestParseIntEnv(t *testing.T) {
	t.Setenv("TEST_INT", "42")

	got, err := parseIntEnv("TEST_INT", 7)
	if err != nil || got != 42 {
		t.Fatalf("expected 42, got %d (%v)", got, err)
	}

	got, err = parseIntEnv("TEST_INT_MISSING", 7)
	if err != nil || got != 7 {
		t.Fatalf("expected fallback 7, got %d (%v)", got, err)
	}

	t.Setenv("TEST_INT", "nope")
	if _, err := parseIntEnv("TEST_INT", 7); err == nil {
		t.Fatal("expected error for non-integer value")
	}
}

// TestParseDurationEnv verifies duration parsing and fallback.
func TestParseDurationEnv(t *testing.T) {
	t.Setenv("TEST_DURATION", "30s")

	got, err := parseDurationEnv("TEST_DURATION", time.Minute)
	if err != nil || got != 30*time.Second {
		t.Fatalf("expected 30s, got %v (%v)", got, err)
	}

	got, err = parseDurationEnv("TEST_DURATION_MISSING", time.Minute)
	if err != nil || got != time.Minute {
		t.Fatalf("expected fallback 1m, got %v (%v)", got, err)
	}
}

// TestResolveAPIKey verifies the legacy key name fallbacks for Gemini.
func TestResolveAPIKey(t *testing.T) {
	t.Setenv("AI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "legacy-key")

	if got := resolveAPIKey("gemini"); got != "legacy-key" {
		t.Fatalf("expected legacy key, got %q", got)
	}
	if got := resolveAPIKey("groq"); got != "" {
		t.Fatalf("expected empty key for groq, got %q", got)
	}

	t.Setenv("GEMINI_API_KEY", "gemini-key")
	if got := resolveAPIKey("gemini"); got != "gemini-key" {
		t.Fatalf("expected gemini key, got %q", got)
	}

	t.Setenv("AI_API_KEY", "primary-key")
	if got := resolveAPIKey("gemini"); got != "primary-key" {
		t.Fatalf("expected primary key, got %q", got)
	}
}

// TestValidateProvider verifies unknown providers are rejected.
func TestValidateProvider(t *testing.T) {
	cfg := Config{
		Server: ServerConfig{Port: 8080},
		AI: AIConfig{
			Provider:           "openai",
			RateLimitPerMinute: 30,
			RateLimitBurst:     10,
			MaxOutputTokens:    2048,
		},
	}

	if err := cfg.validate(); err == nil {
		t.Fatal("expected error for unknown provider")
	}

	cfg.AI.Provider = "groq"
	if err := cfg.validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}
