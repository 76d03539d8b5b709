package config

import (
	"strings"
	"testing"
	"time"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(envFrom(nil))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}

	if cfg.Port != "5000" || cfg.Host != "0.0.0.0" {
		t.Errorf("listen address = %s:%s, want 0.0.0.0:5000", cfg.Host, cfg.Port)
	}
	if cfg.ProviderTimeout != 8*time.Second {
		t.Errorf("ProviderTimeout = %s, want 8s", cfg.ProviderTimeout)
	}
	if cfg.Adzuna.Country != "in" {
		t.Errorf("Adzuna.Country = %q, want in", cfg.Adzuna.Country)
	}
	if !cfg.RemoteOK.Enabled {
		t.Error("RemoteOK should be enabled by default")
	}
	if cfg.JSearch.Host != "jsearch.p.rapidapi.com" {
		t.Errorf("JSearch.Host = %q", cfg.JSearch.Host)
	}
	if cfg.HasAdzuna() || cfg.HasJSearch() || cfg.HasAI() || cfg.HasNeo4j() || cfg.HasRedis() || cfg.HasSheets() {
		t.Error("no integration should be enabled without credentials")
	}
}

func TestFromEnvCredentials(t *testing.T) {
	cfg, err := FromEnv(envFrom(map[string]string{
		"ADZUNA_APP_ID":    "id",
		"ADZUNA_API_KEY":   "key",
		"RAPIDAPI_KEY":     "rapid",
		"AI_API_KEY":       "gem",
		"PROVIDER_TIMEOUT": "3s",
		"PROVIDER_RPS":     "2.5",
		"REMOTEOK_ENABLED": "false",
	}))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}

	if !cfg.HasAdzuna() {
		t.Error("ADZUNA_API_KEY should be accepted as the app key")
	}
	if !cfg.HasJSearch() || !cfg.HasAI() {
		t.Error("expected JSearch and AI to be enabled")
	}
	if cfg.ProviderTimeout != 3*time.Second || cfg.ProviderRPS != 2.5 {
		t.Errorf("timeout/rps = %s/%v", cfg.ProviderTimeout, cfg.ProviderRPS)
	}
	if cfg.RemoteOK.Enabled {
		t.Error("RemoteOK should be disabled")
	}
}

func TestFromEnvPlaceholderGeminiKey(t *testing.T) {
	cfg, err := FromEnv(envFrom(map[string]string{"AI_API_KEY": "your_gemini_api_key"}))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.HasAI() {
		t.Error("placeholder key must not enable the AI backend")
	}
}

func TestFromEnvOpenRouterBackend(t *testing.T) {
	cfg, err := FromEnv(envFrom(map[string]string{
		"AI_BACKEND":         "OpenRouter",
		"AI_API_KEY":         "gem",
		"OPENROUTER_API_KEY": "",
	}))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.HasAI() {
		t.Error("openrouter backend needs OPENROUTER_API_KEY")
	}
}

func TestFromEnvInvalidValues(t *testing.T) {
	_, err := FromEnv(envFrom(map[string]string{
		"PROVIDER_TIMEOUT": "soon",
		"PROVIDER_RPS":     "-1",
		"AI_BACKEND":       "llama",
	}))
	if err == nil {
		t.Fatal("expected error for invalid values")
	}
	for _, name := range []string{"PROVIDER_TIMEOUT", "PROVIDER_RPS", "AI_BACKEND"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not mention %s", err, name)
		}
	}
}
