package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const placeholderGeminiKey = "your_gemini_api_key"

// Config contains runtime settings for the gateway. Every integration is
// optional; an absent credential simply disables the component that needs it.
type Config struct {
	LogLevel  string
	LogFormat string // json or console
	Host      string // default 0.0.0.0
	Port      string // default PORT env or 5000

	ProviderTimeout time.Duration // per-provider deadline during fan-out
	ProviderRPS     float64       // outbound requests per second per provider

	Adzuna struct {
		AppID   string
		AppKey  string
		Country string
		BaseURL string
	}
	RemoteOK struct {
		Enabled bool
		BaseURL string
	}
	JSearch struct {
		APIKey  string
		Host    string
		BaseURL string
	}
	AI struct {
		Backend       string // gemini or openrouter
		APIKey        string
		OpenRouterKey string
		Model         string
	}
	Neo4j struct {
		URI      string
		Username string
		Password string
		Database string
	}
	Redis struct {
		URL     string
		Channel string
	}
	Sheets struct {
		CredentialsPath string
	}
}

// Load populates config from environment variables, seeding them from a
// .env file in the working directory when one exists
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from an environment lookup function
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		LogLevel:        "info",
		LogFormat:       "json",
		Host:            "0.0.0.0",
		Port:            "5000",
		ProviderTimeout: 8 * time.Second,
		ProviderRPS:     5,
	}

	if v := getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv("LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := getenv("HOST"); v != "" {
		cfg.Host = v
	}
	if v := getenv("PORT"); v != "" {
		cfg.Port = v
	}

	var problems []string

	if v := getenv("PROVIDER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			problems = append(problems, fmt.Sprintf("PROVIDER_TIMEOUT must be a positive duration, got %q", v))
		} else {
			cfg.ProviderTimeout = d
		}
	}
	if v := getenv("PROVIDER_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil || rps <= 0 {
			problems = append(problems, fmt.Sprintf("PROVIDER_RPS must be a positive number, got %q", v))
		} else {
			cfg.ProviderRPS = rps
		}
	}

	cfg.Adzuna.AppID = getenv("ADZUNA_APP_ID")
	cfg.Adzuna.AppKey = firstNonEmpty(getenv("ADZUNA_APP_KEY"), getenv("ADZUNA_API_KEY"))
	cfg.Adzuna.Country = firstNonEmpty(getenv("ADZUNA_COUNTRY"), "in")
	cfg.Adzuna.BaseURL = getenv("ADZUNA_BASE_URL")

	cfg.RemoteOK.Enabled = true
	if v := getenv("REMOTEOK_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			problems = append(problems, fmt.Sprintf("REMOTEOK_ENABLED must be a boolean, got %q", v))
		} else {
			cfg.RemoteOK.Enabled = enabled
		}
	}
	cfg.RemoteOK.BaseURL = getenv("REMOTEOK_BASE_URL")

	cfg.JSearch.APIKey = getenv("RAPIDAPI_KEY")
	cfg.JSearch.Host = firstNonEmpty(getenv("RAPIDAPI_HOST"), "jsearch.p.rapidapi.com")
	cfg.JSearch.BaseURL = getenv("JSEARCH_BASE_URL")

	cfg.AI.Backend = strings.ToLower(firstNonEmpty(getenv("AI_BACKEND"), "gemini"))
	cfg.AI.APIKey = getenv("AI_API_KEY")
	if cfg.AI.APIKey == placeholderGeminiKey {
		cfg.AI.APIKey = ""
	}
	cfg.AI.OpenRouterKey = getenv("OPENROUTER_API_KEY")
	cfg.AI.Model = getenv("AI_MODEL")
	switch cfg.AI.Backend {
	case "gemini", "openrouter":
	default:
		problems = append(problems, fmt.Sprintf("AI_BACKEND must be gemini or openrouter, got %q", cfg.AI.Backend))
	}

	cfg.Neo4j.URI = getenv("NEO4J_URI")
	cfg.Neo4j.Username = getenv("NEO4J_USERNAME")
	cfg.Neo4j.Password = getenv("NEO4J_PASSWORD")
	cfg.Neo4j.Database = getenv("NEO4J_DATABASE")

	cfg.Redis.URL = getenv("REDIS_URL")
	cfg.Redis.Channel = firstNonEmpty(getenv("REDIS_CHANNEL"), "EVENT_JOB_SEARCH")

	cfg.Sheets.CredentialsPath = getenv("GOOGLE_SHEETS_CREDENTIALS_PATH")

	if len(problems) > 0 {
		return cfg, fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}

	return cfg, nil
}

// HasAdzuna reports whether Adzuna credentials are present
func (c Config) HasAdzuna() bool {
	return c.Adzuna.AppID != "" && c.Adzuna.AppKey != ""
}

// HasJSearch reports whether a RapidAPI key is present
func (c Config) HasJSearch() bool {
	return c.JSearch.APIKey != ""
}

// HasAI reports whether the selected generative backend has a key
func (c Config) HasAI() bool {
	if c.AI.Backend == "openrouter" {
		return c.AI.OpenRouterKey != ""
	}
	return c.AI.APIKey != ""
}

// HasNeo4j reports whether search history should be written to Neo4j
func (c Config) HasNeo4j() bool {
	return c.Neo4j.URI != ""
}

// HasRedis reports whether search events should be published to Redis
func (c Config) HasRedis() bool {
	return c.Redis.URL != ""
}

// HasSheets reports whether Google Sheets export is available
func (c Config) HasSheets() bool {
	return c.Sheets.CredentialsPath != ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
