package server

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/honeycarbs/gradnex/internal/api"
	"github.com/honeycarbs/gradnex/internal/config"
	"github.com/honeycarbs/gradnex/internal/domain/job"
	adzunaProvider "github.com/honeycarbs/gradnex/internal/domain/job/providers/adzuna"
	jsearchProvider "github.com/honeycarbs/gradnex/internal/domain/job/providers/jsearch"
	remoteokProvider "github.com/honeycarbs/gradnex/internal/domain/job/providers/remoteok"
	"github.com/honeycarbs/gradnex/internal/domain/resume"
	"github.com/honeycarbs/gradnex/internal/mcp"
	"github.com/honeycarbs/gradnex/internal/mcp/tools"
	"github.com/honeycarbs/gradnex/internal/repository"
	storage "github.com/honeycarbs/gradnex/internal/storage/neo4j"
	redisstore "github.com/honeycarbs/gradnex/internal/storage/redis"
	"github.com/honeycarbs/gradnex/pkg/adzuna"
	"github.com/honeycarbs/gradnex/pkg/gemini"
	"github.com/honeycarbs/gradnex/pkg/jsearch"
	"github.com/honeycarbs/gradnex/pkg/logging"
	n4j "github.com/honeycarbs/gradnex/pkg/neo4j"
	"github.com/honeycarbs/gradnex/pkg/openrouter"
	"github.com/honeycarbs/gradnex/pkg/remoteok"
	sheetsclient "github.com/honeycarbs/gradnex/pkg/sheets"
)

const limiterBurst = 5

// ProviderTimeout is the per-provider deadline used by the job service
type ProviderTimeout time.Duration

func provideProviderTimeout(cfg config.Config) ProviderTimeout {
	return ProviderTimeout(cfg.ProviderTimeout)
}

func provideJobService(providers []job.Provider, recorder job.Recorder, logger *logging.Logger, timeout ProviderTimeout) (job.Service, error) {
	return job.NewServiceWithDeps(providers, recorder, logger, time.Duration(timeout))
}

func newLimiter(rps float64) *rate.Limiter {
	if rps <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(rps), limiterBurst)
}

// provideJobProviders builds a provider for every board with credentials.
// Boards without credentials are left out rather than failing at request time.
func provideJobProviders(cfg config.Config, logger *logging.Logger) ([]job.Provider, error) {
	var providers []job.Provider

	if cfg.HasAdzuna() {
		client, err := adzuna.NewClient(adzuna.Config{
			AppID:   cfg.Adzuna.AppID,
			AppKey:  cfg.Adzuna.AppKey,
			Country: cfg.Adzuna.Country,
			BaseURL: cfg.Adzuna.BaseURL,
			Limiter: newLimiter(cfg.ProviderRPS),
		})
		if err != nil {
			return nil, err
		}
		p, err := adzunaProvider.NewProvider(client)
		if err != nil {
			return nil, err
		}
		providers = append(providers, p)
		logger.Info("Adzuna provider initialized", "country", cfg.Adzuna.Country)
	} else {
		logger.Warn("Adzuna credentials missing, provider disabled")
	}

	if cfg.RemoteOK.Enabled {
		client := remoteok.NewClient(remoteok.Config{
			BaseURL: cfg.RemoteOK.BaseURL,
			Limiter: newLimiter(cfg.ProviderRPS),
		})
		p, err := remoteokProvider.NewProvider(client)
		if err != nil {
			return nil, err
		}
		providers = append(providers, p)
		logger.Info("RemoteOK provider initialized")
	}

	if cfg.HasJSearch() {
		client, err := jsearch.NewClient(jsearch.Config{
			APIKey:  cfg.JSearch.APIKey,
			Host:    cfg.JSearch.Host,
			BaseURL: cfg.JSearch.BaseURL,
			Limiter: newLimiter(cfg.ProviderRPS),
		})
		if err != nil {
			return nil, err
		}
		p, err := jsearchProvider.NewProvider(client)
		if err != nil {
			return nil, err
		}
		providers = append(providers, p)
		logger.Info("JSearch provider initialized", "host", cfg.JSearch.Host)
	} else {
		logger.Warn("RapidAPI key missing, JSearch provider disabled")
	}

	return providers, nil
}

func provideNeo4jClient(ctx context.Context, cfg config.Config, logger *logging.Logger) (*n4j.Client, func(), error) {
	if !cfg.HasNeo4j() {
		return nil, func() {}, nil
	}

	client, err := n4j.NewClient(ctx, n4j.Config{
		URI:      cfg.Neo4j.URI,
		Username: cfg.Neo4j.Username,
		Password: cfg.Neo4j.Password,
		Database: cfg.Neo4j.Database,
	})
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Neo4j client initialized", "uri", cfg.Neo4j.URI)

	cleanup := func() {
		if err := client.Close(context.Background()); err != nil {
			logger.Warn("failed to close Neo4j driver", "err", err)
		}
	}
	return client, cleanup, nil
}

func provideSearchHistory(client *n4j.Client) repository.SearchHistoryRepository {
	if client == nil {
		return nil
	}
	return storage.NewSearchHistoryRepository(client)
}

func provideRedisClient(ctx context.Context, cfg config.Config, logger *logging.Logger) (*goredis.Client, func(), error) {
	if !cfg.HasRedis() {
		return nil, func() {}, nil
	}

	client, err := redisstore.NewClient(ctx, cfg.Redis.URL)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Redis client initialized", "channel", cfg.Redis.Channel)

	cleanup := func() {
		if err := client.Close(); err != nil {
			logger.Warn("failed to close Redis client", "err", err)
		}
	}
	return client, cleanup, nil
}

// provideRecorder fans search events out to every configured sink
func provideRecorder(cfg config.Config, history repository.SearchHistoryRepository, rdb *goredis.Client) job.Recorder {
	var recorders job.MultiRecorder
	if history != nil {
		recorders = append(recorders, history)
	}
	if rdb != nil {
		recorders = append(recorders, redisstore.NewPublisher(rdb, cfg.Redis.Channel))
	}
	if len(recorders) == 0 {
		return job.NopRecorder{}
	}
	return recorders
}

func provideGenerator(ctx context.Context, cfg config.Config, logger *logging.Logger) (resume.Generator, func(), error) {
	if !cfg.HasAI() {
		logger.Warn("no generative backend configured, resume rewrites return input unchanged")
		return nil, func() {}, nil
	}

	if cfg.AI.Backend == "openrouter" {
		client, err := openrouter.NewClient(openrouter.Config{
			APIKey: cfg.AI.OpenRouterKey,
			Model:  cfg.AI.Model,
		})
		if err != nil {
			return nil, nil, err
		}
		logger.Info("OpenRouter backend initialized")
		return client, func() {}, nil
	}

	client, err := gemini.NewClient(ctx, gemini.Config{
		APIKey: cfg.AI.APIKey,
		Model:  cfg.AI.Model,
	})
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Gemini backend initialized")

	cleanup := func() {
		if err := client.Close(); err != nil {
			logger.Warn("failed to close Gemini client", "err", err)
		}
	}
	return client, cleanup, nil
}

func provideSheetsExporter(ctx context.Context, cfg config.Config, logger *logging.Logger) (tools.SheetsExporter, error) {
	if !cfg.HasSheets() {
		return nil, nil
	}

	client, err := sheetsclient.NewClient(ctx, sheetsclient.Config{
		CredentialsPath: cfg.Sheets.CredentialsPath,
	})
	if err != nil {
		return nil, err
	}
	logger.Info("Google Sheets client initialized")

	return mcp.NewSheetsExporter(client), nil
}

func provideAPIDeps(jobs job.Service, resumeSvc *resume.Service, res mcp.Resources, logger *logging.Logger) api.Deps {
	return api.Deps{
		Jobs:   jobs,
		Resume: resumeSvc,
		MCP:    mcp.NewHandler(mcp.NewServer(logger, res)),
	}
}
