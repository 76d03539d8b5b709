//go:build wireinject
// +build wireinject

package server

import (
	"context"

	"github.com/google/wire"

	"github.com/honeycarbs/gradnex/internal/api"
	"github.com/honeycarbs/gradnex/internal/config"
	"github.com/honeycarbs/gradnex/internal/domain/resume"
	"github.com/honeycarbs/gradnex/internal/mcp"
	"github.com/honeycarbs/gradnex/pkg/logging"
)

// InitializeServer creates the gateway with every configured integration wired up
func InitializeServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Server, func(), error) {
	wire.Build(
		// Infrastructure
		provideNeo4jClient,
		provideRedisClient,

		// Repositories and event sinks
		provideSearchHistory,
		provideRecorder,

		// Job search
		provideJobProviders,
		provideProviderTimeout,
		provideJobService,

		// Resume rewriting
		provideGenerator,
		resume.NewService,

		// MCP tool resources
		provideSheetsExporter,
		wire.Struct(new(mcp.Resources), "*"),

		// HTTP
		provideAPIDeps,
		api.NewRouter,
		NewServer,
	)

	return &Server{}, nil, nil
}
