package main

import (
	"context"
	"log"
	"os"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/honeycarbs/gradnex/internal/config"
	"github.com/honeycarbs/gradnex/internal/server"
	"github.com/honeycarbs/gradnex/pkg/logging"
	"github.com/honeycarbs/gradnex/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = logger.Sync() }()

	if !logger.Enabled("debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	srv, cleanup, err := server.InitializeServer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize server", "err", err)
		os.Exit(1)
	}
	release := sync.OnceFunc(cleanup)
	defer release()

	// HTTP first so in-flight searches can still record to Neo4j and Redis
	go shutdown.Graceful(
		[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
		10*time.Second,
		logger,
		srv,
		shutdown.StopFunc(func(context.Context) error {
			release()
			return nil
		}),
	)

	logger.Info("gateway initialized and starting",
		"addr", srv.Addr(),
		"adzuna", cfg.HasAdzuna(),
		"remoteok", cfg.RemoteOK.Enabled,
		"jsearch", cfg.HasJSearch(),
		"ai", cfg.HasAI(),
		"neo4j", cfg.HasNeo4j(),
		"redis", cfg.HasRedis(),
		"sheets", cfg.HasSheets(),
	)

	if err := srv.Run(); err != nil {
		logger.Error("gateway exited with error", "err", err)
	} else {
		logger.Info("gateway stopped")
	}
}
