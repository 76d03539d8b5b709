package shutdown

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/honeycarbs/gradnex/pkg/logging"
)

type Stoppable interface {
	Shutdown(ctx context.Context) error
}

// StopFunc adapts a plain function to Stoppable
type StopFunc func(ctx context.Context) error

func (f StopFunc) Shutdown(ctx context.Context) error {
	return f(ctx)
}

// Graceful blocks until one of signals arrives, then stops each of targets
// in order, sharing a single timeout
func Graceful(signals []os.Signal, timeout time.Duration, log *logging.Logger, targets ...Stoppable) {
	sigCtx, stop := signal.NotifyContext(context.Background(), signals...)
	defer stop()

	<-sigCtx.Done()
	log.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	Stop(ctx, log, targets...)
}

// Stop shuts targets down in order and reports the first error
func Stop(ctx context.Context, log *logging.Logger, targets ...Stoppable) error {
	var first error
	for _, s := range targets {
		if s == nil {
			continue
		}
		if err := s.Shutdown(ctx); err != nil {
			log.Warn("graceful shutdown completed with error", "err", err)
			if first == nil {
				first = err
			}
		}
	}

	if first == nil {
		log.Info("graceful shutdown completed successfully")
	}
	return first
}
