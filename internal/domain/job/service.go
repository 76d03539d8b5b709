package job

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/honeycarbs/gradnex/internal/domain"
	"github.com/honeycarbs/gradnex/pkg/logging"
)

const (
	DefaultProviderTimeout = 8 * time.Second
	recordTimeout          = 2 * time.Second
)

type Service interface {
	Search(ctx context.Context, req domain.SearchRequest) (domain.SearchResult, error)
}

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Option configures Service
type Option func(*config)

type config struct {
	providers []Provider
	recorder  Recorder
	logger    *logging.Logger
	shuffler  Shuffler
	timeout   time.Duration
	clock     func() time.Time
}

// WithProviders sets job providers
func WithProviders(providers ...Provider) Option {
	return func(c *config) {
		c.providers = providers
	}
}

// WithRecorder sets the search event recorder
func WithRecorder(r Recorder) Option {
	return func(c *config) {
		c.recorder = r
	}
}

// WithLogger sets the logger
func WithLogger(l *logging.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithRand sets the source used to shuffle merged results
func WithRand(s Shuffler) Option {
	return func(c *config) {
		c.shuffler = s
	}
}

// WithTimeout bounds each provider call
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithClock sets a custom clock
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// NewService builds Service from options. Zero providers is valid: every
// search then succeeds with no jobs.
func NewService(opts ...Option) (Service, error) {
	cfg := &config{
		timeout: DefaultProviderTimeout,
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	for i, p := range cfg.providers {
		if p == nil {
			return nil, fmt.Errorf("job.Service: provider %d is nil", i)
		}
	}
	if cfg.timeout <= 0 {
		return nil, fmt.Errorf("job.Service: provider timeout must be positive, got %s", cfg.timeout)
	}

	s := &service{
		providers: cfg.providers,
		recorder:  cfg.recorder,
		logger:    cfg.logger,
		timeout:   cfg.timeout,
		clock:     cfg.clock,
	}
	if s.recorder == nil {
		s.recorder = NopRecorder{}
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	if cfg.shuffler == nil {
		s.shuffler = globalShuffler{}
	} else {
		s.shuffler = &lockedShuffler{s: cfg.shuffler}
	}

	return s, nil
}

// NewServiceWithDeps creates a Service with direct dependencies (Wire-compatible)
func NewServiceWithDeps(providers []Provider, recorder Recorder, logger *logging.Logger, timeout time.Duration) (Service, error) {
	return NewService(
		WithProviders(providers...),
		WithRecorder(recorder),
		WithLogger(logger),
		WithTimeout(timeout),
	)
}

type service struct {
	providers []Provider
	recorder  Recorder
	logger    *logging.Logger
	shuffler  Shuffler
	timeout   time.Duration
	clock     func() time.Time
}

type outcome struct {
	provider string
	jobs     []domain.JobRecord
	err      error
	elapsed  time.Duration
}

// Search fans the request out to every applicable provider, waits for all of
// them to settle, and returns the shuffled union of their results. Provider
// failures only shrink the result; they never fail the search.
func (s *service) Search(ctx context.Context, req domain.SearchRequest) (domain.SearchResult, error) {
	if err := req.Validate(); err != nil {
		return domain.SearchResult{}, err
	}

	started := s.clock()
	searchID := uuid.New()
	log := s.logger.With("search_id", searchID.String())

	active := s.applicable(req)
	log.Info("job search started",
		"role", req.Role,
		"location", req.Location,
		"type", req.Type,
		"providers", providerNames(active),
	)

	slots := make([]outcome, len(active))
	var wg sync.WaitGroup
	for i, p := range active {
		wg.Add(1)
		go func() {
			defer wg.Done()
			slots[i] = s.fetch(ctx, p, req)
		}()
	}
	wg.Wait()

	var jobs []domain.JobRecord
	outcomes := make([]domain.ProviderOutcome, 0, len(slots))
	for _, o := range slots {
		po := domain.ProviderOutcome{
			Provider: o.provider,
			Count:    len(o.jobs),
			Elapsed:  o.elapsed,
		}
		if o.err != nil {
			po.Count = 0
			po.Error = o.err.Error()
			log.Warn("job provider failed", "provider", o.provider, "err", o.err, "elapsed", o.elapsed)
		} else {
			jobs = append(jobs, o.jobs...)
			log.Debug("job provider finished", "provider", o.provider, "count", len(o.jobs), "elapsed", o.elapsed)
		}
		outcomes = append(outcomes, po)
	}

	s.shuffler.Shuffle(len(jobs), func(i, j int) {
		jobs[i], jobs[j] = jobs[j], jobs[i]
	})

	result := domain.NewSearchResult(jobs)
	elapsed := s.clock().Sub(started)

	log.Info("job search completed", "count", result.Count, "elapsed", elapsed)

	s.record(ctx, log, domain.SearchEvent{
		ID:        searchID,
		Request:   req,
		Providers: outcomes,
		Total:     result.Count,
		StartedAt: started,
		Elapsed:   elapsed,
	})

	return result, nil
}

func (s *service) applicable(req domain.SearchRequest) []Provider {
	active := make([]Provider, 0, len(s.providers))
	for _, p := range s.providers {
		if p.Applicable(req) {
			active = append(active, p)
		}
	}
	return active
}

// fetch runs one provider under its own deadline; a panic counts as that
// provider's failure
func (s *service) fetch(ctx context.Context, p Provider, req domain.SearchRequest) (o outcome) {
	o.provider = p.Name()
	started := s.clock()

	defer func() {
		if r := recover(); r != nil {
			o.jobs = nil
			o.err = fmt.Errorf("provider %s panicked: %v", o.provider, r)
		}
		o.elapsed = s.clock().Sub(started)
	}()

	pctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	jobs, err := p.Search(pctx, req)
	if err != nil {
		return outcome{provider: o.provider, err: err}
	}
	o.jobs = Limit(jobs, PerProviderLimit)
	return o
}

func (s *service) record(ctx context.Context, log *logging.Logger, event domain.SearchEvent) {
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	if err := s.recorder.RecordSearch(rctx, event); err != nil {
		log.Warn("failed to record search event", "err", err)
	}
}

func providerNames(providers []Provider) []string {
	names := make([]string, 0, len(providers))
	for _, p := range providers {
		names = append(names, p.Name())
	}
	return names
}

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

// lockedShuffler serializes access to a caller-supplied source, which is
// usually a *rand.Rand and not safe for concurrent use
type lockedShuffler struct {
	mu sync.Mutex
	s  Shuffler
}

func (l *lockedShuffler) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.s.Shuffle(n, swap)
}
