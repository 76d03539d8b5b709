package resume

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/honeycarbs/gradnex/pkg/logging"
)

// MinTextLength is the shortest trimmed input worth sending for a rewrite
const MinTextLength = 10

const unavailablePrefix = "• [AI Unavailable] "

var (
	ErrTextTooShort      = errors.New("text too short")
	ErrNothingToOptimize = errors.New("experiences or projects array is required")
)

// Generator produces a completion for a single prompt
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Kind selects the rewrite template
type Kind string

const (
	KindSummary    Kind = "summary"
	KindExperience Kind = "experience"
	KindProject    Kind = "project"
)

// ParseKind maps a client-supplied section type to a bullet template.
// Anything that is not a project is treated as experience.
func ParseKind(s string) Kind {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindProject:
		return KindProject
	case KindSummary:
		return KindSummary
	default:
		return KindExperience
	}
}

// Item is one experience or project entry as sent by the client. Only
// "description" is interpreted; every other field is passed through.
type Item map[string]any

// Description returns the item's description, or "" when absent
func (i Item) Description() string {
	d, _ := i["description"].(string)
	return d
}

func (i Item) withDescription(d string) Item {
	out := make(Item, len(i)+1)
	for k, v := range i {
		out[k] = v
	}
	out["description"] = d
	return out
}

// BatchResult holds rewritten experiences and projects. A nil slice means
// the corresponding input was not processed.
type BatchResult struct {
	Experiences []Item `json:"optimizedExperiences"`
	Projects    []Item `json:"optimizedProjects"`
}

// Service rewrites resume text through a Generator. Without a generator it
// degrades to returning input unchanged.
type Service struct {
	gen    Generator
	logger *logging.Logger
}

// NewService creates a resume service; gen may be nil
func NewService(gen Generator, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Service{gen: gen, logger: logger}
}

// Configured reports whether a generative backend is available
func (s *Service) Configured() bool {
	return s.gen != nil
}

// OptimizeSummary rewrites a professional summary into a short paragraph
func (s *Service) OptimizeSummary(ctx context.Context, text string) (string, error) {
	return s.optimize(ctx, text, KindSummary)
}

// OptimizeSection rewrites a single experience or project into bullets
func (s *Service) OptimizeSection(ctx context.Context, text string, kind Kind) (string, error) {
	if kind == "" {
		kind = KindExperience
	}
	return s.optimize(ctx, text, kind)
}

func (s *Service) optimize(ctx context.Context, text string, kind Kind) (string, error) {
	if tooShort(text) {
		return "", ErrTextTooShort
	}
	if s.gen == nil {
		return text, nil
	}

	out, err := s.gen.Generate(ctx, buildPrompt(kind, text))
	if err != nil {
		return "", fmt.Errorf("resume: optimize %s: %w", kind, err)
	}
	return strings.TrimSpace(out), nil
}

// OptimizeBatch rewrites every experience and project concurrently. An item
// whose rewrite fails is returned as it was. Without a backend, experiences
// come back tagged as unavailable and projects are dropped.
func (s *Service) OptimizeBatch(ctx context.Context, experiences, projects []Item) (BatchResult, error) {
	if experiences == nil && projects == nil {
		return BatchResult{}, ErrNothingToOptimize
	}

	if s.gen == nil {
		s.logger.Warn("no generative backend configured, returning raw resume items")
		var tagged []Item
		if experiences != nil {
			tagged = make([]Item, len(experiences))
			for i, exp := range experiences {
				tagged[i] = exp.withDescription(unavailablePrefix + exp.Description())
			}
		}
		return BatchResult{Experiences: tagged}, nil
	}

	var res BatchResult
	var wg sync.WaitGroup
	if experiences != nil {
		res.Experiences = make([]Item, len(experiences))
		s.rewriteAll(ctx, &wg, experiences, res.Experiences, KindExperience)
	}
	if projects != nil {
		res.Projects = make([]Item, len(projects))
		s.rewriteAll(ctx, &wg, projects, res.Projects, KindProject)
	}
	wg.Wait()

	return res, nil
}

func (s *Service) rewriteAll(ctx context.Context, wg *sync.WaitGroup, in, out []Item, kind Kind) {
	for i, item := range in {
		out[i] = item
		desc := item.Description()
		if tooShort(desc) {
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			rewritten, err := s.gen.Generate(ctx, buildPrompt(kind, desc))
			if err != nil {
				s.logger.Warn("resume item rewrite failed", "kind", kind, "index", i, "err", err)
				return
			}
			out[i] = item.withDescription(strings.TrimSpace(rewritten))
		}()
	}
}

func tooShort(text string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) < MinTextLength
}
