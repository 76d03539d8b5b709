package job

import (
	"context"
	"errors"

	"github.com/honeycarbs/gradnex/internal/domain"
)

// Recorder observes completed searches (history graph, event bus, ...)
type Recorder interface {
	RecordSearch(ctx context.Context, event domain.SearchEvent) error
}

// NopRecorder discards every event
type NopRecorder struct{}

func (NopRecorder) RecordSearch(context.Context, domain.SearchEvent) error { return nil }

// MultiRecorder forwards an event to every recorder and joins their errors
type MultiRecorder []Recorder

func (m MultiRecorder) RecordSearch(ctx context.Context, event domain.SearchEvent) error {
	var errs []error
	for _, r := range m {
		if r == nil {
			continue
		}
		if err := r.RecordSearch(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
