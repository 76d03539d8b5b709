package repository

import (
	"context"

	"github.com/honeycarbs/gradnex/internal/domain"
)

// SearchHistoryRepository stores search events, never the job records a
// search returned
type SearchHistoryRepository interface {
	RecordSearch(ctx context.Context, event domain.SearchEvent) error
	RecentSearches(ctx context.Context, role string, limit int) ([]domain.SearchSummary, error)
}
