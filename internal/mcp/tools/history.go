package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/gradnex/internal/domain"
	"github.com/honeycarbs/gradnex/internal/repository"
	"github.com/honeycarbs/gradnex/pkg/logging"
)

const maxHistoryLimit = 100

// SearchHistoryParams defines the arguments for the search_history tool
type SearchHistoryParams struct {
	Role  string `json:"role,omitempty" jsonschema:"Only return searches for this role"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum number of searches, default 20"`
}

// SearchHistoryResult is the structured response of search_history
type SearchHistoryResult struct {
	Searches []domain.SearchSummary `json:"searches"`
}

type searchHistoryTool struct {
	repo   repository.SearchHistoryRepository
	logger *logging.Logger
}

// WithSearchHistory registers the search_history tool
func WithSearchHistory(repo repository.SearchHistoryRepository) Option {
	return func(reg *registry) {
		handler := searchHistoryTool{repo: repo, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "search_history",
			Description: "List recent aggregated searches with their totals and failing providers",
		}, handler.handle)
	}
}

func (t searchHistoryTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params *SearchHistoryParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil {
		params = &SearchHistoryParams{}
	}
	limit := params.Limit
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	searches, err := t.repo.RecentSearches(ctx, params.Role, limit)
	if err != nil {
		t.logger.Error("search_history failed", "err", err)
		return errorResult("search_history", err), nil, nil
	}
	if searches == nil {
		searches = []domain.SearchSummary{}
	}

	msg := fmt.Sprintf("[search_history] %d search(es)", len(searches))
	return textResult(msg), SearchHistoryResult{Searches: searches}, nil
}
