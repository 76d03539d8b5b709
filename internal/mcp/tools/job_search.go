package tools

import (
	"context"
	"errors"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/gradnex/internal/domain"
	"github.com/honeycarbs/gradnex/internal/domain/job"
	"github.com/honeycarbs/gradnex/pkg/logging"
)

// JobSearchParams defines the arguments for the job_search tool
type JobSearchParams struct {
	Role     string `json:"role" jsonschema:"Job title or keywords, e.g. Backend Engineer"`
	Location string `json:"location,omitempty" jsonschema:"City or region; empty or 'remote' searches remote boards too"`
	Type     string `json:"type,omitempty" jsonschema:"Employment type filter such as Full-time; 'any' disables it"`
}

type jobSearchTool struct {
	service job.Service
	logger  *logging.Logger
}

// WithJobSearch registers the job_search tool
func WithJobSearch(service job.Service) Option {
	return func(reg *registry) {
		handler := jobSearchTool{service: service, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "job_search",
			Description: "Search every configured job board concurrently and return a merged, shuffled list of normalized postings",
		}, handler.handle)
	}
}

func (t jobSearchTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params *JobSearchParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil {
		params = &JobSearchParams{}
	}

	req := domain.SearchRequest{
		Role:     params.Role,
		Location: params.Location,
		Type:     params.Type,
	}

	result, err := t.service.Search(ctx, req)
	if err != nil {
		if !errors.Is(err, domain.ErrRoleRequired) {
			t.logger.Error("job_search failed", "err", err)
		}
		return errorResult("job_search", err), nil, nil
	}

	msg := fmt.Sprintf("[job_search] found %d job(s) for %q", result.Count, req.Role)
	return textResult(msg), result, nil
}
