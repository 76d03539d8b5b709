package mcp

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/gradnex/internal/domain/job"
	"github.com/honeycarbs/gradnex/internal/domain/resume"
	"github.com/honeycarbs/gradnex/internal/mcp/tools"
	"github.com/honeycarbs/gradnex/internal/repository"
	"github.com/honeycarbs/gradnex/pkg/logging"
)

// Resources are the services MCP tools are backed by. Optional fields left
// nil keep their tool unregistered.
type Resources struct {
	JobService    job.Service
	ResumeService *resume.Service
	History       repository.SearchHistoryRepository
	Sheets        tools.SheetsExporter
}

type ToolRegistry struct {
	logger *logging.Logger
}

func NewToolRegistry(logger *logging.Logger) *ToolRegistry {
	return &ToolRegistry{logger: logger}
}

// RegisterAll installs every tool whose backing service is available
func (r *ToolRegistry) RegisterAll(server *sdkmcp.Server, res Resources) []string {
	var opts []tools.Option
	var names []string

	if res.JobService != nil {
		opts = append(opts, tools.WithJobSearch(res.JobService))
		names = append(names, "job_search")
	}
	if res.ResumeService != nil {
		opts = append(opts, tools.WithResumeOptimize(res.ResumeService))
		names = append(names, "resume_optimize")
	}
	if res.History != nil {
		opts = append(opts, tools.WithSearchHistory(res.History))
		names = append(names, "search_history")
	}
	if res.Sheets != nil {
		opts = append(opts, tools.WithSheetsExport(res.Sheets))
		names = append(names, "sheets_export")
	}

	tools.Register(server, r.logger, opts...)
	return names
}
