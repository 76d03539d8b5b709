package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/gradnex/internal/domain/resume"
	"github.com/honeycarbs/gradnex/pkg/logging"
)

// ResumeOptimizeParams defines the arguments for the resume_optimize tool
type ResumeOptimizeParams struct {
	Text string `json:"text" jsonschema:"Raw resume text to rewrite, at least 10 characters"`
	Kind string `json:"kind,omitempty" jsonschema:"summary, experience (default) or project"`
}

// ResumeOptimizeResult is the structured response of resume_optimize
type ResumeOptimizeResult struct {
	OptimizedText string `json:"optimized_text"`
	Kind          string `json:"kind"`
	Rewritten     bool   `json:"rewritten" jsonschema:"false when no generative backend is configured"`
}

type resumeOptimizeTool struct {
	service *resume.Service
	logger  *logging.Logger
}

// WithResumeOptimize registers the resume_optimize tool
func WithResumeOptimize(service *resume.Service) Option {
	return func(reg *registry) {
		handler := resumeOptimizeTool{service: service, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "resume_optimize",
			Description: "Rewrite a resume summary, experience or project into ATS-friendly text",
		}, handler.handle)
	}
}

func (t resumeOptimizeTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params *ResumeOptimizeParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil {
		params = &ResumeOptimizeParams{}
	}

	kind := resume.ParseKind(params.Kind)

	var (
		out string
		err error
	)
	if kind == resume.KindSummary {
		out, err = t.service.OptimizeSummary(ctx, params.Text)
	} else {
		out, err = t.service.OptimizeSection(ctx, params.Text, kind)
	}
	if err != nil {
		t.logger.Warn("resume_optimize failed", "kind", kind, "err", err)
		return errorResult("resume_optimize", err), nil, nil
	}

	result := ResumeOptimizeResult{
		OptimizedText: out,
		Kind:          string(kind),
		Rewritten:     t.service.Configured(),
	}
	return textResult(out), result, nil
}
