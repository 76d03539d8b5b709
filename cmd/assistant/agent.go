package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/option"
)

const (
	maxSteps    = 10
	toolTimeout = 2 * time.Minute
)

const systemPromptTemplate = `You are a job search assistant for students and early-career developers.

AVAILABLE TOOLS:
- job_search: find postings across job boards by role, location and employment type
- resume_optimize: rewrite a resume summary, experience or project description
- search_history: list recent searches, optionally for one role
- sheets_export: write job records returned by job_search to Google Sheets%s

RULES:
1. Call job_search for any request to find or show jobs. Summarize the results by company, title and link.
2. Only call sheets_export when the user asks to save or export, passing the exact job records job_search returned.
3. Call resume_optimize when the user pastes resume text. Return the rewritten text verbatim.
4. If a tool reports an error, explain it plainly and suggest what to change.
5. Never invent postings, companies or links.`

// Agent drives a Gemini chat that can call the gateway's MCP tools
type Agent struct {
	session *mcp.ClientSession
	gemini  *genai.Client
	model   *genai.GenerativeModel
	tools   []*mcp.Tool
}

// NewAgent connects to the MCP endpoint and prepares a Gemini model with one
// function declaration per advertised tool
func NewAgent(ctx context.Context, endpoint, apiKey, model, sheetsID string) (*Agent, error) {
	client := mcp.NewClient(&mcp.Implementation{
		Name:    "gradnex-assistant",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{Endpoint: endpoint}, nil)
	if err != nil {
		return nil, fmt.Errorf("connect to MCP server at %s: %w", endpoint, err)
	}

	list, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		_ = session.Close()
		return nil, fmt.Errorf("list tools: %w", err)
	}

	gemini, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		_ = session.Close()
		return nil, fmt.Errorf("initialize Gemini: %w", err)
	}

	m := gemini.GenerativeModel(model)
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt(sheetsID))},
	}
	if decls := declarations(list.Tools); len(decls) > 0 {
		m.Tools = []*genai.Tool{{FunctionDeclarations: decls}}
	}

	return &Agent{
		session: session,
		gemini:  gemini,
		model:   m,
		tools:   list.Tools,
	}, nil
}

func systemPrompt(sheetsID string) string {
	if sheetsID == "" {
		return fmt.Sprintf(systemPromptTemplate, "")
	}
	return fmt.Sprintf(systemPromptTemplate, fmt.Sprintf(
		"\n\nFor sheets_export always use spreadsheet_id %q and do not ask the user for it.", sheetsID))
}

func declarations(tools []*mcp.Tool) []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, 0, len(tools))
	for _, tool := range tools {
		decls = append(decls, &genai.FunctionDeclaration{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters:  toGenaiSchema(tool.InputSchema),
		})
	}
	return decls
}

// Tools lists the tools the server advertised
func (a *Agent) Tools() []*mcp.Tool {
	return a.tools
}

// SessionID is the MCP session identifier
func (a *Agent) SessionID() string {
	return a.session.ID()
}

func (a *Agent) Close() error {
	var errs []string
	if err := a.gemini.Close(); err != nil {
		errs = append(errs, "gemini: "+err.Error())
	}
	if err := a.session.Close(); err != nil {
		errs = append(errs, "mcp session: "+err.Error())
	}
	if len(errs) > 0 {
		return fmt.Errorf("close: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Ask runs one user query to completion, executing tool calls until the
// model answers in text
func (a *Agent) Ask(ctx context.Context, query string) (string, error) {
	chat := a.model.StartChat()
	parts := []genai.Part{genai.Text(query)}

	for step := 1; step <= maxSteps; step++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		resp, err := chat.SendMessage(ctx, parts...)
		if err != nil {
			return "", fmt.Errorf("gemini: %w", err)
		}

		var text strings.Builder
		var replies []genai.Part
		for _, cand := range resp.Candidates {
			if cand.Content == nil {
				continue
			}
			for _, part := range cand.Content.Parts {
				switch p := part.(type) {
				case genai.FunctionCall:
					fmt.Printf("[tool] %s\n", p.Name)
					replies = append(replies, genai.FunctionResponse{
						Name:     p.Name,
						Response: a.callTool(ctx, p.Name, p.Args),
					})
				case genai.Text:
					text.WriteString(string(p))
				}
			}
		}

		if len(replies) > 0 {
			parts = replies
			continue
		}
		if text.Len() > 0 {
			return text.String(), nil
		}
		if len(resp.Candidates) == 0 {
			return "", fmt.Errorf("gemini returned no candidates")
		}
	}

	return "", fmt.Errorf("no answer after %d steps", maxSteps)
}

// callTool executes an MCP tool and shapes its outcome as a function
// response payload. Failures are reported to the model, not returned.
func (a *Agent) callTool(ctx context.Context, name string, args map[string]any) map[string]any {
	if args == nil {
		args = map[string]any{}
	}

	ctx, cancel := context.WithTimeout(ctx, toolTimeout)
	defer cancel()

	res, err := a.session.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		return map[string]any{"error": err.Error()}
	}

	out := map[string]any{"result": toolText(res)}
	if res.IsError {
		out = map[string]any{"error": toolText(res)}
	}
	if res.StructuredContent != nil {
		if raw, err := json.Marshal(res.StructuredContent); err == nil {
			out["data"] = string(raw)
		}
	}
	return out
}

func toolText(res *mcp.CallToolResult) string {
	var texts []string
	for _, c := range res.Content {
		if t, ok := c.(*mcp.TextContent); ok {
			texts = append(texts, t.Text)
		}
	}
	if len(texts) == 0 {
		return "ok"
	}
	return strings.Join(texts, "\n")
}
