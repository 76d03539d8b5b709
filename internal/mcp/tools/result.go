package tools

import (
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// textResult returns a text-only ToolResult
func textResult(msg string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: msg},
		},
	}
}

// errorResult reports a tool-level failure to the client without failing
// the JSON-RPC call
func errorResult(tool string, err error) *sdkmcp.CallToolResult {
	res := textResult(fmt.Sprintf("[%s] %v", tool, err))
	res.IsError = true
	return res
}
