package mcp

import (
	"net/http"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/gradnex/pkg/logging"
)

const (
	ServerName    = "gradnex"
	ServerVersion = "0.1.0"
	StreamPath    = "/mcp/stream"
)

// NewServer builds an MCP server with every available tool registered
func NewServer(log *logging.Logger, res Resources) *sdkmcp.Server {
	impl := &sdkmcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}

	server := sdkmcp.NewServer(impl, nil)
	registered := NewToolRegistry(log).RegisterAll(server, res)
	log.Info("MCP tools registered", "tools", registered)

	return server
}

// NewHandler serves server over the streamable HTTP transport
func NewHandler(server *sdkmcp.Server) http.Handler {
	return sdkmcp.NewStreamableHTTPHandler(func(*http.Request) *sdkmcp.Server {
		return server
	}, nil)
}
