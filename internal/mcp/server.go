// Package mcp serves the query tools over the Model Context Protocol's
// stdio transport. The server is a thin shell: tool advertisement and
// dispatch live in internal/query, table state in internal/dataset.
package mcp

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dunkmaster/hoopstats/internal/dataset"
	"github.com/dunkmaster/hoopstats/internal/debug"
	"github.com/dunkmaster/hoopstats/internal/query"
	"github.com/dunkmaster/hoopstats/internal/version"
)

// ServerName identifies this MCP implementation to hosts.
const ServerName = "hoopstats-mcp-server"

// Server wraps an MCP stdio server around a loaded dataset.
type Server struct {
	server *mcp.Server
	ds     *dataset.Dataset
}

// NewServer creates the MCP server and registers every query tool.
// The dataset must be fully loaded; queries never touch disk.
func NewServer(ds *dataset.Dataset) *Server {
	s := &Server{
		server: mcp.NewServer(&mcp.Implementation{
			Name:    ServerName,
			Version: version.Version,
		}, nil),
		ds: ds,
	}
	s.registerTools()
	return s
}

// registerTools advertises the shared tool registry over MCP.
func (s *Server) registerTools() {
	for _, tool := range query.Tools() {
		s.server.AddTool(&mcp.Tool{
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: tool.InputSchema,
		}, s.handler(tool.Name))
	}
}

// handler adapts one registry tool into an MCP tool handler. Dispatch
// failures become structured error results with IsError set, never
// protocol-level errors, so a host model can see them and self-correct.
func (s *Server) handler(name string) func(context.Context, *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		payload, err := query.Call(s.ds, name, req.Params.Arguments)
		if err != nil {
			debug.LogMCP("tool %s failed: %v\n", name, err)
			return createErrorResponse(name, err)
		}
		return createJSONResponse(payload)
	}
}

// Start runs the stdio serving loop until the context is cancelled or
// the host closes the stream.
func (s *Server) Start(ctx context.Context) error {
	debug.LogMCP("starting MCP server with stdio transport\n")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// marshalJSON is split out so response helpers share one encoder config.
func marshalJSON(data interface{}) (string, error) {
	content, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	return string(content), nil
}
