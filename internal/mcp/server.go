// ABOUTME: MCP server implementation for studylog
// ABOUTME: Provides tools and resources for AI assistants to log and report study time
package mcp

import (
	"context"

	"github.com/harper/studylog/internal/fault"
	"github.com/harper/studylog/internal/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with studylog-specific functionality.
type Server struct {
	mcpServer *mcp.Server
	tracker   *tracker.Tracker
	journal   *fault.Journal
}

// NewServer creates a new studylog MCP server.
func NewServer(t *tracker.Tracker, journal *fault.Journal) *Server {
	impl := &mcp.Implementation{
		Name:    "studylog",
		Version: "0.1.0",
	}

	server := &Server{
		mcpServer: mcp.NewServer(impl, nil),
		tracker:   t,
		journal:   journal,
	}

	server.registerPrompts()
	server.registerTools()
	server.registerResources()

	return server
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run(ctx context.Context) error {
	transport := &mcp.StdioTransport{}
	return s.mcpServer.Run(ctx, transport)
}
