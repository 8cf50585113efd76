// ABOUTME: MCP resource implementations for studylog
// ABOUTME: Exposes today's summary and the failure journal as readable context
package mcp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/harper/studylog/internal/report"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	todayURI  = "studylog://today"
	errorsURI = "studylog://errors"
)

// registerResources adds all MCP resources to the server.
func (s *Server) registerResources() {
	today := &mcp.Resource{
		URI:         todayURI,
		Name:        "Today",
		Description: "Study hours per subject logged today",
		MIMEType:    "text/plain",
	}
	s.mcpServer.AddResource(today, s.handleToday)

	errorsResource := &mcp.Resource{
		URI:         errorsURI,
		Name:        "Errors",
		Description: "Journal of failed studylog operations with their arguments",
		MIMEType:    "application/json",
	}
	s.mcpServer.AddResource(errorsResource, s.handleErrors)
}

// handleToday implements the today resource.
func (s *Server) handleToday(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	res := s.tracker.ReportToday.Call(ctx)
	if !res.Ok() {
		return nil, res.Failure()
	}

	var sb strings.Builder
	report.Render(&sb, res.Value())

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      todayURI,
				MIMEType: "text/plain",
				Text:     strings.TrimSpace(sb.String()),
			},
		},
	}, nil
}

// handleErrors implements the errors resource.
func (s *Server) handleErrors(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(s.journal.Entries(), "", "  ")
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      errorsURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}
