// ABOUTME: MCP tool implementations for studylog
// ABOUTME: Tools call the same wrapped operations as the CLI
package mcp

import (
	"context"
	"fmt"

	"github.com/harper/studylog/internal/fault"
	"github.com/harper/studylog/internal/report"
	"github.com/harper/studylog/internal/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// LogStudyInput defines the input for the log_study tool.
type LogStudyInput struct {
	Subject string `json:"subject" jsonschema:"The subject studied, e.g. math"`
	Hours   string `json:"hours" jsonschema:"Time studied as hrs:mins, e.g. 1:30"`
}

// LogStudyOutput defines the output for the log_study tool.
type LogStudyOutput struct {
	Date    string  `json:"date" jsonschema:"Day the time was logged on (dd-mm-yyyy)"`
	Subject string  `json:"subject" jsonschema:"The normalized subject"`
	Hours   float64 `json:"hours" jsonschema:"Decimal hours recorded"`
}

// StudyTotalsInput defines the input for the study_totals tool.
type StudyTotalsInput struct {
	Date string `json:"date,omitempty" jsonschema:"Day to report (dd-mm-yyyy). Defaults to today"`
	All  bool   `json:"all,omitempty" jsonschema:"Report across all dates instead of one day"`
}

// StudyTotalsOutput defines the output for the study_totals tool.
type StudyTotalsOutput struct {
	Date     string                `json:"date,omitempty" jsonschema:"The reported day, empty for all dates"`
	Subjects []report.SubjectTotal `json:"subjects" jsonschema:"Hours per subject in first-logged order"`
	Total    float64               `json:"total" jsonschema:"Sum of all subject hours"`
}

// registerTools adds all MCP tools to the server.
func (s *Server) registerTools() {
	logStudyTool := &mcp.Tool{
		Name:        "log_study",
		Description: "Record time spent studying a subject today. Use when the user says they studied something.",
	}
	mcp.AddTool(s.mcpServer, logStudyTool, s.handleLogStudy)

	totalsTool := &mcp.Tool{
		Name:        "study_totals",
		Description: "Total study hours per subject for today, a given date, or all dates.",
	}
	mcp.AddTool(s.mcpServer, totalsTool, s.handleStudyTotals)
}

// handleLogStudy implements the log_study tool.
func (s *Server) handleLogStudy(ctx context.Context, req *mcp.CallToolRequest, input LogStudyInput) (*mcp.CallToolResult, LogStudyOutput, error) {
	res := s.tracker.LogStudy.Call(ctx, input.Subject, input.Hours)
	if !res.Ok() {
		return nil, LogStudyOutput{}, res.Failure()
	}

	rec := res.Value()
	output := LogStudyOutput{
		Date:    rec.Date.String(),
		Subject: rec.Subject,
		Hours:   rec.Hours,
	}

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("Logged %s hours of %s on %s", store.FormatHours(rec.Hours), rec.Subject, rec.Date),
			},
		},
	}
	return result, output, nil
}

// handleStudyTotals implements the study_totals tool.
func (s *Server) handleStudyTotals(ctx context.Context, req *mcp.CallToolRequest, input StudyTotalsInput) (*mcp.CallToolResult, StudyTotalsOutput, error) {
	var res fault.Result[report.Summary]
	switch {
	case input.All:
		res = s.tracker.ReportAll.Call(ctx)
	case input.Date != "":
		res = s.tracker.ReportDate.Call(ctx, input.Date)
	default:
		res = s.tracker.ReportToday.Call(ctx)
	}
	if !res.Ok() {
		return nil, StudyTotalsOutput{}, res.Failure()
	}

	summary := res.Value()
	output := StudyTotalsOutput{
		Subjects: summary.Subjects,
		Total:    summary.Total,
	}
	if summary.Date != nil {
		output.Date = summary.Date.String()
	}
	if output.Subjects == nil {
		output.Subjects = []report.SubjectTotal{}
	}

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("%s: %s hours across %d subjects", summary.Title(), store.FormatHours(summary.Total), len(summary.Subjects)),
			},
		},
	}
	return result, output, nil
}
