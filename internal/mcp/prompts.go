// ABOUTME: MCP prompt definitions for studylog
// ABOUTME: Provides static context to AI assistants about studylog capabilities
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const gettingStarted = `Studylog tracks how long the user studies each subject.

When to use studylog:
- The user says they studied, revised or practiced something: call log_study
  with the subject and the time as hrs:mins (90 minutes is "1:30")
- The user asks how much they studied today, on a day, or overall: call
  study_totals

Subjects are title cased, so "math" and "Math" are the same subject.
Failed calls are recorded in the studylog://errors resource.`

// registerPrompts adds static prompts to the MCP server.
func (s *Server) registerPrompts() {
	prompt := &mcp.Prompt{
		Name:        "studylog-getting-started",
		Description: "Introduction to studylog and how AI assistants should use it",
	}

	handler := func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		return &mcp.GetPromptResult{
			Description: "Getting started with studylog",
			Messages: []*mcp.PromptMessage{
				{
					Role:    "user",
					Content: &mcp.TextContent{Text: gettingStarted},
				},
			},
		}, nil
	}

	s.mcpServer.AddPrompt(prompt, handler)
}
