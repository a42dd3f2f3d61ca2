// ABOUTME: MCP resource implementations for setup sheets.
// ABOUTME: Provides setuplog://recent, setuplog://latest, and setuplog://summary.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/setuplog/internal/advisor"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// setuplog://recent - Last 10 sheets, summarized
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "setuplog://recent",
		Name:        "Recent Sessions",
		Description: "Last 10 setup sheets with derived pressure and balance stats",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// setuplog://latest - Full latest sheet
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "setuplog://latest",
		Name:        "Latest Session",
		Description: "The full most recent setup sheet",
		MIMEType:    "application/json",
	}, s.handleLatestResource)

	// setuplog://summary - Dashboard: counts, latest stats, insights
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "setuplog://summary",
		Name:        "Session Summary Dashboard",
		Description: "Session count, latest derived stats, and performance insights",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) resourceResult(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	sheets, err := s.repo.ListSheets(nil, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to list sheets: %w", err)
	}

	summaries := []sheetSummary{}
	for _, sheet := range sheets {
		summaries = append(summaries, summarize(sheet))
	}
	return s.resourceResult("setuplog://recent", map[string]interface{}{
		"sheets": summaries,
	})
}

func (s *Server) handleLatestResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	sheets, err := s.repo.ListSheets(nil, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to list sheets: %w", err)
	}
	if len(sheets) == 0 {
		return s.resourceResult("setuplog://latest", map[string]interface{}{})
	}
	return s.resourceResult("setuplog://latest", sheets[0])
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	sheets, err := s.repo.ListSheets(nil, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list sheets: %w", err)
	}

	result := map[string]interface{}{
		"session_count": len(sheets),
	}
	if len(sheets) > 0 {
		result["latest"] = summarize(sheets[0])
	}

	var insightMessages []string
	for _, insight := range advisor.Insights(sheets) {
		insightMessages = append(insightMessages, insight.Message)
	}
	result["insights"] = insightMessages

	return s.resourceResult("setuplog://summary", result)
}
