// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/arshaad-deriv/lingostat/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Lingostat MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Lingostat Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_records ---
	s.AddTool(mcp.NewTool("get_records",
		mcp.WithDescription("Load translation statistics exports and return per (project, language, method) quality records ranked by volume."),
		mcp.WithString("dir", mcp.Description("Path to the directory of statistics export files (defaults to the configured directory).")),
		mcp.WithString("projects", mcp.Description("Comma-separated project filter.")),
		mcp.WithString("languages", mcp.Description("Comma-separated language filter (name or code).")),
		mcp.WithString("methods", mcp.Description("Comma-separated method filter (AI, MT, TM).")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleGetRecords)

	// --- 2. Tool: get_summary ---
	s.AddTool(mcp.NewTool("get_summary",
		mcp.WithDescription("Return the executive quality rollup: corpus totals, per-method comparison, benchmark bands and severity tiers."),
		mcp.WithString("dir", mcp.Description("Path to the directory of statistics export files.")),
		mcp.WithString("projects", mcp.Description("Comma-separated project filter.")),
		mcp.WithString("languages", mcp.Description("Comma-separated language filter.")),
		mcp.WithString("methods", mcp.Description("Comma-separated method filter (AI, MT, TM).")),
	), h.handleGetSummary)

	// --- 3. Tool: get_languages ---
	s.AddTool(mcp.NewTool("get_languages",
		mcp.WithDescription("Return per-language quality summaries ranked by difficulty, hardest first."),
		mcp.WithString("dir", mcp.Description("Path to the directory of statistics export files.")),
		mcp.WithString("projects", mcp.Description("Comma-separated project filter.")),
		mcp.WithString("methods", mcp.Description("Comma-separated method filter (AI, MT, TM).")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results.")),
	), h.handleGetLanguages)

	// --- 4. Tool: get_risk ---
	s.AddTool(mcp.NewTool("get_risk",
		mcp.WithDescription("Return combinations flagged for human review plus the estimated review ROI."),
		mcp.WithString("dir", mcp.Description("Path to the directory of statistics export files.")),
		mcp.WithString("projects", mcp.Description("Comma-separated project filter.")),
		mcp.WithString("languages", mcp.Description("Comma-separated language filter.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of flagged entries.")),
	), h.handleGetRisk)

	// --- 5. Tool: get_timeseries ---
	s.AddTool(mcp.NewTool("get_timeseries",
		mcp.WithDescription("Return the date-indexed activity table with the fitted quality trend and weekday averages."),
		mcp.WithString("dir", mcp.Description("Path to the directory of statistics export files.")),
		mcp.WithString("projects", mcp.Description("Comma-separated project filter.")),
		mcp.WithString("languages", mcp.Description("Comma-separated language filter.")),
		mcp.WithString("methods", mcp.Description("Comma-separated method filter (AI, MT, TM).")),
	), h.handleGetTimeseries)

	return s
}

// StartMCPServer starts the Lingostat MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
