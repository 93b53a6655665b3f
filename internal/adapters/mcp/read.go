package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"daybook/internal/application/commands"
	"daybook/internal/ports"
)

// RegisterReadTools adds all read-only journal tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, journal ports.Journal, index ports.EntryIndex) {
	s.AddTool(listEntriesTool(), listEntriesHandler(journal))
	s.AddTool(readEntryTool(), readEntryHandler(journal))
	s.AddTool(searchEntriesTool(), searchEntriesHandler(index))
}

// --- list_entries ---

func listEntriesTool() mcp.Tool {
	return mcp.NewTool("list_entries",
		mcp.WithDescription("List all journal entries, oldest first, one date per line."),
	)
}

func listEntriesHandler(journal ports.Journal) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		infos, err := commands.NewListEntriesCommand(journal).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(infos) == 0 {
			return mcp.NewToolResultText("The journal is empty."), nil
		}

		var sb strings.Builder
		for _, info := range infos {
			sb.WriteString(info.Date)
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- read_entry ---

func readEntryTool() mcp.Tool {
	return mcp.NewTool("read_entry",
		mcp.WithDescription("Read the full content of one journal entry by date."),
		mcp.WithString("date",
			mcp.Description("Entry date as 8 digits, e.g. 20250315"),
			mcp.Required(),
		),
	)
}

func readEntryHandler(journal ports.Journal) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date := req.GetString("date", "")
		content, err := commands.NewShowEntryCommand(journal, date).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(content), nil
	}
}

// --- search_entries ---

func searchEntriesTool() mcp.Tool {
	return mcp.NewTool("search_entries",
		mcp.WithDescription("Search journal entry content by keyword. Returns matching entries newest first, with the first matching line of each."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
	)
}

func searchEntriesHandler(index ports.EntryIndex) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		matches, err := commands.NewSearchCommand(index, query).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(matches) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, m := range matches {
			fmt.Fprintf(&sb, "%s:%d  %s\n", m.Filename, m.LineNo, m.Line)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
