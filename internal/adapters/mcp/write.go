package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"daybook/internal/application/commands"
	"daybook/internal/domain"
	"daybook/internal/ports"
)

// RegisterWriteTools adds the journal write tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, journal ports.Journal) {
	s.AddTool(appendEntryTool(), appendEntryHandler(journal))
}

// --- append_entry ---

func appendEntryTool() mcp.Tool {
	return mcp.NewTool("append_entry",
		mcp.WithDescription("Append a timestamped line to a journal entry, creating the entry if the date has none. Defaults to today."),
		mcp.WithString("text",
			mcp.Description("The text to append"),
			mcp.Required(),
		),
		mcp.WithString("date",
			mcp.Description("Entry date as 8 digits, e.g. 20250315. Omit for today."),
		),
	)
}

func appendEntryHandler(journal ports.Journal) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text := req.GetString("text", "")
		date := req.GetString("date", "")
		if date == "" {
			date = domain.Today()
		}

		result, err := commands.NewAppendEntryCommand(journal, date, text).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
