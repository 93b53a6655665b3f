package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"daybook/internal/adapters/filesystem"
	mcpadapter "daybook/internal/adapters/mcp"
	"daybook/internal/adapters/sqlite"
	"daybook/internal/config"
)

func main() {
	cfg, err := config.LoadOrCreate(config.DefaultPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	dirFlag := flag.String("dir", cfg.JournalDir, "path to the journal directory")
	flag.Parse()

	repo := filesystem.NewRepository(*dirFlag)
	index, err := sqlite.Open(repo)
	if err != nil {
		log.Fatalf("daybook-mcp: %v", err)
	}
	defer index.Close()

	mcpServer := server.NewMCPServer(
		"daybook-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, repo, index)
	mcpadapter.RegisterWriteTools(mcpServer, repo)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("daybook-mcp: %v", err)
	}
}
