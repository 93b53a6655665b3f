package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"daybook/internal/adapters/filesystem"
	"daybook/internal/adapters/tui"
	"daybook/internal/config"
)

func main() {
	cfg, err := config.LoadOrCreate(config.DefaultPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if os.Getenv("DAYBOOK_DEBUG") != "" {
		f, err := tea.LogToFile("daybook-debug.log", "daybook")
		if err == nil {
			defer f.Close()
		}
	}

	repo := filesystem.NewRepository(cfg.JournalDir)
	session := tui.NewSession(repo)

	p := tea.NewProgram(session, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
