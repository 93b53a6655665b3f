package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"daybook/internal/adapters/filesystem"
	"daybook/internal/config"
	"daybook/internal/ports"
)

var (
	journalDir string
	cfg        config.Config
	journal    ports.Journal
)

var rootCmd = &cobra.Command{
	Use:   "daybook-cli",
	Short: "CLI for a plain-file daily journal",
	Long: `daybook-cli works with a journal kept as one Markdown file per day,
named by date (e.g. 20250315.md), in a single directory.

It provides commands to list, create, show, search, and sync entries,
and to ask questions about recent entries.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.LoadOrCreate(config.DefaultPath())
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if journalDir != "" {
			cfg.JournalDir = journalDir
		}
		journal = filesystem.NewRepository(cfg.JournalDir)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&journalDir, "dir", "d", "", "path to the journal directory (overrides config)")
}

// GetJournal returns the initialized journal repository
func GetJournal() ports.Journal {
	return journal
}

// GetConfig returns the loaded configuration
func GetConfig() config.Config {
	return cfg
}
