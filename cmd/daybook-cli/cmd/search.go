package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"daybook/internal/adapters/sqlite"
	"daybook/internal/application/commands"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search entry content",
	Long: `Search journal entries by keyword. The index is refreshed before
searching, so results always reflect the files on disk. Matches are
listed newest first with the first matching line of each entry.

Examples:
  daybook-cli search climbing
  daybook-cli search "day off"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := sqlite.Open(GetJournal())
		if err != nil {
			return err
		}
		defer index.Close()

		ctx := context.Background()
		matches, err := commands.NewSearchCommand(index, args[0]).Execute(ctx)
		if err != nil {
			return err
		}

		if len(matches) == 0 {
			fmt.Println("No results found")
			return nil
		}
		for _, m := range matches {
			fmt.Printf("%s:%d  %s\n", m.Filename, m.LineNo, m.Line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
