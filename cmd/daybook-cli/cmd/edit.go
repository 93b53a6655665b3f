package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"daybook/internal/adapters/editor"
	"daybook/internal/application/commands"
	"daybook/internal/domain"
)

var editCmd = &cobra.Command{
	Use:   "edit [date]",
	Short: "Open an entry in $EDITOR",
	Long: `Open the entry for a date in the external editor named by $EDITOR,
creating the entry first if the date has none. Without a date, opens
today's entry.

Examples:
  daybook-cli edit
  daybook-cli edit 20250315`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := domain.Today()
		if len(args) == 1 {
			date = args[0]
		}

		ctx := context.Background()
		result, err := commands.NewCreateEntryCommand(GetJournal(), date).Execute(ctx)
		if err != nil {
			return err
		}
		if !result.Existed {
			fmt.Println(result.Message)
		}

		return editor.NewOpener().OpenFile(result.Path)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
