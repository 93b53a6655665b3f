package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"daybook/internal/adapters/tui"
	"daybook/internal/application/commands"
	"daybook/internal/domain"
)

var showRendered bool

var showCmd = &cobra.Command{
	Use:   "show [date]",
	Short: "Print the content of an entry",
	Long: `Print the content of the entry for a date given as 8 digits.
Without a date, shows today's entry. --rendered applies the same
lightweight markdown styling the TUI preview uses.

Examples:
  daybook-cli show
  daybook-cli show 20250315
  daybook-cli show 20250315 --rendered`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := domain.Today()
		if len(args) == 1 {
			date = args[0]
		}

		ctx := context.Background()
		content, err := commands.NewShowEntryCommand(GetJournal(), date).Execute(ctx)
		if err != nil {
			return err
		}

		if showRendered {
			fmt.Println(tui.RenderDoc(content))
			return nil
		}
		fmt.Print(content)
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showRendered, "rendered", false, "apply markdown styling")
	rootCmd.AddCommand(showCmd)
}
