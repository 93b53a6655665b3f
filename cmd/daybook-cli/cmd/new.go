package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"daybook/internal/application/commands"
	"daybook/internal/domain"
)

var newCmd = &cobra.Command{
	Use:   "new [date]",
	Short: "Create the entry for a date",
	Long: `Create an empty journal entry for a date given as 8 digits.
Without a date, creates today's entry. Creating an entry that already
exists leaves it untouched.

Examples:
  daybook-cli new
  daybook-cli new 20250315`,
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

		fmt.Println(result.Message)
		fmt.Println(result.Path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
