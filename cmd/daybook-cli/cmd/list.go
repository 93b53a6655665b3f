package cmd

import (
	"context"
	"fmt"

	"strings"

	"github.com/spf13/cobra"

	"daybook/internal/application/commands"
)

var listMonth string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all journal entries",
	Long: `List the dates of all journal entries, oldest first. --month
narrows the listing to one year or one month.

Examples:
  daybook-cli list
  daybook-cli list --month 2025
  daybook-cli list --month 2025-03`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		infos, err := commands.NewListEntriesCommand(GetJournal()).Execute(ctx)
		if err != nil {
			return err
		}

		for _, info := range infos {
			if listMonth != "" && !strings.HasPrefix(info.Date, listMonth) {
				continue
			}
			fmt.Println(info.Date)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listMonth, "month", "", "only entries in this year (2025) or month (2025-03)")
	rootCmd.AddCommand(listCmd)
}
