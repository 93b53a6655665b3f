package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"daybook/internal/adapters/claudecli"
	"daybook/internal/application/commands"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a question about recent entries",
	Long: `Ask a free-form question about the journal. The most recent entries
are handed to the assistant as context; how many is set by
[assistant] context_entries in the config file.

Examples:
  daybook-cli ask "when did I last go climbing?"
  daybook-cli ask "what was on my mind last week?"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ac := GetConfig().Assistant
		assistant := claudecli.NewAssistant(claudecli.WithModel(ac.Model))

		askCmd := commands.NewAskCommand(GetJournal(), assistant, args[0])
		askCmd.ContextEntries = ac.ContextEntries

		ctx := context.Background()
		answer, err := askCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(answer)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
