package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"daybook/internal/adapters/kvstore"
	"daybook/internal/adapters/syncdir"
	"daybook/internal/application/commands"
	"daybook/internal/ports"
)

var syncCmd = &cobra.Command{
	Use:   "sync [push|pull]",
	Short: "Copy entries to or from the configured sync target",
	Long: `Copy journal entries between the local directory and the sync target
named in the config file ([sync] provider = "dir" or "kv").

push uploads every local entry, overwriting the target's copies.
pull downloads entries the journal is missing; local files always win.

Examples:
  daybook-cli sync push
  daybook-cli sync pull`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"push", "pull"},
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := syncTarget()
		if err != nil {
			return err
		}

		direction := commands.SyncPush
		if args[0] == "pull" {
			direction = commands.SyncPull
		}

		ctx := context.Background()
		result, err := commands.NewSyncCommand(GetJournal(), target, direction).Execute(ctx)
		if result != nil {
			fmt.Println(result.Message)
		}
		return err
	},
}

// syncTarget builds the provider named in config. Providers are selected
// here, once, not discovered anywhere deeper in the program.
func syncTarget() (ports.SyncTarget, error) {
	sc := GetConfig().Sync
	switch sc.Provider {
	case "dir":
		return syncdir.NewTarget(sc.Path), nil
	case "kv":
		return kvstore.NewTarget(sc.Path), nil
	case "":
		return nil, fmt.Errorf("no sync target configured: set [sync] provider in the config file")
	default:
		return nil, fmt.Errorf("unknown sync provider: %q (expected \"dir\" or \"kv\")", sc.Provider)
	}
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
