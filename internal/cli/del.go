package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// del is parsed but performs no engine action. Deleting a task raises the
// question of what historical reports should show for its sessions, which
// has no answer yet; the command stays a stub until it does.
var delCmd = &cobra.Command{
	Use:   "del <id>",
	Short: "Delete a task (not implemented)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("del is not implemented; task #%s was left untouched.\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(delCmd)
}
