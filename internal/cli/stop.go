package cli

import (
	"fmt"

	"github.com/rubenagostinho/taskr/internal/core"
	"github.com/rubenagostinho/taskr/internal/observability"
	"github.com/spf13/cobra"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running timer",
	Long: `Stop the currently running work session, recording its duration.

The task stays in_progress: stopping the clock does not complete the task.
With no timer running this is a no-op.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Engine == nil {
			return fmt.Errorf("engine not initialized")
		}

		res, err := Engine.Stop()
		if err != nil {
			return err
		}
		if !res.Stopped {
			fmt.Println("No active timer.")
			return nil
		}

		logEvent(observability.EventTimerStopped, "timer stopped", map[string]any{
			"id": res.Task.ID, "session": res.Session.ID, "minutes": *res.Session.Duration,
		})

		fmt.Printf("Stopped timer on %q\n", res.Task.Name)
		fmt.Printf("  Session: %s\n", core.FormatMinutes(*res.Session.Duration))
		fmt.Printf("  Start:   %s\n", res.Session.Start.Format("15:04:05"))
		fmt.Printf("  Stop:    %s\n", res.Session.Stop.Format("15:04:05"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)
}
