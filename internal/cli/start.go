package cli

import (
	"fmt"
	"strings"

	"github.com/rubenagostinho/taskr/internal/observability"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start <id | name>",
	Short: "Start the timer on a task",
	Long: `Start a work session on the task matching the given id or name.

Remaining arguments are joined into one token. If no task matches, a new
task is created with that name and its timer started immediately.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Engine == nil {
			return fmt.Errorf("engine not initialized")
		}

		token := strings.Join(args, " ")
		res, err := Engine.Start(token, true)
		if err != nil {
			return err
		}

		if res.AlreadyRunning {
			fmt.Printf("Task %q is already running (since %s).\n",
				res.Task.Name, res.Session.Start.Format("15:04"))
			return nil
		}

		if res.Created {
			fmt.Printf("Created task #%s %q\n", res.Task.ID, res.Task.Name)
			logEvent(observability.EventTaskCreated, "task created", map[string]any{"id": res.Task.ID, "name": res.Task.Name})
		}

		logEvent(observability.EventTimerStarted, "timer started", map[string]any{"id": res.Task.ID, "session": res.Session.ID})

		fmt.Printf("Started %q\n", res.Task.Name)
		fmt.Printf("  Status: %s\n", res.Task.Status)
		fmt.Printf("  Since:  %s\n", res.Session.Start.Format("15:04:05"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
