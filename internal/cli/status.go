package cli

import (
	"fmt"
	"math"
	"time"

	"github.com/rubenagostinho/taskr/internal/core"
	"github.com/spf13/cobra"
)

var statusTotal bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the running timer, if any",
	Long: `Show which task is currently being tracked and for how long.

Use -t to also print the total time tracked today.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Engine == nil {
			return fmt.Errorf("engine not initialized")
		}

		tasks, err := Engine.Tasks()
		if err != nil {
			return fmt.Errorf("loading tasks: %w", err)
		}

		task, session := core.ActiveSession(tasks)
		if task == nil {
			fmt.Println("No task is currently running.")
		} else {
			elapsed := int(math.Round(time.Since(session.Start).Minutes()))
			fmt.Printf("Working on %q (#%s)\n", task.Name, task.ID)
			fmt.Printf("  Since:   %s\n", session.Start.Format("15:04:05"))
			fmt.Printf("  Elapsed: %s\n", core.FormatMinutes(elapsed))
		}

		if statusTotal {
			today := core.DateOf(time.Now())
			total := core.DailyTotal(tasks, today)
			fmt.Printf("Today (%s): %s\n", today, core.FormatMinutes(total))
		}
		return nil
	},
}

func init() {
	statusCmd.Flags().BoolVarP(&statusTotal, "total", "t", false, "Also show today's tracked total")
	rootCmd.AddCommand(statusCmd)
}
