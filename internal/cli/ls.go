package cli

import (
	"fmt"
	"time"

	"github.com/rubenagostinho/taskr/internal/core"
	"github.com/spf13/cobra"
)

var (
	lsAll  bool
	lsDone bool
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List tasks (default: scheduled for today)",
	Long: `List tasks in collection order.

By default only tasks scheduled for today are shown and done tasks are
hidden. Use -a to list every task and -d to include done tasks.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Engine == nil {
			return fmt.Errorf("engine not initialized")
		}

		tasks, err := Engine.Tasks()
		if err != nil {
			return fmt.Errorf("loading tasks: %w", err)
		}

		today := core.DateOf(time.Now())
		list := core.FilterTasks(tasks, lsDone, !lsAll, today)

		if len(list) == 0 {
			if lsAll {
				fmt.Println("No tasks found.")
			} else {
				fmt.Printf("No tasks scheduled for today (%s).\n", today)
			}
			return nil
		}

		if lsAll {
			fmt.Println(headerStyle.Render("All tasks"))
		} else {
			fmt.Println(headerStyle.Render(fmt.Sprintf("Tasks for today (%s)", today)))
		}
		for _, t := range list {
			printTaskLine(t)
		}
		return nil
	},
}

func init() {
	lsCmd.Flags().BoolVarP(&lsAll, "all", "a", false, "List all tasks, not just today's")
	lsCmd.Flags().BoolVarP(&lsDone, "done", "d", false, "Include done tasks")
	rootCmd.AddCommand(lsCmd)
}
