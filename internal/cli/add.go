package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/rubenagostinho/taskr/internal/core"
	"github.com/rubenagostinho/taskr/internal/observability"
	"github.com/spf13/cobra"
)

var (
	addToday    bool
	addSchedule string
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a new task",
	Long: `Create a new task with the given name.

Use -t to schedule it for today, or -s DD/MM/YYYY to schedule it for a
specific date. Without either flag the task is created unscheduled.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Engine == nil {
			return fmt.Errorf("engine not initialized")
		}
		if addToday && addSchedule != "" {
			return fmt.Errorf("-t and -s are mutually exclusive")
		}

		name := strings.Join(args, " ")

		schedule := ""
		if addToday {
			schedule = core.DateOf(time.Now())
		}
		if addSchedule != "" {
			iso, err := core.ConvertToISO(addSchedule)
			if err != nil {
				return err
			}
			schedule = iso
		}

		task, err := Engine.Create(name, schedule)
		if err != nil {
			return err
		}

		logEvent(observability.EventTaskCreated, "task created", map[string]any{"id": task.ID, "name": task.Name})

		if task.Schedule != "" {
			fmt.Printf("Created task #%s %q [scheduled: %s]\n", task.ID, task.Name, task.Schedule)
		} else {
			fmt.Printf("Created task #%s %q\n", task.ID, task.Name)
		}
		return nil
	},
}

func init() {
	addCmd.Flags().BoolVarP(&addToday, "today", "t", false, "Schedule the task for today")
	addCmd.Flags().StringVarP(&addSchedule, "schedule", "s", "", "Schedule the task for a date (DD/MM/YYYY)")
	rootCmd.AddCommand(addCmd)
}
