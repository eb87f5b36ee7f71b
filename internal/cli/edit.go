package cli

import (
	"fmt"

	"github.com/rubenagostinho/taskr/internal/core"
	"github.com/rubenagostinho/taskr/internal/observability"
	"github.com/spf13/cobra"
)

var (
	editName     string
	editSchedule string
)

var editCmd = &cobra.Command{
	Use:   "edit <id | name>",
	Short: "Rename or reschedule a task",
	Long: `Edit the task matching the given id or name.

Use -n to rename and -s to reschedule (DD/MM/YYYY). Passing -s "" clears
the schedule. At least one of the two flags is required.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Engine == nil {
			return fmt.Errorf("engine not initialized")
		}

		nameSet := cmd.Flags().Changed("name")
		scheduleSet := cmd.Flags().Changed("schedule")
		if !nameSet && !scheduleSet {
			return fmt.Errorf("nothing to edit: provide --name and/or --schedule")
		}

		var newName, newSchedule *string
		if nameSet {
			newName = &editName
		}
		if scheduleSet {
			cleared := ""
			if editSchedule == "" {
				newSchedule = &cleared
			} else {
				iso, err := core.ConvertToISO(editSchedule)
				if err != nil {
					return err
				}
				newSchedule = &iso
			}
		}

		task, err := Engine.Edit(args[0], newName, newSchedule)
		if err != nil {
			return err
		}

		logEvent(observability.EventTaskEdited, "task edited", map[string]any{"id": task.ID, "name": task.Name})

		if task.Schedule != "" {
			fmt.Printf("Updated task #%s %q [scheduled: %s]\n", task.ID, task.Name, task.Schedule)
		} else {
			fmt.Printf("Updated task #%s %q\n", task.ID, task.Name)
		}
		return nil
	},
}

func init() {
	editCmd.Flags().StringVarP(&editName, "name", "n", "", "New task name")
	editCmd.Flags().StringVarP(&editSchedule, "schedule", "s", "", `New schedule date (DD/MM/YYYY), or "" to clear`)
	rootCmd.AddCommand(editCmd)
}
