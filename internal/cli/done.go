package cli

import (
	"fmt"
	"strings"

	"github.com/rubenagostinho/taskr/internal/observability"
	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <id | name>",
	Short: "Mark a task as done",
	Long: `Mark the task matching the given id or name as done.

A running timer on the task is stopped first, so its final session is
recorded before completion.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Engine == nil {
			return fmt.Errorf("engine not initialized")
		}

		token := strings.Join(args, " ")
		task, err := Engine.MarkDone(token)
		if err != nil {
			return err
		}

		logEvent(observability.EventTaskCompleted, "task completed", map[string]any{"id": task.ID, "name": task.Name})

		fmt.Printf("Task #%s %q marked as done.\n", task.ID, task.Name)
		return nil
	},
}

var todoCmd = &cobra.Command{
	Use:   "todo <id | name>",
	Short: "Reopen a task",
	Long: `Set the task matching the given id or name back to todo.

A running timer on the task is stopped first. Recorded sessions are kept;
only the status and completion timestamp change.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Engine == nil {
			return fmt.Errorf("engine not initialized")
		}

		token := strings.Join(args, " ")
		task, err := Engine.MarkTodo(token)
		if err != nil {
			return err
		}

		logEvent(observability.EventTaskReopened, "task reopened", map[string]any{"id": task.ID, "name": task.Name})

		fmt.Printf("Task #%s %q set back to todo.\n", task.ID, task.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(todoCmd)
}
