// Package cli implements the taskr command tree. Each command parses its
// arguments, calls one engine operation, and renders the result; all state
// lives in the engine and its store.
package cli

import (
	"fmt"
	"time"

	"github.com/rubenagostinho/taskr/internal/observability"
	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "taskr",
	Short: "taskr - personal task and time tracking",
	Long: `taskr is a personal command-line task and time tracker.

Record tasks, schedule them to dates, start and stop a timer against them,
and ask for day, week, or month summaries. Everything is stored in a single
JSON file on local disk; there is no server and no account.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("taskr %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// logEvent records a mutation on the event log, best effort.
func logEvent(eventType, message string, data map[string]any) {
	if EventLog == nil {
		return
	}
	_ = EventLog.Write(observability.Event{
		Time:    time.Now(),
		Type:    eventType,
		Message: message,
		Data:    data,
	})
}
