package cli

import (
	"fmt"
	"time"

	"github.com/rubenagostinho/taskr/internal/core"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report [day [DD/MM/YYYY] | week | month]",
	Short: "Summarize tracked time",
	Long: `Summarize tracked time from closed work sessions.

  report              today's sessions
  report day [date]   one day's sessions (default today)
  report week         the current Sunday-to-Saturday week, day by day
  report month        the current month, grouped by task name

Open sessions are excluded until stopped.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Engine == nil {
			return fmt.Errorf("engine not initialized")
		}

		tasks, err := Engine.Tasks()
		if err != nil {
			return fmt.Errorf("loading tasks: %w", err)
		}

		now := time.Now()
		kind := "day"
		if len(args) > 0 {
			kind = args[0]
		}

		switch kind {
		case "day":
			date := core.DateOf(now)
			if len(args) == 2 {
				date, err = core.ConvertToISO(args[1])
				if err != nil {
					return err
				}
			}
			renderDayReport(core.BuildDayReport(tasks, date))
		case "week":
			if len(args) == 2 {
				return fmt.Errorf("report week takes no date argument")
			}
			renderWeekReport(core.BuildWeekReport(tasks, now))
		case "month":
			if len(args) == 2 {
				return fmt.Errorf("report month takes no date argument")
			}
			renderMonthReport(core.BuildMonthReport(tasks, now))
		default:
			return fmt.Errorf("unknown report %q (expected day, week, or month)", kind)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
