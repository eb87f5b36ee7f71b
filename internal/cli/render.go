package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rubenagostinho/taskr/internal/core"
	"github.com/rubenagostinho/taskr/pkg/models"
)

// Style definitions shared by ls, status, report, and the dashboard.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			MarginBottom(1)

	totalStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	statusTodo       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusInProgress = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	statusDone       = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	statusBlocked    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func styleForStatus(status models.TaskStatus) lipgloss.Style {
	switch status {
	case models.StatusInProgress:
		return statusInProgress
	case models.StatusDone:
		return statusDone
	case models.StatusBlocked:
		return statusBlocked
	case models.StatusTodo:
		return statusTodo
	default:
		return lipgloss.NewStyle()
	}
}

// printTaskLine renders one task in the ls style:
// [STATUS] #id name  (scheduled: DD/MM/YYYY)
func printTaskLine(t models.Task) {
	tag := styleForStatus(t.Status).Render(fmt.Sprintf("[%s]", strings.ToUpper(string(t.Status))))
	line := fmt.Sprintf("%s #%s %s", tag, t.ID, t.Name)
	if t.Schedule != "" {
		display, err := core.ConvertToDisplay(t.Schedule)
		if err != nil {
			display = t.Schedule
		}
		line += dimStyle.Render(fmt.Sprintf("  (scheduled: %s)", display))
	}
	fmt.Println(line)
}

// clockLayout renders timestamps inside reports.
const clockLayout = "15:04"

func renderDayReport(r core.DayReport) {
	fmt.Println(headerStyle.Render(fmt.Sprintf("Day report - %s", r.Date)))
	if len(r.Entries) == 0 {
		fmt.Println("  No tracked time.")
		return
	}
	fmt.Printf("  %-8s %-8s %-10s %s\n", "START", "STOP", "DURATION", "TASK")
	for _, e := range r.Entries {
		fmt.Printf("  %-8s %-8s %-10s #%s %s\n",
			e.Session.Start.Format(clockLayout),
			e.Session.Stop.Format(clockLayout),
			core.FormatMinutes(*e.Session.Duration),
			e.TaskID, e.TaskName)
	}
	fmt.Println(totalStyle.Render(fmt.Sprintf("\n  Total: %s", core.FormatMinutes(r.TotalMinutes))))
}

func renderWeekReport(r core.WeekReport) {
	fmt.Println(headerStyle.Render(fmt.Sprintf("Week report - %s to %s", r.Start, r.End)))
	for _, day := range r.Days {
		fmt.Printf("%s\n", day.Date)
		if len(day.Entries) == 0 {
			fmt.Println(dimStyle.Render("  -"))
			continue
		}
		for _, e := range day.Entries {
			fmt.Printf("  %-8s %-10s #%s %s\n",
				e.Session.Start.Format(clockLayout),
				core.FormatMinutes(*e.Session.Duration),
				e.TaskID, e.TaskName)
		}
		fmt.Printf("  Subtotal: %s\n", core.FormatMinutes(day.TotalMinutes))
	}
	fmt.Println(totalStyle.Render(fmt.Sprintf("\nWeek total: %s", core.FormatMinutes(r.TotalMinutes))))
}

func renderMonthReport(r core.MonthReport) {
	fmt.Println(headerStyle.Render(fmt.Sprintf("Month report - %s %d", r.Month, r.Year)))
	if r.TotalMinutes == 0 {
		fmt.Println("  No tracked time this month.")
		return
	}
	fmt.Printf("  %-30s %-10s %-10s %s\n", "TASK", "SESSIONS", "TIME", "SHARE")
	for _, g := range r.Groups {
		fmt.Printf("  %-30s %-10d %-10s %.1f%%\n",
			g.Name, g.Sessions, core.FormatMinutes(g.Minutes), g.Percent)
	}
	fmt.Println(totalStyle.Render(fmt.Sprintf("\n  Total: %s", core.FormatMinutes(r.TotalMinutes))))
	fmt.Printf("  Average per day: %s\n", core.FormatMinutes(int(r.AveragePerDay)))
}
