package cli

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rubenagostinho/taskr/internal/core"
	"github.com/spf13/cobra"
)

// Dashboard panel indices.
const (
	panelTimer = iota
	panelToday
	panelWeek
	panelCount
)

var (
	dashTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62")).
				Padding(1, 2)

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type timerSnapshot struct {
	taskID   string
	taskName string
	since    time.Time
	elapsed  int
}

type dashboardModel struct {
	activePanel int
	width       int
	height      int

	timer *timerSnapshot
	today core.DayReport
	week  core.WeekReport

	loading bool
	err     error
}

// dashDataMsg carries loaded data back to the model.
type dashDataMsg struct {
	timer *timerSnapshot
	today core.DayReport
	week  core.WeekReport
	err   error
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Live overview of the timer, today, and the week",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Engine == nil {
			return fmt.Errorf("engine not initialized")
		}
		p := tea.NewProgram(newDashboardModel(), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running dashboard: %w", err)
		}
		return nil
	},
}

func newDashboardModel() dashboardModel {
	return dashboardModel{activePanel: panelTimer, loading: true}
}

func (m dashboardModel) Init() tea.Cmd {
	return loadDashData
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.activePanel = (m.activePanel + 1) % panelCount
			return m, nil
		case "shift+tab":
			m.activePanel = (m.activePanel - 1 + panelCount) % panelCount
			return m, nil
		case "r":
			m.loading = true
			return m, loadDashData
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dashDataMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.timer = msg.timer
		m.today = msg.today
		m.week = msg.week
		m.err = nil
		return m, nil
	}

	return m, nil
}

func (m dashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	title := dashTitleStyle.Render(" taskr ")
	help := helpStyle.Render("tab: switch panel | r: refresh | q: quit")

	if m.loading {
		return fmt.Sprintf("%s\n\n  Loading data...\n\n%s", title, help)
	}
	if m.err != nil {
		return fmt.Sprintf("%s\n\n  Error: %s\n\n%s", title, m.err, help)
	}

	timerPanel := m.renderTimerPanel()
	todayPanel := m.renderTodayPanel()
	weekPanel := m.renderWeekPanel()

	availableWidth := m.width - 2

	var body string
	if availableWidth > 120 {
		colWidth := availableWidth / 3
		timerPanel = m.applyPanelStyle(panelTimer, timerPanel, colWidth-4)
		todayPanel = m.applyPanelStyle(panelToday, todayPanel, colWidth-4)
		weekPanel = m.applyPanelStyle(panelWeek, weekPanel, colWidth-4)
		body = lipgloss.JoinHorizontal(lipgloss.Top, timerPanel, todayPanel, weekPanel)
	} else {
		panelWidth := availableWidth - 4
		if panelWidth < 20 {
			panelWidth = 20
		}
		timerPanel = m.applyPanelStyle(panelTimer, timerPanel, panelWidth)
		todayPanel = m.applyPanelStyle(panelToday, todayPanel, panelWidth)
		weekPanel = m.applyPanelStyle(panelWeek, weekPanel, panelWidth)
		body = lipgloss.JoinVertical(lipgloss.Left, timerPanel, todayPanel, weekPanel)
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s", title, body, help)
}

func (m dashboardModel) applyPanelStyle(panel int, content string, width int) string {
	style := panelStyle
	if m.activePanel == panel {
		style = activePanelStyle
	}
	return style.Width(width).Render(content)
}

func (m dashboardModel) renderTimerPanel() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Timer"))
	b.WriteString("\n")

	if m.timer == nil {
		b.WriteString("  No task running.")
		return b.String()
	}
	b.WriteString(fmt.Sprintf("  #%s %s\n", m.timer.taskID, m.timer.taskName))
	b.WriteString(fmt.Sprintf("  Since   %s\n", m.timer.since.Format("15:04")))
	b.WriteString(fmt.Sprintf("  Elapsed %s", core.FormatMinutes(m.timer.elapsed)))
	return b.String()
}

func (m dashboardModel) renderTodayPanel() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Today (%s)", m.today.Date)))
	b.WriteString("\n")

	if len(m.today.Entries) == 0 {
		b.WriteString("  No tracked time.")
		return b.String()
	}
	for _, e := range m.today.Entries {
		b.WriteString(fmt.Sprintf("  %s  %-8s %s\n",
			e.Session.Start.Format("15:04"),
			core.FormatMinutes(*e.Session.Duration),
			e.TaskName))
	}
	b.WriteString(fmt.Sprintf("\n  Total: %s", core.FormatMinutes(m.today.TotalMinutes)))
	return b.String()
}

func (m dashboardModel) renderWeekPanel() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Week"))
	b.WriteString("\n")

	for _, day := range m.week.Days {
		b.WriteString(fmt.Sprintf("  %s  %s\n", day.Date, core.FormatMinutes(day.TotalMinutes)))
	}
	b.WriteString(fmt.Sprintf("\n  Total: %s", core.FormatMinutes(m.week.TotalMinutes)))
	return b.String()
}

func loadDashData() tea.Msg {
	var result dashDataMsg

	if Engine == nil {
		result.err = fmt.Errorf("engine not initialized")
		return result
	}

	tasks, err := Engine.Tasks()
	if err != nil {
		result.err = fmt.Errorf("loading tasks: %w", err)
		return result
	}

	now := time.Now()
	if task, session := core.ActiveSession(tasks); task != nil {
		result.timer = &timerSnapshot{
			taskID:   task.ID,
			taskName: task.Name,
			since:    session.Start,
			elapsed:  int(math.Round(now.Sub(session.Start).Minutes())),
		}
	}
	result.today = core.BuildDayReport(tasks, core.DateOf(now))
	result.week = core.BuildWeekReport(tasks, now)
	return result
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
