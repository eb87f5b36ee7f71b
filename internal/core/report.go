package core

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rubenagostinho/taskr/pkg/models"
)

// SessionEntry pairs a closed work session with the task it belongs to, for
// report rendering.
type SessionEntry struct {
	TaskID   string
	TaskName string
	Session  models.WorkSession
}

// DayReport lists the closed sessions of one calendar date in chronological
// order, with the day's total minutes.
type DayReport struct {
	Date         string
	Entries      []SessionEntry
	TotalMinutes int
}

// WeekDay is one calendar date inside a week report. Days with no activity
// are present with an empty Entries slice.
type WeekDay struct {
	Date         string
	Entries      []SessionEntry
	TotalMinutes int
}

// WeekReport covers the Sunday-to-Saturday week containing "now".
type WeekReport struct {
	Start        string
	End          string
	Days         [7]WeekDay
	TotalMinutes int
}

// MonthGroup aggregates a month's sessions sharing a task name.
type MonthGroup struct {
	Name     string
	Sessions int
	Minutes  int
	// Percent of the month total, rounded to one decimal. Zero when the
	// month total is zero.
	Percent float64
}

// MonthReport aggregates the current calendar month grouped by task name,
// largest group first.
type MonthReport struct {
	Year          int
	Month         time.Month
	Groups        []MonthGroup
	TotalMinutes  int
	AveragePerDay float64
}

// DailyTotal sums the durations of all closed sessions, across all tasks,
// whose start falls on the given canonical date.
func DailyTotal(tasks []models.Task, date string) int {
	total := 0
	for _, t := range tasks {
		for _, w := range t.ClosedSessions() {
			if DateOf(w.Start) == date {
				total += *w.Duration
			}
		}
	}
	return total
}

// BuildDayReport collects the closed sessions of one date, sorted ascending
// by start time. The sort is stable: ties keep collection order.
func BuildDayReport(tasks []models.Task, date string) DayReport {
	report := DayReport{Date: date}
	for _, t := range tasks {
		for _, w := range t.ClosedSessions() {
			if DateOf(w.Start) == date {
				report.Entries = append(report.Entries, SessionEntry{TaskID: t.ID, TaskName: t.Name, Session: w})
				report.TotalMinutes += *w.Duration
			}
		}
	}
	sort.SliceStable(report.Entries, func(i, j int) bool {
		return report.Entries[i].Session.Start.Before(report.Entries[j].Session.Start)
	})
	return report
}

// BuildWeekReport buckets closed sessions into the Sunday-to-Saturday week
// containing now, one bucket per calendar date.
func BuildWeekReport(tasks []models.Task, now time.Time) WeekReport {
	sunday := now.AddDate(0, 0, -int(now.Weekday()))

	var report WeekReport
	for i := 0; i < 7; i++ {
		date := DateOf(sunday.AddDate(0, 0, i))
		day := BuildDayReport(tasks, date)
		report.Days[i] = WeekDay{Date: date, Entries: day.Entries, TotalMinutes: day.TotalMinutes}
		report.TotalMinutes += day.TotalMinutes
	}
	report.Start = report.Days[0].Date
	report.End = report.Days[6].Date
	return report
}

// BuildMonthReport aggregates the closed sessions of now's calendar month,
// grouped by task name. Tasks sharing a name merge into one group. Groups
// are sorted descending by total minutes, ties broken by name.
func BuildMonthReport(tasks []models.Task, now time.Time) MonthReport {
	report := MonthReport{Year: now.Year(), Month: now.Month()}
	monthPrefix := fmt.Sprintf("%04d-%02d", now.Year(), int(now.Month()))

	byName := make(map[string]*MonthGroup)
	for _, t := range tasks {
		for _, w := range t.ClosedSessions() {
			if DateOf(w.Start)[:7] != monthPrefix {
				continue
			}
			g, ok := byName[t.Name]
			if !ok {
				g = &MonthGroup{Name: t.Name}
				byName[t.Name] = g
			}
			g.Sessions++
			g.Minutes += *w.Duration
			report.TotalMinutes += *w.Duration
		}
	}

	for _, g := range byName {
		if report.TotalMinutes > 0 {
			pct := float64(g.Minutes) / float64(report.TotalMinutes) * 100
			g.Percent = math.Round(pct*10) / 10
		}
		report.Groups = append(report.Groups, *g)
	}
	sort.Slice(report.Groups, func(i, j int) bool {
		if report.Groups[i].Minutes != report.Groups[j].Minutes {
			return report.Groups[i].Minutes > report.Groups[j].Minutes
		}
		return report.Groups[i].Name < report.Groups[j].Name
	})

	report.AveragePerDay = float64(report.TotalMinutes) / float64(now.Day())
	return report
}

// ActiveSession returns the task and session of the running timer, or nils
// when none is running.
func ActiveSession(tasks []models.Task) (*models.Task, *models.WorkSession) {
	idx, session := models.FindOpenSession(tasks)
	if session == nil {
		return nil, nil
	}
	return &tasks[idx], session
}

// FilterTasks selects tasks for listing, in collection order. Done tasks are
// excluded unless includeDone is set; with todayOnly set, only tasks
// scheduled for the given date are kept.
func FilterTasks(tasks []models.Task, includeDone, todayOnly bool, today string) []models.Task {
	var out []models.Task
	for _, t := range tasks {
		if !includeDone && t.Status == models.StatusDone {
			continue
		}
		if todayOnly && t.Schedule != today {
			continue
		}
		out = append(out, t)
	}
	return out
}

// FormatMinutes renders a duration in the shared report style: "Nm" under an
// hour, "Hh" on the hour, "Hh Mm" otherwise.
func FormatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	h, m := minutes/60, minutes%60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
