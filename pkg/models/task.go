// Package models defines the task collection data model shared by the
// engine, storage, and CLI layers.
package models

import "time"

// TaskStatus represents the current lifecycle state of a task.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusBlocked    TaskStatus = "blocked" // reserved; no operation transitions into or out of it
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
)

// Task is a unit of work with its recorded work sessions and notes.
// JSON field names match the on-disk data.json format.
type Task struct {
	ID        string        `json:"id"`
	Status    TaskStatus    `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	EndAt     *time.Time    `json:"end_at"`
	Name      string        `json:"name"`
	Schedule  string        `json:"schedule,omitempty"`
	WorkFlow  []WorkSession `json:"work_flow"`
	TaskNotes []Note        `json:"task_notes"`
}

// WorkSession is one contiguous interval of tracked time. A nil Stop means
// the session is open (currently running). Duration is whole minutes and is
// set if and only if Stop is set.
type WorkSession struct {
	ID       string     `json:"id"`
	Start    time.Time  `json:"start"`
	Stop     *time.Time `json:"stop"`
	Duration *int       `json:"duration"`
}

// Open reports whether the session is still running.
func (w WorkSession) Open() bool {
	return w.Stop == nil
}

// Note is a free-form annotation attached to a task.
type Note struct {
	ID        string    `json:"id"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

// OpenSession returns a pointer to the task's open work session, or nil if
// every session is closed. At most one can exist per the single-timer
// invariant.
func (t *Task) OpenSession() *WorkSession {
	for i := range t.WorkFlow {
		if t.WorkFlow[i].Open() {
			return &t.WorkFlow[i]
		}
	}
	return nil
}

// ClosedSessions returns the task's sessions that have both a stop time and
// a duration. Only these count toward reports.
func (t Task) ClosedSessions() []WorkSession {
	var closed []WorkSession
	for _, w := range t.WorkFlow {
		if !w.Open() && w.Duration != nil {
			closed = append(closed, w)
		}
	}
	return closed
}

// FindOpenSession scans the collection in order and returns the index of the
// first task holding an open session, plus a pointer to that session.
// Returns (-1, nil) when no timer is running.
func FindOpenSession(tasks []Task) (int, *WorkSession) {
	for i := range tasks {
		if w := tasks[i].OpenSession(); w != nil {
			return i, w
		}
	}
	return -1, nil
}
