// Package core contains the task/session state engine: task creation and
// lookup, the timer lifecycle, status transitions, editing, and the report
// aggregation built on top of the stored sessions.
package core

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math"
	"time"

	"github.com/rubenagostinho/taskr/pkg/models"
)

// TaskStore is the subset of storage.TaskStore the engine needs. Defining it
// here keeps core independent of the storage package.
type TaskStore interface {
	Load() ([]models.Task, error)
	Save(tasks []models.Task) error
}

// StartResult reports the outcome of a Start call.
type StartResult struct {
	Task    models.Task
	Session models.WorkSession
	// Created is true when the token did not resolve and a new task was
	// created from it.
	Created bool
	// AlreadyRunning is true when the task already had an open session;
	// nothing was mutated.
	AlreadyRunning bool
}

// StopResult reports the outcome of a Stop call.
type StopResult struct {
	// Stopped is false when no timer was running; nothing was mutated.
	Stopped bool
	Task    models.Task
	Session models.WorkSession
}

// Engine defines the task lifecycle and time-tracking operations. Every
// mutating operation loads the whole collection from the store, applies one
// change, and saves the whole collection back; no state is cached between
// calls.
type Engine interface {
	Create(name, schedule string) (*models.Task, error)
	Start(token string, createIfMissing bool) (*StartResult, error)
	Stop() (*StopResult, error)
	MarkDone(token string) (*models.Task, error)
	MarkTodo(token string) (*models.Task, error)
	Edit(token string, newName, newSchedule *string) (*models.Task, error)
	Tasks() ([]models.Task, error)
}

type taskEngine struct {
	store TaskStore
	now   Clock
}

// NewEngine creates an Engine backed by the given store. now supplies the
// current time for created/started/stopped timestamps.
func NewEngine(store TaskStore, now Clock) Engine {
	return &taskEngine{store: store, now: now}
}

// Tasks returns the current collection as stored.
func (e *taskEngine) Tasks() ([]models.Task, error) {
	return e.store.Load()
}

// Create appends a new todo task with a fresh id and persists the
// collection. schedule is a canonical YYYY-MM-DD date or "" for none.
// Duplicate names are permitted; ids disambiguate.
func (e *taskEngine) Create(name, schedule string) (*models.Task, error) {
	tasks, err := e.store.Load()
	if err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	task := newTask(NextID(tasks), name, schedule, e.now())
	tasks = append(tasks, task)

	if err := e.store.Save(tasks); err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}
	return &task, nil
}

// Start begins a work session on the task the token resolves to. An
// unresolved token creates a new task named after it when createIfMissing is
// set, and fails with ErrTaskNotFound otherwise. A task whose session is
// already open is reported via AlreadyRunning with no mutation. Starting a
// todo task advances it to in_progress.
func (e *taskEngine) Start(token string, createIfMissing bool) (*StartResult, error) {
	tasks, err := e.store.Load()
	if err != nil {
		return nil, fmt.Errorf("starting task: %w", err)
	}

	result := &StartResult{}

	idx, err := Resolve(token, tasks)
	if err != nil {
		if !createIfMissing {
			return nil, err
		}
		tasks = append(tasks, newTask(NextID(tasks), token, "", e.now()))
		idx = len(tasks) - 1
		result.Created = true
	}

	t := &tasks[idx]
	if open := t.OpenSession(); open != nil {
		result.Task = *t
		result.Session = *open
		result.AlreadyRunning = true
		return result, nil
	}

	if t.Status == models.StatusTodo {
		t.Status = models.StatusInProgress
	}
	session := models.WorkSession{ID: newSessionID(), Start: e.now()}
	t.WorkFlow = append(t.WorkFlow, session)

	if err := e.store.Save(tasks); err != nil {
		return nil, fmt.Errorf("starting task: %w", err)
	}

	result.Task = *t
	result.Session = session
	return result, nil
}

// Stop closes the single open session anywhere in the collection, computing
// its duration in whole minutes. With no timer running it reports
// Stopped=false and mutates nothing. The task status deliberately stays
// in_progress: stopping the clock does not imply completion.
func (e *taskEngine) Stop() (*StopResult, error) {
	tasks, err := e.store.Load()
	if err != nil {
		return nil, fmt.Errorf("stopping timer: %w", err)
	}

	idx, session := models.FindOpenSession(tasks)
	if session == nil {
		return &StopResult{}, nil
	}

	stop := e.now()
	minutes := int(math.Round(stop.Sub(session.Start).Minutes()))
	session.Stop = &stop
	session.Duration = &minutes

	if err := e.store.Save(tasks); err != nil {
		return nil, fmt.Errorf("stopping timer: %w", err)
	}

	return &StopResult{Stopped: true, Task: tasks[idx], Session: *session}, nil
}

// MarkDone completes the task the token resolves to, stopping its open
// session first if one exists. Stop persists its own change, so the
// collection is reloaded and the token re-resolved before the status flip.
func (e *taskEngine) MarkDone(token string) (*models.Task, error) {
	tasks, idx, err := e.resolveAfterStop(token)
	if err != nil {
		return nil, err
	}

	t := &tasks[idx]
	end := e.now()
	t.Status = models.StatusDone
	t.EndAt = &end

	if err := e.store.Save(tasks); err != nil {
		return nil, fmt.Errorf("completing task: %w", err)
	}
	done := *t
	return &done, nil
}

// MarkTodo reopens the task the token resolves to, stopping its open session
// first if one exists. Historical session durations are untouched.
func (e *taskEngine) MarkTodo(token string) (*models.Task, error) {
	tasks, idx, err := e.resolveAfterStop(token)
	if err != nil {
		return nil, err
	}

	t := &tasks[idx]
	t.Status = models.StatusTodo
	t.EndAt = nil

	if err := e.store.Save(tasks); err != nil {
		return nil, fmt.Errorf("reopening task: %w", err)
	}
	reopened := *t
	return &reopened, nil
}

// resolveAfterStop resolves token and, if the resolved task holds the open
// session, runs Stop and reloads the collection so later mutations do not
// act on the stale pre-stop copy. The single-timer invariant guarantees the
// global Stop closed this task's session and not another's.
func (e *taskEngine) resolveAfterStop(token string) ([]models.Task, int, error) {
	tasks, err := e.store.Load()
	if err != nil {
		return nil, -1, fmt.Errorf("loading tasks: %w", err)
	}
	idx, err := Resolve(token, tasks)
	if err != nil {
		return nil, -1, err
	}

	if tasks[idx].OpenSession() == nil {
		return tasks, idx, nil
	}

	if _, err := e.Stop(); err != nil {
		return nil, -1, err
	}
	tasks, err = e.store.Load()
	if err != nil {
		return nil, -1, fmt.Errorf("reloading tasks: %w", err)
	}
	idx, err = Resolve(token, tasks)
	if err != nil {
		return nil, -1, err
	}
	return tasks, idx, nil
}

// Edit renames and/or reschedules the task the token resolves to. A nil
// field is left untouched; a pointer to "" clears the schedule. The CLI
// layer guarantees at least one field is provided.
func (e *taskEngine) Edit(token string, newName, newSchedule *string) (*models.Task, error) {
	tasks, err := e.store.Load()
	if err != nil {
		return nil, fmt.Errorf("editing task: %w", err)
	}
	idx, err := Resolve(token, tasks)
	if err != nil {
		return nil, err
	}

	t := &tasks[idx]
	if newName != nil {
		t.Name = *newName
	}
	if newSchedule != nil {
		t.Schedule = *newSchedule
	}

	if err := e.store.Save(tasks); err != nil {
		return nil, fmt.Errorf("editing task: %w", err)
	}
	edited := *t
	return &edited, nil
}

func newTask(id, name, schedule string, created time.Time) models.Task {
	return models.Task{
		ID:        id,
		Status:    models.StatusTodo,
		CreatedAt: created,
		Name:      name,
		Schedule:  schedule,
		WorkFlow:  []models.WorkSession{},
		TaskNotes: []models.Note{},
	}
}

// newSessionID returns an opaque unique token for a work session.
func newSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("reading random bytes: %v", err))
	}
	return hex.EncodeToString(b)
}
