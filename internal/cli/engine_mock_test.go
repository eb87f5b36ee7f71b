package cli

import (
	"github.com/rubenagostinho/taskr/internal/core"
	"github.com/rubenagostinho/taskr/pkg/models"
)

// engineMock implements core.Engine for command tests. Unset functions
// return zero values.
type engineMock struct {
	createFn   func(name, schedule string) (*models.Task, error)
	startFn    func(token string, createIfMissing bool) (*core.StartResult, error)
	stopFn     func() (*core.StopResult, error)
	markDoneFn func(token string) (*models.Task, error)
	markTodoFn func(token string) (*models.Task, error)
	editFn     func(token string, newName, newSchedule *string) (*models.Task, error)
	tasksFn    func() ([]models.Task, error)
}

func (m *engineMock) Create(name, schedule string) (*models.Task, error) {
	if m.createFn != nil {
		return m.createFn(name, schedule)
	}
	return &models.Task{ID: "1", Name: name, Schedule: schedule}, nil
}

func (m *engineMock) Start(token string, createIfMissing bool) (*core.StartResult, error) {
	if m.startFn != nil {
		return m.startFn(token, createIfMissing)
	}
	return &core.StartResult{}, nil
}

func (m *engineMock) Stop() (*core.StopResult, error) {
	if m.stopFn != nil {
		return m.stopFn()
	}
	return &core.StopResult{}, nil
}

func (m *engineMock) MarkDone(token string) (*models.Task, error) {
	if m.markDoneFn != nil {
		return m.markDoneFn(token)
	}
	return &models.Task{ID: "1"}, nil
}

func (m *engineMock) MarkTodo(token string) (*models.Task, error) {
	if m.markTodoFn != nil {
		return m.markTodoFn(token)
	}
	return &models.Task{ID: "1"}, nil
}

func (m *engineMock) Edit(token string, newName, newSchedule *string) (*models.Task, error) {
	if m.editFn != nil {
		return m.editFn(token, newName, newSchedule)
	}
	return &models.Task{ID: "1"}, nil
}

func (m *engineMock) Tasks() ([]models.Task, error) {
	if m.tasksFn != nil {
		return m.tasksFn()
	}
	return nil, nil
}
