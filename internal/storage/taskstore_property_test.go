package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rubenagostinho/taskr/pkg/models"
	"pgregory.net/rapid"
)

// Property: any collection the engine can produce survives a save/load cycle
// with ids, statuses, schedules, and session durations intact.
func TestProperty_StoreRoundTrip(t *testing.T) {
	statuses := []models.TaskStatus{
		models.StatusTodo, models.StatusBlocked, models.StatusInProgress, models.StatusDone,
	}
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 8).Draw(rt, "n")
		tasks := make([]models.Task, 0, n)
		for i := 0; i < n; i++ {
			task := models.Task{
				ID:        rapid.StringMatching(`[0-9]{1,4}`).Draw(rt, "id"),
				Status:    statuses[rapid.IntRange(0, 3).Draw(rt, "status")],
				CreatedAt: base,
				Name:      rapid.StringMatching(`[a-z ]{1,20}`).Draw(rt, "name"),
				WorkFlow:  []models.WorkSession{},
				TaskNotes: []models.Note{},
			}
			sessions := rapid.IntRange(0, 3).Draw(rt, "sessions")
			for j := 0; j < sessions; j++ {
				start := base.Add(time.Duration(rapid.IntRange(0, 10000).Draw(rt, "start")) * time.Minute)
				mins := rapid.IntRange(0, 600).Draw(rt, "mins")
				stop := start.Add(time.Duration(mins) * time.Minute)
				task.WorkFlow = append(task.WorkFlow, models.WorkSession{
					ID: rapid.StringMatching(`[a-f0-9]{8}`).Draw(rt, "sid"), Start: start, Stop: &stop, Duration: &mins,
				})
			}
			tasks = append(tasks, task)
		}

		store := NewFileTaskStore(filepath.Join(t.TempDir(), "data.json"))
		if err := store.Save(tasks); err != nil {
			rt.Fatalf("save failed: %v", err)
		}
		got, err := store.Load()
		if err != nil {
			rt.Fatalf("load failed: %v", err)
		}

		if len(got) != len(tasks) {
			rt.Fatalf("expected %d tasks, got %d", len(tasks), len(got))
		}
		for i := range tasks {
			if got[i].ID != tasks[i].ID || got[i].Status != tasks[i].Status || got[i].Name != tasks[i].Name {
				rt.Fatalf("task %d changed: %+v vs %+v", i, got[i], tasks[i])
			}
			if len(got[i].WorkFlow) != len(tasks[i].WorkFlow) {
				rt.Fatalf("task %d session count changed", i)
			}
			for j := range tasks[i].WorkFlow {
				want, have := tasks[i].WorkFlow[j], got[i].WorkFlow[j]
				if *have.Duration != *want.Duration || !have.Start.Equal(want.Start) {
					rt.Fatalf("task %d session %d changed: %+v vs %+v", i, j, have, want)
				}
			}
		}
	})
}
