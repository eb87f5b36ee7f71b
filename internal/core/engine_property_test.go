package core

import (
	"fmt"
	"testing"
	"time"

	"github.com/rubenagostinho/taskr/pkg/models"
	"pgregory.net/rapid"
)

// Property: across any sequence of engine operations, the stored collection
// holds at most one open work session, durations exist iff stop times exist,
// and end_at exists iff the task is done.
func TestProperty_SingleOpenSessionInvariant(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		store := &memStore{}
		clock := newStepClock(time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC))
		engine := newTestEngine(store, clock)

		names := []string{"alpha", "beta", "gamma"}
		steps := rapid.IntRange(1, 60).Draw(rt, "steps")

		for i := 0; i < steps; i++ {
			op := rapid.IntRange(0, 4).Draw(rt, fmt.Sprintf("op%d", i))
			name := names[rapid.IntRange(0, len(names)-1).Draw(rt, fmt.Sprintf("name%d", i))]
			clock.Advance(time.Duration(rapid.IntRange(0, 90).Draw(rt, fmt.Sprintf("adv%d", i))) * time.Minute)

			var err error
			switch op {
			case 0:
				_, err = engine.Create(name, "")
			case 1:
				_, err = engine.Start(name, true)
			case 2:
				_, err = engine.Stop()
			case 3:
				_, err = engine.MarkDone(name)
			case 4:
				_, err = engine.MarkTodo(name)
			}
			if err != nil && op != 3 && op != 4 {
				rt.Fatalf("step %d op %d failed: %v", i, op, err)
			}

			assertInvariants(rt, store.tasks)
		}
	})
}

func assertInvariants(rt *rapid.T, tasks []models.Task) {
	rt.Helper()

	open := 0
	for _, task := range tasks {
		for _, w := range task.WorkFlow {
			if w.Open() {
				open++
				if w.Duration != nil {
					rt.Fatalf("open session %s has a duration", w.ID)
				}
			} else if w.Duration == nil {
				rt.Fatalf("closed session %s has no duration", w.ID)
			}
		}
		if (task.Status == models.StatusDone) != (task.EndAt != nil) {
			rt.Fatalf("task %s: status %s with end_at %v", task.ID, task.Status, task.EndAt)
		}
	}
	if open > 1 {
		rt.Fatalf("%d open sessions in the collection, want at most 1", open)
	}
}
