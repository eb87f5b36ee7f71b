package core

import (
	"errors"
	"testing"

	"github.com/rubenagostinho/taskr/pkg/models"
)

func TestNextID_EmptyCollection(t *testing.T) {
	if id := NextID(nil); id != "1" {
		t.Errorf("expected 1, got %s", id)
	}
}

func TestNextID_IgnoresUnparseableIDs(t *testing.T) {
	tasks := []models.Task{{ID: "1"}, {ID: "3"}, {ID: "x"}, {ID: "7"}}
	if id := NextID(tasks); id != "8" {
		t.Errorf("expected 8, got %s", id)
	}
}

func TestNextID_GapsAreNotReused(t *testing.T) {
	tasks := []models.Task{{ID: "5"}}
	if id := NextID(tasks); id != "6" {
		t.Errorf("expected 6, got %s", id)
	}
}

func TestResolve_ExactIDWinsOverName(t *testing.T) {
	tasks := []models.Task{
		{ID: "1", Name: "2"},
		{ID: "2", Name: "write report"},
	}
	idx, err := Resolve("2", tasks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx != 1 {
		t.Errorf("expected index 1 (id match), got %d", idx)
	}
}

func TestResolve_FuzzyNameContainment(t *testing.T) {
	tasks := []models.Task{
		{ID: "1", Name: "Write Monthly Report"},
		{ID: "2", Name: "fix bug"},
	}

	// token contained in name
	idx, err := Resolve("monthly", tasks)
	if err != nil || idx != 0 {
		t.Fatalf("expected index 0, got %d (err=%v)", idx, err)
	}

	// name contained in token
	idx, err = Resolve("FIX BUG in prod", tasks)
	if err != nil || idx != 1 {
		t.Fatalf("expected index 1, got %d (err=%v)", idx, err)
	}
}

func TestResolve_FirstMatchWins(t *testing.T) {
	tasks := []models.Task{
		{ID: "1", Name: "review code"},
		{ID: "2", Name: "review design"},
	}
	idx, err := Resolve("review", tasks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx != 0 {
		t.Errorf("expected first match (index 0), got %d", idx)
	}
}

func TestResolve_NotFound(t *testing.T) {
	tasks := []models.Task{{ID: "1", Name: "alpha"}}
	_, err := Resolve("omega", tasks)
	if !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}
