package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/rubenagostinho/taskr/internal/core"
	"github.com/rubenagostinho/taskr/pkg/models"
)

// resetEditFlags re-registers the edit flags so the Changed state does not
// leak between tests.
func resetEditFlags() {
	editName = ""
	editSchedule = ""
	editCmd.ResetFlags()
	editCmd.Flags().StringVarP(&editName, "name", "n", "", "New task name")
	editCmd.Flags().StringVarP(&editSchedule, "schedule", "s", "", `New schedule date (DD/MM/YYYY), or "" to clear`)
}

func TestEditCommand_RequiresAFlag(t *testing.T) {
	origEngine := Engine
	defer func() {
		Engine = origEngine
		resetEditFlags()
	}()
	Engine = &engineMock{}
	resetEditFlags()

	err := editCmd.RunE(editCmd, []string{"1"})
	if err == nil {
		t.Fatal("expected error when neither --name nor --schedule is given")
	}
	if !strings.Contains(err.Error(), "nothing to edit") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestEditCommand_ClearSchedule(t *testing.T) {
	origEngine := Engine
	defer func() {
		Engine = origEngine
		resetEditFlags()
	}()
	resetEditFlags()

	var gotName, gotSchedule *string
	Engine = &engineMock{
		editFn: func(token string, newName, newSchedule *string) (*models.Task, error) {
			gotName, gotSchedule = newName, newSchedule
			return &models.Task{ID: token, Name: "x"}, nil
		},
	}

	if err := editCmd.Flags().Set("schedule", ""); err != nil {
		t.Fatalf("setting flag: %v", err)
	}
	if err := editCmd.RunE(editCmd, []string{"1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotName != nil {
		t.Errorf("name was not edited but got %v", gotName)
	}
	if gotSchedule == nil || *gotSchedule != "" {
		t.Errorf("expected explicit empty schedule (clear), got %v", gotSchedule)
	}
}

func TestEditCommand_ConvertsDisplayDate(t *testing.T) {
	origEngine := Engine
	defer func() {
		Engine = origEngine
		resetEditFlags()
	}()
	resetEditFlags()

	var gotSchedule *string
	Engine = &engineMock{
		editFn: func(token string, newName, newSchedule *string) (*models.Task, error) {
			gotSchedule = newSchedule
			return &models.Task{ID: token}, nil
		},
	}

	if err := editCmd.Flags().Set("schedule", "05/01/2026"); err != nil {
		t.Fatalf("setting flag: %v", err)
	}
	if err := editCmd.RunE(editCmd, []string{"1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotSchedule == nil || *gotSchedule != "2026-01-05" {
		t.Errorf("expected canonical 2026-01-05, got %v", gotSchedule)
	}
}

func TestEditCommand_InvalidDate(t *testing.T) {
	origEngine := Engine
	defer func() {
		Engine = origEngine
		resetEditFlags()
	}()
	resetEditFlags()
	Engine = &engineMock{}

	if err := editCmd.Flags().Set("schedule", "2026-01-05"); err != nil {
		t.Fatalf("setting flag: %v", err)
	}
	err := editCmd.RunE(editCmd, []string{"1"})
	if !errors.Is(err, core.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}
