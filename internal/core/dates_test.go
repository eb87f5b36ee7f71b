package core

import (
	"errors"
	"testing"
	"time"
)

func TestConvertToISO(t *testing.T) {
	got, err := ConvertToISO("05/01/2026")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2026-01-05" {
		t.Errorf("expected 2026-01-05, got %s", got)
	}
}

func TestConvertToISO_PadsSingleDigits(t *testing.T) {
	got, err := ConvertToISO("5/1/2026")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2026-01-05" {
		t.Errorf("expected 2026-01-05, got %s", got)
	}
}

func TestConvertToISO_RejectsInvalidFormats(t *testing.T) {
	for _, in := range []string{"2026-01-05", "5-1-26", "5/1/26", "", "31/02/2026", "99/99/2026"} {
		if _, err := ConvertToISO(in); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ConvertToISO(%q): expected ErrInvalidDate, got %v", in, err)
		}
	}
}

func TestConvertToDisplay(t *testing.T) {
	got, err := ConvertToDisplay("2026-01-05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "05/01/2026" {
		t.Errorf("expected 05/01/2026, got %s", got)
	}

	if _, err := ConvertToDisplay("garbage"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func TestDateOf(t *testing.T) {
	ts := time.Date(2026, 3, 9, 23, 59, 0, 0, time.UTC)
	if got := DateOf(ts); got != "2026-03-09" {
		t.Errorf("expected 2026-03-09, got %s", got)
	}
}
