package usecase

import (
	"testing"
	"time"

	"taskpilot/internal/model"
)

func TestApplyDateToAll(t *testing.T) {
	date := time.Date(2026, time.March, 14, 17, 45, 0, 0, time.UTC) // time of day must be discarded
	tasks := []model.TaskExtract{
		{Title: "A", TimeOfDay: "09:00", DurationMinutes: 30, Priority: model.PriorityLow},
		{Title: "B", TimeOfDay: "10:00", DurationMinutes: 30, Priority: model.PriorityLow},
		{Title: "C", TimeOfDay: "11:00", DurationMinutes: 30, Priority: model.PriorityLow},
	}

	out := ApplyDateToAll(tasks, date)

	want := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	for i, tk := range out {
		if tk.Date == nil || !tk.Date.Equal(want) {
			t.Fatalf("task %d date = %v, want %v", i, tk.Date, want)
		}
	}

	// Editing one task's date must not leak into its neighbors.
	*out[1].Date = out[1].Date.AddDate(0, 0, 5)
	if !out[0].Date.Equal(want) || !out[2].Date.Equal(want) {
		t.Errorf("date edit on task 1 aliased into neighbors: %v / %v", out[0].Date, out[2].Date)
	}
}

func TestApplyDateToAllKeepsOverrides(t *testing.T) {
	override := time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC)
	tasks := []model.TaskExtract{
		{Title: "A", TimeOfDay: "09:00", DurationMinutes: 30, Priority: model.PriorityLow, Date: &override},
		{Title: "B", TimeOfDay: "10:00", DurationMinutes: 30, Priority: model.PriorityLow},
	}

	shared := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	out := ApplyDateToAll(tasks, shared)

	if !out[0].Date.Equal(override) {
		t.Errorf("per-task override overwritten: %v", out[0].Date)
	}
	if !out[1].Date.Equal(shared) {
		t.Errorf("shared default not applied: %v", out[1].Date)
	}
}

func TestApplyDateToAllZeroDate(t *testing.T) {
	prev := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)
	tasks := []model.TaskExtract{
		{Title: "A", TimeOfDay: "09:00", DurationMinutes: 30, Priority: model.PriorityLow, Date: &prev},
	}

	out := ApplyDateToAll(tasks, time.Time{})
	if out[0].Date == nil || !out[0].Date.Equal(prev) {
		t.Errorf("zero date must retain the previous value, got %v", out[0].Date)
	}
}

func TestAnchor(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	date := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	start, end, err := uc.anchor(model.TaskExtract{
		TimeOfDay:       "09:30",
		DurationMinutes: 45,
		Date:            &date,
	}, time.Time{})
	if err != nil {
		t.Fatalf("anchor: %v", err)
	}

	wantStart := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", start, wantStart)
	}
	if got := end.Sub(start); got != 45*time.Minute {
		t.Errorf("duration = %v, want 45m", got)
	}
}

func TestAnchorFallbackDate(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	fallback := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	start, _, err := uc.anchor(model.TaskExtract{
		TimeOfDay:       "07:15",
		DurationMinutes: 30,
	}, fallback)
	if err != nil {
		t.Fatalf("anchor: %v", err)
	}

	want := time.Date(2026, time.June, 1, 7, 15, 0, 0, time.UTC)
	if !start.Equal(want) {
		t.Errorf("start = %v, want %v", start, want)
	}
}

func TestAnchorInvalidTime(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	if _, _, err := uc.anchor(model.TaskExtract{TimeOfDay: "25:99"}, time.Now()); err == nil {
		t.Error("expected error for invalid time of day")
	}
}
