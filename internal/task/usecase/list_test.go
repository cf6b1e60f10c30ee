package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskpilot/internal/model"
	"taskpilot/internal/task"
	"taskpilot/pkg/gcalendar"
)

func TestListInvalidMonth(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	for _, in := range []task.ListInput{
		{Month: 0, Year: 2026},
		{Month: 13, Year: 2026},
		{Month: 3, Year: 0},
	} {
		if _, err := uc.List(context.Background(), model.Scope{UserID: "u1"}, in); !errors.Is(err, task.ErrInvalidDate) {
			t.Errorf("List(%+v): expected ErrInvalidDate, got %v", in, err)
		}
	}
}

func TestListMergesRemoteAndLocal(t *testing.T) {
	cal := &mockCalendar{listResult: []gcalendar.Event{
		{
			ID:        "evt-remote-1",
			Summary:   "Dentist",
			StartTime: time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC),
		},
		{
			ID:        "evt-remote-2",
			Summary:   "Planning",
			StartTime: time.Date(2026, time.March, 5, 9, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2026, time.March, 5, 9, 30, 0, 0, time.UTC),
			AICreated: true,
		},
	}}
	uc := newTestUseCase(nil, cal)

	// A local-only task in the same month, never mirrored.
	date := time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)
	_, err := uc.Create(context.Background(), model.Scope{UserID: "u1"}, task.CreateInput{
		Task: model.TaskExtract{
			Title:           "Local only",
			TimeOfDay:       "08:00",
			DurationMinutes: 30,
			Priority:        model.PriorityLow,
		},
		Date: date,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	out, err := uc.List(context.Background(), model.Scope{UserID: "u1"}, task.ListInput{
		Month: 3,
		Year:  2026,
		Token: testToken(),
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out.Tasks) != 3 {
		t.Fatalf("got %d tasks, want 3", len(out.Tasks))
	}

	// Sorted by start: Planning (5th), Dentist (10th), Local only (20th).
	if out.Tasks[0].Title != "Planning" || out.Tasks[1].Title != "Dentist" || out.Tasks[2].Title != "Local only" {
		t.Fatalf("unexpected order: %q, %q, %q", out.Tasks[0].Title, out.Tasks[1].Title, out.Tasks[2].Title)
	}

	if !out.Tasks[0].IsAICreated {
		t.Error("marker-carrying event should list as AI-created")
	}
	if out.Tasks[1].IsAICreated {
		t.Error("plain event should not list as AI-created")
	}
	if out.Tasks[0].TimeOfDay != "09:00" || out.Tasks[0].DurationMinutes != 30 {
		t.Errorf("remote projection wrong: %q/%d", out.Tasks[0].TimeOfDay, out.Tasks[0].DurationMinutes)
	}
}

func TestListDeduplicatesMirrored(t *testing.T) {
	// A task that was mirrored shows up in both the calendar listing and
	// the local store; the month view must contain it once.
	cal := &mockCalendar{}
	uc := newTestUseCase(nil, cal)
	created := createOneTask(t, uc, cal, "Mirrored")

	cal.listResult = []gcalendar.Event{{
		ID:        created.GoogleEventID,
		Summary:   created.Title,
		StartTime: *created.StartAt,
		EndTime:   *created.EndAt,
		AICreated: false,
	}}

	out, err := uc.List(context.Background(), model.Scope{UserID: "u1"}, task.ListInput{
		Month: 3,
		Year:  2026,
		Token: testToken(),
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out.Tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(out.Tasks))
	}
	if out.Tasks[0].ID != created.ID {
		t.Errorf("remote projection lost the local id: %q, want %q", out.Tasks[0].ID, created.ID)
	}
	if out.Tasks[0].Priority != model.PriorityHigh {
		t.Errorf("remote projection lost local metadata: priority %q", out.Tasks[0].Priority)
	}
}
