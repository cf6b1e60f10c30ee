package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskpilot/internal/model"
	"taskpilot/internal/task"
)

func createOneTask(t *testing.T, uc *implUseCase, cal *mockCalendar, title string) model.Task {
	t.Helper()

	date := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	out, err := uc.Create(context.Background(), model.Scope{UserID: "u1"}, task.CreateInput{
		Task: model.TaskExtract{
			Title:           title,
			TimeOfDay:       "10:00",
			DurationMinutes: 60,
			Priority:        model.PriorityHigh,
		},
		Date:  date,
		Token: testToken(),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return out.Task
}

func TestReschedule(t *testing.T) {
	cal := &mockCalendar{}
	uc := newTestUseCase(nil, cal)
	created := createOneTask(t, uc, cal, "Deep work")

	out, err := uc.Reschedule(context.Background(), model.Scope{UserID: "u1"}, task.RescheduleInput{
		TaskID:    created.ID,
		TimeOfDay: "10:45",
		Token:     testToken(),
	})
	if err != nil {
		t.Fatalf("Reschedule: %v", err)
	}

	if out.Task.TimeOfDay != "10:45" {
		t.Errorf("time = %q, want 10:45", out.Task.TimeOfDay)
	}
	wantStart := time.Date(2026, time.March, 14, 10, 45, 0, 0, time.UTC)
	if out.Task.StartAt == nil || !out.Task.StartAt.Equal(wantStart) {
		t.Errorf("start = %v, want %v", out.Task.StartAt, wantStart)
	}
	if out.Task.EndAt == nil || out.Task.EndAt.Sub(*out.Task.StartAt) != 60*time.Minute {
		t.Errorf("duration changed by reschedule: %v", out.Task.EndAt)
	}

	if len(cal.updated) != 1 {
		t.Fatalf("calendar patches = %d, want 1", len(cal.updated))
	}
	if cal.updated[0].EventID != created.GoogleEventID {
		t.Errorf("patched event %q, want %q", cal.updated[0].EventID, created.GoogleEventID)
	}
	if !cal.updated[0].StartTime.Equal(wantStart) {
		t.Errorf("patched start = %v, want %v", cal.updated[0].StartTime, wantStart)
	}
}

func TestRescheduleUnknownTask(t *testing.T) {
	uc := newTestUseCase(nil, &mockCalendar{})

	_, err := uc.Reschedule(context.Background(), model.Scope{UserID: "u1"}, task.RescheduleInput{
		TaskID:    "nope",
		TimeOfDay: "10:45",
	})
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestRescheduleInvalidTime(t *testing.T) {
	cal := &mockCalendar{}
	uc := newTestUseCase(nil, cal)
	created := createOneTask(t, uc, cal, "Deep work")

	_, err := uc.Reschedule(context.Background(), model.Scope{UserID: "u1"}, task.RescheduleInput{
		TaskID:    created.ID,
		TimeOfDay: "not a time",
	})
	if !errors.Is(err, task.ErrInvalidTime) {
		t.Fatalf("expected ErrInvalidTime, got %v", err)
	}
}

func TestRescheduleScopedToUser(t *testing.T) {
	cal := &mockCalendar{}
	uc := newTestUseCase(nil, cal)
	created := createOneTask(t, uc, cal, "Deep work")

	_, err := uc.Reschedule(context.Background(), model.Scope{UserID: "someone-else"}, task.RescheduleInput{
		TaskID:    created.ID,
		TimeOfDay: "11:00",
	})
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound for foreign task, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	cal := &mockCalendar{}
	uc := newTestUseCase(nil, cal)
	created := createOneTask(t, uc, cal, "Disposable")

	err := uc.Delete(context.Background(), model.Scope{UserID: "u1"}, task.DeleteInput{
		EventID: created.GoogleEventID,
		Token:   testToken(),
	})
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if len(cal.deleted) != 1 || cal.deleted[0] != created.GoogleEventID {
		t.Errorf("remote delete calls = %v, want [%s]", cal.deleted, created.GoogleEventID)
	}

	_, err = uc.Reschedule(context.Background(), model.Scope{UserID: "u1"}, task.RescheduleInput{
		TaskID:    created.ID,
		TimeOfDay: "11:00",
	})
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("task still addressable after delete: %v", err)
	}
}

func TestDeleteUnknownWithoutCalendar(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	err := uc.Delete(context.Background(), model.Scope{UserID: "u1"}, task.DeleteInput{EventID: "missing"})
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}
