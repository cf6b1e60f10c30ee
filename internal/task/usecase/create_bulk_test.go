package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskpilot/internal/model"
	"taskpilot/internal/task"
)

func bulkInput(date time.Time, titles ...string) task.CreateBulkInput {
	tasks := make([]model.TaskExtract, 0, len(titles))
	for i, title := range titles {
		tasks = append(tasks, model.TaskExtract{
			Title:           title,
			TimeOfDay:       "09:00",
			DurationMinutes: 30 + 15*i,
			Priority:        model.PriorityMedium,
		})
	}
	return task.CreateBulkInput{Tasks: tasks, Date: date, Token: testToken()}
}

func TestCreateBulkEmpty(t *testing.T) {
	uc := newTestUseCase(nil, &mockCalendar{})

	_, err := uc.CreateBulk(context.Background(), model.Scope{UserID: "u1"}, task.CreateBulkInput{})
	if !errors.Is(err, task.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestCreateBulkAllSucceed(t *testing.T) {
	cal := &mockCalendar{}
	uc := newTestUseCase(nil, cal)

	date := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	out, err := uc.CreateBulk(context.Background(), model.Scope{UserID: "u1"}, bulkInput(date, "A", "B", "C"))
	if err != nil {
		t.Fatalf("CreateBulk: %v", err)
	}
	if len(out.Created) != 3 || out.FailedCount != 0 {
		t.Fatalf("created=%d failed=%d, want 3/0", len(out.Created), out.FailedCount)
	}

	for _, created := range out.Created {
		if created.GoogleEventID == "" {
			t.Errorf("task %q not mirrored to calendar", created.Title)
		}
		if !created.IsAICreated {
			t.Errorf("task %q should carry the AI-created flag", created.Title)
		}
	}
	for _, req := range cal.created {
		if !req.AICreated {
			t.Errorf("calendar event %q missing AI-created marker request", req.Summary)
		}
	}
}

func TestCreateBulkPartialFailure(t *testing.T) {
	// Three candidates, the remote create fails for one. The other two
	// are created and the failure is reported as a count, not an error.
	cal := &mockCalendar{failSubstring: "Doomed"}
	uc := newTestUseCase(nil, cal)

	date := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	out, err := uc.CreateBulk(context.Background(), model.Scope{UserID: "u1"}, bulkInput(date, "A", "Doomed B", "C"))
	if err != nil {
		t.Fatalf("CreateBulk: %v", err)
	}
	if len(out.Created) != 2 {
		t.Fatalf("created=%d, want 2", len(out.Created))
	}
	if out.FailedCount != 1 {
		t.Errorf("failed=%d, want 1", out.FailedCount)
	}
	if out.Created[0].Title != "A" || out.Created[1].Title != "C" {
		t.Errorf("unexpected created order: %q, %q", out.Created[0].Title, out.Created[1].Title)
	}
}

func TestCreateBulkAnchorsToDate(t *testing.T) {
	cal := &mockCalendar{}
	uc := newTestUseCase(nil, cal)

	date := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	out, err := uc.CreateBulk(context.Background(), model.Scope{UserID: "u1"}, bulkInput(date, "A"))
	if err != nil {
		t.Fatalf("CreateBulk: %v", err)
	}

	created := out.Created[0]
	want := time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)
	if created.StartAt == nil || !created.StartAt.Equal(want) {
		t.Errorf("start = %v, want %v", created.StartAt, want)
	}
	if created.EndAt == nil || created.EndAt.Sub(*created.StartAt) != 30*time.Minute {
		t.Errorf("end = %v, want start+30m", created.EndAt)
	}
}

func TestCreateBulkWithoutCalendar(t *testing.T) {
	// No token: tasks are created locally and mirroring is skipped.
	uc := newTestUseCase(nil, nil)

	date := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	input := bulkInput(date, "A", "B")
	input.Token = nil

	out, err := uc.CreateBulk(context.Background(), model.Scope{UserID: "u1"}, input)
	if err != nil {
		t.Fatalf("CreateBulk: %v", err)
	}
	if len(out.Created) != 2 || out.FailedCount != 0 {
		t.Fatalf("created=%d failed=%d, want 2/0", len(out.Created), out.FailedCount)
	}
	for _, created := range out.Created {
		if created.GoogleEventID != "" {
			t.Errorf("task %q unexpectedly mirrored", created.Title)
		}
	}
}
