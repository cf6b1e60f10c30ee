package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"taskpilot/internal/model"
	"taskpilot/internal/task"
	"taskpilot/pkg/gcalendar"
)

// Create validates, anchors, persists, and mirrors one task.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	candidate := repairForCreate(input.Task)
	if err := uc.validate.Struct(candidate); err != nil {
		return task.CreateOutput{}, fmt.Errorf("invalid task: %w", err)
	}

	fallback := input.Date
	if fallback.IsZero() {
		fallback = uc.today()
	}

	created, err := uc.createOne(ctx, sc, candidate, fallback, input.AICreated, input.Token)
	if err != nil {
		return task.CreateOutput{}, err
	}
	return task.CreateOutput{Task: created}, nil
}

// createOne is the shared create path for Create and CreateBulk: anchor,
// mirror to the calendar, persist. A calendar failure surfaces as
// ErrRemoteCalendar; the local task is not written in that case so the
// caller can retry without leaving a half-created pair behind.
func (uc *implUseCase) createOne(
	ctx context.Context,
	sc model.Scope,
	candidate model.TaskExtract,
	fallback time.Time,
	aiCreated bool,
	token *oauth2.Token,
) (model.Task, error) {
	start, end, err := uc.anchor(candidate, fallback)
	if err != nil {
		return model.Task{}, fmt.Errorf("%w: %v", task.ErrInvalidTime, err)
	}

	t := model.Task{
		ID:              uuid.NewString(),
		UserID:          sc.UserID,
		Title:           candidate.Title,
		Description:     candidate.Description,
		TimeOfDay:       candidate.TimeOfDay,
		DurationMinutes: candidate.DurationMinutes,
		Priority:        candidate.Priority,
		Date:            startOfDay(start),
		StartAt:         &start,
		EndAt:           &end,
		IsAICreated:     aiCreated,
	}

	cal, err := uc.calendarFor(ctx, token)
	if err != nil {
		return model.Task{}, err
	}
	if cal != nil {
		event, err := cal.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  uc.calendarID,
			Summary:     t.Title,
			Description: t.Description,
			StartTime:   start,
			EndTime:     end,
			Timezone:    uc.timezone,
			AICreated:   aiCreated,
		})
		if err != nil {
			uc.l.Errorf(ctx, "createOne: calendar mirror failed for %q: %v", t.Title, err)
			return model.Task{}, fmt.Errorf("%w: %v", task.ErrRemoteCalendar, err)
		}
		t.GoogleEventID = event.ID
	}

	persisted, err := uc.repo.CreateTask(ctx, t)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to persist task: %w", err)
	}
	return persisted, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// repairForCreate applies the same normalization as extraction repair to
// direct creates, so hand-entered tasks obey the same invariants.
func repairForCreate(t model.TaskExtract) model.TaskExtract {
	repaired := repair(rawExtract{
		Title:     t.Title,
		StartTime: t.TimeOfDay,
		Duration:  flexMinutes(t.DurationMinutes),
		Priority:  string(t.Priority),
	})
	repaired.Description = t.Description
	repaired.Date = t.Date
	return repaired
}
