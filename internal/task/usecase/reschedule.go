package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskpilot/internal/model"
	"taskpilot/internal/task"
	"taskpilot/internal/task/repository"
	"taskpilot/pkg/gcalendar"
	"taskpilot/pkg/timecodec"
)

// Reschedule moves a task to a new time of day on its current date. This
// is what a released timeline drag commits into; the mirrored calendar
// event is patched when one exists.
func (uc *implUseCase) Reschedule(ctx context.Context, sc model.Scope, input task.RescheduleInput) (task.RescheduleOutput, error) {
	minutes, err := timecodec.TimeToMinutes(input.TimeOfDay)
	if err != nil {
		return task.RescheduleOutput{}, fmt.Errorf("%w: %v", task.ErrInvalidTime, err)
	}

	t, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{
		UserID: sc.UserID,
		ID:     input.TaskID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.RescheduleOutput{}, task.ErrTaskNotFound
		}
		return task.RescheduleOutput{}, fmt.Errorf("failed to look up task: %w", err)
	}

	loc := uc.location()
	y, m, d := t.Date.In(loc).Date()
	start := time.Date(y, m, d, minutes/60, minutes%60, 0, 0, loc)
	end := start.Add(time.Duration(t.DurationMinutes) * time.Minute)

	t.TimeOfDay = timecodec.MinutesToTime(minutes)
	t.StartAt = &start
	t.EndAt = &end

	if t.GoogleEventID != "" {
		cal, err := uc.calendarFor(ctx, input.Token)
		if err != nil {
			return task.RescheduleOutput{}, err
		}
		if cal != nil {
			err := cal.UpdateEventTime(ctx, gcalendar.UpdateEventTimeRequest{
				CalendarID: uc.calendarID,
				EventID:    t.GoogleEventID,
				StartTime:  start,
				EndTime:    end,
				Timezone:   uc.timezone,
			})
			if err != nil {
				uc.l.Errorf(ctx, "Reschedule: remote patch failed for event=%s: %v", t.GoogleEventID, err)
				return task.RescheduleOutput{}, fmt.Errorf("%w: %v", task.ErrRemoteCalendar, err)
			}
		}
	}

	updated, err := uc.repo.UpdateTask(ctx, t)
	if err != nil {
		return task.RescheduleOutput{}, fmt.Errorf("failed to update task: %w", err)
	}

	uc.l.Infof(ctx, "Reschedule: user=%s task=%s time=%s", sc.UserID, t.ID, t.TimeOfDay)
	return task.RescheduleOutput{Task: updated}, nil
}
