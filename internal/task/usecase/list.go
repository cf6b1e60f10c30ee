package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"taskpilot/internal/model"
	"taskpilot/internal/task"
	"taskpilot/internal/task/repository"
	"taskpilot/pkg/gcalendar"
)

// List returns the month view. The calendar is the authoritative record:
// remote events come first (with the AI flag re-derived from the
// description marker), then local tasks that never made it to the
// calendar are merged in.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	if input.Month < 1 || input.Month > 12 || input.Year < 1 {
		return task.ListOutput{}, task.ErrInvalidDate
	}

	loc := uc.location()
	from := time.Date(input.Year, time.Month(input.Month), 1, 0, 0, 0, 0, loc)
	to := from.AddDate(0, 1, 0)

	tasks := make([]model.Task, 0)
	seen := make(map[string]bool) // google event id -> already in result

	cal, err := uc.calendarFor(ctx, input.Token)
	if err != nil {
		return task.ListOutput{}, err
	}
	if cal != nil {
		events, err := cal.ListEvents(ctx, gcalendar.ListEventsRequest{
			CalendarID: uc.calendarID,
			TimeMin:    from,
			TimeMax:    to,
		})
		if err != nil {
			uc.l.Errorf(ctx, "List: calendar listing failed: %v", err)
			return task.ListOutput{}, fmt.Errorf("%w: %v", task.ErrRemoteCalendar, err)
		}
		for _, ev := range events {
			tasks = append(tasks, uc.taskFromEvent(ctx, sc, ev))
			seen[ev.ID] = true
		}
	}

	local, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		UserID: sc.UserID,
		From:   from,
		To:     to,
	})
	if err != nil {
		return task.ListOutput{}, fmt.Errorf("failed to list local tasks: %w", err)
	}
	for _, t := range local {
		if t.GoogleEventID != "" && seen[t.GoogleEventID] {
			continue
		}
		tasks = append(tasks, t)
	}

	sort.Slice(tasks, func(i, j int) bool {
		si, sj := tasks[i].StartAt, tasks[j].StartAt
		switch {
		case si == nil:
			return sj != nil
		case sj == nil:
			return false
		default:
			return si.Before(*sj)
		}
	})

	return task.ListOutput{Tasks: tasks}, nil
}

// taskFromEvent projects a remote event into the task model. When a local
// record exists for the event it keeps the local id and metadata, so
// reschedules address the same task across restarts of the remote view.
func (uc *implUseCase) taskFromEvent(ctx context.Context, sc model.Scope, ev gcalendar.Event) model.Task {
	loc := uc.location()
	start := ev.StartTime.In(loc)
	end := ev.EndTime.In(loc)

	duration := int(end.Sub(start) / time.Minute)
	if duration <= 0 {
		duration = defaultDurationMinutes
	}

	t := model.Task{
		Title:           ev.Summary,
		Description:     ev.Description,
		TimeOfDay:       start.Format("15:04"),
		DurationMinutes: duration,
		Priority:        model.PriorityMedium,
		UserID:          sc.UserID,
		Date:            startOfDay(start),
		StartAt:         &start,
		EndAt:           &end,
		IsAICreated:     ev.AICreated,
		GoogleEventID:   ev.ID,
	}

	local, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{
		UserID:        sc.UserID,
		GoogleEventID: ev.ID,
	})
	if err == nil {
		t.ID = local.ID
		t.Priority = local.Priority
		t.Category = local.Category
		t.CreatedAt = local.CreatedAt
		t.UpdatedAt = local.UpdatedAt
	}
	return t
}
