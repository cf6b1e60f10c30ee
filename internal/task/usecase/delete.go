package usecase

import (
	"context"
	"errors"
	"fmt"

	"taskpilot/internal/model"
	"taskpilot/internal/task"
	"taskpilot/internal/task/repository"
)

// Delete removes a task by its calendar event id, remote first. The
// calendar client treats an already-gone remote event as success, so the
// local record is always cleaned up when the remote side is settled.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, input task.DeleteInput) error {
	if input.EventID == "" {
		return task.ErrTaskNotFound
	}

	cal, err := uc.calendarFor(ctx, input.Token)
	if err != nil {
		return err
	}
	if cal != nil {
		if err := cal.DeleteEvent(ctx, uc.calendarID, input.EventID); err != nil {
			uc.l.Errorf(ctx, "Delete: remote delete failed for event=%s: %v", input.EventID, err)
			return fmt.Errorf("%w: %v", task.ErrRemoteCalendar, err)
		}
	}

	local, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{
		UserID:        sc.UserID,
		GoogleEventID: input.EventID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Remote-only event: the calendar delete above already
			// settled it. With no calendar in play there was nothing
			// to delete at all.
			if cal == nil {
				return task.ErrTaskNotFound
			}
			return nil
		}
		return fmt.Errorf("failed to look up task: %w", err)
	}

	if err := uc.repo.DeleteTask(ctx, sc.UserID, local.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	uc.l.Infof(ctx, "Delete: user=%s event=%s task=%s", sc.UserID, input.EventID, local.ID)
	return nil
}
