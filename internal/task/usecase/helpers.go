package usecase

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"

	"taskpilot/internal/task"
)

// calendarFor builds the per-user calendar client. A nil token (or no
// factory wired at all) returns a nil Calendar, which callers treat as
// "mirroring disabled".
func (uc *implUseCase) calendarFor(ctx context.Context, tok *oauth2.Token) (task.Calendar, error) {
	if tok == nil || uc.calFactory == nil {
		return nil, nil
	}
	cal, err := uc.calFactory(ctx, tok)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", task.ErrRemoteCalendar, err)
	}
	return cal, nil
}
