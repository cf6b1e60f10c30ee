package task

import (
	"context"

	"golang.org/x/oauth2"

	"taskpilot/internal/model"
	"taskpilot/pkg/gcalendar"
	"taskpilot/pkg/llmprovider"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Extract turns free-form text into task candidates. Rows the model
	// gets wrong are repaired where possible and dropped otherwise; a
	// partial result is not an error.
	Extract(ctx context.Context, sc model.Scope, input ExtractInput) (ExtractOutput, error)

	// Create persists a single confirmed task and mirrors it to Google
	// Calendar when the caller has a linked account.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	// CreateBulk anchors each candidate to its calendar date and creates
	// the tasks concurrently. Failures are counted, not propagated; there
	// is no rollback.
	CreateBulk(ctx context.Context, sc model.Scope, input CreateBulkInput) (CreateBulkOutput, error)

	// List returns the tasks of a calendar month, remote-first: calendar
	// events are authoritative and local-only tasks are merged in.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Delete removes a task by its calendar event id, remote first.
	Delete(ctx context.Context, sc model.Scope, input DeleteInput) error

	// Reschedule moves a task to a new time of day on the same date and
	// patches the mirrored calendar event. This is the commit path for
	// timeline drags.
	Reschedule(ctx context.Context, sc model.Scope, input RescheduleInput) (RescheduleOutput, error)
}

// Generator is the slice of the LLM provider manager the extraction
// pipeline needs. *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Calendar is the slice of the Google Calendar client the task domain
// uses. *gcalendar.Client satisfies it.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	UpdateEventTime(ctx context.Context, req gcalendar.UpdateEventTimeRequest) error
	DeleteEvent(ctx context.Context, calID, eventID string) error
}

// CalendarFactory builds a per-user Calendar from an OAuth token. A nil
// token means the caller has no linked calendar and mirroring is skipped.
type CalendarFactory func(ctx context.Context, tok *oauth2.Token) (Calendar, error)
