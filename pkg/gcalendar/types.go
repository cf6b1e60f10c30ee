package gcalendar

import (
	"strings"
	"time"
)

// AICreatedMarker is embedded in the description of every event this
// service creates from an AI extraction. Listing re-derives the
// "AI-created" flag from its presence, since the remote event is the
// authoritative record.
const AICreatedMarker = "[created by TaskPilot AI]"

// CreateEventRequest is the input for creating a calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "America/Los_Angeles"
	AICreated   bool
}

// UpdateEventTimeRequest is the input for moving an existing event.
type UpdateEventTimeRequest struct {
	CalendarID string
	EventID    string
	StartTime  time.Time
	EndTime    time.Time
	Timezone   string
}

// ListEventsRequest is the input for listing calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}

// Event is a simplified representation of a calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HTMLLink    string
	StartTime   time.Time
	EndTime     time.Time
	AICreated   bool
}

// HasAIMarker reports whether an event description carries the marker.
func HasAIMarker(description string) bool {
	return strings.Contains(description, AICreatedMarker)
}

// StripAIMarker removes the marker (and surrounding blank line) from a
// description before it is shown to the user.
func StripAIMarker(description string) string {
	description = strings.ReplaceAll(description, "\n\n"+AICreatedMarker, "")
	description = strings.ReplaceAll(description, AICreatedMarker, "")
	return strings.TrimSpace(description)
}
