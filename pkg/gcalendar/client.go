package gcalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service for a single user.
type Client struct {
	service *calendar.Service
}

// NewClientFromToken creates a Calendar client from a user's OAuth token.
// The token source handles access token refresh transparently.
func NewClientFromToken(ctx context.Context, cfg *oauth2.Config, tok *oauth2.Token) (*Client, error) {
	if tok == nil {
		return nil, fmt.Errorf("gcalendar: token is required")
	}
	svc, err := calendar.NewService(ctx, option.WithTokenSource(cfg.TokenSource(ctx, tok)))
	if err != nil {
		return nil, fmt.Errorf("gcalendar: failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("gcalendar: failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateEvent creates a new calendar event and returns its remote form.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	description := req.Description
	if req.AICreated {
		if description != "" {
			description += "\n\n"
		}
		description += AICreatedMarker
	}

	event := &calendar.Event{
		Summary:     req.Summary,
		Description: description,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}

	created, err := c.service.Events.Insert(calendarID(req.CalendarID), event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("gcalendar: failed to create event: %w", err)
	}

	return &Event{
		ID:          created.Id,
		Summary:     created.Summary,
		Description: StripAIMarker(created.Description),
		HTMLLink:    created.HtmlLink,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		AICreated:   HasAIMarker(created.Description),
	}, nil
}

// ListEvents returns the non-all-day events in [TimeMin, TimeMax).
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = 250
	}

	call := c.service.Events.List(calendarID(req.CalendarID)).
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(maxResults).
		Context(ctx)

	result, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("gcalendar: failed to list events: %w", err)
	}

	events := make([]Event, 0, len(result.Items))
	for _, item := range result.Items {
		if item.Start == nil || item.Start.DateTime == "" {
			continue // all-day events have no time component
		}
		start, err := time.Parse(time.RFC3339, item.Start.DateTime)
		if err != nil {
			continue
		}
		var end time.Time
		if item.End != nil && item.End.DateTime != "" {
			end, _ = time.Parse(time.RFC3339, item.End.DateTime)
		}

		events = append(events, Event{
			ID:          item.Id,
			Summary:     item.Summary,
			Description: StripAIMarker(item.Description),
			HTMLLink:    item.HtmlLink,
			StartTime:   start,
			EndTime:     end,
			AICreated:   HasAIMarker(item.Description),
		})
	}

	return events, nil
}

// UpdateEventTime moves an existing event to a new start/end.
func (c *Client) UpdateEventTime(ctx context.Context, req UpdateEventTimeRequest) error {
	patch := &calendar.Event{
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}

	_, err := c.service.Events.Patch(calendarID(req.CalendarID), req.EventID, patch).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("gcalendar: failed to update event %s: %w", req.EventID, err)
	}
	return nil
}

// DeleteEvent removes an event. An already-deleted remote event (404/410)
// is treated as success so the local record can still be cleaned up.
func (c *Client) DeleteEvent(ctx context.Context, calID, eventID string) error {
	err := c.service.Events.Delete(calendarID(calID), eventID).Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) &&
			(apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusGone) {
			return nil
		}
		return fmt.Errorf("gcalendar: failed to delete event %s: %w", eventID, err)
	}
	return nil
}

func calendarID(id string) string {
	if id == "" {
		return "primary"
	}
	return id
}
