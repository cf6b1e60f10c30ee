package usecase

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/oauth2"

	"taskpilot/internal/task"
	"taskpilot/internal/task/repository/memory"
	"taskpilot/pkg/gcalendar"
	"taskpilot/pkg/llmprovider"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}

type mockGenerator struct {
	resp *llmprovider.Response
	err  error
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

// mockCalendar records writes and can be told to fail creates whose
// summary contains failSubstring.
type mockCalendar struct {
	mu            sync.Mutex
	failSubstring string
	created       []gcalendar.CreateEventRequest
	updated       []gcalendar.UpdateEventTimeRequest
	deleted       []string
	listResult    []gcalendar.Event
	nextID        int
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSubstring != "" && strings.Contains(req.Summary, m.failSubstring) {
		return nil, context.DeadlineExceeded
	}
	m.nextID++
	m.created = append(m.created, req)
	return &gcalendar.Event{
		ID:        "evt-" + strings.ReplaceAll(req.Summary, " ", "-") + "-" + string(rune('a'+m.nextID-1)),
		Summary:   req.Summary,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		AICreated: req.AICreated,
	}, nil
}

func (m *mockCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listResult, nil
}

func (m *mockCalendar) UpdateEventTime(ctx context.Context, req gcalendar.UpdateEventTimeRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updated = append(m.updated, req)
	return nil
}

func (m *mockCalendar) DeleteEvent(ctx context.Context, calID, eventID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, eventID)
	return nil
}

// newTestUseCase wires a usecase against the in-memory repository and the
// mock calendar. The timezone is UTC so assertions are stable regardless
// of the host configuration.
func newTestUseCase(llm task.Generator, cal *mockCalendar) *implUseCase {
	l := &mockLogger{}
	factory := task.CalendarFactory(nil)
	if cal != nil {
		factory = func(ctx context.Context, tok *oauth2.Token) (task.Calendar, error) {
			return cal, nil
		}
	}
	return New(l, llm, memory.New(l), factory, "primary", "UTC").(*implUseCase)
}

func testToken() *oauth2.Token {
	return &oauth2.Token{AccessToken: "test-access"}
}
