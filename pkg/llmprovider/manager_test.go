package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                      {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)    {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                       {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)     {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                       {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)     {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                      {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)    {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                     {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                      {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)    {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                      {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)    {}

type mockProvider struct {
	name  string
	resp  *Response
	err   error
	calls int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.name + "-model" }

func okResp(name string) *Response {
	return &Response{
		Content:      Message{Role: "assistant", Parts: []Part{{Text: "ok"}}},
		ProviderName: name,
		Usage:        &Usage{},
	}
}

func TestManagerNoProviders(t *testing.T) {
	m := NewManager(nil, &Config{}, &mockLogger{})

	_, err := m.GenerateContent(context.Background(), &Request{})
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
	}
}

func TestManagerFirstProviderWins(t *testing.T) {
	first := &mockProvider{name: "openai", resp: okResp("openai")}
	second := &mockProvider{name: "gemini", resp: okResp("gemini")}

	m := NewManager([]Provider{first, second}, &Config{FallbackEnabled: true}, &mockLogger{})

	resp, err := m.GenerateContent(context.Background(), &Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ProviderName != "openai" {
		t.Errorf("expected first provider response, got %s", resp.ProviderName)
	}
	if second.calls != 0 {
		t.Errorf("second provider should not be called, got %d calls", second.calls)
	}
}

func TestManagerFallback(t *testing.T) {
	first := &mockProvider{name: "openai", err: errors.New("quota exceeded")}
	second := &mockProvider{name: "gemini", resp: okResp("gemini")}

	m := NewManager([]Provider{first, second}, &Config{FallbackEnabled: true}, &mockLogger{})

	resp, err := m.GenerateContent(context.Background(), &Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ProviderName != "gemini" {
		t.Errorf("expected fallback to gemini, got %s", resp.ProviderName)
	}
}

func TestManagerFallbackDisabled(t *testing.T) {
	first := &mockProvider{name: "openai", err: errors.New("down")}
	second := &mockProvider{name: "gemini", resp: okResp("gemini")}

	m := NewManager([]Provider{first, second}, &Config{FallbackEnabled: false}, &mockLogger{})

	_, err := m.GenerateContent(context.Background(), &Request{})
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Errorf("expected ErrAllProvidersFailed, got %v", err)
	}
	if second.calls != 0 {
		t.Errorf("fallback disabled but second provider was called %d times", second.calls)
	}
}

func TestManagerSingleShotByDefault(t *testing.T) {
	p := &mockProvider{name: "openai", err: errors.New("down")}

	m := NewManager([]Provider{p}, &Config{}, &mockLogger{})

	_, err := m.GenerateContent(context.Background(), &Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if p.calls != 1 {
		t.Errorf("expected exactly one attempt, got %d", p.calls)
	}
}

func TestManagerRetryOptIn(t *testing.T) {
	p := &mockProvider{name: "openai", err: errors.New("down")}

	m := NewManager([]Provider{p}, &Config{RetryAttempts: 3, RetryDelay: time.Millisecond}, &mockLogger{})

	_, err := m.GenerateContent(context.Background(), &Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if p.calls != 3 {
		t.Errorf("expected 3 attempts, got %d", p.calls)
	}
}
