package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"taskpilot/internal/model"
	"taskpilot/internal/task"
	"taskpilot/pkg/llmprovider"
	"taskpilot/pkg/timecodec"
)

const (
	defaultTitle           = "Untitled Task"
	defaultDurationMinutes = 30
	snapMinutes            = 15
)

// rawExtract mirrors the JSON shape the model produces. Every field is
// optional here; repair fills the gaps before validation.
type rawExtract struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	StartTime   string      `json:"startTime"`
	Duration    flexMinutes `json:"duration"`
	Priority    string      `json:"priority"`
}

// flexMinutes tolerates a duration arriving as a number, a numeric
// string, or junk. A bad value decodes to zero instead of failing the
// row, and repair substitutes the default.
type flexMinutes int

func (m *flexMinutes) UnmarshalJSON(data []byte) error {
	*m = 0
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*m = flexMinutes(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*m = flexMinutes(f)
		}
	}
	return nil
}

// Extract runs the full pipeline: LLM call, response normalization,
// per-row repair, per-row validation with drop-and-count.
func (uc *implUseCase) Extract(ctx context.Context, sc model.Scope, input task.ExtractInput) (task.ExtractOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return task.ExtractOutput{}, task.ErrEmptyInput
	}
	if uc.llm == nil {
		return task.ExtractOutput{}, task.ErrProviderUnavailable
	}

	uc.l.Infof(ctx, "Extract: user=%s input_length=%d", sc.UserID, len(input.Text))

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: systemInstruction}},
		},
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{{Text: input.Text}}},
		},
		Tools:       []llmprovider.Tool{extractTasksTool()},
		Temperature: 0.2,
		MaxTokens:   2048,
		JSONMode:    true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Extract: generation failed: %v", err)
		return task.ExtractOutput{}, task.ErrProviderUnavailable
	}

	rows, err := uc.parseCandidates(ctx, resp)
	if err != nil {
		return task.ExtractOutput{}, err
	}

	tasks := make([]model.TaskExtract, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		candidate := repair(row)
		if err := uc.validate.Struct(candidate); err != nil {
			uc.l.Warnf(ctx, "Extract: dropping invalid candidate %q: %v", candidate.Title, err)
			dropped++
			continue
		}
		tasks = append(tasks, candidate)
	}

	uc.l.Infof(ctx, "Extract: user=%s extracted=%d dropped=%d", sc.UserID, len(tasks), dropped)

	return task.ExtractOutput{Tasks: tasks, Dropped: dropped}, nil
}

// parseCandidates pulls raw rows out of either a function call or a plain
// JSON text answer.
func (uc *implUseCase) parseCandidates(ctx context.Context, resp *llmprovider.Response) ([]rawExtract, error) {
	if resp == nil || len(resp.Content.Parts) == 0 {
		return nil, task.ErrEmptyResponse
	}

	for _, part := range resp.Content.Parts {
		if part.FunctionCall == nil || part.FunctionCall.Name != "extract_tasks" {
			continue
		}
		raw, err := json.Marshal(part.FunctionCall.Args["tasks"])
		if err != nil {
			return nil, task.ErrExtractionParse
		}
		var rows []rawExtract
		if err := json.Unmarshal(raw, &rows); err != nil {
			uc.l.Errorf(ctx, "Extract: bad function call payload: %v", err)
			return nil, task.ErrExtractionParse
		}
		return rows, nil
	}

	var text string
	for _, part := range resp.Content.Parts {
		text += part.Text
	}
	if strings.TrimSpace(text) == "" {
		return nil, task.ErrEmptyResponse
	}

	rows, err := decodeCandidateJSON(sanitizeJSONResponse(text))
	if err != nil {
		uc.l.Errorf(ctx, "Extract: failed to parse LLM response: %v raw=%q", err, text)
		return nil, task.ErrExtractionParse
	}
	return rows, nil
}

// decodeCandidateJSON accepts the three shapes models actually produce:
// a bare array, an object with a "tasks" array, or a single object.
func decodeCandidateJSON(cleaned string) ([]rawExtract, error) {
	var rows []rawExtract
	if err := json.Unmarshal([]byte(cleaned), &rows); err == nil {
		return rows, nil
	}

	var wrapper struct {
		Tasks []rawExtract `json:"tasks"`
	}
	if err := json.Unmarshal([]byte(cleaned), &wrapper); err == nil && wrapper.Tasks != nil {
		return wrapper.Tasks, nil
	}

	// Single-object fallback. An object carrying a "tasks" key is a
	// wrapper whose array failed to decode, and an object with no task
	// fields at all is noise; turning either into a default-filled row
	// would invent a task the model never produced.
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &fields); err != nil {
		return nil, err
	}
	if _, ok := fields["tasks"]; ok {
		return nil, errors.New(`"tasks" is not a task array`)
	}
	if !hasTaskField(fields) {
		return nil, errors.New("object has no task fields")
	}
	var single rawExtract
	if err := json.Unmarshal([]byte(cleaned), &single); err != nil {
		return nil, err
	}
	return []rawExtract{single}, nil
}

func hasTaskField(fields map[string]json.RawMessage) bool {
	for _, key := range []string{"title", "description", "startTime", "duration", "priority"} {
		if _, ok := fields[key]; ok {
			return true
		}
	}
	return false
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	re := regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	matches := re.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// repair normalizes one raw row into a candidate. Missing or malformed
// fields get defaults rather than failing the row; descriptions are
// always cleared because the model is told not to write them.
func repair(row rawExtract) model.TaskExtract {
	title := strings.TrimSpace(row.Title)
	if title == "" {
		title = defaultTitle
	}

	startTime := timecodec.RoundToNearestIncrement(strings.TrimSpace(row.StartTime), snapMinutes)

	duration := int(row.Duration)
	if duration <= 0 {
		duration = defaultDurationMinutes
	}

	priority := model.Priority(strings.ToLower(strings.TrimSpace(row.Priority)))
	if !priority.IsValid() {
		priority = model.PriorityMedium
	}

	return model.TaskExtract{
		Title:           title,
		Description:     "",
		TimeOfDay:       startTime,
		DurationMinutes: duration,
		Priority:        priority,
	}
}
