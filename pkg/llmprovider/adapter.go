package llmprovider

import (
	"context"

	"taskpilot/pkg/gemini"
	"taskpilot/pkg/openai"
)

// OpenAIAdapter adapts pkg/openai to the Provider interface
type OpenAIAdapter struct {
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a new OpenAI adapter
func NewOpenAIAdapter(client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	oaReq := &openai.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JSONMode:    req.JSONMode,
	}
	if req.SystemInstruction != nil {
		oaReq.SystemInstruction = &openai.Content{
			Role:  req.SystemInstruction.Role,
			Parts: toOpenAIParts(req.SystemInstruction.Parts),
		}
	}
	for _, msg := range req.Messages {
		oaReq.Messages = append(oaReq.Messages, openai.Content{
			Role:  msg.Role,
			Parts: toOpenAIParts(msg.Parts),
		})
	}
	for _, tool := range req.Tools {
		oaReq.Tools = append(oaReq.Tools, openai.Tool{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters:  tool.Parameters,
		})
	}

	resp, err := a.client.GenerateContent(ctx, oaReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	out := &Response{
		Content:      Message{Role: resp.Content.Role, Parts: fromOpenAIParts(resp.Content.Parts)},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string { return "openai" }

// Model returns model name
func (a *OpenAIAdapter) Model() string { return a.client.Model() }

func toOpenAIParts(parts []Part) []openai.Part {
	out := make([]openai.Part, len(parts))
	for i, p := range parts {
		out[i] = openai.Part{Text: p.Text}
	}
	return out
}

func fromOpenAIParts(parts []openai.Part) []Part {
	out := make([]Part, len(parts))
	for i, p := range parts {
		out[i] = Part{Text: p.Text}
		if p.FunctionCall != nil {
			out[i].FunctionCall = &FunctionCall{Name: p.FunctionCall.Name, Args: p.FunctionCall.Args}
		}
	}
	return out
}

// GeminiAdapter adapts pkg/gemini to the Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	gReq := &gemini.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		gReq.SystemInstruction = &gemini.Content{
			Role:  req.SystemInstruction.Role,
			Parts: toGeminiParts(req.SystemInstruction.Parts),
		}
	}
	for _, msg := range req.Messages {
		gReq.Messages = append(gReq.Messages, gemini.Content{
			Role:  msg.Role,
			Parts: toGeminiParts(msg.Parts),
		})
	}
	for _, tool := range req.Tools {
		gReq.Tools = append(gReq.Tools, gemini.Tool{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters:  tool.Parameters,
		})
	}

	resp, err := a.client.GenerateContent(ctx, gReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	out := &Response{
		Content:      Message{Role: resp.Content.Role, Parts: fromGeminiParts(resp.Content.Parts)},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string { return "gemini" }

// Model returns model name
func (a *GeminiAdapter) Model() string { return a.client.Model() }

func toGeminiParts(parts []Part) []gemini.Part {
	out := make([]gemini.Part, len(parts))
	for i, p := range parts {
		out[i] = gemini.Part{Text: p.Text}
	}
	return out
}

func fromGeminiParts(parts []gemini.Part) []Part {
	out := make([]Part, len(parts))
	for i, p := range parts {
		out[i] = Part{Text: p.Text}
		if p.FunctionCall != nil {
			out[i].FunctionCall = &FunctionCall{Name: p.FunctionCall.Name, Args: p.FunctionCall.Args}
		}
	}
	return out
}
