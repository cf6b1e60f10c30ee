package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// newOpenAIImpl creates a new OpenAI implementation
func newOpenAIImpl(cfg Config) *openAIImpl {
	return &openAIImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a chat-completions request to the OpenAI API
func (o *openAIImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	chatReq := o.transformRequest(req)
	chatResp, err := o.callAPI(ctx, chatReq)
	if err != nil {
		return nil, err
	}
	return o.transformResponse(chatResp)
}

// Model returns the model being used
func (o *openAIImpl) Model() string {
	return o.model
}

// callAPI sends a request to the chat-completions endpoint
func (o *openAIImpl) callAPI(ctx context.Context, req chatRequest) (*chatResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if jsonErr := json.Unmarshal(respBody, &errResp); jsonErr != nil {
			return nil, fmt.Errorf("openai: API error %d: %s", resp.StatusCode, string(respBody))
		}
		return nil, fmt.Errorf("openai: API error %d: %s", resp.StatusCode, errResp.Error.Message)
	}

	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("openai: failed to parse response: %w", err)
	}

	return &result, nil
}

// transformRequest converts the normalized request to chat-completions format
func (o *openAIImpl) transformRequest(req *Request) chatRequest {
	chatReq := chatRequest{
		Model:       o.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	if req.SystemInstruction != nil {
		chatReq.Messages = append(chatReq.Messages, chatMessage{
			Role:    "system",
			Content: joinParts(req.SystemInstruction.Parts),
		})
	}

	for _, msg := range req.Messages {
		role := msg.Role
		if role == "" {
			role = "user"
		}
		chatReq.Messages = append(chatReq.Messages, chatMessage{
			Role:    role,
			Content: joinParts(msg.Parts),
		})
	}

	for _, tool := range req.Tools {
		chatReq.Tools = append(chatReq.Tools, chatTool{
			Type: "function",
			Function: chatFunctionDecl{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  tool.Parameters,
			},
		})
	}

	// JSON mode and tool calling are mutually exclusive on the wire;
	// tools win because they carry the stricter schema.
	if req.JSONMode && len(req.Tools) == 0 {
		chatReq.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	return chatReq
}

func joinParts(parts []Part) string {
	var text string
	for _, p := range parts {
		text += p.Text
	}
	return text
}

// transformResponse converts a chat-completions response to the normalized format
func (o *openAIImpl) transformResponse(resp *chatResponse) (*Response, error) {
	out := &Response{
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}

	if len(resp.Choices) == 0 {
		return out, nil
	}

	msg := resp.Choices[0].Message
	content := Content{Role: msg.Role}

	if msg.Content != "" {
		content.Parts = append(content.Parts, Part{Text: msg.Content})
	}

	for _, tc := range msg.ToolCalls {
		args := map[string]interface{}{}
		if tc.Function.Arguments != "" {
			if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
				return nil, fmt.Errorf("openai: failed to parse tool call arguments: %w", err)
			}
		}
		content.Parts = append(content.Parts, Part{
			FunctionCall: &FunctionCall{
				Name: tc.Function.Name,
				Args: args,
			},
		})
	}

	out.Content = content
	return out, nil
}
