package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

var (
	// ErrModelsExhausted means every model in the fallback list failed.
	ErrModelsExhausted = errors.New("all models in the fallback list failed")
	// ErrRateLimited is wrapped alongside ErrModelsExhausted when the last
	// failure was an upstream 429; handlers surface it as 429.
	ErrRateLimited = errors.New("generative-AI service rate limited")
)

const llmCallTimeout = 30 * time.Second

// Message is one chat turn sent to the generative-AI API
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// LLMClient calls an OpenAI-compatible chat completion endpoint, retrying
// across a fixed model fallback list before giving up.
type LLMClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	models     []string
}

// NewLLMClient creates a client over the configured endpoint and models
func NewLLMClient(baseURL, apiKey string, models []string) *LLMClient {
	return &LLMClient{
		httpClient: &http.Client{Timeout: llmCallTimeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		models:     models,
	}
}

// Complete sends the conversation to each model in order until one
// answers. Per-call timeouts keep a stuck upstream from hanging the
// request; exhaustion returns ErrModelsExhausted, wrapping ErrRateLimited
// when the last failure was a 429. The client holds no per-request state
// and is safe for concurrent use.
func (c *LLMClient) Complete(ctx context.Context, messages []Message) (string, error) {
	var lastErr error
	rateLimited := false
	for _, model := range c.models {
		reply, status, err := c.call(ctx, model, messages)
		if err == nil {
			return reply, nil
		}
		lastErr = err
		rateLimited = status == http.StatusTooManyRequests
		log.Printf("Model %s failed (status %d): %v", model, status, err)

		if ctx.Err() != nil {
			return "", ctx.Err()
		}
	}

	if rateLimited {
		return "", fmt.Errorf("%w: %w: %v", ErrModelsExhausted, ErrRateLimited, lastErr)
	}
	if lastErr != nil {
		return "", fmt.Errorf("%w: %v", ErrModelsExhausted, lastErr)
	}
	return "", ErrModelsExhausted
}

func (c *LLMClient) call(ctx context.Context, model string, messages []Message) (string, int, error) {
	payload, err := json.Marshal(chatRequest{Model: model, Messages: messages})
	if err != nil {
		return "", 0, fmt.Errorf("failed to encode request: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, llmCallTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", resp.StatusCode, err
	}
	if resp.StatusCode != http.StatusOK {
		return "", resp.StatusCode, fmt.Errorf("upstream returned %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", resp.StatusCode, errors.New("response contained no choices")
	}
	return parsed.Choices[0].Message.Content, resp.StatusCode, nil
}
