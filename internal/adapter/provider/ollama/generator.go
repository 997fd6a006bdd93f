package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/articulate-words/internal/domain"
	"github.com/heartmarshall/articulate-words/internal/prompt"
)

const (
	DefaultBaseURL = "http://localhost:11434"
	DefaultModel   = "llama3.1"

	retryDelay = 500 * time.Millisecond
)

// Generator asks a local Ollama server for words via /api/chat.
type Generator struct {
	baseURL     string
	model       string
	temperature float64
	httpClient  *http.Client
	log         *slog.Logger
}

// NewGenerator creates a Generator. Empty baseURL or model fall back to the
// defaults; timeout bounds a single HTTP attempt.
func NewGenerator(baseURL, model string, timeout time.Duration, logger *slog.Logger) *Generator {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Generator{
		baseURL:     strings.TrimRight(baseURL, "/"),
		model:       model,
		temperature: 0.8,
		httpClient:  &http.Client{Timeout: timeout},
		log:         logger.With("adapter", "ollama"),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatOptions struct {
	Temperature float64 `json:"temperature"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Options  chatOptions   `json:"options"`
}

type chatResponse struct {
	Message chatMessage `json:"message"`
}

// Generate sends the system prompt and the per-request user message and
// returns the assistant's reply text.
func (g *Generator) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: prompt.System},
			{Role: "user", Content: prompt.User(req)},
		},
		Stream:  false,
		Options: chatOptions{Temperature: g.temperature},
	})
	if err != nil {
		return "", fmt.Errorf("ollama: marshal request: %w", err)
	}

	g.log.DebugContext(ctx, "ollama request", slog.String("model", g.model), slog.Int("amount", req.Amount))

	resp, err := g.doWithRetry(ctx, body)
	if err != nil {
		g.log.ErrorContext(ctx, "ollama request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("ollama: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("ollama: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var out chatResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("ollama: decode json: %w", err)
	}
	if strings.TrimSpace(out.Message.Content) == "" {
		return "", fmt.Errorf("ollama: empty reply")
	}

	g.log.DebugContext(ctx, "ollama response",
		slog.Int("status", resp.StatusCode),
		slog.Int("length", len(out.Message.Content)),
	)

	return out.Message.Content, nil
}

// doWithRetry posts body with a single retry on 5xx or network errors.
func (g *Generator) doWithRetry(ctx context.Context, body []byte) (*http.Response, error) {
	resp, err := g.post(ctx, body)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	g.log.WarnContext(ctx, "ollama retry", slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(retryDelay):
	}

	return g.post(ctx, body)
}

func (g *Generator) post(ctx context.Context, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return g.httpClient.Do(req)
}
