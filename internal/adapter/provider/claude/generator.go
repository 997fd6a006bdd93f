package claude

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/articulate-words/internal/domain"
	"github.com/heartmarshall/articulate-words/internal/prompt"
)

const (
	DefaultModel     = "claude-sonnet-4-5"
	DefaultMaxTokens = 4096
)

// Config holds the settings for a Claude-backed generator.
type Config struct {
	APIKey     string
	Model      string
	MaxTokens  int64
	Timeout    time.Duration
	MaxRetries int
	// BaseURL overrides the API endpoint (for testing).
	BaseURL string
}

// Generator asks Claude for a batch of words in one message.
type Generator struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	log       *slog.Logger
}

// NewGenerator creates a Generator from cfg.
func NewGenerator(cfg Config, logger *slog.Logger) *Generator {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(cfg.MaxRetries),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	return &Generator{
		client:    anthropic.NewClient(opts...),
		model:     model,
		maxTokens: maxTokens,
		log:       logger.With("adapter", "anthropic"),
	}
}

// Generate sends one message for req and returns the text of the reply.
// Multiple text blocks are joined with newlines.
func (g *Generator) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	msg, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: g.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: prompt.System}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt.User(req))),
		},
	})
	if err != nil {
		return "", fmt.Errorf("llm api call: %w", err)
	}

	var parts []string
	for _, block := range msg.Content {
		if block.Type == "text" && block.Text != "" {
			parts = append(parts, block.Text)
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("empty response from model %s", g.model)
	}

	g.log.InfoContext(ctx, "llm response received",
		slog.String("model", string(msg.Model)),
		slog.String("stop_reason", string(msg.StopReason)),
		slog.Int64("input_tokens", msg.Usage.InputTokens),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
	)

	return strings.Join(parts, "\n"), nil
}
