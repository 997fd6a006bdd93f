package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/articulate-words/internal/adapter/provider/canned"
	"github.com/heartmarshall/articulate-words/internal/adapter/provider/claude"
	"github.com/heartmarshall/articulate-words/internal/adapter/provider/ollama"
	"github.com/heartmarshall/articulate-words/internal/config"
	"github.com/heartmarshall/articulate-words/internal/domain"
	"github.com/heartmarshall/articulate-words/internal/service/words"
)

// Generator is the capability every word backend provides.
type Generator interface {
	Generate(ctx context.Context, req domain.GenerationRequest) (string, error)
}

// NewGenerator builds the backend selected by cfg.Provider.
func NewGenerator(cfg config.GeneratorConfig, logger *slog.Logger) (Generator, error) {
	switch cfg.Provider {
	case config.ProviderAnthropic:
		return claude.NewGenerator(claude.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			MaxTokens:  cfg.MaxTokens,
			Timeout:    cfg.Timeout,
			MaxRetries: cfg.MaxRetries,
		}, logger), nil
	case config.ProviderOllama:
		return ollama.NewGenerator(cfg.OllamaURL, cfg.Model, cfg.Timeout, logger), nil
	case config.ProviderCanned:
		if cfg.CannedPath != "" {
			g, err := canned.NewFromFile(cfg.CannedPath)
			if err != nil {
				return nil, err
			}
			return g, nil
		}
		return canned.NewSample(), nil
	default:
		return nil, fmt.Errorf("unknown generator provider %q", cfg.Provider)
	}
}

// NewWordService wires the configured backend into a word repository for
// one player session.
func NewWordService(cfg *config.Config, logger *slog.Logger) (*words.Service, error) {
	gen, err := NewGenerator(cfg.Generator, logger)
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}

	svc := words.NewService(logger, gen, cfg.Players.Profile(), cfg.Game.RefillAmount)

	logger.Info("word service ready",
		slog.String("version", BuildVersion()),
		slog.String("provider", cfg.Generator.Provider),
		slog.String("session_id", svc.SessionID().String()),
		slog.Int("refill_amount", cfg.Game.RefillAmount),
	)

	return svc, nil
}
