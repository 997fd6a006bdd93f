package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/articulate-words/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Generator.validate(); err != nil {
		return fmt.Errorf("generator: %w", err)
	}

	if err := c.Players.Profile().Validate(); err != nil {
		return fmt.Errorf("players: %w", err)
	}

	if err := c.Game.validate(); err != nil {
		return fmt.Errorf("game: %w", err)
	}

	return nil
}

func (g *GeneratorConfig) validate() error {
	g.Provider = strings.ToLower(strings.TrimSpace(g.Provider))

	switch g.Provider {
	case ProviderAnthropic:
		if g.APIKey == "" {
			return fmt.Errorf("api_key is required for provider %q", g.Provider)
		}
	case ProviderOllama:
		if g.OllamaURL == "" {
			return fmt.Errorf("ollama_url is required for provider %q", g.Provider)
		}
	case ProviderCanned:
	default:
		return fmt.Errorf("unknown provider %q (want %s, %s or %s)",
			g.Provider, ProviderAnthropic, ProviderOllama, ProviderCanned)
	}

	if g.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", g.MaxTokens)
	}
	if g.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0 (got %v)", g.Timeout)
	}
	if g.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be >= 0 (got %d)", g.MaxRetries)
	}
	return nil
}

func (g *GameConfig) validate() error {
	if g.RefillAmount <= 0 {
		return fmt.Errorf("refill_amount must be > 0 (got %d)", g.RefillAmount)
	}
	if g.Draws <= 0 {
		return fmt.Errorf("draws must be > 0 (got %d)", g.Draws)
	}

	category, err := domain.ParseCategory(g.Category)
	if err != nil {
		return fmt.Errorf("category: %w", err)
	}
	g.Category = category.String()

	return nil
}
