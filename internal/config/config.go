package config

import (
	"time"

	"github.com/heartmarshall/articulate-words/internal/domain"
)

// Generator providers.
const (
	ProviderAnthropic = "anthropic"
	ProviderOllama    = "ollama"
	ProviderCanned    = "canned"
)

// Config is the root application configuration.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Generator GeneratorConfig `yaml:"generator"`
	Players   PlayersConfig   `yaml:"players"`
	Game      GameConfig      `yaml:"game"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// GeneratorConfig selects and configures the word generation backend.
type GeneratorConfig struct {
	Provider   string        `yaml:"provider"    env:"GENERATOR_PROVIDER"    env-default:"anthropic"`
	APIKey     string        `yaml:"api_key"     env:"ANTHROPIC_API_KEY"`
	Model      string        `yaml:"model"       env:"GENERATOR_MODEL"`
	MaxTokens  int64         `yaml:"max_tokens"  env:"GENERATOR_MAX_TOKENS"  env-default:"4096"`
	Timeout    time.Duration `yaml:"timeout"     env:"GENERATOR_TIMEOUT"     env-default:"2m"`
	MaxRetries int           `yaml:"max_retries" env:"GENERATOR_MAX_RETRIES" env-default:"2"`
	OllamaURL  string        `yaml:"ollama_url"  env:"OLLAMA_BASE_URL"       env-default:"http://localhost:11434"`
	CannedPath string        `yaml:"canned_path" env:"GENERATOR_CANNED_PATH"`
}

// PlayersConfig describes the group the words are tailored to.
type PlayersConfig struct {
	Ages        []int    `yaml:"ages"        env:"PLAYERS_AGES"`
	Interests   []string `yaml:"interests"   env:"PLAYERS_INTERESTS"   env-separator:";"`
	Backgrounds []string `yaml:"backgrounds" env:"PLAYERS_BACKGROUNDS" env-separator:";"`
}

// GameConfig holds draw settings for the CLI.
type GameConfig struct {
	RefillAmount int    `yaml:"refill_amount" env:"GAME_REFILL_AMOUNT" env-default:"10"`
	Draws        int    `yaml:"draws"         env:"GAME_DRAWS"         env-default:"10"`
	Category     string `yaml:"category"      env:"GAME_CATEGORY"      env-default:"Object"`
}

// Profile converts the players section into a domain profile.
func (p PlayersConfig) Profile() domain.PlayerProfile {
	return domain.PlayerProfile{
		Ages:        p.Ages,
		Interests:   p.Interests,
		Backgrounds: p.Backgrounds,
	}.Clone()
}
