// Command articulate deals personalized Articulate word cards.
//
// Words are generated by the configured backend (anthropic, ollama or canned)
// for the players described in the config file or environment, and are never
// repeated within one run.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/articulate-words/internal/app"
	"github.com/heartmarshall/articulate-words/internal/config"
	"github.com/heartmarshall/articulate-words/internal/service/words"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "articulate",
	Short:         "Personalized Articulate word cards",
	Long:          `articulate asks a text generation backend for party-game words tailored to the players and deals them without repeats.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config YAML (default $CONFIG_PATH or ./config.yaml)")

	rootCmd.AddCommand(drawCmd)
	rootCmd.AddCommand(cardCmd)
	rootCmd.AddCommand(refillCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration, installs the logger and builds the word service.
func setup() (*config.Config, *slog.Logger, *words.Service, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadPath(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger := app.NewLogger(cfg.Log)

	svc, err := app.NewWordService(cfg, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logger, svc, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
	},
}
