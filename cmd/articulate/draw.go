package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/articulate-words/internal/domain"
)

var (
	drawCategory string
	drawCount    int
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw words from one category",
	Long:  `Draw prints --count words from --category, one per line. Both default to the game section of the config.`,
	RunE:  runDraw,
}

func init() {
	drawCmd.Flags().StringVarP(&drawCategory, "category", "c", "", "category to draw from (Object, Nature, Random, Person, Action, World)")
	drawCmd.Flags().IntVarP(&drawCount, "count", "n", 0, "number of words to draw (default game.draws)")
}

func runDraw(cmd *cobra.Command, args []string) error {
	cfg, logger, svc, err := setup()
	if err != nil {
		return err
	}

	name := cfg.Game.Category
	if drawCategory != "" {
		name = drawCategory
	}
	category, err := domain.ParseCategory(name)
	if err != nil {
		return err
	}

	count := cfg.Game.Draws
	if cmd.Flags().Changed("count") {
		count = drawCount
	}
	if count < 1 {
		return domain.NewValidationError("count", "must be at least 1")
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	for i := 0; i < count; i++ {
		word, err := svc.Take(ctx, category)
		if err != nil {
			return fmt.Errorf("draw %d of %d: %w", i+1, count, err)
		}
		fmt.Fprintln(out, word)
	}

	left, err := svc.Count(category)
	if err != nil {
		return err
	}
	logger.Info("draw complete",
		slog.String("category", category.String()),
		slog.Int("drawn", count),
		slog.Int("left", left),
	)
	return nil
}
