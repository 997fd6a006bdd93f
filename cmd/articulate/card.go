package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Deal one card: a word from every category",
	RunE:  runCard,
}

func runCard(cmd *cobra.Command, args []string) error {
	_, _, svc, err := setup()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, c := range svc.Categories() {
		word, err := svc.Take(ctx, c)
		if err != nil {
			return fmt.Errorf("deal %s: %w", c, err)
		}
		fmt.Fprintf(tw, "%s\t%s\n", c, word)
	}
	return tw.Flush()
}
