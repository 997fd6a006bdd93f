package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var refillAmount int

var refillCmd = &cobra.Command{
	Use:   "refill",
	Short: "Request one batch of words and print the pool sizes",
	Long:  `Refill asks the backend once for --amount words per category and reports how many each pool gained. Useful for checking a backend and profile.`,
	RunE:  runRefill,
}

func init() {
	refillCmd.Flags().IntVarP(&refillAmount, "amount", "a", 0, "words per category (default game.refill_amount)")
}

func runRefill(cmd *cobra.Command, args []string) error {
	cfg, _, svc, err := setup()
	if err != nil {
		return err
	}

	amount := cfg.Game.RefillAmount
	if cmd.Flags().Changed("amount") {
		amount = refillAmount
	}

	res, err := svc.Refill(cmd.Context(), amount)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tADDED\tDROPPED\tPOOL")
	for _, c := range svc.Categories() {
		n, err := svc.Count(c)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", c, res.Added[c], res.Dropped[c], n)
	}
	return tw.Flush()
}
