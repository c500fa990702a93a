package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <url>",
		Short: "Find a product on other platforms and rank the offers",
		Long: "Extracts the product at <url>, discovers the same product on other\n" +
			"shopping platforms, verifies each match and ranks them by deal score.",
		Example: `  fox compare https://www.flipkart.com/apple-iphone-15/p/itm6ac6485515ae4
  fox compare https://www.amazon.in/dp/B0CHX1W1XY --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmp, err := newClient().Compare(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), cmp)
			}
			return printComparison(cmd.OutOrStdout(), cmp)
		},
	}
}

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search platforms for a product name",
		Long:  "Lists candidate listings across platforms without visiting them.",
		Example: `  fox search iphone 15 128gb
  fox search "sony wh-1000xm5" --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cands, err := newClient().Search(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), cands)
			}
			if len(cands) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No listings found.")
				return err
			}
			return printCandidates(cmd.OutOrStdout(), cands)
		},
	}
}

func previewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview <url>",
		Short: "Extract and score one product page",
		Example: `  fox preview https://www.croma.com/apple-iphone-15/p/300652
  fox preview https://www.croma.com/apple-iphone-15/p/300652 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sf, err := newClient().Preview(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), sf)
			}
			return printScoredFact(cmd.OutOrStdout(), sf)
		},
	}
}
