package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/shrutirout/foxdeal/internal/api/client"
)

func trackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "track <url>",
		Short: "Start tracking a product's price",
		Example: `  fox track https://www.flipkart.com/apple-iphone-15/p/itm6ac6485515ae4
  fox track https://www.amazon.in/dp/B0CHX1W1XY --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			obs, err := newClient().Track(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), obs)
			}
			return printObservation(cmd.OutOrStdout(), obs)
		},
	}
}

func productsCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "products",
		Aliases: []string{"p"},
		Short:   "Manage tracked products",
		Long:    "List, inspect and stop tracking products, and read their price history.",
	}

	root.AddCommand(
		productsListCmd(),
		productsGetCmd(),
		productsHistoryCmd(),
		productsDeleteCmd(),
		productsVerdictCmd(),
	)

	return root
}

func productsListCmd() *cobra.Command {
	var f apiclient.ProductFilter
	c := &cobra.Command{
		Use:   "list",
		Short: "List tracked products",
		Example: `  fox products list
  fox products list --platform flipkart.com --min-score 70
  fox products list --search "iphone 15" --order-by price --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, err := newClient().FindProducts(cmd.Context(), f)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), page)
			}
			if len(page.Products) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No tracked products.")
				return err
			}
			if err := printProductsTable(cmd.OutOrStdout(), page.Products); err != nil {
				return err
			}
			if shown := page.Offset + len(page.Products); shown < page.Total {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "\nShowing %d-%d of %d. Use --offset %d for more.\n",
					page.Offset+1, shown, page.Total, shown)
			}
			return err
		},
	}
	c.Flags().StringVar(&f.Platform, "platform", "", "only products from this platform domain")
	c.Flags().StringVar(&f.Search, "search", "", "case-insensitive name substring")
	c.Flags().Float64Var(&f.MinScore, "min-score", 0, "minimum deal score (0-100)")
	c.Flags().IntVar(&f.Limit, "limit", 0, "page size (server default 50, max 500)")
	c.Flags().IntVar(&f.Offset, "offset", 0, "skip this many products")
	c.Flags().StringVar(&f.OrderBy, "order-by", "", "created_at, updated_at, score or price")
	return c
}

func productsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show a tracked product",
		Example: `  fox products get 6f1c2a9e-3c7b-4d52-9d2e-0b8a2f4c9e11`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newClient().Product(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), p)
			}
			return printProductDetail(cmd.OutOrStdout(), p)
		},
	}
}

func productsHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "history <id>",
		Short:   "Show a product's price history, oldest first",
		Example: `  fox products history 6f1c2a9e-3c7b-4d52-9d2e-0b8a2f4c9e11`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := newClient().History(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), points)
			}
			if len(points) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No price history yet.")
				return err
			}
			return printHistoryTable(cmd.OutOrStdout(), points)
		},
	}
}

func productsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Stop tracking a product",
		Example: `  fox products delete 6f1c2a9e-3c7b-4d52-9d2e-0b8a2f4c9e11`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Stopped tracking %s.\n", args[0])
			return err
		},
	}
}

func productsVerdictCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "verdict <id>",
		Short:   "Ask whether to buy now or wait",
		Example: `  fox products verdict 6f1c2a9e-3c7b-4d52-9d2e-0b8a2f4c9e11`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newClient().Verdict(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), v)
			}
			return printVerdict(cmd.OutOrStdout(), v)
		},
	}
}
