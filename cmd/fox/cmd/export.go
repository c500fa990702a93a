package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shrutirout/foxdeal/internal/export"
	domain "github.com/shrutirout/foxdeal/pkg/types"
)

func exportCmd() *cobra.Command {
	var out string
	c := &cobra.Command{
		Use:   "export",
		Short: "Export tracked products and price history to Excel",
		Example: `  fox export
  fox export -o prices-march.xlsx`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := newClient()
			products, err := client.Products(cmd.Context())
			if err != nil {
				return err
			}

			history := make(map[string][]domain.PriceHistoryPoint, len(products))
			for i := range products {
				points, err := client.History(cmd.Context(), products[i].ID)
				if err != nil {
					return fmt.Errorf("fetching history of %s: %w", products[i].ID, err)
				}
				history[products[i].ID] = points
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			if err := export.Write(f, products, history); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing %s: %w", out, err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d products to %s.\n", len(products), out)
			return err
		},
	}
	c.Flags().StringVarP(&out, "file", "o", "foxdeal-export.xlsx", "output file")
	return c
}
