package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func sweepCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "sweep",
		Short: "Trigger a price sweep on the server",
		Long: "Asks the server to re-check every tracked product. Requires the\n" +
			"sweep secret, read from --secret or FOX_SWEEP_SECRET.",
		Example: `  fox sweep --secret "$SWEEP_SECRET"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret := viper.GetString("sweep_secret")
			if secret == "" {
				return errors.New("sweep secret is required")
			}
			s, err := newClient().Sweep(cmd.Context(), secret)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), s)
			}
			return printSweep(cmd.OutOrStdout(), s)
		},
	}
	c.Flags().String("secret", "", "sweep secret")
	cobra.CheckErr(viper.BindPFlag("sweep_secret", c.Flags().Lookup("secret")))
	return c
}

func quotaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quota",
		Short: "Show usage of metered upstream APIs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := newClient().Quota(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), q)
			}
			return printQuotaTable(cmd.OutOrStdout(), q)
		},
	}
}
