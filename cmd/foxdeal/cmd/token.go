package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shrutirout/foxdeal/internal/identity"
	domain "github.com/shrutirout/foxdeal/pkg/types"
)

func tokenCommand() *cobra.Command {
	var (
		userID string
		email  string
	)
	c := &cobra.Command{
		Use:   "token",
		Short: "Issue an API token for a user",
		Example: `  foxdeal token --user alice
  FOX_TOKEN=$(foxdeal token --user alice) fox products`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Auth.JWTSecret == "" {
				return errors.New("auth.jwt_secret is not set")
			}
			ident, err := identity.NewJWTIdentity(cfg.Auth.JWTSecret,
				identity.WithIssuer(cfg.Auth.Issuer),
				identity.WithTokenTTL(cfg.Auth.TokenTTL),
			)
			if err != nil {
				return err
			}
			token, err := ident.Issue(domain.User{ID: userID, Email: email})
			if err != nil {
				return fmt.Errorf("issuing token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	c.Flags().StringVar(&userID, "user", "", "user ID (token subject)")
	c.Flags().StringVar(&email, "email", "", "user email")
	cobra.CheckErr(c.MarkFlagRequired("user"))
	return c
}

func init() {
	rootCmd.AddCommand(tokenCommand())
}
