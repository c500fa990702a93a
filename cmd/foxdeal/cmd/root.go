// Package cmd implements the CLI commands for the foxdeal server.
package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shrutirout/foxdeal/internal/config"
	"github.com/shrutirout/foxdeal/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "foxdeal",
	Short: "Compare product prices across shopping platforms",
	Long: "foxdeal extracts product data from a shopping page, finds the same product\n" +
		"on other platforms, scores every offer, and tracks prices over time with\n" +
		"drop alerts.",
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		// A missing .env is normal outside development.
		_ = godotenv.Load(viper.GetString("env-file"))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "config.yaml", "config file path")
	rootCmd.PersistentFlags().String("env-file", ".env", "dotenv file loaded before the config")

	cobra.CheckErr(viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config")))
	cobra.CheckErr(viper.BindPFlag("env-file", rootCmd.PersistentFlags().Lookup("env-file")))

	viper.SetEnvPrefix("FOXDEAL")
	viper.AutomaticEnv()

	rootCmd.AddCommand(versionCommand())
}

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the config file named by --config or FOXDEAL_CONFIG.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.GetString("config"))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*slog.Logger, io.Closer) {
	return logger.NewFromOptions(logger.Options{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
	})
}
