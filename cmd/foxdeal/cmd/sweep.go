package cmd

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run one price sweep and exit",
	Long: "Checks the current price of every tracked product once, records changes\n" +
		"and sends drop alerts. Intended for external schedulers that run the\n" +
		"binary directly instead of calling the HTTP endpoint.",
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, closer := newLogger(cfg)
	defer func() { _ = closer.Close() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	res, err := a.engine.RunSweep(ctx)
	fmt.Fprintf(cmd.OutOrStdout(),
		"checked %d products: %d updated, %d failed, %d price changes, %d alerts in %s\n",
		res.Total, res.Updated, res.Failed, res.PriceChanges, res.AlertsSent, res.Duration.Round(time.Millisecond))
	if err != nil {
		return fmt.Errorf("running sweep: %w", err)
	}
	return nil
}
