package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"ncaa-rosters/cmd/roster-cli/globals"
	"ncaa-rosters/internal/config"
	"ncaa-rosters/internal/telemetry"

	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	shutdown   func(context.Context) error
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file, defaults to the nearest roster.json5.")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug information.")
}

var rootCmd = &cobra.Command{
	Use:          "roster-cli",
	Short:        "roster-cli scrapes NCAA soccer rosters from athletics websites.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(verbose)

		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		otel, err := telemetry.Setup(cmd.Context(), "roster-cli", cfg.Telemetry)
		if err != nil {
			return fmt.Errorf("failed to setup telemetry: %w", err)
		}
		shutdown = otel.Shutdown
		if otel.MeterProvider != nil {
			telemetry.InstrumentPerfStats(cmd.Context(), 5*time.Second)
		}

		cmd.SetContext(globals.Set(cmd.Context(), &globals.Value{
			Config:    cfg,
			Telemetry: telemetry.SlogAPI{},
		}))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if shutdown == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := shutdown(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to flush telemetry:", err)
		}
	},
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
