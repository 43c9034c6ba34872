// cmd/pioirq-sim/root.go
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tamzrod/pio-irq/internal/config"
)

var (
	runDuration time.Duration
	ttyDevice   string

	rootCmd = &cobra.Command{
		Use:           "pioirq-sim",
		Short:         "Run PIO interrupt routing against simulated hardware",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	validateCmd = &cobra.Command{
		Use:   "validate <scenario.yaml>",
		Short: "Check a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadScenario(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
			return nil
		},
	}

	runCmd = &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Replay scripted events or poll a Modbus bench fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadScenario(args[0])
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, cfg.Sim.Source.Kind, runDuration, cmd.OutOrStdout())
		},
	}

	interactiveCmd = &cobra.Command{
		Use:   "interactive <scenario.yaml>",
		Short: "Raise state machine flags from the keyboard (0-3, q to quit)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadScenario(args[0])
			if err != nil {
				return err
			}
			if ttyDevice != "" {
				if cfg.Sim.Source.TTY == nil {
					cfg.Sim.Source.TTY = &config.TTYSourceConfig{}
				}
				cfg.Sim.Source.TTY.Device = ttyDevice
			}
			return run(cmd.Context(), cfg, config.SourceTTY, 0, cmd.OutOrStdout())
		},
	}
)

func init() {
	runCmd.Flags().DurationVar(&runDuration, "duration", 0, "stop polling after this long (0 = until interrupted)")
	interactiveCmd.Flags().StringVar(&ttyDevice, "tty", "", "terminal device (default: controlling terminal)")

	rootCmd.AddCommand(validateCmd, runCmd, interactiveCmd)
}

// loadScenario loads, validates and normalizes a scenario file.
func loadScenario(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	config.Normalize(cfg)
	return cfg, nil
}
