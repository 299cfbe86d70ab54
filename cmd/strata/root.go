package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/strata"
	"github.com/aretw0/strata/internal/config"
	"github.com/aretw0/strata/internal/logging"
	"github.com/aretw0/strata/pkg/frame"
	"github.com/aretw0/strata/pkg/observability"
	"github.com/spf13/cobra"
)

// app carries what PersistentPreRunE resolved for the subcommands.
type app struct {
	cfg    config.Config
	logger *slog.Logger
}

// options translates the resolved config into chain options.
// Namespace contents are logged at debug level on every step.
func (a *app) options(extra ...frame.Hooks) []strata.Option {
	opts := []strata.Option{
		strata.WithLogger(a.logger),
		strata.WithHooks(observability.LogHooks(a.logger)),
	}
	for _, h := range extra {
		opts = append(opts, strata.WithHooks(h))
	}
	if a.cfg.Flip != nil {
		opts = append(opts, strata.WithFlip(*a.cfg.Flip))
	}
	return opts
}

// stage builds the configured stage.
func (a *app) stage(extra ...frame.Hooks) (frame.IsCapable, error) {
	return strata.Build(a.cfg.Stage, a.options(extra...)...)
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "strata",
		Short: "Strata layers typed facets over a small family of node kinds",
		Long: `Strata builds a chain of facet stages (is, get, make, node, composite) over the
A, B and C node kinds and lets you inspect the namespaces each stage exposes.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
			}
			if cmd.Flags().Changed("stage") {
				cfg.Stage, _ = cmd.Flags().GetString("stage")
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("flip") {
				v, _ := cmd.Flags().GetBool("flip")
				cfg.Flip = &v
			}

			level, err := logging.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}

			a.cfg = cfg
			a.logger = logging.NewWithWriter(cmd.ErrOrStderr(), level)
			return nil
		},
	}

	// Persistent flags (available to all commands)
	cmd.PersistentFlags().String("config", config.DefaultPath, "Path to the YAML config file")
	cmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("stage", "", "Last chain step to apply")
	cmd.PersistentFlags().Bool("flip", false, "Preset the session flag")

	cmd.AddCommand(
		newVersionCmd(),
		newInspectCmd(a),
		newMakeCmd(a),
		newGraphCmd(a),
		newMetricsCmd(a),
	)
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
