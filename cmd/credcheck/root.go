package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/credcheck/internal/config"
	"github.com/ericfisherdev/credcheck/internal/logging"
)

// app carries the state shared by every subcommand once the root command has
// loaded configuration.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "credcheck",
		Short:         "Verify credentials against a credential store",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Fail fast on invalid env vars.
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			slog.SetDefault(a.logger)

			a.logger.Debug("config loaded",
				"backend", cfg.Backend,
				"db_path", cfg.DBPath,
				"listen_addr", cfg.ListenAddr,
				"lookup_timeout", cfg.LookupTimeout,
			)
			return nil
		},
	}

	root.AddCommand(
		newLoginCmd(a),
		newServeCmd(a),
		newMigrateCmd(a),
		newUserCmd(a),
	)
	return root
}
