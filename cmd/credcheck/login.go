package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/credcheck/internal/adapter/driving/cli"
	"github.com/ericfisherdev/credcheck/internal/domain/model"
)

func newLoginCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Prompt for a username and password and verify them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			verifier, err := a.newVerifier()
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			var readPassword cli.PasswordReader
			if f, ok := in.(*os.File); ok {
				readPassword = cli.TerminalPasswordReader(f, cmd.OutOrStdout())
			}

			prompt := cli.NewLoginPrompt(verifier, in, cmd.OutOrStdout(), readPassword, a.cfg.LookupTimeout)
			result, err := prompt.Run(cmd.Context())
			if err != nil {
				return err
			}

			if result != model.ResultAuthenticated {
				return &exitError{code: cli.ExitCode(result)}
			}
			return nil
		},
	}
}
