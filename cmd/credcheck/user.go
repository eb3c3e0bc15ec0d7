package main

import (
	"bufio"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/credcheck/internal/adapter/driving/cli"
	"github.com/ericfisherdev/credcheck/internal/domain/model"
)

func newUserCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage stored users",
	}
	cmd.AddCommand(newUserAddCmd(a), newUserRemoveCmd(a), newUserListCmd(a))
	return cmd
}

func newUserAddCmd(a *app) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "add USERNAME",
		Short: "Add a user; the password is prompted for unless --password is given",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("password") {
				var err error
				password, err = promptPassword(cmd)
				if err != nil {
					return err
				}
			}

			users, closeStore, err := a.openUserStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			if err := users.Add(cmd.Context(), model.Credential{Username: args[0], Password: password}); err != nil {
				return err
			}
			a.logger.Info("user added", "username", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "password to store (visible in shell history)")
	return cmd
}

func newUserRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove USERNAME",
		Short: "Remove a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			users, closeStore, err := a.openUserStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			if err := users.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			a.logger.Info("user removed", "username", args[0])
			return nil
		},
	}
}

func newUserListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored usernames",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			users, closeStore, err := a.openUserStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			list, err := users.List(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "USERNAME\tCREATED")
			for _, u := range list {
				_, _ = fmt.Fprintf(tw, "%s\t%s\n", u.Username, u.CreatedAt.UTC().Format(time.RFC3339))
			}
			return tw.Flush()
		},
	}
}

// promptPassword reads a password from the terminal without echo, or as one
// line from the command's input when that is not a terminal.
func promptPassword(cmd *cobra.Command) (string, error) {
	_, _ = fmt.Fprint(cmd.OutOrStdout(), "Password: ")

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		if read := cli.TerminalPasswordReader(f, cmd.OutOrStdout()); read != nil {
			return read()
		}
	}

	password, err := cli.ReadLine(bufio.NewReader(in))
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return password, nil
}
