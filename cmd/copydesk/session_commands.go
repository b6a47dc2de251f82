package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newLoginCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "login <email>",
		Short: "Sign in as a registered user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(func(a *app) error {
				email := strings.TrimSpace(args[0])
				user, err := a.store.FindUserByEmail(cmd.Context(), email)
				if err != nil {
					return err
				}
				if user == nil {
					return fmt.Errorf("no user registered for %s; add one with `copydesk user add`", email)
				}
				if err := a.store.Login(cmd.Context(), user.ID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", user.Email, user.Role)
				return nil
			})
		},
	}
}

func newLogoutCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out the current user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(func(a *app) error {
				if err := a.store.Logout(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
				return nil
			})
		},
	}
}

func newWhoamiCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(func(a *app) error {
				user, err := a.store.CurrentUser(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if user == nil {
					fmt.Fprintln(out, "Not signed in")
					return nil
				}
				fmt.Fprintf(out, "%s (%s)\n", user.Email, user.Role)
				return nil
			})
		},
	}
}
