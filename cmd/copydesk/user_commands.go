package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"copydesk/internal/store"
)

func newUserCommand(ctx *commandContext) *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage registered users",
	}

	userCmd.AddCommand(newUserAddCommand(ctx))
	userCmd.AddCommand(newUserListCommand(ctx))

	return userCmd
}

func newUserAddCommand(ctx *commandContext) *cobra.Command {
	var roleFlag string

	cmd := &cobra.Command{
		Use:   "add <email>",
		Short: "Register a new user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, ok := store.ParseRole(roleFlag)
			if !ok {
				return fmt.Errorf("unknown role %q (want writer or editor)", roleFlag)
			}
			return ctx.withApp(func(a *app) error {
				user, err := a.store.CreateUser(cmd.Context(), args[0], role)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s as %s\n", user.Email, user.Role)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&roleFlag, "role", "writer", "Role for the new user (writer or editor)")
	return cmd
}

func newUserListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(func(a *app) error {
				list, err := a.store.ListUsers(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(list) == 0 {
					fmt.Fprintln(out, "No users registered")
					return nil
				}
				rows := make([][]string, 0, len(list))
				for _, user := range list {
					rows = append(rows, []string{shortID(user.ID), user.Email, string(user.Role)})
				}
				fmt.Fprintln(out, renderTable([]string{"ID", "Email", "Role"}, rows))
				return nil
			})
		},
	}
}
