package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thronelight/platform/internal/app"
)

func newAdminCommand(ctx *commandContext) *cobra.Command {
	adminCmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage back-office accounts",
	}
	adminCmd.AddCommand(newAdminCreateCommand(ctx))
	return adminCmd
}

func newAdminCreateCommand(ctx *commandContext) *cobra.Command {
	var email, name, password string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a super admin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return errors.New("--email and --password are required")
			}
			return ctx.withContainer(cmd.Context(), func(c *app.Container) error {
				a, err := c.Admin.Bootstrap(cmd.Context(), email, name, password)
				if err != nil {
					return fmt.Errorf("create admin: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created super admin %s (%s)\n", a.Email, a.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Login email")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&password, "password", "", "Initial password")
	return cmd
}
