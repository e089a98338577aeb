package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thronelight/platform/internal/app"
)

func newCommissionsCommand(ctx *commandContext) *cobra.Command {
	commissionsCmd := &cobra.Command{
		Use:   "commissions",
		Short: "Partner commission jobs",
	}

	commissionsCmd.AddCommand(&cobra.Command{
		Use:   "mature",
		Short: "Mark pending commissions payable once their hold period has passed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withContainer(cmd.Context(), func(c *app.Container) error {
				n, err := c.Orders.MatureCommissions(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Matured %d commissions.\n", n)
				return nil
			})
		},
	})

	return commissionsCmd
}

func newSessionsCommand(ctx *commandContext) *cobra.Command {
	sessionsCmd := &cobra.Command{
		Use:   "sessions",
		Short: "Session maintenance",
	}

	sessionsCmd.AddCommand(&cobra.Command{
		Use:   "cleanup",
		Short: "Delete expired and revoked sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withContainer(cmd.Context(), func(c *app.Container) error {
				n, err := c.Sessions.Cleanup(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d expired/revoked sessions.\n", n)
				return nil
			})
		},
	})

	return sessionsCmd
}
