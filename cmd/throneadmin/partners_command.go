package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thronelight/platform/internal/app"
	"github.com/thronelight/platform/internal/domain"
)

func newPartnersCommand(ctx *commandContext) *cobra.Command {
	partnersCmd := &cobra.Command{
		Use:   "partners",
		Short: "Inspect partner accounts",
	}

	partnersCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List partners with their referral terms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withContainer(cmd.Context(), func(c *app.Container) error {
				partners, err := c.Partners.ListPartners(cmd.Context())
				if err != nil {
					return err
				}
				if len(partners) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No partners")
					return nil
				}
				fmt.Fprint(cmd.OutOrStdout(), renderTable(
					[]string{"Name", "Slug", "Email", "Coupon", "Commission", "Clicks", "Active"},
					partnerRows(partners),
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight},
				))
				return nil
			})
		},
	})

	return partnersCmd
}

func partnerRows(partners []domain.Partner) [][]string {
	rows := make([][]string, 0, len(partners))
	for _, p := range partners {
		coupon := "-"
		if p.CouponCode != nil {
			coupon = *p.CouponCode
		}
		active := "no"
		if p.Active {
			active = "yes"
		}
		rows = append(rows, []string{
			p.Name,
			p.Slug,
			p.Email,
			coupon,
			strconv.FormatFloat(p.CommissionPercent, 'f', -1, 64) + "%",
			strconv.FormatInt(p.Clicks, 10),
			active,
		})
	}
	return rows
}
