package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/thronelight/platform/internal/service/gathering"
)

const startsAtLayout = "2006-01-02 15:04"

func newGatheringsCommand(ctx *commandContext) *cobra.Command {
	gatheringsCmd := &cobra.Command{
		Use:   "gatherings",
		Short: "Manage reader gatherings",
	}
	gatheringsCmd.AddCommand(newGatheringsListCommand(ctx))
	gatheringsCmd.AddCommand(newGatheringsAddCommand(ctx))
	return gatheringsCmd
}

func newGatheringsListCommand(ctx *commandContext) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List upcoming gatherings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.gatherings()
			if err != nil {
				return err
			}
			listings, err := svc.List(cmd.Context(), all)
			if err != nil {
				return err
			}
			if len(listings) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No gatherings")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Title", "Location", "Starts", "Seats left"},
				gatheringRows(listings),
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include past gatherings")
	return cmd
}

func newGatheringsAddCommand(ctx *commandContext) *cobra.Command {
	var input gathering.CreateInput
	var startsAt string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a gathering",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := time.Parse(startsAtLayout, startsAt)
			if err != nil {
				return fmt.Errorf("--starts must look like %q: %w", startsAtLayout, err)
			}
			input.StartsAt = t

			svc, err := ctx.gatherings()
			if err != nil {
				return err
			}
			g, err := svc.Create(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added gathering %s\n", g.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Title, "title", "", "Gathering title")
	cmd.Flags().StringVar(&input.Location, "location", "", "Venue or city")
	cmd.Flags().StringVar(&startsAt, "starts", "", "Start time in UTC, "+startsAtLayout)
	cmd.Flags().IntVar(&input.Capacity, "capacity", 0, "Seat limit, 0 for unlimited")
	return cmd
}

func gatheringRows(listings []gathering.Listing) [][]string {
	rows := make([][]string, 0, len(listings))
	for _, l := range listings {
		seats := "unlimited"
		if l.SeatsLeft != nil {
			seats = strconv.Itoa(*l.SeatsLeft)
		}
		rows = append(rows, []string{l.ID, l.Title, l.Location, l.StartsAt.UTC().Format(startsAtLayout), seats})
	}
	return rows
}
