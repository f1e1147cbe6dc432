package main

import (
	"fmt"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/services"

	"github.com/spf13/cobra"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var latitude, longitude, radius float64

	command := &cobra.Command{
		Use:   "check",
		Short: "Screen a dig site against the protected asset registry without storing anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := ctx.registry()
			if err != nil {
				return err
			}

			center, err := kernel.NewLocation(latitude, longitude)
			if err != nil {
				return err
			}
			site, err := kernel.NewZone(center, radius)
			if err != nil {
				return err
			}

			conflicts, err := services.NewConflictDetector(registry, nil).FindConflicts(cmd.Context(), site)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(conflicts) == 0 {
				fmt.Fprintf(out, "No conflicts for %s\n", site)
				return nil
			}

			fmt.Fprint(out, renderConflicts(conflicts))
			fmt.Fprintln(out)
			return nil
		},
	}

	command.Flags().Float64Var(&latitude, "lat", 0, "Latitude of the dig site center")
	command.Flags().Float64Var(&longitude, "lon", 0, "Longitude of the dig site center")
	command.Flags().Float64Var(&radius, "radius", 0, "Radius of the dig site in meters")
	_ = command.MarkFlagRequired("lat")
	_ = command.MarkFlagRequired("lon")
	_ = command.MarkFlagRequired("radius")

	return command
}

func renderConflicts(conflicts []services.Conflict) string {
	rows := make([][]string, 0, len(conflicts))
	for _, c := range conflicts {
		rows = append(rows, []string{
			c.Asset.ID(),
			c.Asset.Name(),
			c.Asset.Owner(),
			fmt.Sprintf("%.1f", c.DistanceMeters),
			fmt.Sprintf("%.1f", c.Asset.SafetyBufferMeters()),
		})
	}
	return renderTable(
		[]string{"ID", "Name", "Owner", "Distance (m)", "Buffer (m)"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight},
	)
}
