package main

import (
	"fmt"

	"workorders/internal/core/domain/model/asset"

	"github.com/spf13/cobra"
)

func newAssetsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "assets",
		Short: "List the protected asset registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := ctx.registry()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderAssets(registry))
			return nil
		},
	}
}

func renderAssets(registry asset.Registry) string {
	assets := registry.Assets()
	rows := make([][]string, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, []string{
			a.ID(),
			a.Name(),
			a.Owner(),
			fmt.Sprintf("%.6f", a.Location().Latitude()),
			fmt.Sprintf("%.6f", a.Location().Longitude()),
			fmt.Sprintf("%.1f", a.SafetyBufferMeters()),
		})
	}
	return renderTable(
		[]string{"ID", "Name", "Owner", "Latitude", "Longitude", "Buffer (m)"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight},
	)
}
