package cli

import (
	"fmt"

	"github.com/alexanderramin/tabgroups/internal/domain"
	"github.com/alexanderramin/tabgroups/internal/service"
	"github.com/spf13/cobra"
)

func newMoveCmd(app *App) *cobra.Command {
	var onto string
	var zone domain.DropZone

	cmd := &cobra.Command{
		Use:   "move ID",
		Short: "Drop a node before, after or inside another node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if zone == domain.ZoneNone {
				return fmt.Errorf("--zone is required (before|after|inside)")
			}
			if _, err := app.Moves.Load(ctx); err != nil {
				return err
			}
			nodes := app.Moves.Nodes()
			nodeID, err := resolveNodeID(nodes, args[0])
			if err != nil {
				return moveError(err)
			}
			targetID, err := resolveNodeID(nodes, onto)
			if err != nil {
				return moveError(err)
			}

			res, err := app.Moves.Move(ctx, service.MoveRequest{NodeID: nodeID, TargetID: targetID, Zone: zone})
			if err != nil {
				return moveError(err)
			}
			printMoveResult(cmd.OutOrStdout(), app.Moves.Index(), res)
			return nil
		},
	}

	cmd.Flags().StringVar(&onto, "onto", "", "Target node ID (or unique prefix)")
	cmd.Flags().Var(newZoneValue(&zone), "zone", "Drop zone (before|after|inside)")
	_ = cmd.MarkFlagRequired("onto")
	_ = cmd.MarkFlagRequired("zone")
	return cmd
}
