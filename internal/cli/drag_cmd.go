package cli

import (
	"fmt"

	"github.com/alexanderramin/tabgroups/internal/cli/formatter"
	"github.com/alexanderramin/tabgroups/internal/domain"
	"github.com/alexanderramin/tabgroups/internal/reorder"
	"github.com/spf13/cobra"
)

// newDragCmd replays a pointer gesture against the configured row layout:
// press on the node's row, move to (x, y), release. `tree --geometry`
// prints the rectangles the pointer is tested against.
func newDragCmd(app *App) *cobra.Command {
	var x, y float64
	var fromX, fromY float64
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "drag ID",
		Short: "Simulate dragging a node to a pointer position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			forest, err := app.Moves.Load(ctx)
			if err != nil {
				return err
			}
			nodeID, err := resolveNodeID(app.Moves.Nodes(), args[0])
			if err != nil {
				return moveError(err)
			}

			rows := reorder.Flatten(forest.Roots, nil)
			origin, ok := rowCenter(rows, app.Config.Rows, nodeID)
			if !ok {
				return fmt.Errorf("node %s is not visible in the tree", formatter.ShortID(nodeID))
			}
			if cmd.Flags().Changed("from-x") {
				origin.X = fromX
			}
			if cmd.Flags().Changed("from-y") {
				origin.Y = fromY
			}

			session, err := app.Moves.BeginDrag(nodeID, origin,
				reorder.WithActivationDistance(app.Config.DragActivation))
			if err != nil {
				return moveError(err)
			}

			idx := app.Moves.Index()
			pointer := domain.Point{X: x, Y: y}
			hint := session.Move(pointer, session.Targets(rows, app.Config.Rows), idx)
			fmt.Fprintln(out, describeHint(idx, session, hint))

			if dryRun {
				return session.Cancel()
			}
			res, err := app.Moves.Drop(ctx, session)
			if err != nil {
				return moveError(err)
			}
			printMoveResult(out, app.Moves.Index(), res)
			return nil
		},
	}

	cmd.Flags().Float64Var(&x, "x", 0, "Pointer x at release")
	cmd.Flags().Float64Var(&y, "y", 0, "Pointer y at release")
	cmd.Flags().Float64Var(&fromX, "from-x", 0, "Pointer x at press (defaults to the row center)")
	cmd.Flags().Float64Var(&fromY, "from-y", 0, "Pointer y at press (defaults to the row center)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the drop hint without moving anything")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")
	return cmd
}

func rowCenter(rows []reorder.Row, m reorder.RowMetrics, id string) (domain.Point, bool) {
	rect, ok := reorder.RectOf(reorder.Layout(rows, m), id)
	if !ok {
		return domain.Point{}, false
	}
	return rect.Center(), true
}

func describeHint(idx *reorder.Index, s *reorder.Session, h reorder.Hint) string {
	switch {
	case !s.Activated():
		return formatter.Dim("Hint: pointer did not travel far enough to start a drag")
	case !h.Active():
		return formatter.Dim("Hint: no drop target under the pointer")
	}
	return fmt.Sprintf("Hint: %s %s", formatter.ZoneMarker(h.Zone), formatter.Bold(titleOf(idx, h.TargetID)))
}
