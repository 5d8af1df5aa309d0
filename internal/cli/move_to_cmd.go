package cli

import (
	"github.com/spf13/cobra"
)

func newMoveToCmd(app *App) *cobra.Command {
	var folder string
	var root bool

	cmd := &cobra.Command{
		Use:   "move-to ID",
		Short: "Append a node to the end of a folder or of the root level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			folderArg, err := folderFlagTarget(folder, root)
			if err != nil {
				return err
			}
			if _, err := app.Moves.Load(ctx); err != nil {
				return err
			}
			nodes := app.Moves.Nodes()
			nodeID, err := resolveNodeID(nodes, args[0])
			if err != nil {
				return moveError(err)
			}
			if folderArg != nil {
				id, err := resolveNodeID(nodes, *folderArg)
				if err != nil {
					return moveError(err)
				}
				folderArg = &id
			}

			res, err := app.Moves.MoveToFolder(ctx, nodeID, folderArg)
			if err != nil {
				return moveError(err)
			}
			printMoveResult(cmd.OutOrStdout(), app.Moves.Index(), res)
			return nil
		},
	}

	cmd.Flags().StringVar(&folder, "folder", "", "Destination folder ID (or unique prefix)")
	cmd.Flags().BoolVar(&root, "root", false, "Move to the root level")
	return cmd
}
