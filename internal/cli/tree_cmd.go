package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tabgroups/internal/cli/formatter"
	"github.com/alexanderramin/tabgroups/internal/reorder"
	"github.com/spf13/cobra"
)

func newTreeCmd(app *App) *cobra.Command {
	var geometry bool

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show the group hierarchy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			forest, err := app.Trees.Forest(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			rows := reorder.Flatten(forest.Roots, nil)
			if len(rows) == 0 {
				fmt.Fprintln(out, formatter.Dim("No groups yet. Add one with `tabgroups node add --title NAME`."))
				return nil
			}

			items := make([]formatter.TreeItem, 0, len(rows))
			for _, r := range rows {
				items = append(items, formatter.TreeItem{
					Title:  r.Node.Title,
					Depth:  r.Depth,
					IsLast: r.IsLast,
					Folder: r.Node.IsFolder,
					Locked: r.Node.Locked,
					Detail: formatter.ShortID(r.Node.ID),
				})
			}
			fmt.Fprint(out, formatter.RenderTree(items))

			if geometry {
				fmt.Fprintln(out)
				fmt.Fprint(out, renderGeometry(rows, app.Config.Rows))
			}

			if !forest.Report.Clean() {
				fmt.Fprintln(out)
				for _, id := range forest.Report.Orphans {
					fmt.Fprintln(out, formatter.StyleYellow.Render(
						fmt.Sprintf("warning: %s has a missing parent and is shown at the root", formatter.ShortID(id))))
				}
				if n := len(forest.Report.Unreachable); n > 0 {
					fmt.Fprintln(out, formatter.StyleYellow.Render(
						fmt.Sprintf("warning: %d node(s) sit in a parent cycle and are hidden: %s",
							n, strings.Join(shortIDs(forest.Report.Unreachable), ", "))))
				}
				fmt.Fprintln(out, formatter.Dim("Run `tabgroups doctor --fix` to repair."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&geometry, "geometry", false, "Also print the drop-target rectangle of every row")
	return cmd
}

func renderGeometry(rows []reorder.Row, m reorder.RowMetrics) string {
	targets := reorder.Layout(rows, m)
	headers := []string{"ID", "TITLE", "X", "Y", "W", "H"}
	table := make([][]string, 0, len(targets))
	for i, t := range targets {
		table = append(table, []string{
			formatter.TruncID(t.ID),
			rows[i].Node.Title,
			formatter.FormatCoord(t.Rect.X),
			formatter.FormatCoord(t.Rect.Y),
			formatter.FormatCoord(t.Rect.Width),
			formatter.FormatCoord(t.Rect.Height),
		})
	}
	return formatter.RenderTable(headers, table)
}

func shortIDs(ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = formatter.ShortID(id)
	}
	return out
}
