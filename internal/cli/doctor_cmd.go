package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tabgroups/internal/cli/formatter"
	"github.com/alexanderramin/tabgroups/internal/reorder"
	"github.com/spf13/cobra"
)

func newDoctorCmd(app *App) *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check stored placements for orphans, cycles and position gaps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			diag, err := app.Trees.Diagnose(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.Header("Doctor"))
			if diag.Healthy() {
				fmt.Fprintln(out, formatter.StyleGreen.Render("✔ tree is healthy"))
				return nil
			}
			fmt.Fprint(out, renderDiagnosis(diag))

			if !fix {
				fmt.Fprintln(out, formatter.Dim("Run with --fix to repair."))
				return nil
			}
			res, err := app.Trees.Repair(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.StyleGreen.Render(
				fmt.Sprintf("✔ repaired: %s", formatter.Plural(len(res.Applied), "placement"))))
			return nil
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Re-root orphans, break cycles and renumber positions")
	return cmd
}

func renderDiagnosis(d reorder.Diagnosis) string {
	headers := []string{"PROBLEM", "DETAIL"}
	var rows [][]string
	for _, id := range d.Orphans {
		rows = append(rows, []string{formatter.StyleYellow.Render("orphan"), formatter.ShortID(id)})
	}
	for _, id := range d.Unreachable {
		rows = append(rows, []string{formatter.StyleRed.Render("cycle"), formatter.ShortID(id)})
	}
	for _, g := range d.Disordered {
		parent := "root"
		if g.ParentID != nil {
			parent = formatter.ShortID(*g.ParentID)
		}
		positions := make([]string, len(g.Positions))
		for i, p := range g.Positions {
			positions[i] = fmt.Sprintf("%d", p)
		}
		rows = append(rows, []string{
			formatter.StyleBlue.Render("positions"),
			fmt.Sprintf("%s: [%s]", parent, strings.Join(positions, " ")),
		})
	}
	return formatter.RenderTable(headers, rows)
}
