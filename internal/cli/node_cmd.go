package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tabgroups/internal/cli/formatter"
	"github.com/alexanderramin/tabgroups/internal/domain"
	"github.com/spf13/cobra"
)

func newNodeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "node",
		Short: "Manage groups and folders",
	}

	cmd.AddCommand(
		newNodeAddCmd(app),
		newNodeInspectCmd(app),
		newNodeLockCmd(app, true),
		newNodeLockCmd(app, false),
	)

	return cmd
}

func newNodeAddCmd(app *App) *cobra.Command {
	var d nodeDraft

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a group, or a folder with --folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if _, err := app.Moves.Load(ctx); err != nil {
				return err
			}
			nodes := app.Moves.Nodes()

			if strings.TrimSpace(d.Title) == "" {
				if !app.interactive() {
					return fmt.Errorf("--title is required")
				}
				askParent := !cmd.Flags().Changed("parent")
				if err := nodeAddForm(&d, nodes, askParent).Run(); err != nil {
					return err
				}
			}

			n := &domain.Node{
				Title:    strings.TrimSpace(d.Title),
				IsFolder: d.Folder,
				Locked:   d.Locked,
			}
			if d.ParentID != "" {
				parentID, err := resolveNodeID(nodes, d.ParentID)
				if err != nil {
					return err
				}
				n.ParentID = &parentID
			}

			if err := app.Nodes.Create(ctx, n); err != nil {
				return err
			}

			kind := "group"
			if n.IsFolder {
				kind = "folder"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s %s %s\n", kind, formatter.Bold(n.Title), formatter.TruncID(n.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&d.Title, "title", "", "Title")
	cmd.Flags().StringVar(&d.ParentID, "parent", "", "Parent folder ID (or unique prefix); root when omitted")
	cmd.Flags().BoolVar(&d.Folder, "folder", false, "Create a folder that can hold other nodes")
	cmd.Flags().BoolVar(&d.Locked, "locked", false, "Pin the node so it cannot be dragged")

	return cmd
}

func newNodeInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show a node's placement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := app.Moves.Load(ctx); err != nil {
				return err
			}
			nodeID, err := resolveNodeID(app.Moves.Nodes(), args[0])
			if err != nil {
				return err
			}
			n, err := app.Nodes.GetByID(ctx, nodeID)
			if err != nil {
				return err
			}
			idx := app.Moves.Index()

			var b strings.Builder
			kind := "group"
			if n.IsFolder {
				kind = "folder"
			}
			b.WriteString(fmt.Sprintf("%s  %s\n\n", formatter.Bold(n.Title), formatter.Dim(kind)))
			b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("ID      "), n.ID))
			b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("PARENT  "), parentLabel(idx, n.ParentID)))
			b.WriteString(fmt.Sprintf("  %s  %d\n", formatter.Dim("POSITION"), n.Position))
			if n.Locked {
				b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("LOCKED  "), formatter.StyleRed.Render("yes")))
			}

			if children := idx.Children(&n.ID); len(children) > 0 {
				b.WriteString("\n")
				b.WriteString(formatter.Header("Children"))
				b.WriteString("\n")
				rows := make([][]string, 0, len(children))
				for _, c := range children {
					rows = append(rows, []string{
						formatter.TruncID(c.ID),
						c.Title,
						fmt.Sprintf("%d", c.Position),
					})
				}
				b.WriteString(formatter.RenderTable([]string{"ID", "TITLE", "POS"}, rows))
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("Node", b.String()))
			return nil
		},
	}
}

// newNodeLockCmd builds `node lock` or `node unlock`.
func newNodeLockCmd(app *App, locked bool) *cobra.Command {
	use, short, verb := "unlock ID", "Let a pinned node be dragged again", "Unlocked"
	if locked {
		use, short, verb = "lock ID", "Pin a node so it cannot be dragged", "Locked"
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := app.Moves.Load(ctx); err != nil {
				return err
			}
			nodeID, err := resolveNodeID(app.Moves.Nodes(), args[0])
			if err != nil {
				return err
			}
			if err := app.Nodes.SetLocked(ctx, nodeID, locked); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", verb,
				formatter.Bold(titleOf(app.Moves.Index(), nodeID)), formatter.TruncID(nodeID))
			return nil
		},
	}
}
