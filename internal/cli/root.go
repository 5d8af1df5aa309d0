package cli

import (
	"github.com/alexanderramin/tabgroups/internal/cli/formatter"
	"github.com/alexanderramin/tabgroups/internal/config"
	"github.com/alexanderramin/tabgroups/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Trees service.TreeService
	Moves service.MoveService
	Nodes service.NodeService

	Config config.Config
	// IsInteractive reports whether prompts and the TUI may be shown.
	// Nil means never.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "tabgroups" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var noColor bool
	root := &cobra.Command{
		Use:   "tabgroups",
		Short: "Organize tabs into nested groups by dragging them around",
		// main prints the returned error once.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor || app.Config.NoColor {
				formatter.DisableColor()
			}
		},
	}
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		newTreeCmd(app),
		newNodeCmd(app),
		newMoveCmd(app),
		newMoveToCmd(app),
		newDragCmd(app),
		newDoctorCmd(app),
		newBrowseCmd(app),
	)

	return root
}
