package cli

import (
	"errors"
	"strings"

	"github.com/alexanderramin/tabgroups/internal/cli/formatter"
	"github.com/alexanderramin/tabgroups/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// tabgroupsHuhTheme returns a huh theme using the formatter palette.
func tabgroupsHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// nodeDraft collects the fields of `node add`.
type nodeDraft struct {
	Title    string
	ParentID string // empty means root
	Folder   bool
	Locked   bool
}

func validateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("title cannot be empty")
	}
	return nil
}

// parentOptions lists the root level followed by every folder.
func parentOptions(nodes []domain.Node) []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption("(root)", "")}
	for _, n := range nodes {
		if n.IsFolder {
			opts = append(opts, huh.NewOption(n.Title+"  "+formatter.ShortID(n.ID), n.ID))
		}
	}
	return opts
}

// nodeAddForm asks for whatever `node add` was not given on the command line.
func nodeAddForm(d *nodeDraft, nodes []domain.Node, askParent bool) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("Title").
			Placeholder("Reading list").
			Value(&d.Title).
			Validate(validateTitle),
	}
	if opts := parentOptions(nodes); askParent && len(opts) > 1 {
		fields = append(fields, huh.NewSelect[string]().
			Title("Parent").
			Options(opts...).
			Value(&d.ParentID))
	}
	fields = append(fields,
		huh.NewConfirm().
			Title("Folder?").
			Description("Folders can hold other groups").
			Value(&d.Folder),
	)
	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(tabgroupsHuhTheme()).WithShowHelp(false)
}
