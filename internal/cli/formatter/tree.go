package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem represents a single node in a tree display.
type TreeItem struct {
	Title  string
	Depth  int
	IsLast bool
	Folder bool
	Locked bool
	Detail string // right-aligned badge; empty means none
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
	treeGap    = "   "
)

// RenderTree renders items, given in depth-first order, as an indented tree
// using box-drawing characters for connectors. Folders are rendered bold
// with a trailing slash, locked nodes get a red lock marker, and detail
// badges are right-aligned.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	type lineInfo struct {
		content string
		badge   string
	}

	lines := make([]lineInfo, len(items))
	maxContentWidth := 0

	// lastAt[d] records whether the most recent item at depth d closed its
	// sibling group, which decides between a pipe and a gap below it.
	var lastAt []bool

	for idx, item := range items {
		for len(lastAt) <= item.Depth {
			lastAt = append(lastAt, false)
		}
		lastAt[item.Depth] = item.IsLast

		var prefix strings.Builder
		if item.Depth > 0 {
			for d := 1; d < item.Depth; d++ {
				if lastAt[d] {
					prefix.WriteString(treeGap)
				} else {
					prefix.WriteString(treePipe)
				}
			}
			if item.IsLast {
				prefix.WriteString(treeCorner)
			} else {
				prefix.WriteString(treeBranch)
			}
		}

		title := StyleFg.Render(item.Title)
		if item.Folder {
			title = StyleYellowBold.Render(item.Title + "/")
		}
		if item.Locked {
			title += " " + StyleRed.Render("[locked]")
		}

		content := StyleDim.Render(prefix.String()) + title
		lines[idx].content = content
		if item.Detail != "" {
			lines[idx].badge = StyleBlue.Render(fmt.Sprintf("[ %s ]", item.Detail))
		}

		if w := lipgloss.Width(content); w > maxContentWidth {
			maxContentWidth = w
		}
	}

	var b strings.Builder
	for _, li := range lines {
		if li.badge != "" {
			pad := maxContentWidth - lipgloss.Width(li.content)
			if pad < 0 {
				pad = 0
			}
			b.WriteString(li.content + strings.Repeat(" ", pad) + "  " + li.badge + "\n")
		} else {
			b.WriteString(li.content + "\n")
		}
	}

	return b.String()
}
