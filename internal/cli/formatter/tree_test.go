package formatter

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestRenderTree_Empty(t *testing.T) {
	assert.Empty(t, RenderTree(nil))
}

func TestRenderTree_Connectors(t *testing.T) {
	items := []TreeItem{
		{Title: "Research", Depth: 0, Folder: true},
		{Title: "Papers", Depth: 1, IsLast: false},
		{Title: "Drafts", Depth: 1, IsLast: true, Folder: true},
		{Title: "Intro", Depth: 2, IsLast: true, Locked: true},
		{Title: "Shopping", Depth: 0, IsLast: true},
	}

	got := stripANSI(RenderTree(items))
	want := strings.Join([]string{
		"Research/",
		"├─ Papers",
		"└─ Drafts/",
		"   └─ Intro [locked]",
		"Shopping",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestRenderTree_PipeContinuesUnderOpenGroup(t *testing.T) {
	items := []TreeItem{
		{Title: "A", Depth: 0, Folder: true},
		{Title: "B", Depth: 1, Folder: true},
		{Title: "C", Depth: 2, IsLast: true},
		{Title: "D", Depth: 1, IsLast: true},
	}

	got := stripANSI(RenderTree(items))
	assert.Contains(t, got, "│  └─ C\n")
	assert.Contains(t, got, "└─ D\n")
}

func TestRenderTree_BadgesAreRightAligned(t *testing.T) {
	items := []TreeItem{
		{Title: "Research", Detail: "1"},
		{Title: "Go", Depth: 1, IsLast: true, Detail: "2"},
	}

	lines := strings.Split(strings.TrimRight(stripANSI(RenderTree(items)), "\n"), "\n")
	col := func(line, badge string) int {
		return lipgloss.Width(line[:strings.Index(line, badge)])
	}
	assert.Equal(t, col(lines[0], "[ 1 ]"), col(lines[1], "[ 2 ]"))
}
