package reorder

import (
	"testing"

	"github.com/alexanderramin/tabgroups/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout_StacksAndIndentsRows(t *testing.T) {
	rows := Flatten(BuildTree(scenarioNodes()), nil)

	targets := Layout(rows, RowMetrics{Left: 10, Top: 100, Width: 200, RowHeight: 20, Indent: 8})

	require.Len(t, targets, 3)
	assert.Equal(t, DropTarget{ID: "1", Rect: domain.Rect{X: 10, Y: 100, Width: 200, Height: 20}}, targets[0])
	assert.Equal(t, DropTarget{ID: "2", Rect: domain.Rect{X: 18, Y: 120, Width: 192, Height: 20}}, targets[1])
	assert.Equal(t, DropTarget{ID: "3", Rect: domain.Rect{X: 10, Y: 140, Width: 200, Height: 20}}, targets[2])
}

func TestLayout_OverIndentedRowIsEmpty(t *testing.T) {
	rows := Flatten(BuildTree(scenarioNodes()), nil)

	targets := Layout(rows, RowMetrics{Width: 10, RowHeight: 1, Indent: 20})

	assert.True(t, targets[1].Rect.Empty())
	assert.False(t, targets[0].Rect.Empty())
}

func TestLayout_PipelineResolvesScenarioDrop(t *testing.T) {
	nodes := scenarioNodes()
	idx := NewIndex(nodes)
	targets := Layout(Flatten(BuildTree(nodes), nil), DefaultRowMetrics())

	rect, ok := RectOf(targets, "1")
	require.True(t, ok)
	id, ok := DetectCollision(rect.Center(), targets)
	require.True(t, ok)
	target, _ := idx.Get(id)

	assert.Equal(t, "1", id)
	assert.Equal(t, domain.ZoneInside, ClassifyDropZone(&target, rect, rect.Center()))

	_, ok = RectOf(targets, "missing")
	assert.False(t, ok)
}
