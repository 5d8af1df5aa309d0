package reorder

import (
	"testing"

	"github.com/alexanderramin/tabgroups/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plan(t *testing.T, nodes []domain.Node, dragged, target string, zone domain.DropZone) MovePlan {
	t.Helper()
	idx := NewIndex(nodes)
	d, err := ValidateMove(idx, dragged, target, zone)
	require.NoError(t, err)
	return AllocatePosition(idx, d)
}

func order(nodes []domain.Node, parent *string) []string {
	var out []string
	for _, n := range NewIndex(nodes).Children(parent) {
		out = append(out, n.ID)
	}
	return out
}

func TestAllocatePosition_InsideScenario(t *testing.T) {
	nodes := scenarioNodes()

	p := plan(t, nodes, "3", "1", domain.ZoneInside)

	assert.Equal(t, 1, p.Position)
	require.Equal(t, []domain.Placement{{ID: "3", ParentID: domain.StringPtr("1"), Position: 1}}, p.Updates)

	after := Apply(nodes, p)
	assert.Equal(t, findNode(nodes, "1"), findNode(after, "1"), "folder itself is untouched")
	assert.Equal(t, []string{"2", "3"}, order(after, domain.StringPtr("1")))
}

func TestAllocatePosition_InsideEmptyFolder(t *testing.T) {
	nodes := []domain.Node{folder("f", "", 0), group("g", "", 1)}

	p := plan(t, nodes, "g", "f", domain.ZoneInside)

	assert.Equal(t, 0, p.Position)
	assert.Equal(t, "f", *p.NewParentID)
	assert.Nil(t, p.OldParentID)
}

func rootGroups() []domain.Node {
	return []domain.Node{
		group("a", "", 0),
		group("b", "", 1),
		group("c", "", 2),
		group("d", "", 3),
	}
}

func TestAllocatePosition_SameGroup(t *testing.T) {
	tests := []struct {
		name    string
		dragged string
		target  string
		zone    domain.DropZone
		want    []string
		pos     int
	}{
		{"down before", "a", "c", domain.ZoneBefore, []string{"b", "a", "c", "d"}, 1},
		{"down after", "a", "c", domain.ZoneAfter, []string{"b", "c", "a", "d"}, 2},
		{"up before", "d", "b", domain.ZoneBefore, []string{"a", "d", "b", "c"}, 1},
		{"up after", "d", "a", domain.ZoneAfter, []string{"a", "d", "b", "c"}, 1},
		{"to end", "b", "d", domain.ZoneAfter, []string{"a", "c", "d", "b"}, 3},
		{"to start", "c", "a", domain.ZoneBefore, []string{"c", "a", "b", "d"}, 0},
		{"default zone appends", "a", "b", domain.ZoneNone, []string{"b", "c", "d", "a"}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes := rootGroups()
			p := plan(t, nodes, tt.dragged, tt.target, tt.zone)

			assert.Equal(t, tt.pos, p.Position)
			require.NotEmpty(t, p.Updates)
			assert.Equal(t, tt.dragged, p.Updates[0].ID, "dragged node comes first")
			assert.Equal(t, tt.want, order(Apply(nodes, p), nil))
			assertContiguous(t, Apply(nodes, p))
		})
	}
}

func TestAllocatePosition_NoOpWhenAlreadyInPlace(t *testing.T) {
	nodes := rootGroups()

	p := plan(t, nodes, "b", "c", domain.ZoneBefore)
	assert.True(t, p.NoOp())

	p = plan(t, nodes, "b", "a", domain.ZoneAfter)
	assert.True(t, p.NoOp())
}

func TestAllocatePosition_UpdatesOnlyChangedNodes(t *testing.T) {
	nodes := rootGroups()

	p := plan(t, nodes, "c", "b", domain.ZoneBefore)

	got := map[string]int{}
	for _, u := range p.Updates {
		got[u.ID] = u.Position
	}
	assert.Equal(t, map[string]int{"c": 1, "b": 2}, got)
}

func TestAllocatePosition_CrossGroupRenumbersBothGroups(t *testing.T) {
	nodes := []domain.Node{
		folder("f", "", 0),
		group("f0", "f", 0),
		group("f1", "f", 1),
		group("f2", "f", 2),
		group("r1", "", 1),
		group("r2", "", 2),
	}

	p := plan(t, nodes, "f0", "r1", domain.ZoneAfter)
	after := Apply(nodes, p)

	assert.Equal(t, []string{"f", "r1", "f0", "r2"}, order(after, nil))
	assert.Equal(t, []string{"f1", "f2"}, order(after, domain.StringPtr("f")))
	assertContiguous(t, after)
	assert.Equal(t, "f", *p.OldParentID)
	assert.Nil(t, p.NewParentID)
}

func TestAllocatePosition_LockedSiblingsKeepRelativeOrder(t *testing.T) {
	nodes := []domain.Node{
		locked(group("a", "", 0)),
		group("b", "", 1),
		locked(group("c", "", 2)),
	}

	p := plan(t, nodes, "b", "a", domain.ZoneBefore)
	after := Apply(nodes, p)

	assert.Equal(t, []string{"b", "a", "c"}, order(after, nil))
}

func TestAllocatePosition_GappedInputIsRenumbered(t *testing.T) {
	nodes := []domain.Node{
		folder("f", "", 0),
		group("x", "f", 3),
		group("y", "f", 7),
		group("g", "", 5),
	}

	p := plan(t, nodes, "g", "f", domain.ZoneInside)
	after := Apply(nodes, p)

	assert.Equal(t, 2, p.Position)
	assert.Equal(t, []string{"x", "y", "g"}, order(after, domain.StringPtr("f")))
	assertContiguous(t, after)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	nodes := scenarioNodes()
	before := domain.CloneNodes(nodes)

	Apply(nodes, plan(t, nodes, "3", "1", domain.ZoneInside))

	assert.Equal(t, before, nodes)
}

func assertContiguous(t *testing.T, nodes []domain.Node) {
	t.Helper()
	for _, g := range groupByParent(nodes) {
		seen := make([]bool, len(g.members))
		for _, n := range g.members {
			if assert.True(t, n.Position >= 0 && n.Position < len(g.members),
				"parent %s: position %d out of range", domain.DerefOr(g.parentID, "root"), n.Position) {
				assert.False(t, seen[n.Position], "parent %s: duplicate position %d", domain.DerefOr(g.parentID, "root"), n.Position)
				seen[n.Position] = true
			}
		}
	}
}
