// Package reorder implements drag-and-drop reordering of a folder hierarchy:
// tree building, pointer hit testing, drop-zone classification, move
// validation and sibling position allocation. Everything here is pure and
// synchronous; persistence lives in the service layer.
package reorder

import (
	"sort"

	"github.com/alexanderramin/tabgroups/internal/domain"
)

// Index is an arena over a flat node collection with id lookup. It copies
// its input, so later changes to the caller's slice are not visible.
type Index struct {
	nodes []domain.Node
	byID  map[string]int
}

// NewIndex builds an index over nodes. When ids repeat, the last one wins.
func NewIndex(nodes []domain.Node) *Index {
	idx := &Index{
		nodes: domain.CloneNodes(nodes),
		byID:  make(map[string]int, len(nodes)),
	}
	for i := range idx.nodes {
		idx.byID[idx.nodes[i].ID] = i
	}
	return idx
}

// Len returns the number of nodes in the arena.
func (x *Index) Len() int {
	return len(x.nodes)
}

// Get returns a copy of the node with the given id.
func (x *Index) Get(id string) (domain.Node, bool) {
	i, ok := x.byID[id]
	if !ok {
		return domain.Node{}, false
	}
	return x.nodes[i].Clone(), true
}

// Has reports whether id is known.
func (x *Index) Has(id string) bool {
	_, ok := x.byID[id]
	return ok
}

// Nodes returns a copy of the whole collection in arena order.
func (x *Index) Nodes() []domain.Node {
	return domain.CloneNodes(x.nodes)
}

// Children returns the nodes whose parent reference equals parentID, sorted
// by position. Equal positions keep arena order.
func (x *Index) Children(parentID *string) []domain.Node {
	var out []domain.Node
	for i := range x.nodes {
		if domain.SameParent(x.nodes[i].ParentID, parentID) {
			out = append(out, x.nodes[i].Clone())
		}
	}
	sortByPosition(out)
	return out
}

// DescendsFrom walks parent references upward from start and reports
// whether ancestorID is reached (start itself counts). The walk stops at a
// root or an unknown parent. cyclic is true when the walk runs longer than
// the collection, which only happens on data that already has a cycle.
func (x *Index) DescendsFrom(start *string, ancestorID string) (found, cyclic bool) {
	cur := start
	for steps := 0; cur != nil; steps++ {
		if steps > len(x.nodes) {
			return false, true
		}
		if *cur == ancestorID {
			return true, false
		}
		i, ok := x.byID[*cur]
		if !ok {
			return false, false
		}
		cur = x.nodes[i].ParentID
	}
	return false, false
}

func sortByPosition(nodes []domain.Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Position < nodes[j].Position
	})
}
