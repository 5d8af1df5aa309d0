package reorder

import (
	"sort"

	"github.com/alexanderramin/tabgroups/internal/domain"
)

// Report lists hierarchy defects the builder recovered from instead of
// failing on them.
type Report struct {
	// Orphans reference a parent id that is not in the collection. They are
	// rendered as roots.
	Orphans []string
	// Unreachable nodes sit on (or under) a parent cycle and cannot be
	// reached from any root, so they are missing from the forest.
	Unreachable []string
}

// Clean reports whether the collection was well formed.
func (r Report) Clean() bool {
	return len(r.Orphans) == 0 && len(r.Unreachable) == 0
}

// Forest is the built tree together with its recovery report.
type Forest struct {
	Roots  []*domain.Node
	Report Report
}

// BuildTree turns a flat collection into an ordered forest. It never fails:
// a node whose parent is unknown becomes a root.
func BuildTree(nodes []domain.Node) []*domain.Node {
	return BuildForest(nodes).Roots
}

// BuildForest is BuildTree plus a report of what had to be recovered. The
// input is not modified; every node in the forest is a fresh copy.
func BuildForest(nodes []domain.Node) Forest {
	byID := make(map[string]*domain.Node, len(nodes))
	order := make([]*domain.Node, 0, len(nodes))

	for i := range nodes {
		n := nodes[i].Clone()
		n.Children = []*domain.Node{}
		if existing, ok := byID[n.ID]; ok {
			*existing = n
			continue
		}
		p := &n
		byID[n.ID] = p
		order = append(order, p)
	}

	var f Forest
	for _, n := range order {
		if n.ParentID == nil {
			f.Roots = append(f.Roots, n)
			continue
		}
		parent, ok := byID[*n.ParentID]
		if !ok {
			f.Roots = append(f.Roots, n)
			f.Report.Orphans = append(f.Report.Orphans, n.ID)
			continue
		}
		parent.Children = append(parent.Children, n)
	}

	// Roots are never on a cycle, so recursion from them terminates.
	visited := make(map[string]bool, len(order))
	sortLevel(f.Roots, visited)

	for _, n := range order {
		if !visited[n.ID] {
			f.Report.Unreachable = append(f.Report.Unreachable, n.ID)
		}
	}
	if f.Roots == nil {
		f.Roots = []*domain.Node{}
	}
	return f
}

func sortLevel(level []*domain.Node, visited map[string]bool) {
	sort.SliceStable(level, func(i, j int) bool {
		return level[i].Position < level[j].Position
	})
	for _, n := range level {
		visited[n.ID] = true
		sortLevel(n.Children, visited)
	}
}

// Row is one line of a flattened forest in display order.
type Row struct {
	Node   *domain.Node
	Depth  int
	IsLast bool // last child of its parent
}

// Flatten lists the forest depth-first. expanded decides whether a folder's
// children are listed; nil lists everything.
func Flatten(roots []*domain.Node, expanded func(*domain.Node) bool) []Row {
	var rows []Row
	var walk func(level []*domain.Node, depth int)
	walk = func(level []*domain.Node, depth int) {
		for i, n := range level {
			rows = append(rows, Row{Node: n, Depth: depth, IsLast: i == len(level)-1})
			if len(n.Children) > 0 && (expanded == nil || expanded(n)) {
				walk(n.Children, depth+1)
			}
		}
	}
	walk(roots, 0)
	return rows
}

// Walk visits every node of the forest depth-first, parents before
// children. Returning false from fn stops the walk.
func (f Forest) Walk(fn func(n *domain.Node, depth int) bool) {
	var walk func(level []*domain.Node, depth int) bool
	walk = func(level []*domain.Node, depth int) bool {
		for _, n := range level {
			if !fn(n, depth) || !walk(n.Children, depth+1) {
				return false
			}
		}
		return true
	}
	walk(f.Roots, 0)
}
