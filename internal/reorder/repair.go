package reorder

import (
	"sort"

	"github.com/alexanderramin/tabgroups/internal/domain"
)

// GroupIssue is a sibling group whose positions are not exactly 0..k-1.
type GroupIssue struct {
	ParentID  *string
	Positions []int // sorted
}

// Diagnosis summarises structural problems in a stored collection.
type Diagnosis struct {
	Orphans     []string
	Unreachable []string
	Disordered  []GroupIssue
}

// Healthy reports whether no problem was found.
func (d Diagnosis) Healthy() bool {
	return len(d.Orphans) == 0 && len(d.Unreachable) == 0 && len(d.Disordered) == 0
}

// Diagnose inspects nodes without changing them.
func Diagnose(nodes []domain.Node) Diagnosis {
	report := BuildForest(nodes).Report
	d := Diagnosis{Orphans: report.Orphans, Unreachable: report.Unreachable}

	for _, g := range groupByParent(nodes) {
		positions := make([]int, len(g.members))
		for i, n := range g.members {
			positions[i] = n.Position
		}
		sort.Ints(positions)
		for i, p := range positions {
			if p != i {
				d.Disordered = append(d.Disordered, GroupIssue{
					ParentID:  domain.CopyStringPtr(g.parentID),
					Positions: positions,
				})
				break
			}
		}
	}
	return d
}

// RepairPlan returns the placements that make nodes well formed: orphans
// become roots, one node on every parent cycle becomes a root, and every
// sibling group is renumbered 0..k-1 keeping its current order. Only nodes
// that actually change are returned, in input order.
func RepairPlan(nodes []domain.Node) []domain.Placement {
	work := domain.CloneNodes(nodes)
	byID := make(map[string]int, len(work))
	for i := range work {
		byID[work[i].ID] = i
	}

	for i := range work {
		if p := work[i].ParentID; p != nil {
			if _, ok := byID[*p]; !ok {
				work[i].ParentID = nil
			}
		}
	}

	for {
		unreachable := BuildForest(work).Report.Unreachable
		if len(unreachable) == 0 {
			break
		}
		work[cycleMember(work, byID, unreachable[0])].ParentID = nil
	}

	for _, g := range groupByParent(work) {
		sortByPosition(g.members)
		for pos, n := range g.members {
			work[byID[n.ID]].Position = pos
		}
	}

	var out []domain.Placement
	for i := range work {
		if domain.SameParent(work[i].ParentID, nodes[i].ParentID) && work[i].Position == nodes[i].Position {
			continue
		}
		out = append(out, work[i].Placement())
	}
	return out
}

// cycleMember walks up from an unreachable node until an id repeats; the
// repeated node lies on the cycle itself.
func cycleMember(work []domain.Node, byID map[string]int, start string) int {
	seen := make(map[string]bool)
	cur := byID[start]
	for !seen[work[cur].ID] {
		seen[work[cur].ID] = true
		cur = byID[*work[cur].ParentID]
	}
	return cur
}

type siblingGroup struct {
	parentID *string
	members  []domain.Node
}

// groupByParent buckets nodes by parent reference in first-seen order.
func groupByParent(nodes []domain.Node) []siblingGroup {
	var groups []siblingGroup
	at := make(map[string]int)
	for _, n := range nodes {
		key := domain.ParentKey(n.ParentID)
		i, ok := at[key]
		if !ok {
			i = len(groups)
			at[key] = i
			groups = append(groups, siblingGroup{parentID: domain.CopyStringPtr(n.ParentID)})
		}
		groups[i].members = append(groups[i].members, n)
	}
	return groups
}
