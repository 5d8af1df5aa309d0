package reorder

import "github.com/alexanderramin/tabgroups/internal/domain"

// MovePlan is the outcome of position allocation: the dragged node's new
// placement plus every sibling placement that has to change with it.
type MovePlan struct {
	NodeID      string
	OldParentID *string
	NewParentID *string
	Position    int
	// Updates lists exactly the nodes whose parent or position changes,
	// dragged node first.
	Updates []domain.Placement
}

// NoOp reports whether applying the plan would change nothing.
func (p MovePlan) NoOp() bool {
	return len(p.Updates) == 0
}

// AllocatePosition computes contiguous positions for an accepted decision.
//
// The dragged node is removed from the destination group, inserted at the
// index implied by the zone and the group is renumbered 0..k-1. When the
// parent changes, the group the node left is renumbered as well, so both
// groups stay gap free.
func AllocatePosition(idx *Index, d Decision) MovePlan {
	dragged, ok := idx.Get(d.DraggedID)
	if !ok {
		return MovePlan{NodeID: d.DraggedID, NewParentID: domain.CopyStringPtr(d.NewParentID)}
	}

	siblings := without(idx.Children(d.NewParentID), dragged.ID)
	insertAt := len(siblings)
	if d.Zone == domain.ZoneBefore || d.Zone == domain.ZoneAfter {
		for i := range siblings {
			if siblings[i].ID != d.TargetID {
				continue
			}
			insertAt = i
			if d.Zone == domain.ZoneAfter {
				insertAt++
			}
			break
		}
	}

	final := make([]domain.Node, 0, len(siblings)+1)
	final = append(final, siblings[:insertAt]...)
	final = append(final, dragged)
	final = append(final, siblings[insertAt:]...)

	plan := MovePlan{
		NodeID:      dragged.ID,
		OldParentID: domain.CopyStringPtr(dragged.ParentID),
		NewParentID: domain.CopyStringPtr(d.NewParentID),
		Position:    insertAt,
	}

	parentChanged := !domain.SameParent(dragged.ParentID, d.NewParentID)
	if parentChanged || dragged.Position != insertAt {
		plan.Updates = append(plan.Updates, domain.Placement{
			ID:       dragged.ID,
			ParentID: domain.CopyStringPtr(d.NewParentID),
			Position: insertAt,
		})
	}
	plan.Updates = append(plan.Updates, renumber(final, dragged.ID)...)

	if parentChanged {
		source := without(idx.Children(dragged.ParentID), dragged.ID)
		plan.Updates = append(plan.Updates, renumber(source, "")...)
	}
	return plan
}

// renumber returns placements for the members of an ordered group whose
// position differs from their index. skipID is left out.
func renumber(group []domain.Node, skipID string) []domain.Placement {
	var out []domain.Placement
	for i := range group {
		n := group[i]
		if n.ID == skipID || n.Position == i {
			continue
		}
		out = append(out, domain.Placement{
			ID:       n.ID,
			ParentID: domain.CopyStringPtr(n.ParentID),
			Position: i,
		})
	}
	return out
}

func without(nodes []domain.Node, id string) []domain.Node {
	out := nodes[:0]
	for _, n := range nodes {
		if n.ID != id {
			out = append(out, n)
		}
	}
	return out
}

// Apply returns a copy of nodes with the plan's placements applied. Nodes
// not mentioned in the plan are copied unchanged.
func Apply(nodes []domain.Node, plan MovePlan) []domain.Node {
	return ApplyPlacements(nodes, plan.Updates)
}

// ApplyPlacements returns a copy of nodes with each placement applied to
// the node carrying its id. Unknown ids are ignored.
func ApplyPlacements(nodes []domain.Node, updates []domain.Placement) []domain.Node {
	out := domain.CloneNodes(nodes)
	if len(updates) == 0 {
		return out
	}
	byID := make(map[string]domain.Placement, len(updates))
	for _, u := range updates {
		byID[u.ID] = u
	}
	for i := range out {
		u, ok := byID[out[i].ID]
		if !ok {
			continue
		}
		out[i].ParentID = domain.CopyStringPtr(u.ParentID)
		out[i].Position = u.Position
	}
	return out
}
