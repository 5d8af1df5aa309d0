package domain

import "time"

// Node is one element of the tab-group hierarchy: either a leaf group or a
// folder that may contain other nodes.
type Node struct {
	ID       string
	Title    string
	ParentID *string // nil means root-level
	Position int     // ordering key among siblings sharing ParentID
	IsFolder bool
	Locked   bool

	// Children is derived by the tree builder and never persisted.
	Children []*Node

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Placement is the persisted part of a move: where a node lives.
type Placement struct {
	ID       string
	ParentID *string
	Position int
}

// Placement returns the node's current placement.
func (n Node) Placement() Placement {
	return Placement{ID: n.ID, ParentID: CopyStringPtr(n.ParentID), Position: n.Position}
}

// IsRoot reports whether the node has no parent reference.
func (n Node) IsRoot() bool {
	return n.ParentID == nil
}

// Clone returns a copy of the node without derived children. The parent
// pointer is copied so the clone never aliases the original.
func (n Node) Clone() Node {
	c := n
	c.ParentID = CopyStringPtr(n.ParentID)
	c.Children = nil
	return c
}

// CloneNodes copies a flat collection via Clone.
func CloneNodes(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i := range nodes {
		out[i] = nodes[i].Clone()
	}
	return out
}
