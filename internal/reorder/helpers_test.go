package reorder

import (
	"github.com/alexanderramin/tabgroups/internal/domain"
)

func group(id string, parent string, pos int) domain.Node {
	n := domain.Node{ID: id, Title: "Group " + id, Position: pos}
	if parent != "" {
		n.ParentID = domain.StringPtr(parent)
	}
	return n
}

func folder(id string, parent string, pos int) domain.Node {
	n := group(id, parent, pos)
	n.Title = "Folder " + id
	n.IsFolder = true
	return n
}

func locked(n domain.Node) domain.Node {
	n.Locked = true
	return n
}

// scenarioNodes is folder 1 holding group 2, with group 3 next to it.
func scenarioNodes() []domain.Node {
	return []domain.Node{
		folder("1", "", 0),
		group("2", "1", 0),
		group("3", "", 1),
	}
}

func ids(nodes []*domain.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}
	return out
}

func findNode(nodes []domain.Node, id string) domain.Node {
	for _, n := range nodes {
		if n.ID == id {
			return n
		}
	}
	return domain.Node{}
}
