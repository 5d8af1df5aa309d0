package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/tabgroups/internal/domain"
	"github.com/google/uuid"
)

// Node options
type NodeOption func(*domain.Node)

func WithID(id string) NodeOption {
	return func(n *domain.Node) {
		n.ID = id
	}
}

func WithParentID(id string) NodeOption {
	return func(n *domain.Node) {
		n.ParentID = &id
	}
}

func WithPosition(p int) NodeOption {
	return func(n *domain.Node) {
		n.Position = p
	}
}

func AsFolder() NodeOption {
	return func(n *domain.Node) {
		n.IsFolder = true
	}
}

func Locked() NodeOption {
	return func(n *domain.Node) {
		n.Locked = true
	}
}

func NewTestNode(title string, opts ...NodeOption) *domain.Node {
	now := time.Now().UTC().Truncate(time.Second)
	n := &domain.Node{
		ID:        uuid.New().String(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

type nodeCreator interface {
	Create(ctx context.Context, n *domain.Node) error
}

// SeedNodes stores nodes in order and fails the test on the first error.
func SeedNodes(t *testing.T, repo nodeCreator, nodes ...*domain.Node) {
	t.Helper()
	for _, n := range nodes {
		if err := repo.Create(context.Background(), n); err != nil {
			t.Fatalf("seeding node %q: %v", n.Title, err)
		}
	}
}

// ScenarioNodes is the reference layout used across packages: folder "1"
// holding group "2", and group "3" after the folder at root level.
func ScenarioNodes() []*domain.Node {
	return []*domain.Node{
		NewTestNode("Research", WithID("1"), AsFolder(), WithPosition(0)),
		NewTestNode("Papers", WithID("2"), WithParentID("1"), WithPosition(0)),
		NewTestNode("Shopping", WithID("3"), WithPosition(1)),
	}
}

// NodesOf dereferences fixture nodes into a flat collection.
func NodesOf(nodes []*domain.Node) []domain.Node {
	out := make([]domain.Node, len(nodes))
	for i, n := range nodes {
		out[i] = *n
	}
	return out
}
