package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/tabgroups/internal/domain"
)

// ErrNotFound is returned when a row addressed by id does not exist.
var ErrNotFound = errors.New("not found")

// NodeReader reads the whole flat collection.
type NodeReader interface {
	List(ctx context.Context) ([]domain.Node, error)
}

// NodeWriter persists one node's placement.
type NodeWriter interface {
	UpdatePlacement(ctx context.Context, p domain.Placement) error
}

type NodeRepo interface {
	NodeReader
	NodeWriter
	Create(ctx context.Context, n *domain.Node) error
	GetByID(ctx context.Context, id string) (*domain.Node, error)
	UpdateLocked(ctx context.Context, id string, locked bool) error
}

// PlacementStore is what the move mutator needs: read everything, write
// one placement at a time.
type PlacementStore interface {
	NodeReader
	NodeWriter
}
