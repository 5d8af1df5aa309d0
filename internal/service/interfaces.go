package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/tabgroups/internal/domain"
	"github.com/alexanderramin/tabgroups/internal/reorder"
)

var (
	// ErrBusy is returned while a previous move is still being persisted.
	ErrBusy = errors.New("another move is still being saved")
	// ErrPersistFailed wraps any write failure of a move. The in-memory
	// collection has been restored when it is returned; retrying is safe.
	ErrPersistFailed = errors.New("saving the move failed; changes were rolled back")
)

// MoveRequest is a drop described without geometry.
type MoveRequest struct {
	NodeID   string
	TargetID string
	Zone     domain.DropZone
}

// MoveResult describes what a drop did.
type MoveResult struct {
	Plan reorder.MovePlan
	// Applied is true when writes were issued and all of them succeeded.
	Applied bool
	// Cancelled is true when the gesture ended without a drop target.
	Cancelled bool
	// RolledBack is true when a write failed and the move was undone.
	RolledBack bool
}

// MoveService owns the in-memory collection and applies moves to it
// optimistically before persisting them.
type MoveService interface {
	Load(ctx context.Context) (reorder.Forest, error)
	Nodes() []domain.Node
	Forest() reorder.Forest
	Index() *reorder.Index
	Committing() bool

	BeginDrag(nodeID string, p domain.Point, opts ...reorder.SessionOption) (*reorder.Session, error)
	Drop(ctx context.Context, s *reorder.Session) (*MoveResult, error)
	Move(ctx context.Context, req MoveRequest) (*MoveResult, error)
	MoveToFolder(ctx context.Context, nodeID string, folderID *string) (*MoveResult, error)
}

// RepairResult lists what a repair found and wrote.
type RepairResult struct {
	Before  reorder.Diagnosis
	Applied []domain.Placement
}

type TreeService interface {
	Forest(ctx context.Context) (reorder.Forest, error)
	Diagnose(ctx context.Context) (reorder.Diagnosis, error)
	Repair(ctx context.Context) (*RepairResult, error)
}

type NodeService interface {
	Create(ctx context.Context, n *domain.Node) error
	GetByID(ctx context.Context, id string) (*domain.Node, error)
	// SetLocked pins (true) or unpins a node. Pinned nodes refuse to be
	// dragged but still accept drops.
	SetLocked(ctx context.Context, id string, locked bool) error
}
