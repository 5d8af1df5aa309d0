package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tabgroups/internal/db"
	"github.com/alexanderramin/tabgroups/internal/domain"
	"github.com/alexanderramin/tabgroups/internal/reorder"
	"github.com/alexanderramin/tabgroups/internal/repository"
	"github.com/google/uuid"
)

type nodeService struct {
	nodes repository.NodeRepo
	uow   db.UnitOfWork
}

func NewNodeService(nodes repository.NodeRepo, uow db.UnitOfWork) NodeService {
	return &nodeService{nodes: nodes, uow: uow}
}

// Create stores a new node at the end of its parent's group. The parent,
// when given, must be an existing folder.
func (s *nodeService) Create(ctx context.Context, n *domain.Node) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	n.CreatedAt = now
	n.UpdatedAt = now

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txNodes := repository.NewSQLiteNodeRepo(tx)

		if n.ParentID != nil {
			parent, err := txNodes.GetByID(ctx, *n.ParentID)
			if err != nil {
				return fmt.Errorf("parent: %w", err)
			}
			if !parent.IsFolder {
				return fmt.Errorf("parent %s: %w", parent.ID, reorder.ErrNotAFolder)
			}
		}

		all, err := txNodes.List(ctx)
		if err != nil {
			return err
		}
		n.Position = 0
		for _, sib := range reorder.NewIndex(all).Children(n.ParentID) {
			if sib.Position >= n.Position {
				n.Position = sib.Position + 1
			}
		}
		return txNodes.Create(ctx, n)
	})
}

func (s *nodeService) SetLocked(ctx context.Context, id string, locked bool) error {
	if err := s.nodes.UpdateLocked(ctx, id, locked); err != nil {
		return fmt.Errorf("set locked: %w", err)
	}
	return nil
}

func (s *nodeService) GetByID(ctx context.Context, id string) (*domain.Node, error) {
	return s.nodes.GetByID(ctx, id)
}
