package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tabgroups/internal/db"
	"github.com/alexanderramin/tabgroups/internal/reorder"
	"github.com/alexanderramin/tabgroups/internal/repository"
)

type treeService struct {
	nodes    repository.NodeReader
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewTreeService(nodes repository.NodeReader, uow db.UnitOfWork, observers ...UseCaseObserver) TreeService {
	return &treeService{nodes: nodes, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *treeService) Forest(ctx context.Context) (reorder.Forest, error) {
	nodes, err := s.nodes.List(ctx)
	if err != nil {
		return reorder.Forest{}, fmt.Errorf("loading nodes: %w", err)
	}
	return reorder.BuildForest(nodes), nil
}

func (s *treeService) Diagnose(ctx context.Context) (reorder.Diagnosis, error) {
	nodes, err := s.nodes.List(ctx)
	if err != nil {
		return reorder.Diagnosis{}, fmt.Errorf("loading nodes: %w", err)
	}
	return reorder.Diagnose(nodes), nil
}

// Repair re-roots orphans, breaks parent cycles and renumbers every sibling
// group in a single transaction. Either every placement is written or none.
func (s *treeService) Repair(ctx context.Context) (result *RepairResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "repair", startedAt, fields, &err) }()

	result = &RepairResult{}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txNodes := repository.NewSQLiteNodeRepo(tx)

		nodes, err := txNodes.List(ctx)
		if err != nil {
			return err
		}
		result.Before = reorder.Diagnose(nodes)
		plan := reorder.RepairPlan(nodes)
		for _, p := range plan {
			if err := txNodes.UpdatePlacement(ctx, p); err != nil {
				return err
			}
		}
		result.Applied = plan
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("repairing tree: %w", err)
	}
	fields["orphans"] = len(result.Before.Orphans)
	fields["unreachable"] = len(result.Before.Unreachable)
	fields["updates"] = len(result.Applied)
	return result, nil
}
