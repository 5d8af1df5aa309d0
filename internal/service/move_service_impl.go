package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/tabgroups/internal/domain"
	"github.com/alexanderramin/tabgroups/internal/reorder"
	"github.com/alexanderramin/tabgroups/internal/repository"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentWrites bounds the per-node write fan-out of one commit.
const maxConcurrentWrites = 8

type moveService struct {
	store    repository.PlacementStore
	observer UseCaseObserver

	mu         sync.Mutex
	nodes      []domain.Node
	committing bool
}

func NewMoveService(store repository.PlacementStore, observers ...UseCaseObserver) MoveService {
	return &moveService{
		store:    store,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *moveService) Load(ctx context.Context) (forest reorder.Forest, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "load", startedAt, fields, &err) }()

	s.mu.Lock()
	busy := s.committing
	s.mu.Unlock()
	if busy {
		return reorder.Forest{}, ErrBusy
	}

	nodes, err := s.store.List(ctx)
	if err != nil {
		return reorder.Forest{}, fmt.Errorf("loading nodes: %w", err)
	}
	forest = reorder.BuildForest(nodes)
	fields["nodes"] = len(nodes)
	if len(forest.Report.Orphans) > 0 {
		fields["orphans"] = forest.Report.Orphans
	}
	if len(forest.Report.Unreachable) > 0 {
		fields["unreachable"] = forest.Report.Unreachable
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.committing {
		return reorder.Forest{}, ErrBusy
	}
	s.nodes = nodes
	return forest, nil
}

func (s *moveService) Nodes() []domain.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CloneNodes(s.nodes)
}

func (s *moveService) Forest() reorder.Forest {
	return reorder.BuildForest(s.Nodes())
}

func (s *moveService) Index() *reorder.Index {
	s.mu.Lock()
	defer s.mu.Unlock()
	return reorder.NewIndex(s.nodes)
}

func (s *moveService) Committing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.committing
}

// BeginDrag starts a pointer gesture on nodeID. Locked and unknown nodes
// cannot be picked up.
func (s *moveService) BeginDrag(nodeID string, p domain.Point, opts ...reorder.SessionOption) (*reorder.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.committing {
		return nil, ErrBusy
	}
	n, ok := reorder.NewIndex(s.nodes).Get(nodeID)
	if !ok {
		return nil, fmt.Errorf("drag %s: %w", nodeID, reorder.ErrNodeNotFound)
	}
	if n.Locked {
		return nil, fmt.Errorf("drag %s: %w", nodeID, reorder.ErrLockedNode)
	}
	session := reorder.NewSession(opts...)
	if err := session.Begin(nodeID, p); err != nil {
		return nil, err
	}
	return session, nil
}

// Drop releases the session's pointer and commits the resulting move. A
// release without a target is reported as cancelled, not as an error.
func (s *moveService) Drop(ctx context.Context, session *reorder.Session) (result *MoveResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"node_id": session.DraggedID()}
	defer func() { observe(ctx, s.observer, "drop", startedAt, fields, &err) }()

	intent, ok := session.Release()
	if !ok {
		fields["cancelled"] = true
		return &MoveResult{Cancelled: true}, nil
	}
	fields["target_id"] = intent.TargetID
	fields["zone"] = intent.Zone.String()

	decision, err := reorder.ValidateMove(s.Index(), intent.DraggedID, intent.TargetID, intent.Zone)
	if err != nil {
		_ = session.Cancel()
		return nil, err
	}
	return s.commit(ctx, session, decision, fields)
}

// Move runs a geometry-free drop through the same validation and commit.
func (s *moveService) Move(ctx context.Context, req MoveRequest) (result *MoveResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"node_id":   req.NodeID,
		"target_id": req.TargetID,
		"zone":      req.Zone.String(),
	}
	defer func() { observe(ctx, s.observer, "move", startedAt, fields, &err) }()

	decision, err := reorder.ValidateMove(s.Index(), req.NodeID, req.TargetID, req.Zone)
	if err != nil {
		return nil, err
	}
	session := reorder.NewSession()
	if err := session.Resolve(reorder.Intent{DraggedID: req.NodeID, TargetID: req.TargetID, Zone: req.Zone}); err != nil {
		return nil, err
	}
	return s.commit(ctx, session, decision, fields)
}

// MoveToFolder appends nodeID to the end of folderID, or of the root level
// when folderID is nil.
func (s *moveService) MoveToFolder(ctx context.Context, nodeID string, folderID *string) (result *MoveResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"node_id":   nodeID,
		"folder_id": domain.DerefOr(folderID, "root"),
	}
	defer func() { observe(ctx, s.observer, "move_to_folder", startedAt, fields, &err) }()

	decision, err := reorder.ValidateRelocation(s.Index(), nodeID, folderID)
	if err != nil {
		return nil, err
	}
	session := reorder.NewSession()
	if err := session.Resolve(reorder.Intent{DraggedID: nodeID, TargetID: domain.DerefOr(folderID, ""), Zone: domain.ZoneInside}); err != nil {
		return nil, err
	}
	return s.commit(ctx, session, decision, fields)
}

// commit applies the decision optimistically, persists every changed
// placement concurrently and rolls the collection back if any write fails.
func (s *moveService) commit(ctx context.Context, session *reorder.Session, d reorder.Decision, fields map[string]any) (*MoveResult, error) {
	s.mu.Lock()
	if s.committing {
		s.mu.Unlock()
		_ = session.Cancel()
		return nil, ErrBusy
	}
	plan := reorder.AllocatePosition(reorder.NewIndex(s.nodes), d)
	fields["updates"] = len(plan.Updates)
	if plan.NoOp() {
		s.mu.Unlock()
		_ = session.Cancel()
		return &MoveResult{Plan: plan}, nil
	}
	if err := session.StartCommit(); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	snapshot := domain.CloneNodes(s.nodes)
	s.nodes = reorder.Apply(s.nodes, plan)
	s.committing = true
	s.mu.Unlock()

	written, err := s.persist(ctx, plan.Updates)

	s.mu.Lock()
	if err != nil {
		s.nodes = snapshot
	}
	s.committing = false
	s.mu.Unlock()

	if err != nil {
		fields["rolled_back"] = true
		if cerr := s.compensate(ctx, snapshot, written); cerr != nil {
			fields["compensation_error"] = cerr.Error()
		}
		session.Finish(err)
		return &MoveResult{Plan: plan, RolledBack: true}, fmt.Errorf("%w: %w", ErrPersistFailed, err)
	}
	session.Finish(nil)
	return &MoveResult{Plan: plan, Applied: true}, nil
}

// persist issues one write per placement and waits for all of them. It
// returns the placements that were stored, even on failure.
func (s *moveService) persist(ctx context.Context, updates []domain.Placement) ([]domain.Placement, error) {
	var (
		mu      sync.Mutex
		written []domain.Placement
		g       errgroup.Group
	)
	g.SetLimit(maxConcurrentWrites)
	for _, u := range updates {
		g.Go(func() error {
			if err := s.store.UpdatePlacement(ctx, u); err != nil {
				return fmt.Errorf("writing node %s: %w", u.ID, err)
			}
			mu.Lock()
			written = append(written, u)
			mu.Unlock()
			return nil
		})
	}
	err := g.Wait()
	return written, err
}

// compensate writes back the pre-move placement of every node whose write
// went through, so the store matches the restored collection. Failures are
// collected and returned; the next Load reconciles anything left over.
func (s *moveService) compensate(ctx context.Context, snapshot []domain.Node, written []domain.Placement) error {
	if len(written) == 0 {
		return nil
	}
	idx := reorder.NewIndex(snapshot)
	ctx = context.WithoutCancel(ctx)
	var errs []error
	for _, w := range written {
		prev, ok := idx.Get(w.ID)
		if !ok {
			continue
		}
		if err := s.store.UpdatePlacement(ctx, prev.Placement()); err != nil {
			errs = append(errs, fmt.Errorf("restoring node %s: %w", w.ID, err))
		}
	}
	return errors.Join(errs...)
}
