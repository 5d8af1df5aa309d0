package testutil

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/alexanderramin/tabgroups/internal/domain"
)

// NodeStore is the node persistence surface the services depend on.
type NodeStore interface {
	Create(ctx context.Context, n *domain.Node) error
	GetByID(ctx context.Context, id string) (*domain.Node, error)
	List(ctx context.Context) ([]domain.Node, error)
	UpdatePlacement(ctx context.Context, p domain.Placement) error
}

// FailingWriter wraps a NodeStore and makes UpdatePlacement fail for the
// listed node ids. All other calls pass through. It is safe for concurrent
// use, so it can sit under the mutator's parallel writes.
type FailingWriter struct {
	NodeStore
	Err error

	mu      sync.Mutex
	failIDs map[string]bool
	written []domain.Placement
	calls   atomic.Int32
}

// NewFailingWriter fails writes to any of failIDs with err.
func NewFailingWriter(store NodeStore, err error, failIDs ...string) *FailingWriter {
	w := &FailingWriter{NodeStore: store, Err: err, failIDs: map[string]bool{}}
	for _, id := range failIDs {
		w.failIDs[id] = true
	}
	return w
}

func (w *FailingWriter) UpdatePlacement(ctx context.Context, p domain.Placement) error {
	w.calls.Add(1)
	w.mu.Lock()
	fail := w.failIDs[p.ID]
	w.mu.Unlock()
	if fail {
		return w.Err
	}
	if err := w.NodeStore.UpdatePlacement(ctx, p); err != nil {
		return err
	}
	w.mu.Lock()
	w.written = append(w.written, p)
	w.mu.Unlock()
	return nil
}

// Heal stops all injected failures.
func (w *FailingWriter) Heal() {
	w.mu.Lock()
	w.failIDs = map[string]bool{}
	w.mu.Unlock()
}

// Calls returns how many writes were attempted.
func (w *FailingWriter) Calls() int {
	return int(w.calls.Load())
}

// Written returns the writes that reached the wrapped store, in order.
func (w *FailingWriter) Written() []domain.Placement {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]domain.Placement, len(w.written))
	copy(out, w.written)
	return out
}
