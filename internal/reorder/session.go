package reorder

import (
	"sync"

	"github.com/alexanderramin/tabgroups/internal/domain"
)

// DefaultActivationDistance is how far the pointer must travel from the
// press point before a drag shows drop hints.
const DefaultActivationDistance = 8.0

// Hint is the transient drop indicator shown while dragging. It lives only
// in the session and is never written to nodes.
type Hint struct {
	TargetID string
	Zone     domain.DropZone
}

// Active reports whether the hint points at a target.
func (h Hint) Active() bool {
	return h.TargetID != ""
}

// Intent is what the user asked for when the pointer was released.
type Intent struct {
	DraggedID string
	TargetID  string
	Zone      domain.DropZone
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithActivationDistance sets the travel needed before hints appear. Zero
// or less activates on the first move.
func WithActivationDistance(d float64) SessionOption {
	return func(s *Session) { s.activation = d }
}

// WithZoneThresholds replaces the default zone split.
func WithZoneThresholds(t ZoneThresholds) SessionOption {
	return func(s *Session) { s.zones = t }
}

// WithTransitionHook registers fn to be called after every state change.
func WithTransitionHook(fn func(from, to domain.DragState)) SessionOption {
	return func(s *Session) { s.onTransition = fn }
}

// Session tracks one drag gesture from press to commit:
//
//	idle -> dragging -> resolving -> committing -> idle
//	                                 committing -> rolled_back -> idle
//
// Cancel returns to idle from any state before committing.
type Session struct {
	mu sync.Mutex

	state      domain.DragState
	draggedID  string
	origin     domain.Point
	pointer    domain.Point
	activated  bool
	hint       Hint
	intent     Intent
	rolledBack bool

	activation   float64
	zones        ZoneThresholds
	onTransition func(from, to domain.DragState)
}

// NewSession returns an idle session.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		state:      domain.DragIdle,
		activation: DefaultActivationDistance,
		zones:      DefaultZoneThresholds(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state.
func (s *Session) State() domain.DragState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// DraggedID returns the node being dragged, or "" when idle.
func (s *Session) DraggedID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draggedID
}

// Hint returns the current drop hint.
func (s *Session) Hint() Hint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hint
}

// Intent returns the resolved intent. It is only meaningful in the
// resolving and committing states.
func (s *Session) Intent() Intent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.intent
}

// Activated reports whether the pointer has passed the activation distance.
func (s *Session) Activated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activated
}

// RolledBack reports whether the last commit of this session failed.
func (s *Session) RolledBack() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rolledBack
}

// Begin starts dragging draggedID from pointer p.
func (s *Session) Begin(draggedID string, p domain.Point) error {
	s.mu.Lock()
	if s.state != domain.DragIdle {
		s.mu.Unlock()
		return ErrSessionBusy
	}
	s.draggedID = draggedID
	s.origin, s.pointer = p, p
	s.activated = false
	s.hint = Hint{}
	s.intent = Intent{}
	s.rolledBack = false
	s.mu.Unlock()

	s.transition(domain.DragDragging)
	return nil
}

// Targets lays rows out with m and drops the dragged node from the result.
func (s *Session) Targets(rows []Row, m RowMetrics) []DropTarget {
	dragged := s.DraggedID()
	all := Layout(rows, m)
	out := all[:0]
	for _, t := range all {
		if t.ID != dragged {
			out = append(out, t)
		}
	}
	return out
}

// Move updates the pointer and recomputes the hint from targets. idx
// supplies the target nodes for zone classification. Outside the dragging
// state Move does nothing and returns an empty hint.
func (s *Session) Move(p domain.Point, targets []DropTarget, idx *Index) Hint {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != domain.DragDragging {
		return Hint{}
	}
	s.pointer = p
	if !s.activated {
		if s.activation > 0 && !(p.Finite() && s.origin.Distance(p) > s.activation) {
			return Hint{}
		}
		s.activated = true
	}

	s.hint = Hint{}
	id, ok := DetectCollision(p, targets)
	if !ok || id == s.draggedID {
		return s.hint
	}
	target, ok := idx.Get(id)
	if !ok {
		return s.hint
	}
	rect, _ := RectOf(targets, id)
	s.hint = Hint{TargetID: id, Zone: s.zones.Classify(&target, rect, p)}
	return s.hint
}

// Release ends pointer tracking. With an active hint the session moves to
// resolving and returns the intent; otherwise it returns to idle and
// reports false.
func (s *Session) Release() (Intent, bool) {
	s.mu.Lock()
	if s.state != domain.DragDragging {
		s.mu.Unlock()
		return Intent{}, false
	}
	if !s.activated || !s.hint.Active() || s.hint.TargetID == s.draggedID {
		s.mu.Unlock()
		s.reset()
		return Intent{}, false
	}
	s.intent = Intent{DraggedID: s.draggedID, TargetID: s.hint.TargetID, Zone: s.hint.Zone}
	intent := s.intent
	s.mu.Unlock()

	s.transition(domain.DragResolving)
	return intent, true
}

// Resolve puts the session straight into resolving with the given intent,
// for moves that do not come from a pointer (keyboard, command line).
func (s *Session) Resolve(in Intent) error {
	s.mu.Lock()
	if s.state != domain.DragIdle && s.state != domain.DragDragging {
		s.mu.Unlock()
		return ErrSessionBusy
	}
	s.draggedID = in.DraggedID
	s.intent = in
	s.hint = Hint{TargetID: in.TargetID, Zone: in.Zone}
	s.activated = true
	s.rolledBack = false
	s.mu.Unlock()

	if s.State() == domain.DragIdle {
		s.transition(domain.DragDragging)
	}
	s.transition(domain.DragResolving)
	return nil
}

// Cancel abandons the gesture. It fails only while a commit is running.
func (s *Session) Cancel() error {
	s.mu.Lock()
	state := s.state
	s.mu.Unlock()
	switch state {
	case domain.DragCommitting:
		return ErrCommitInProgress
	case domain.DragIdle:
		return nil
	}
	s.reset()
	return nil
}

// StartCommit moves a resolved session into committing.
func (s *Session) StartCommit() error {
	s.mu.Lock()
	if s.state != domain.DragResolving {
		s.mu.Unlock()
		return ErrNotResolving
	}
	s.mu.Unlock()
	s.transition(domain.DragCommitting)
	return nil
}

// Finish ends a commit. A non-nil err passes through rolled_back on the
// way back to idle.
func (s *Session) Finish(err error) {
	if s.State() != domain.DragCommitting {
		return
	}
	if err != nil {
		s.mu.Lock()
		s.rolledBack = true
		s.mu.Unlock()
		s.transition(domain.DragRolledBack)
	}
	s.reset()
}

func (s *Session) reset() {
	s.mu.Lock()
	s.draggedID = ""
	s.hint = Hint{}
	s.activated = false
	s.mu.Unlock()
	s.transition(domain.DragIdle)
}

func (s *Session) transition(to domain.DragState) {
	s.mu.Lock()
	from := s.state
	s.state = to
	hook := s.onTransition
	s.mu.Unlock()
	if hook != nil && from != to {
		hook(from, to)
	}
}
