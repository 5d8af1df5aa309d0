package reorder

import "errors"

// ErrRejected is matched by every structural rejection, so callers can tell
// "the move is not allowed" apart from infrastructure failures.
var ErrRejected = errors.New("move rejected")

// rejection is a sentinel that also matches ErrRejected.
type rejection struct{ msg string }

func (r *rejection) Error() string        { return r.msg }
func (r *rejection) Is(target error) bool { return target == ErrRejected }

// Structural rejections. None of them change state.
var (
	ErrNodeNotFound = &rejection{"node not found"}
	ErrDropOnSelf   = &rejection{"node dropped onto itself"}
	ErrLockedNode   = &rejection{"node is locked"}
	ErrNotAFolder   = &rejection{"target is not a folder"}
	ErrCycle        = &rejection{"folder cannot move into itself or its descendants"}
)

// Session errors.
var (
	ErrSessionBusy      = errors.New("drag session already active")
	ErrNotResolving     = errors.New("drag session has no resolved drop")
	ErrCommitInProgress = errors.New("move is committing and cannot be cancelled")
)
