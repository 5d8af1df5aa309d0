package reorder

import (
	"fmt"

	"github.com/alexanderramin/tabgroups/internal/domain"
)

// Decision is an accepted move: where the dragged node goes and relative to
// which target.
type Decision struct {
	DraggedID string
	// TargetID is empty for relocations that have no sibling target.
	TargetID    string
	Zone        domain.DropZone
	NewParentID *string
}

// ValidateMove checks that draggedID may be dropped on targetID in zone.
// The rules are applied in order and the first failure is returned, wrapped
// so that errors.Is(err, ErrRejected) holds.
func ValidateMove(idx *Index, draggedID, targetID string, zone domain.DropZone) (Decision, error) {
	dragged, ok := idx.Get(draggedID)
	if !ok {
		return Decision{}, fmt.Errorf("dragged %s: %w", draggedID, ErrNodeNotFound)
	}
	target, ok := idx.Get(targetID)
	if !ok {
		return Decision{}, fmt.Errorf("target %s: %w", targetID, ErrNodeNotFound)
	}
	if dragged.Locked {
		return Decision{}, fmt.Errorf("move %s: %w", draggedID, ErrLockedNode)
	}
	if draggedID == targetID {
		return Decision{}, fmt.Errorf("move %s: %w", draggedID, ErrDropOnSelf)
	}

	var newParent *string
	switch zone {
	case domain.ZoneInside:
		if !target.IsFolder {
			return Decision{}, fmt.Errorf("move %s inside %s: %w", draggedID, targetID, ErrNotAFolder)
		}
		newParent = domain.StringPtr(target.ID)
	case domain.ZoneNone, domain.ZoneBefore, domain.ZoneAfter:
		newParent = domain.CopyStringPtr(target.ParentID)
	default:
		return Decision{}, fmt.Errorf("move %s: unknown zone %q", draggedID, string(zone))
	}

	if err := checkCycle(idx, dragged, newParent); err != nil {
		return Decision{}, err
	}

	return Decision{
		DraggedID:   draggedID,
		TargetID:    targetID,
		Zone:        zone,
		NewParentID: newParent,
	}, nil
}

// ValidateRelocation checks a move of draggedID to the end of folderID, or
// to the end of the root level when folderID is nil.
func ValidateRelocation(idx *Index, draggedID string, folderID *string) (Decision, error) {
	dragged, ok := idx.Get(draggedID)
	if !ok {
		return Decision{}, fmt.Errorf("dragged %s: %w", draggedID, ErrNodeNotFound)
	}
	if dragged.Locked {
		return Decision{}, fmt.Errorf("move %s: %w", draggedID, ErrLockedNode)
	}
	if folderID != nil {
		folder, ok := idx.Get(*folderID)
		if !ok {
			return Decision{}, fmt.Errorf("folder %s: %w", *folderID, ErrNodeNotFound)
		}
		if *folderID == draggedID {
			return Decision{}, fmt.Errorf("move %s: %w", draggedID, ErrDropOnSelf)
		}
		if !folder.IsFolder {
			return Decision{}, fmt.Errorf("move %s into %s: %w", draggedID, *folderID, ErrNotAFolder)
		}
	}
	newParent := domain.CopyStringPtr(folderID)
	if err := checkCycle(idx, dragged, newParent); err != nil {
		return Decision{}, err
	}
	return Decision{
		DraggedID:   draggedID,
		Zone:        domain.ZoneInside,
		NewParentID: newParent,
	}, nil
}

// checkCycle rejects a folder whose new parent is itself or one of its
// descendants. Non-folders have no descendants and are never checked.
func checkCycle(idx *Index, dragged domain.Node, newParent *string) error {
	if !dragged.IsFolder {
		return nil
	}
	found, cyclic := idx.DescendsFrom(newParent, dragged.ID)
	if found || cyclic {
		return fmt.Errorf("move %s under %s: %w", dragged.ID, domain.DerefOr(newParent, "root"), ErrCycle)
	}
	return nil
}
