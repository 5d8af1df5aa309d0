package reorder

import (
	"math"

	"github.com/alexanderramin/tabgroups/internal/domain"
)

// DropTarget is a node currently eligible to receive a drop, with its live
// on-screen rectangle.
type DropTarget struct {
	ID   string
	Rect domain.Rect
}

// DetectCollision picks the single target under the pointer.
//
// Containment wins: among rectangles containing p, the smallest one is
// chosen because nested containers overlap. When nothing contains p (fast
// motion can leave every rectangle for a frame), the target whose center is
// nearest to p is used instead. Ties go to the earlier target. Empty
// rectangles never match and a non-finite pointer matches nothing.
func DetectCollision(p domain.Point, targets []DropTarget) (string, bool) {
	if !p.Finite() {
		return "", false
	}

	best := -1
	bestArea := math.Inf(1)
	for i, t := range targets {
		if t.Rect.Empty() || !t.Rect.Contains(p) {
			continue
		}
		if a := t.Rect.Area(); a < bestArea {
			best, bestArea = i, a
		}
	}
	if best >= 0 {
		return targets[best].ID, true
	}

	bestDist := math.Inf(1)
	for i, t := range targets {
		if t.Rect.Empty() {
			continue
		}
		if d := p.Distance(t.Rect.Center()); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return "", false
	}
	return targets[best].ID, true
}
