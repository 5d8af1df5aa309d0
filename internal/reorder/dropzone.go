package reorder

import "github.com/alexanderramin/tabgroups/internal/domain"

// ZoneThresholds are the relative pointer positions that split a target
// rectangle into drop zones. All values are fractions of the rectangle.
type ZoneThresholds struct {
	// Split divides a non-folder into before (above) and after (at or below).
	Split float64
	// BandTop and BandBottom bound the folder's central "inside" band.
	BandTop    float64
	BandBottom float64
	// InsideX is the horizontal position from which a folder drop is
	// "inside" regardless of height, covering the icon and label area.
	InsideX float64
}

// DefaultZoneThresholds returns the stock split: halves for groups, thin
// 15% edges for folders, and inside from 45% of the width.
func DefaultZoneThresholds() ZoneThresholds {
	return ZoneThresholds{
		Split:      0.5,
		BandTop:    0.15,
		BandBottom: 0.85,
		InsideX:    0.45,
	}
}

// ClassifyDropZone classifies p over target using DefaultZoneThresholds.
func ClassifyDropZone(target *domain.Node, rect domain.Rect, p domain.Point) domain.DropZone {
	return DefaultZoneThresholds().Classify(target, rect, p)
}

// Classify returns before, after or (folders only) inside. Pointer
// coordinates outside the rectangle are clamped to its edges. Missing or
// malformed input yields ZoneNone.
func (t ZoneThresholds) Classify(target *domain.Node, rect domain.Rect, p domain.Point) domain.DropZone {
	if target == nil || rect.Empty() || !p.Finite() {
		return domain.ZoneNone
	}
	rx, ry := rect.Relative(p)

	if !target.IsFolder {
		if ry < t.Split {
			return domain.ZoneBefore
		}
		return domain.ZoneAfter
	}

	insideByVertical := ry >= t.BandTop && ry <= t.BandBottom
	insideByHorizontal := rx >= t.InsideX
	switch {
	case insideByVertical || insideByHorizontal:
		return domain.ZoneInside
	case ry < t.BandTop:
		return domain.ZoneBefore
	default:
		return domain.ZoneAfter
	}
}

// ZonePoint returns a pointer location inside rect that Classify maps to
// zone, for driving a drop without a real pointer (keyboard moves). Inside
// is only reachable on folders; for other targets it falls back to after.
func (t ZoneThresholds) ZonePoint(rect domain.Rect, isFolder bool, zone domain.DropZone) domain.Point {
	left := rect.X + rect.Width*t.InsideX/2
	switch {
	case zone == domain.ZoneBefore && isFolder:
		return domain.Point{X: left, Y: rect.Y + rect.Height*t.BandTop/2}
	case zone == domain.ZoneBefore:
		return domain.Point{X: left, Y: rect.Y + rect.Height*t.Split/2}
	case zone == domain.ZoneInside && isFolder:
		return rect.Center()
	case isFolder:
		return domain.Point{X: left, Y: rect.Y + rect.Height*(1+t.BandBottom)/2}
	default:
		return domain.Point{X: left, Y: rect.Y + rect.Height*(1+t.Split)/2}
	}
}
