package reorder

import "github.com/alexanderramin/tabgroups/internal/domain"

// RowMetrics describes how flattened rows are placed on screen. Units are
// whatever the caller measures pointers in (pixels, terminal cells).
type RowMetrics struct {
	Left      float64
	Top       float64
	Width     float64
	RowHeight float64
	Indent    float64 // horizontal offset per depth level
}

// DefaultRowMetrics matches a typical sidebar list.
func DefaultRowMetrics() RowMetrics {
	return RowMetrics{Width: 320, RowHeight: 32, Indent: 16}
}

// Layout stacks rows top to bottom and returns one drop target per row.
// Deeper rows are indented and lose that much width; a row indented past
// the full width gets an empty rectangle and can never be hit.
func Layout(rows []Row, m RowMetrics) []DropTarget {
	out := make([]DropTarget, 0, len(rows))
	for i, r := range rows {
		offset := float64(r.Depth) * m.Indent
		out = append(out, DropTarget{
			ID: r.Node.ID,
			Rect: domain.Rect{
				X:      m.Left + offset,
				Y:      m.Top + float64(i)*m.RowHeight,
				Width:  m.Width - offset,
				Height: m.RowHeight,
			},
		})
	}
	return out
}

// RectOf returns the rectangle laid out for id.
func RectOf(targets []DropTarget, id string) (domain.Rect, bool) {
	for _, t := range targets {
		if t.ID == id {
			return t.Rect, true
		}
	}
	return domain.Rect{}, false
}
