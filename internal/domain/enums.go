package domain

import "fmt"

// DropZone is the classified intent of a drop relative to its target.
type DropZone string

const (
	// ZoneNone means no usable zone could be classified; a drop with no
	// zone appends to the end of the target's sibling group.
	ZoneNone   DropZone = ""
	ZoneBefore DropZone = "before"
	ZoneAfter  DropZone = "after"
	ZoneInside DropZone = "inside"
)

// ValidDropZones is the canonical set of zone names accepted from users.
var ValidDropZones = map[string]DropZone{
	"before": ZoneBefore,
	"after":  ZoneAfter,
	"inside": ZoneInside,
}

// ParseDropZone converts a user-supplied zone name.
func ParseDropZone(s string) (DropZone, error) {
	if z, ok := ValidDropZones[s]; ok {
		return z, nil
	}
	return ZoneNone, fmt.Errorf("invalid drop zone %q (want before|after|inside)", s)
}

func (z DropZone) String() string {
	if z == ZoneNone {
		return "none"
	}
	return string(z)
}

// DragState is the lifecycle state of a single drag gesture.
type DragState string

const (
	DragIdle       DragState = "idle"
	DragDragging   DragState = "dragging"
	DragResolving  DragState = "resolving"
	DragCommitting DragState = "committing"
	DragRolledBack DragState = "rolled_back"
)
