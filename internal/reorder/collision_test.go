package reorder

import (
	"math"
	"testing"

	"github.com/alexanderramin/tabgroups/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDetectCollision_SmallestContainingRectWins(t *testing.T) {
	targets := []DropTarget{
		{ID: "folder", Rect: domain.Rect{X: 0, Y: 0, Width: 300, Height: 200}},
		{ID: "child", Rect: domain.Rect{X: 20, Y: 40, Width: 280, Height: 32}},
		{ID: "below", Rect: domain.Rect{X: 0, Y: 200, Width: 300, Height: 32}},
	}

	id, ok := DetectCollision(domain.Point{X: 50, Y: 50}, targets)

	assert.True(t, ok)
	assert.Equal(t, "child", id)
}

func TestDetectCollision_EdgesAreInclusive(t *testing.T) {
	targets := []DropTarget{{ID: "a", Rect: domain.Rect{X: 10, Y: 10, Width: 10, Height: 10}}}

	for _, p := range []domain.Point{{X: 10, Y: 10}, {X: 20, Y: 20}, {X: 10, Y: 20}} {
		id, ok := DetectCollision(p, targets)
		assert.True(t, ok, "point %+v", p)
		assert.Equal(t, "a", id)
	}
}

func TestDetectCollision_TiesGoToFirst(t *testing.T) {
	r := domain.Rect{X: 0, Y: 0, Width: 10, Height: 10}
	targets := []DropTarget{{ID: "first", Rect: r}, {ID: "second", Rect: r}}

	id, _ := DetectCollision(domain.Point{X: 5, Y: 5}, targets)
	assert.Equal(t, "first", id)

	id, _ = DetectCollision(domain.Point{X: 50, Y: 50}, targets)
	assert.Equal(t, "first", id)
}

func TestDetectCollision_FallsBackToNearestCenter(t *testing.T) {
	targets := []DropTarget{
		{ID: "top", Rect: domain.Rect{X: 0, Y: 0, Width: 100, Height: 20}},
		{ID: "bottom", Rect: domain.Rect{X: 0, Y: 100, Width: 100, Height: 20}},
	}

	id, ok := DetectCollision(domain.Point{X: 50, Y: 95}, targets)
	assert.True(t, ok)
	assert.Equal(t, "bottom", id)

	id, ok = DetectCollision(domain.Point{X: 500, Y: 30}, targets)
	assert.True(t, ok)
	assert.Equal(t, "top", id)
}

func TestDetectCollision_IgnoresEmptyRects(t *testing.T) {
	targets := []DropTarget{
		{ID: "collapsed", Rect: domain.Rect{X: 0, Y: 0, Width: 0, Height: 20}},
		{ID: "inverted", Rect: domain.Rect{X: 0, Y: 0, Width: 10, Height: -5}},
		{ID: "real", Rect: domain.Rect{X: 0, Y: 100, Width: 10, Height: 10}},
	}

	id, ok := DetectCollision(domain.Point{X: 0, Y: 0}, targets)
	assert.True(t, ok)
	assert.Equal(t, "real", id)
}

func TestDetectCollision_NoCandidates(t *testing.T) {
	_, ok := DetectCollision(domain.Point{X: 1, Y: 1}, nil)
	assert.False(t, ok)

	_, ok = DetectCollision(domain.Point{X: 1, Y: 1}, []DropTarget{{ID: "x", Rect: domain.Rect{}}})
	assert.False(t, ok)
}

func TestDetectCollision_NonFinitePointer(t *testing.T) {
	targets := []DropTarget{{ID: "a", Rect: domain.Rect{X: 0, Y: 0, Width: 10, Height: 10}}}

	for _, p := range []domain.Point{{X: math.NaN(), Y: 1}, {X: 1, Y: math.Inf(1)}} {
		_, ok := DetectCollision(p, targets)
		assert.False(t, ok)
	}
}
