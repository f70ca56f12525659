package seidel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderingPredicates(t *testing.T) {
	s := NewSession()

	t.Run("plain y ordering", func(t *testing.T) {
		assert.True(t, s.greaterThan(Point{0, 2}, Point{5, 1}))
		assert.False(t, s.greaterThan(Point{5, 1}, Point{0, 2}))
		assert.True(t, s.lessThan(Point{5, 1}, Point{0, 2}))
	})

	t.Run("x breaks y ties", func(t *testing.T) {
		// Equal y within tolerance falls back to x, simulating the rotated
		// coordinate system where no two points share a horizontal.
		assert.True(t, s.greaterThan(Point{3, 1}, Point{2, 1}))
		assert.False(t, s.greaterThan(Point{2, 1}, Point{3, 1}))
		assert.True(t, s.lessThan(Point{2, 1}, Point{3, 1}))
		assert.True(t, s.greaterThanEqualTo(Point{2, 1}, Point{2, 1}))
		assert.False(t, s.lessThan(Point{2, 1}, Point{2, 1}))
	})

	t.Run("equality is tolerance based", func(t *testing.T) {
		assert.True(t, s.equal(Point{1, 1}, Point{1 + 1e-9, 1 - 1e-9}))
		assert.False(t, s.equal(Point{1, 1}, Point{1.001, 1}))
	})

	t.Run("max and min", func(t *testing.T) {
		a := Point{0, 0}
		b := Point{1, 5}
		assert.Equal(t, b, s.maxPoint(a, b))
		assert.Equal(t, a, s.minPoint(a, b))

		// Horizontal pair: max is the righter one.
		c := Point{2, 0}
		assert.Equal(t, c, s.maxPoint(a, c))
		assert.Equal(t, a, s.minPoint(a, c))
	})
}

func TestCross(t *testing.T) {
	// r left of p->q gives a positive cross.
	assert.Positive(t, cross(Point{0, 0}, Point{0, 1}, Point{-1, 0.5}))
	assert.Negative(t, cross(Point{0, 0}, Point{0, 1}, Point{1, 0.5}))
	assert.Zero(t, cross(Point{0, 0}, Point{1, 1}, Point{2, 2}))
}

func TestIsLeftOf(t *testing.T) {
	s := NewSession()
	s.alloc(2)
	// A vertical segment through x=1, and a horizontal one at y=3.
	s.seg[1] = segment{v0: Point{1, 0}, v1: Point{1, 4}, next: 1, prev: 1}
	s.seg[2] = segment{v0: Point{0, 3}, v1: Point{2, 3}, next: 2, prev: 2}

	t.Run("generic positions", func(t *testing.T) {
		assert.True(t, s.isLeftOf(1, Point{0, 2}))
		assert.False(t, s.isLeftOf(1, Point{2, 2}))
	})

	t.Run("orientation does not matter", func(t *testing.T) {
		// Swapping the stored endpoints tests the same line.
		s.seg[1].v0, s.seg[1].v1 = s.seg[1].v1, s.seg[1].v0
		assert.True(t, s.isLeftOf(1, Point{0, 2}))
		assert.False(t, s.isLeftOf(1, Point{2, 2}))
		s.seg[1].v0, s.seg[1].v1 = s.seg[1].v1, s.seg[1].v0
	})

	t.Run("grazing an endpoint horizontal degrades to x comparison", func(t *testing.T) {
		// Level with the upper endpoint: left iff strictly left of it.
		assert.True(t, s.isLeftOf(1, Point{0.5, 4}))
		assert.False(t, s.isLeftOf(1, Point{1.5, 4}))
		// Level with the lower endpoint.
		assert.True(t, s.isLeftOf(1, Point{0.5, 0}))
		assert.False(t, s.isLeftOf(1, Point{1.5, 0}))
	})

	t.Run("horizontal segment", func(t *testing.T) {
		// For a horizontal segment every query is level with an endpoint,
		// so it all reduces to x comparisons against the endpoint stored as
		// v1, here (2, 3).
		assert.True(t, s.isLeftOf(2, Point{-1, 3}))
		assert.False(t, s.isLeftOf(2, Point{3, 3}))
	})
}
