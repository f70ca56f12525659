package seidel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitQueryStructure(t *testing.T) {
	s := NewSession()
	s.alloc(1)
	s.seg[1] = segment{v0: Point{1, 2}, v1: Point{3, 4}, next: 1, prev: 1}

	root := s.initQueryStructure(1)
	require.Equal(t, 1, root)
	assert.True(t, s.seg[1].isInserted)

	// Root is a Y node at the segment's upper endpoint.
	rootNode := s.qs[root]
	require.Equal(t, nodeY, rootNode.kind)
	assert.Equal(t, Point{3, 4}, rootNode.yval)

	// Above it, the topmost trapezoid.
	topSink := s.qs[rootNode.right]
	require.Equal(t, nodeSink, topSink.kind)
	top := topSink.trnum
	assert.Equal(t, root, topSink.parent)

	// Below, the Y node at the lower endpoint.
	lower := s.qs[rootNode.left]
	require.Equal(t, nodeY, lower.kind)
	assert.Equal(t, Point{1, 2}, lower.yval)

	bottomSink := s.qs[lower.left]
	require.Equal(t, nodeSink, bottomSink.kind)
	bottom := bottomSink.trnum

	// Between the horizontals, the X node on the segment.
	xnode := s.qs[lower.right]
	require.Equal(t, nodeX, xnode.kind)
	assert.Equal(t, 1, xnode.segnum)

	left := s.qs[xnode.left].trnum
	right := s.qs[xnode.right].trnum

	// The four trapezoids tile the plane around the segment: the middle two
	// flank it, the outer two are unbounded.
	assert.Equal(t, 1, s.tr[left].rseg)
	assert.Equal(t, 1, s.tr[right].lseg)
	assert.Equal(t, top, s.tr[left].u0)
	assert.Equal(t, top, s.tr[right].u0)
	assert.Equal(t, bottom, s.tr[left].d0)
	assert.Equal(t, bottom, s.tr[right].d0)
	assert.Equal(t, left, s.tr[top].d0)
	assert.Equal(t, right, s.tr[top].d1)
	assert.Equal(t, left, s.tr[bottom].u0)
	assert.Equal(t, right, s.tr[bottom].u1)

	// Every trapezoid's sink points back at it.
	for i := 1; i < s.trIdx; i++ {
		assert.Equal(t, i, s.qs[s.tr[i].sink].trnum)
	}
}

// Run trapezoidation on a contour set and check the structural invariants
// that every later stage depends on.
func assertTrapezoidationInvariants(t *testing.T, contours [][]Point) {
	t.Helper()

	n := 0
	for _, c := range contours {
		n += len(c)
	}
	s := NewSession()
	s.alloc(n)
	s.ingest(contours)
	s.constructTrapezoids(n)

	for i := 1; i < s.trIdx; i++ {
		tp := s.tr[i]
		if !tp.valid {
			continue
		}

		// Neighbor symmetry: each upper neighbor must list us below,
		// exactly once, and vice versa.
		for _, u := range []int{tp.u0, tp.u1} {
			if u <= 0 {
				continue
			}
			matches := 0
			if s.tr[u].d0 == i {
				matches++
			}
			if s.tr[u].d1 == i {
				matches++
			}
			assert.Equal(t, 1, matches, "trapezoid %d not a lower neighbor of its upper neighbor %d", i, u)
		}
		for _, d := range []int{tp.d0, tp.d1} {
			if d <= 0 {
				continue
			}
			matches := 0
			if s.tr[d].u0 == i {
				matches++
			}
			if s.tr[d].u1 == i {
				matches++
			}
			assert.Equal(t, 1, matches, "trapezoid %d not an upper neighbor of its lower neighbor %d", i, d)
		}

		// The sink must still resolve to this trapezoid.
		require.Equal(t, nodeSink, s.qs[tp.sink].kind)
		assert.Equal(t, i, s.qs[tp.sink].trnum)

		// No leftover third-neighbor bookkeeping.
		assert.Zero(t, tp.usave, "trapezoid %d kept a parked neighbor", i)
	}

	// Every segment got threaded.
	for i := 1; i <= n; i++ {
		assert.True(t, s.seg[i].isInserted, "segment %d never inserted", i)
	}
}

func TestTrapezoidationInvariants(t *testing.T) {
	t.Run("square", func(t *testing.T) {
		assertTrapezoidationInvariants(t, [][]Point{
			{{0, 0}, {4, 0}, {4, 4}, {0, 4}},
		})
	})

	t.Run("L shape", func(t *testing.T) {
		assertTrapezoidationInvariants(t, [][]Point{
			{{0, 0}, {4, 0}, {4, 2}, {2, 2}, {2, 4}, {0, 4}},
		})
	})

	t.Run("square with hole", func(t *testing.T) {
		assertTrapezoidationInvariants(t, [][]Point{
			{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
			{{3, 3}, {3, 7}, {7, 7}, {7, 3}},
		})
	})

	t.Run("star fixture", func(t *testing.T) {
		assertTrapezoidationInvariants(t, [][]Point{loadFixture("star")})
	})

	t.Run("comb fixture", func(t *testing.T) {
		assertTrapezoidationInvariants(t, [][]Point{loadFixture("comb")})
	})
}

func TestLocateEndpointFindsInteriorPoints(t *testing.T) {
	square := [][]Point{{{0, 0}, {4, 0}, {4, 4}, {0, 4}}}
	s := NewSession()
	s.alloc(4)
	s.ingest(square)
	s.constructTrapezoids(4)

	// The center of the square must land in a trapezoid bounded on both
	// sides; a far away point must land in an unbounded one.
	center := s.tr[s.locateEndpoint(Point{2, 2}, Point{2, 2}, s.root)]
	assert.Positive(t, center.lseg)
	assert.Positive(t, center.rseg)

	outside := s.tr[s.locateEndpoint(Point{100, 2}, Point{100, 2}, s.root)]
	assert.True(t, outside.lseg <= 0 || outside.rseg <= 0)
}
