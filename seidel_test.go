package seidel

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Even-odd containment over a whole contour set: a point inside the outer
// contour and inside a hole has even parity, so this matches the filled
// region directly.
func regionContains(contours [][]Point, p Point) bool {
	crossings := 0
	for _, c := range contours {
		crossings += Polygon(c).crossingCount(p)
	}
	return crossings%2 == 1
}

func regionArea(contours [][]Point) float64 {
	area := 0.0
	for _, c := range contours {
		area += Polygon(c).SignedArea()
	}
	return area
}

func triangleContains(a, b, c, p Point, tol float64) bool {
	return cross(a, b, p) > tol && cross(b, c, p) > tol && cross(c, a, p) > tol
}

// The workhorse checker: count, index coverage, orientation, area
// conservation, and every reasonably fat triangle's centroid inside the
// region.
func assertValidTriangulation(t *testing.T, contours [][]Point, triangles []Triangle) *Session {
	t.Helper()

	s := NewSession()
	result, err := s.Triangulate(contours)
	require.NoError(t, err)
	require.Equal(t, triangles, result) // caller already ran; sanity that runs agree

	n := 0
	for _, c := range contours {
		n += len(c)
	}
	// n vertices with h holes triangulate into n + 2h - 2 triangles.
	require.Len(t, triangles, n+2*(len(contours)-1)-2)

	covered := make([]bool, n+1)
	areaSum := 0.0
	for _, tri := range triangles {
		for _, v := range tri {
			require.GreaterOrEqual(t, v, 1)
			require.LessOrEqual(t, v, n)
			covered[v] = true
		}

		area := s.TriangleArea(tri)
		assert.Greater(t, area, -1e-9, "triangle %v is wound clockwise", tri)
		areaSum += area

		if area > 1e-7 {
			a, b, c := s.Vertex(tri[0]), s.Vertex(tri[1]), s.Vertex(tri[2])
			centroid := Point{(a.X + b.X + c.X) / 3, (a.Y + b.Y + c.Y) / 3}
			assert.True(t, regionContains(contours, centroid),
				"triangle %v pokes outside the polygon", tri)
		}
	}
	for v := 1; v <= n; v++ {
		assert.True(t, covered[v], "vertex %d missing from the output", v)
	}

	assert.InDelta(t, regionArea(contours), areaSum, float64(n)*1e-6)
	return s
}

func triangulateOrDie(t *testing.T, contours [][]Point) []Triangle {
	t.Helper()
	triangles, err := Triangulate(contours)
	require.NoError(t, err)
	return triangles
}

func TestTriangulateSquare(t *testing.T) {
	contours := [][]Point{{{0, 0}, {4, 0}, {4, 4}, {0, 4}}}
	triangles := triangulateOrDie(t, contours)
	assert.Len(t, triangles, 2)
	assertValidTriangulation(t, contours, triangles)
}

func TestTriangulateTriangle(t *testing.T) {
	contours := [][]Point{{{0, 0}, {3, 0}, {1, 2}}}
	triangles := triangulateOrDie(t, contours)
	require.Len(t, triangles, 1)
	// The one triangle is the input, up to rotation.
	assert.ElementsMatch(t, []int{1, 2, 3}, triangles[0][:])
	assertValidTriangulation(t, contours, triangles)
}

func TestTriangulatePentagon(t *testing.T) {
	var contour []Point
	for i := 0; i < 5; i++ {
		angle := 2 * math.Pi * float64(i) / 5
		contour = append(contour, Point{math.Cos(angle), math.Sin(angle)})
	}
	contours := [][]Point{contour}
	triangles := triangulateOrDie(t, contours)
	assert.Len(t, triangles, 3)
	assertValidTriangulation(t, contours, triangles)
}

func TestTriangulateLShape(t *testing.T) {
	contours := [][]Point{{{0, 0}, {4, 0}, {4, 2}, {2, 2}, {2, 4}, {0, 4}}}
	triangles := triangulateOrDie(t, contours)
	assert.Len(t, triangles, 4)
	// The centroid check inside assertValidTriangulation is what catches a
	// triangle crossing the concave notch.
	assertValidTriangulation(t, contours, triangles)
}

func TestTriangulateSquareWithHole(t *testing.T) {
	contours := [][]Point{
		{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, // outer, CCW
		{{3, 3}, {3, 7}, {7, 7}, {7, 3}},     // hole, CW
	}
	triangles := triangulateOrDie(t, contours)
	assert.Len(t, triangles, 8)
	s := assertValidTriangulation(t, contours, triangles)

	total := 0.0
	for _, tri := range triangles {
		total += s.TriangleArea(tri)
	}
	assert.InDelta(t, 84.0, total, 1e-6)
}

func TestTriangulateThinSliver(t *testing.T) {
	contours := [][]Point{{{0, 0}, {1, 0}, {1, 0.0001}, {0, 0.0001}}}
	triangles := triangulateOrDie(t, contours)
	require.Len(t, triangles, 2)

	s := NewSession()
	_, err := s.Triangulate(contours)
	require.NoError(t, err)
	total := 0.0
	for _, tri := range triangles {
		area := s.TriangleArea(tri)
		assert.False(t, math.IsNaN(area))
		total += area
	}
	assert.InDelta(t, 0.0001, total, 1e-9)
}

func TestTriangulateFixtures(t *testing.T) {
	for _, name := range []string{"star", "comb"} {
		t.Run(name, func(t *testing.T) {
			contours := [][]Point{loadFixture(name)}
			triangles := triangulateOrDie(t, contours)
			assertValidTriangulation(t, contours, triangles)
		})
	}
}

func TestTriangulateBoundaryCases(t *testing.T) {
	t.Run("horizontal edges", func(t *testing.T) {
		// Plenty of horizontals: a plus sign.
		contours := [][]Point{{
			{1, 0}, {2, 0}, {2, 1}, {3, 1}, {3, 2}, {2, 2},
			{2, 3}, {1, 3}, {1, 2}, {0, 2}, {0, 1}, {1, 1},
		}}
		triangles := triangulateOrDie(t, contours)
		assertValidTriangulation(t, contours, triangles)
	})

	t.Run("collinear consecutive edges", func(t *testing.T) {
		// The top edge carries a redundant midpoint.
		contours := [][]Point{{{0, 0}, {4, 0}, {4, 4}, {2, 4}, {0, 4}}}
		triangles := triangulateOrDie(t, contours)
		assertValidTriangulation(t, contours, triangles)
	})

	t.Run("vertices sharing a y value", func(t *testing.T) {
		contours := [][]Point{{{0, 0}, {4, 0}, {5, 2}, {2, 3}, {-1, 2}}}
		triangles := triangulateOrDie(t, contours)
		assertValidTriangulation(t, contours, triangles)
	})
}

func TestTriangulateNoOverlap(t *testing.T) {
	contours := [][]Point{
		{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
		{{3, 3}, {3, 7}, {7, 7}, {7, 3}},
	}
	s := NewSession()
	triangles, err := s.Triangulate(contours)
	require.NoError(t, err)

	countContaining := func(p Point, tol float64) int {
		count := 0
		for _, tri := range triangles {
			if triangleContains(s.Vertex(tri[0]), s.Vertex(tri[1]), s.Vertex(tri[2]), p, tol) {
				count++
			}
		}
		return count
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		p := Point{rng.Float64() * 12, rng.Float64() * 12}
		inside := regionContains(contours, p)
		// Strictly contained in at most one triangle; if inside the region,
		// contained in at least one up to boundary slack.
		assert.LessOrEqual(t, countContaining(p, 1e-9), 1, "point %v", p)
		if inside {
			assert.GreaterOrEqual(t, countContaining(p, -1e-9), 1, "point %v", p)
		} else {
			assert.Zero(t, countContaining(p, 1e-9), "point %v", p)
		}
	}
}

func TestTriangulateDeterminism(t *testing.T) {
	contours := [][]Point{loadFixture("comb")}

	first, err := Triangulate(contours, WithSeed(99))
	require.NoError(t, err)
	second, err := Triangulate(contours, WithSeed(99))
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(first, second))
}

func TestContainsPoint(t *testing.T) {
	contours := [][]Point{
		{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
		{{3, 3}, {3, 7}, {7, 7}, {7, 3}},
	}
	s := NewSession()
	_, err := s.Triangulate(contours)
	require.NoError(t, err)

	assert.True(t, s.ContainsPoint(Point{1.5, 1.5}))
	assert.True(t, s.ContainsPoint(Point{8.5, 5.5}))
	assert.False(t, s.ContainsPoint(Point{5, 5}), "hole interior")
	assert.False(t, s.ContainsPoint(Point{-1, 5}))
	assert.False(t, s.ContainsPoint(Point{11, 5}))

	// Cross-check against the even-odd oracle on a grid.
	for x := 0.25; x < 10; x += 1.0 {
		for y := 0.25; y < 10; y += 1.0 {
			p := Point{x, y}
			assert.Equal(t, regionContains(contours, p), s.ContainsPoint(p), "point %v", p)
		}
	}
}

func TestTriangulateErrors(t *testing.T) {
	t.Run("no contours", func(t *testing.T) {
		_, err := Triangulate(nil)
		var serr *Error
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, KindBadInput, serr.Kind)
	})

	t.Run("contour too small", func(t *testing.T) {
		_, err := Triangulate([][]Point{{{0, 0}, {1, 1}}})
		var serr *Error
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, KindBadInput, serr.Kind)
	})

	t.Run("coincident consecutive vertices", func(t *testing.T) {
		_, err := Triangulate([][]Point{{{0, 0}, {1, 0}, {1, 0}, {0, 1}}})
		var serr *Error
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, KindDegenerate, serr.Kind)
	})

	t.Run("segment capacity", func(t *testing.T) {
		_, err := Triangulate(
			[][]Point{{{0, 0}, {4, 0}, {4, 4}, {0, 4}}},
			WithMaxSegments(3),
		)
		var serr *Error
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, KindCapacity, serr.Kind)
		assert.Equal(t, "segment", serr.Table)
		assert.Equal(t, 4, serr.Segments)
	})

	t.Run("no partial output", func(t *testing.T) {
		triangles, err := Triangulate([][]Point{{{0, 0}, {1, 0}, {1, 0}, {0, 1}}})
		require.Error(t, err)
		assert.Nil(t, triangles)
	})
}

func TestSessionReuse(t *testing.T) {
	s := NewSession()

	square := [][]Point{{{0, 0}, {4, 0}, {4, 4}, {0, 4}}}
	first, err := s.Triangulate(square)
	require.NoError(t, err)
	require.Len(t, first, 2)

	star := [][]Point{loadFixture("star")}
	second, err := s.Triangulate(star)
	require.NoError(t, err)
	require.Len(t, second, len(star[0])-2)

	// And back again: same session, same input, same answer.
	third, err := s.Triangulate(square)
	require.NoError(t, err)
	assert.Equal(t, first, third)
}
