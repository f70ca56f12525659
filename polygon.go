package seidel

// A Polygon is one closed contour, vertices in order, last implicitly
// joined to first. These helpers exist for callers preparing input (and for
// the tests, which use even-odd containment as an independent oracle for
// the trapezoidation-based queries).
type Polygon []Point

// Even-odd point-in-polygon by crossing count. Slower than ContainsPoint on
// a built session, but needs no preprocessing and no session.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.crossingCount(p)%2 == 1
}

// Count edges strictly right of p crossed by a rightward ray from p.
func (poly Polygon) crossingCount(p Point) int {
	count := 0
	n := len(poly)
	for i, a := range poly {
		b := poly[(i+1)%n]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if x > p.X {
				count++
			}
		}
	}
	return count
}

// SignedArea is positive for counterclockwise winding.
func (poly Polygon) SignedArea() float64 {
	area := 0.0
	n := len(poly)
	for i, a := range poly {
		b := poly[(i+1)%n]
		area += a.X*b.Y - b.X*a.Y
	}
	return area / 2
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

// Reverse returns the contour with opposite winding.
func (poly Polygon) Reverse() Polygon {
	out := make(Polygon, len(poly))
	for i, p := range poly {
		out[len(poly)-1-i] = p
	}
	return out
}

// TriangleArea is the signed area of triangle t of the session's last run;
// positive when counterclockwise.
func (s *Session) TriangleArea(t Triangle) float64 {
	return cross(s.Vertex(t[0]), s.Vertex(t[1]), s.Vertex(t[2])) / 2
}
