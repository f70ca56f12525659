// Package seidel triangulates simple polygons with holes by randomized
// incremental trapezoidation.
//
// The input is one or more closed contours: the first wound
// counterclockwise, any holes after it wound clockwise, no vertex repeated.
// The output is a list of triangles over the input vertices; no points are
// added or moved. Construction runs in expected O(n log* n), and the search
// structure it builds answers point-in-polygon queries in expected O(log n)
// afterwards.
//
// Behavior is undefined if contours self-intersect, intersect each other,
// or touch at a shared vertex; none of that is validated.
package seidel

// Triangulate a set of contours in one shot with a throwaway session.
//
// Vertices are numbered 1..n in input order across all contours, and each
// output triangle carries three of those indices, counterclockwise. A valid
// input with n vertices and h holes yields exactly n + 2h - 2 triangles.
func Triangulate(contours [][]Point, opts ...Option) ([]Triangle, error) {
	return NewSession(opts...).Triangulate(contours)
}

// Triangulate runs the full pipeline: ingest the contours into the segment
// table, build the trapezoidation, decompose into monotone polygons, and
// sweep each one into triangles. The session's tables are rebuilt from
// scratch, so a session can be reused run after run.
func (s *Session) Triangulate(contours [][]Point) (result []Triangle, err error) {
	defer func() {
		if e := recoverError(recover()); e != nil {
			result = nil
			err = e
		}
	}()

	if len(contours) < 1 {
		fatalf(KindBadInput, "no contours given")
	}
	n := 0
	for i, contour := range contours {
		if len(contour) < 3 {
			fatalf(KindBadInput, "contour %d has %d vertices; need at least 3", i, len(contour))
		}
		n += len(contour)
	}
	if n > s.maxSegments {
		fatalCapacity("segment", n)
	}

	s.alloc(n)
	s.ingest(contours)
	s.constructTrapezoids(n)
	nmonpoly := s.monotonateTrapezoids(n)
	count := s.triangulateMonotonePolygons(n, nmonpoly)
	s.ran = true

	result = make([]Triangle, count)
	copy(result, s.op)
	return result, nil
}

// Vertex returns the 1-based input vertex i of the last run.
func (s *Session) Vertex(i int) Point {
	return s.seg[i].v0
}

// TrianglePoints resolves a triangle's indices back to coordinates.
func (s *Session) TrianglePoints(t Triangle) [3]Point {
	return [3]Point{s.Vertex(t[0]), s.Vertex(t[1]), s.Vertex(t[2])}
}

// ContainsPoint reports whether p lies inside the polygon of the last
// Triangulate run, using the query structure left behind by it. Points
// exactly on the boundary are not well defined. Returns false if the
// session has not run yet.
func (s *Session) ContainsPoint(p Point) bool {
	if !s.ran {
		return false
	}
	t := &s.tr[s.locateEndpoint(p, p, s.root)]
	if !t.valid || t.lseg <= 0 || t.rseg <= 0 {
		return false
	}
	// Bounded on both sides, and the right bounding segment runs upward:
	// the interior is on its left, which is where we are.
	return s.greaterThan(s.seg[t.rseg].v1, s.seg[t.rseg].v0)
}
