package seidel

import "math"

// Contour ingest: flatten the input contours into the 1-based segment table,
// each contour a closed prev/next cycle, then pick the random order the
// segments will be threaded in.

// Build seg[1..n] from the contours. Vertex i of the flattened input becomes
// seg[i].v0; seg[i].v1 is the next vertex along the same contour.
func (s *Session) ingest(contours [][]Point) {
	i := 1
	for _, contour := range contours {
		first := i
		last := first + len(contour) - 1
		for j, p := range contour {
			sg := &s.seg[i]
			sg.v0 = p
			switch i {
			case last:
				sg.next = first
				sg.prev = i - 1
				s.seg[i-1].v1 = p
			case first:
				sg.next = i + 1
				sg.prev = last
				s.seg[last].v1 = p
			default:
				sg.next = i + 1
				sg.prev = i - 1
				s.seg[i-1].v1 = p
			}
			sg.isInserted = false

			// Coincident consecutive vertices would produce a zero-length
			// segment, which the predicates cannot orient. Reject now rather
			// than corrupt the trapezoid map later.
			if j > 0 && s.equal(sg.v0, s.seg[i-1].v0) {
				fatalf(KindDegenerate, "contour has coincident consecutive vertices near (%v, %v)", p.X, p.Y)
			}
			i++
		}
		if s.equal(s.seg[first].v0, s.seg[last].v0) {
			fatalf(KindDegenerate, "contour is closed explicitly; the last vertex must not repeat the first")
		}
	}

	s.generateRandomOrdering(i - 1)
}

// Knuth shuffle producing permute[1..n], consumed by chooseSegment.
func (s *Session) generateRandomOrdering(n int) {
	s.chooseIdx = 1

	st := make([]int, n+1)
	for i := 0; i <= n; i++ {
		st[i] = i
	}
	base := 0
	for i := 1; i <= n; i++ {
		m := s.rng.Intn(n+1-i) + 1
		s.permute[i] = st[base+m]
		if m != 1 {
			st[base+m] = st[base+1]
		}
		base++
	}
}

// The next segment in the random insertion order.
func (s *Session) chooseSegment() int {
	seg := s.permute[s.chooseIdx]
	s.chooseIdx++
	return seg
}

// Iterated logarithm of n, which is the number of location-refresh rounds
// the incremental construction runs.
func mathLogstarN(n int) int {
	i := 0
	v := float64(n)
	for v >= 1 {
		v = math.Log2(v)
		i++
	}
	return i - 1
}

// N(n,h) = ceil(n / log^(h) n), the segment count threshold for round h.
func mathN(n, h int) int {
	v := float64(n)
	for i := 0; i < h; i++ {
		v = math.Log2(v)
	}
	return int(math.Ceil(float64(n) / v))
}
