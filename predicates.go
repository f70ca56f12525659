package seidel

// Every left/right and above/below decision in the package routes through
// the predicates in this file, so that all of them agree about what "equal"
// means. The ordering is y-dominant with an x tiebreak: if two points share
// a y value within tolerance, the one further right is "higher". This
// simulates a slightly rotated coordinate system in which no two vertices
// ever share a horizontal, which is an assumption the trapezoid map leans on
// constantly.

// DefaultEpsilon is the comparison tolerance used unless WithEpsilon
// overrides it. Decrease it if input points are spaced very close together.
const DefaultEpsilon = 1e-7

func (s *Session) fpEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= s.eps
}

func (s *Session) equal(a, b Point) bool {
	return s.fpEqual(a.Y, b.Y) && s.fpEqual(a.X, b.X)
}

func (s *Session) greaterThan(a, b Point) bool {
	if a.Y > b.Y+s.eps {
		return true
	}
	if a.Y < b.Y-s.eps {
		return false
	}
	return a.X > b.X
}

func (s *Session) lessThan(a, b Point) bool {
	if a.Y < b.Y-s.eps {
		return true
	}
	if a.Y > b.Y+s.eps {
		return false
	}
	return a.X < b.X
}

func (s *Session) greaterThanEqualTo(a, b Point) bool {
	if a.Y > b.Y+s.eps {
		return true
	}
	if a.Y < b.Y-s.eps {
		return false
	}
	return a.X >= b.X
}

// The higher of two points under the sweep order.
func (s *Session) maxPoint(a, b Point) Point {
	if a.Y > b.Y+s.eps {
		return a
	}
	if s.fpEqual(a.Y, b.Y) {
		if a.X > b.X+s.eps {
			return a
		}
		return b
	}
	return b
}

// The lower of two points under the sweep order.
func (s *Session) minPoint(a, b Point) Point {
	if a.Y < b.Y-s.eps {
		return a
	}
	if s.fpEqual(a.Y, b.Y) {
		if a.X < b.X {
			return a
		}
		return b
	}
	return b
}

// Twice the signed area of triangle pqr. Positive when r lies left of the
// directed line p→q.
func cross(p, q, r Point) float64 {
	return (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X)
}

// Report whether v lies to the left of segment segnum, oriented from its
// lower endpoint to its upper endpoint. When v grazes an endpoint's
// horizontal, the test degenerates to an x comparison against that endpoint;
// a vertex exactly level with an endpoint counts as left only if it is
// strictly left of it.
func (s *Session) isLeftOf(segnum int, v Point) bool {
	sg := &s.seg[segnum]

	var area float64
	if s.greaterThan(sg.v1, sg.v0) { // segment going upwards
		if s.fpEqual(sg.v1.Y, v.Y) {
			if v.X < sg.v1.X {
				area = 1.0
			} else {
				area = -1.0
			}
		} else if s.fpEqual(sg.v0.Y, v.Y) {
			if v.X < sg.v0.X {
				area = 1.0
			} else {
				area = -1.0
			}
		} else {
			area = cross(sg.v0, sg.v1, v)
		}
	} else { // segment going downwards
		if s.fpEqual(sg.v1.Y, v.Y) {
			if v.X < sg.v1.X {
				area = 1.0
			} else {
				area = -1.0
			}
		} else if s.fpEqual(sg.v0.Y, v.Y) {
			if v.X < sg.v0.X {
				area = 1.0
			} else {
				area = -1.0
			}
		} else {
			area = cross(sg.v1, sg.v0, v)
		}
	}
	return area > 0.0
}
