package seidel

import "math"

// Conversion of the trapezoid map into y-monotone polygons. Every interior
// trapezoid whose top and bottom vertices are not adjacent on the contour
// contributes a diagonal between them; splicing those diagonals into
// circular vertex chains carves the polygon into monotone pieces. The
// traversal walks the trapezoid adjacency graph depth-first, deciding the
// diagonal (and which side of it the current chain keeps) from the cusp
// configuration of each trapezoid.

// A trapezoid lies inside the polygon iff it is bounded on both sides and
// its right segment points upward, which for a counterclockwise outer
// contour (and clockwise holes) puts the interior on its left. Only
// triangular trapezoids answer true; one of them seeds the traversal.
func (s *Session) insideTriangle(t *trapezoid) bool {
	if !t.valid {
		return false
	}
	if t.lseg <= 0 || t.rseg <= 0 {
		return false
	}
	if (t.u0 <= 0 && t.u1 <= 0) || (t.d0 <= 0 && t.d1 <= 0) {
		return s.greaterThan(s.seg[t.rseg].v1, s.seg[t.rseg].v0)
	}
	return false
}

func dot(a, b Point) float64 {
	return a.X*b.X + a.Y*b.Y
}

func crossSine(a, b Point) float64 {
	return a.X*b.Y - b.X*a.Y
}

func length(a Point) float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y)
}

// A monotone stand-in for the CCW angle at vp0 from the diagonal (vp0,vp1)
// to the chain edge (vp0,vpnext): cosine when the sine is positive, folded
// into (-3..-1] when negative, so that the widest counterclockwise angle
// wins by plain numeric max.
func getAngle(vp0, vpnext, vp1 Point) float64 {
	v0 := Point{X: vpnext.X - vp0.X, Y: vpnext.Y - vp0.Y}
	v1 := Point{X: vp1.X - vp0.X, Y: vp1.Y - vp0.Y}

	if crossSine(v0, v1) >= 0 {
		return dot(v0, v1) / length(v0) / length(v1)
	}
	return -dot(v0, v1)/length(v0)/length(v1) - 2
}

// (v0, v1) is a new diagonal. Pick which of the up-to-four chains at each
// endpoint the diagonal splits: scanning rightwards from the diagonal, the
// first outgoing chain edge (the widest CCW angle) identifies the chain of
// interest. Returns positions ip (slot at v0) and iq (slot at v1).
func (s *Session) getVertexPositions(v0, v1 int) (ip, iq int) {
	vp0 := &s.vert[v0]
	vp1 := &s.vert[v1]

	angle := -4.0
	for i := 0; i < 4; i++ {
		if vp0.vnext[i] <= 0 {
			continue
		}
		if a := getAngle(vp0.pt, s.vert[vp0.vnext[i]].pt, vp1.pt); a > angle {
			angle = a
			ip = i
		}
	}

	angle = -4.0
	for i := 0; i < 4; i++ {
		if vp1.vnext[i] <= 0 {
			continue
		}
		if a := getAngle(vp1.pt, s.vert[vp1.vnext[i]].pt, vp0.pt); a > angle {
			angle = a
			iq = i
		}
	}
	return ip, iq
}

// Split the current monotone polygon mcur along the diagonal (v0, v1),
// given in counterclockwise order with respect to mcur. The two circular
// chains are spliced in O(1) and each endpoint's hub gains a slot for the
// new chain. Returns the id of the new polygon.
func (s *Session) makeNewMonotonePoly(mcur, v0, v1 int) int {
	mnew := s.newMon()

	vp0 := &s.vert[v0]
	vp1 := &s.vert[v1]

	ip, iq := s.getVertexPositions(v0, v1)

	p := vp0.vpos[ip]
	q := vp1.vpos[iq]

	// i and j are the chain nodes for v0 and v1 on the new list.
	i := s.newChainElement()
	j := s.newChainElement()

	s.mchain[i].vnum = v0
	s.mchain[j].vnum = v1

	s.mchain[i].next = s.mchain[p].next
	s.mchain[s.mchain[p].next].prev = i
	s.mchain[i].prev = j
	s.mchain[j].next = i
	s.mchain[j].prev = s.mchain[q].prev
	s.mchain[s.mchain[q].prev].next = j

	s.mchain[p].next = q
	s.mchain[q].prev = p

	nf0 := vp0.nextfree
	nf1 := vp1.nextfree
	if nf0 >= 4 || nf1 >= 4 {
		fatalf(KindInternal, "more than four chains meet at one vertex (%d, %d)", v0, v1)
	}

	vp0.vnext[ip] = v1

	vp0.vpos[nf0] = i
	vp0.vnext[nf0] = s.mchain[s.mchain[i].next].vnum
	vp1.vpos[nf1] = j
	vp1.vnext[nf1] = v0

	vp0.nextfree++
	vp1.nextfree++

	s.mon[mcur] = p
	s.mon[mnew] = i
	return mnew
}

// Decompose the trapezoidation into monotone polygons. Returns the number
// of chain slots allocated, which bounds (but can exceed) the number of
// distinct polygons; the triangulation pass dedups via marked flags.
func (s *Session) monotonateTrapezoids(n int) int {
	// Locate a triangular trapezoid inside the polygon to start from.
	trStart := 0
	for i := 1; i < s.trIdx; i++ {
		if s.insideTriangle(&s.tr[i]) {
			trStart = i
			break
		}
	}

	// Initially there is a single chain: the input contour itself.
	for i := 1; i <= n; i++ {
		s.mchain[i].prev = s.seg[i].prev
		s.mchain[i].next = s.seg[i].next
		s.mchain[i].vnum = i
		s.vert[i].pt = s.seg[i].v0
		s.vert[i].vnext[0] = s.seg[i].next
		s.vert[i].vpos[0] = i
		s.vert[i].nextfree = 1
	}

	s.chainIdx = n
	s.monIdx = 0
	s.mon[0] = 1 // position of any vertex in the first chain

	if s.tr[trStart].u0 > 0 {
		s.traversePolygon(0, trStart, s.tr[trStart].u0, fromUp)
	} else if s.tr[trStart].d0 > 0 {
		s.traversePolygon(0, trStart, s.tr[trStart].d0, fromDown)
	}

	return s.newMon()
}

// Visit every trapezoid reachable from trnum, splitting chains along the
// way. mcur is the monotone polygon the traversal entered this trapezoid
// with; from is the trapezoid it came from, dir the direction it arrived
// in. For every split the sub-traversals hand mcur to the side of the
// diagonal the entry neighbor lies on and the fresh polygon to the other.
func (s *Session) traversePolygon(mcur, trnum, from, dir int) {
	if trnum <= 0 || s.visited[trnum] {
		return
	}
	t := &s.tr[trnum]
	s.visited[trnum] = true

	// Useful orientation facts throughout: rseg runs upward, lseg runs
	// downward. The diagonal endpoints below are stated for dir == fromDown
	// and swapped when needed.

	switch {
	case t.u0 <= 0 && t.u1 <= 0:
		if t.d0 > 0 && t.d1 > 0 { // downward opening triangle
			v0 := s.tr[t.d1].lseg
			v1 := t.lseg
			if from == t.d1 {
				mnew := s.makeNewMonotonePoly(mcur, v1, v0)
				s.traversePolygon(mcur, t.d1, trnum, fromUp)
				s.traversePolygon(mnew, t.d0, trnum, fromUp)
			} else {
				mnew := s.makeNewMonotonePoly(mcur, v0, v1)
				s.traversePolygon(mcur, t.d0, trnum, fromUp)
				s.traversePolygon(mnew, t.d1, trnum, fromUp)
			}
		} else {
			// Nothing to split here; keep walking.
			s.traversePolygon(mcur, t.u0, trnum, fromDown)
			s.traversePolygon(mcur, t.u1, trnum, fromDown)
			s.traversePolygon(mcur, t.d0, trnum, fromUp)
			s.traversePolygon(mcur, t.d1, trnum, fromUp)
		}

	case t.d0 <= 0 && t.d1 <= 0:
		if t.u0 > 0 && t.u1 > 0 { // upward opening triangle
			v0 := t.rseg
			v1 := s.tr[t.u0].rseg
			if from == t.u1 {
				mnew := s.makeNewMonotonePoly(mcur, v1, v0)
				s.traversePolygon(mcur, t.u1, trnum, fromDown)
				s.traversePolygon(mnew, t.u0, trnum, fromDown)
			} else {
				mnew := s.makeNewMonotonePoly(mcur, v0, v1)
				s.traversePolygon(mcur, t.u0, trnum, fromDown)
				s.traversePolygon(mnew, t.u1, trnum, fromDown)
			}
		} else {
			s.traversePolygon(mcur, t.u0, trnum, fromDown)
			s.traversePolygon(mcur, t.u1, trnum, fromDown)
			s.traversePolygon(mcur, t.d0, trnum, fromUp)
			s.traversePolygon(mcur, t.d1, trnum, fromUp)
		}

	case t.u0 > 0 && t.u1 > 0:
		if t.d0 > 0 && t.d1 > 0 { // downward and upward cusps
			v0 := s.tr[t.d1].lseg
			v1 := s.tr[t.u0].rseg
			if (dir == fromDown && t.d1 == from) ||
				(dir == fromUp && t.u1 == from) {
				mnew := s.makeNewMonotonePoly(mcur, v1, v0)
				s.traversePolygon(mcur, t.u1, trnum, fromDown)
				s.traversePolygon(mcur, t.d1, trnum, fromUp)
				s.traversePolygon(mnew, t.u0, trnum, fromDown)
				s.traversePolygon(mnew, t.d0, trnum, fromUp)
			} else {
				mnew := s.makeNewMonotonePoly(mcur, v0, v1)
				s.traversePolygon(mcur, t.u0, trnum, fromDown)
				s.traversePolygon(mcur, t.d0, trnum, fromUp)
				s.traversePolygon(mnew, t.u1, trnum, fromDown)
				s.traversePolygon(mnew, t.d1, trnum, fromUp)
			}
		} else { // only downward cusp
			if s.equal(t.lo, s.seg[t.lseg].v1) {
				// Cusp touches the left segment's lower end.
				v0 := s.tr[t.u0].rseg
				v1 := s.seg[t.lseg].next
				if dir == fromUp && t.u0 == from {
					mnew := s.makeNewMonotonePoly(mcur, v1, v0)
					s.traversePolygon(mcur, t.u0, trnum, fromDown)
					s.traversePolygon(mnew, t.d0, trnum, fromUp)
					s.traversePolygon(mnew, t.u1, trnum, fromDown)
					s.traversePolygon(mnew, t.d1, trnum, fromUp)
				} else {
					mnew := s.makeNewMonotonePoly(mcur, v0, v1)
					s.traversePolygon(mcur, t.u1, trnum, fromDown)
					s.traversePolygon(mcur, t.d0, trnum, fromUp)
					s.traversePolygon(mcur, t.d1, trnum, fromUp)
					s.traversePolygon(mnew, t.u0, trnum, fromDown)
				}
			} else {
				// Cusp touches the right segment.
				v0 := t.rseg
				v1 := s.tr[t.u0].rseg
				if dir == fromUp && t.u1 == from {
					mnew := s.makeNewMonotonePoly(mcur, v1, v0)
					s.traversePolygon(mcur, t.u1, trnum, fromDown)
					s.traversePolygon(mnew, t.d1, trnum, fromUp)
					s.traversePolygon(mnew, t.d0, trnum, fromUp)
					s.traversePolygon(mnew, t.u0, trnum, fromDown)
				} else {
					mnew := s.makeNewMonotonePoly(mcur, v0, v1)
					s.traversePolygon(mcur, t.u0, trnum, fromDown)
					s.traversePolygon(mcur, t.d0, trnum, fromUp)
					s.traversePolygon(mcur, t.d1, trnum, fromUp)
					s.traversePolygon(mnew, t.u1, trnum, fromDown)
				}
			}
		}

	case t.u0 > 0 || t.u1 > 0: // exactly one neighbor above
		if t.d0 > 0 && t.d1 > 0 { // only upward cusp
			if s.equal(t.hi, s.seg[t.lseg].v0) {
				v0 := s.tr[t.d1].lseg
				v1 := t.lseg
				if !(dir == fromDown && t.d0 == from) {
					mnew := s.makeNewMonotonePoly(mcur, v1, v0)
					s.traversePolygon(mcur, t.u1, trnum, fromDown)
					s.traversePolygon(mcur, t.d1, trnum, fromUp)
					s.traversePolygon(mcur, t.u0, trnum, fromDown)
					s.traversePolygon(mnew, t.d0, trnum, fromUp)
				} else {
					mnew := s.makeNewMonotonePoly(mcur, v0, v1)
					s.traversePolygon(mcur, t.d0, trnum, fromUp)
					s.traversePolygon(mnew, t.u0, trnum, fromDown)
					s.traversePolygon(mnew, t.u1, trnum, fromDown)
					s.traversePolygon(mnew, t.d1, trnum, fromUp)
				}
			} else {
				v0 := s.tr[t.d1].lseg
				v1 := s.seg[t.rseg].next
				if dir == fromDown && t.d1 == from {
					mnew := s.makeNewMonotonePoly(mcur, v1, v0)
					s.traversePolygon(mcur, t.d1, trnum, fromUp)
					s.traversePolygon(mnew, t.u1, trnum, fromDown)
					s.traversePolygon(mnew, t.u0, trnum, fromDown)
					s.traversePolygon(mnew, t.d0, trnum, fromUp)
				} else {
					mnew := s.makeNewMonotonePoly(mcur, v0, v1)
					s.traversePolygon(mcur, t.u0, trnum, fromDown)
					s.traversePolygon(mcur, t.d0, trnum, fromUp)
					s.traversePolygon(mcur, t.u1, trnum, fromDown)
					s.traversePolygon(mnew, t.d1, trnum, fromUp)
				}
			}
		} else { // no cusp at all
			if s.equal(t.hi, s.seg[t.lseg].v0) && s.equal(t.lo, s.seg[t.rseg].v0) {
				v0 := t.rseg
				v1 := t.lseg
				if dir == fromUp {
					mnew := s.makeNewMonotonePoly(mcur, v1, v0)
					s.traversePolygon(mcur, t.u0, trnum, fromDown)
					s.traversePolygon(mcur, t.u1, trnum, fromDown)
					s.traversePolygon(mnew, t.d1, trnum, fromUp)
					s.traversePolygon(mnew, t.d0, trnum, fromUp)
				} else {
					mnew := s.makeNewMonotonePoly(mcur, v0, v1)
					s.traversePolygon(mcur, t.d1, trnum, fromUp)
					s.traversePolygon(mcur, t.d0, trnum, fromUp)
					s.traversePolygon(mnew, t.u0, trnum, fromDown)
					s.traversePolygon(mnew, t.u1, trnum, fromDown)
				}
			} else if s.equal(t.hi, s.seg[t.rseg].v1) && s.equal(t.lo, s.seg[t.lseg].v1) {
				v0 := s.seg[t.rseg].next
				v1 := s.seg[t.lseg].next
				if dir == fromUp {
					mnew := s.makeNewMonotonePoly(mcur, v1, v0)
					s.traversePolygon(mcur, t.u0, trnum, fromDown)
					s.traversePolygon(mcur, t.u1, trnum, fromDown)
					s.traversePolygon(mnew, t.d1, trnum, fromUp)
					s.traversePolygon(mnew, t.d0, trnum, fromUp)
				} else {
					mnew := s.makeNewMonotonePoly(mcur, v0, v1)
					s.traversePolygon(mcur, t.d1, trnum, fromUp)
					s.traversePolygon(mcur, t.d0, trnum, fromUp)
					s.traversePolygon(mnew, t.u0, trnum, fromDown)
					s.traversePolygon(mnew, t.u1, trnum, fromDown)
				}
			} else {
				// Top and bottom both sit mid-segment; nothing to split.
				s.traversePolygon(mcur, t.u0, trnum, fromDown)
				s.traversePolygon(mcur, t.d0, trnum, fromUp)
				s.traversePolygon(mcur, t.u1, trnum, fromDown)
				s.traversePolygon(mcur, t.d1, trnum, fromUp)
			}
		}
	}
}
