package seidel

// Threading a segment through the trapezoid map. This is the heart of the
// whole construction, and nearly all of the subtlety lives in keeping the
// up-to-two (briefly three) neighbor links consistent while a chain of
// trapezoids is split top to bottom.

// Rewire the upper neighborhood of a freshly split pair: t keeps the left
// half, tn is the new right half. sv1 is the lower endpoint of the segment
// being threaded, which disambiguates which side of an upward cusp the
// segment descends on. The same rewiring applies whether the pair has one or
// two trapezoids below it.
func (s *Session) updateUpperNeighbors(t, tn int, sv1 Point) {
	if s.tr[t].u0 > 0 && s.tr[t].u1 > 0 {
		// Continuation of a chain from above.
		if s.tr[t].usave > 0 {
			// Three upper neighbors were parked here by the previous split;
			// hand the spare to whichever side it belongs on.
			if s.tr[t].uside == sideLeft {
				s.tr[tn].u0 = s.tr[t].u1
				s.tr[t].u1 = 0
				s.tr[tn].u1 = s.tr[t].usave

				s.tr[s.tr[t].u0].d0 = t
				s.tr[s.tr[tn].u0].d0 = tn
				s.tr[s.tr[tn].u1].d0 = tn
			} else { // the segment cuts through on the right
				s.tr[tn].u1 = 0
				s.tr[tn].u0 = s.tr[t].u1
				s.tr[t].u1 = s.tr[t].u0
				s.tr[t].u0 = s.tr[t].usave

				s.tr[s.tr[t].u0].d0 = t
				s.tr[s.tr[t].u1].d0 = t
				s.tr[s.tr[tn].u0].d0 = tn
			}
			s.tr[t].usave = 0
			s.tr[tn].usave = 0
		} else {
			// Simple case: the right upper neighbor moves over to tn.
			s.tr[tn].u0 = s.tr[t].u1
			s.tr[t].u1 = 0
			s.tr[tn].u1 = 0
			s.tr[s.tr[tn].u0].d0 = tn
		}
		return
	}

	// Single upper neighbor: either a fresh segment top, or an upward cusp.
	tmpU := s.tr[t].u0
	if td0, td1 := s.tr[tmpU].d0, s.tr[tmpU].d1; td0 > 0 && td1 > 0 {
		// Upward cusp. Which of its two flanks does the segment descend on?
		if rs := s.tr[td0].rseg; rs > 0 && !s.isLeftOf(rs, sv1) {
			s.tr[t].u0 = 0
			s.tr[t].u1 = 0
			s.tr[tn].u1 = 0
			s.tr[s.tr[tn].u0].d1 = tn
		} else { // cusp going leftwards
			s.tr[tn].u0 = 0
			s.tr[tn].u1 = 0
			s.tr[t].u1 = 0
			s.tr[s.tr[t].u0].d0 = t
		}
		return
	}

	// Fresh segment: the sole neighbor above now sees both halves.
	s.tr[s.tr[t].u0].d0 = t
	s.tr[s.tr[t].u0].d1 = tn
}

// Split the trapezoid whose sink the given endpoint locates to into an upper
// and a lower half at that endpoint's horizontal, converting the sink into a
// Y node. Returns the lower half.
func (s *Session) splitForEndpoint(v, vo Point, root, segnum int) int {
	tu := s.locateEndpoint(v, vo, root)
	tl := s.newTrap()
	s.tr[tl] = s.tr[tu]
	s.tr[tu].lo = v
	s.tr[tl].hi = v
	s.tr[tu].d0 = tl
	s.tr[tu].d1 = 0
	s.tr[tl].u0 = tu
	s.tr[tl].u1 = 0

	// The old lower neighbors now answer to the lower half.
	if d := s.tr[tl].d0; d > 0 && s.tr[d].u0 == tu {
		s.tr[d].u0 = tl
	}
	if d := s.tr[tl].d0; d > 0 && s.tr[d].u1 == tu {
		s.tr[d].u1 = tl
	}
	if d := s.tr[tl].d1; d > 0 && s.tr[d].u0 == tu {
		s.tr[d].u0 = tl
	}
	if d := s.tr[tl].d1; d > 0 && s.tr[d].u1 == tu {
		s.tr[d].u1 = tl
	}

	i1 := s.newNode() // upper half keeps the old trapezoid
	i2 := s.newNode() // lower half is new
	sk := s.tr[tu].sink

	s.qs[sk].kind = nodeY
	s.qs[sk].yval = v
	s.qs[sk].segnum = segnum
	s.qs[sk].left = i2
	s.qs[sk].right = i1

	s.qs[i1] = queryNode{kind: nodeSink, trnum: tu, parent: sk}
	s.qs[i2] = queryNode{kind: nodeSink, trnum: tl, parent: sk}

	s.tr[tu].sink = i1
	s.tr[tl].sink = i2
	return tl
}

// Thread segment segnum into the map. Locate (or create) the trapezoids
// containing its endpoints, then walk from the top one to the bottom one,
// splitting every trapezoid the segment crosses into a left and right half
// and converting its sink into an X node. A merge pass afterwards glues
// vertically adjacent halves that ended up with identical bounding segments.
func (s *Session) addSegment(segnum int) {
	sv := s.seg[segnum] // local copy; we may swap its endpoints

	isSwapped := false
	if s.greaterThan(sv.v1, sv.v0) { // get the higher vertex into v0
		sv.v0, sv.v1 = sv.v1, sv.v0
		sv.root0, sv.root1 = sv.root1, sv.root0
		isSwapped = true
	}

	var tfirst, tlast int
	var tfirstr, tlastr int
	tribot := false

	topPoint, botPoint := firstPoint, lastPoint
	if isSwapped {
		topPoint, botPoint = lastPoint, firstPoint
	}

	if !s.inserted(segnum, topPoint) {
		tfirst = s.splitForEndpoint(sv.v0, sv.v1, sv.root0, segnum)
	} else {
		// v0 is already a vertex of the map; start from the topmost
		// trapezoid the segment intersects.
		tfirst = s.locateEndpoint(sv.v0, sv.v1, sv.root0)
	}

	if !s.inserted(segnum, botPoint) {
		// The new lower half is below the segment; the walk stops at the
		// upper half.
		tl := s.splitForEndpoint(sv.v1, sv.v0, sv.root1, segnum)
		tlast = s.tr[tl].u0
	} else {
		tlast = s.locateEndpoint(sv.v1, sv.v0, sv.root1)
		tribot = true
	}

	// Walk from tfirst down to tlast, splitting as we go.
	t := tfirst
	for t > 0 && s.greaterThanEqualTo(s.tr[t].lo, s.tr[tlast].lo) {
		sk := s.tr[t].sink
		i1 := s.newNode() // left half sink
		i2 := s.newNode() // right half sink

		s.qs[sk].kind = nodeX
		s.qs[sk].segnum = segnum
		s.qs[sk].left = i1
		s.qs[sk].right = i2

		s.qs[i1] = queryNode{kind: nodeSink, trnum: t, parent: sk}

		tn := s.newTrap()
		s.qs[i2] = queryNode{kind: nodeSink, trnum: tn, parent: sk}

		if t == tfirst {
			tfirstr = tn
		}
		if s.equal(s.tr[t].lo, s.tr[tlast].lo) {
			tlastr = tn
		}

		s.tr[tn] = s.tr[t]
		s.tr[t].sink = i1
		s.tr[tn].sink = i2
		tSav, tnSav := t, tn

		switch {
		case s.tr[t].d0 <= 0 && s.tr[t].d1 <= 0:
			fatalf(KindInternal, "add segment: trapezoid %d has no lower neighbor mid-chain", t)

		case s.tr[t].d0 > 0 && s.tr[t].d1 <= 0:
			// One trapezoid below; t and tn both sit on top of it.
			s.updateUpperNeighbors(t, tn, sv.v1)

			if tribot && s.equal(s.tr[t].lo, s.tr[tlast].lo) {
				// The bottom of the chain forms a triangle against the
				// contour neighbor of this segment.
				var triseg int
				if isSwapped {
					triseg = s.seg[segnum].prev
				} else {
					triseg = s.seg[segnum].next
				}
				if triseg > 0 && s.isLeftOf(triseg, sv.v0) {
					// Cusp falls left to right.
					s.tr[s.tr[t].d0].u0 = t
					s.tr[tn].d0 = 0
					s.tr[tn].d1 = 0
				} else {
					// Cusp falls right to left.
					s.tr[s.tr[tn].d0].u1 = tn
					s.tr[t].d0 = 0
					s.tr[t].d1 = 0
				}
			} else {
				d0 := s.tr[t].d0
				if s.tr[d0].u0 > 0 && s.tr[d0].u1 > 0 {
					// The lower trapezoid is about to get three upper
					// neighbors; park the one being displaced.
					if s.tr[d0].u0 == t { // segment passes through the left
						s.tr[d0].usave = s.tr[d0].u1
						s.tr[d0].uside = sideLeft
					} else {
						s.tr[d0].usave = s.tr[d0].u0
						s.tr[d0].uside = sideRight
					}
				}
				s.tr[d0].u0 = t
				s.tr[d0].u1 = tn
			}
			t = s.tr[t].d0

		case s.tr[t].d0 <= 0 && s.tr[t].d1 > 0:
			// Mirror of the previous case through d1.
			s.updateUpperNeighbors(t, tn, sv.v1)

			if tribot && s.equal(s.tr[t].lo, s.tr[tlast].lo) {
				var triseg int
				if isSwapped {
					triseg = s.seg[segnum].prev
				} else {
					triseg = s.seg[segnum].next
				}
				if triseg > 0 && s.isLeftOf(triseg, sv.v0) {
					s.tr[s.tr[t].d1].u0 = t
					s.tr[tn].d0 = 0
					s.tr[tn].d1 = 0
				} else {
					s.tr[s.tr[tn].d1].u1 = tn
					s.tr[t].d0 = 0
					s.tr[t].d1 = 0
				}
			} else {
				d1 := s.tr[t].d1
				if s.tr[d1].u0 > 0 && s.tr[d1].u1 > 0 {
					if s.tr[d1].u0 == t {
						s.tr[d1].usave = s.tr[d1].u1
						s.tr[d1].uside = sideLeft
					} else {
						s.tr[d1].usave = s.tr[d1].u0
						s.tr[d1].uside = sideRight
					}
				}
				s.tr[d1].u0 = t
				s.tr[d1].u1 = tn
			}
			t = s.tr[t].d1

		default:
			// Two trapezoids below. Intersect the segment with the bottom
			// horizontal to find which one it continues into.
			var intoD0 bool
			if s.fpEqual(s.tr[t].lo.Y, sv.v0.Y) {
				intoD0 = s.tr[t].lo.X > sv.v0.X
			} else {
				yt := (s.tr[t].lo.Y - sv.v0.Y) / (sv.v1.Y - sv.v0.Y)
				atBottom := Point{
					X: sv.v0.X + yt*(sv.v1.X-sv.v0.X),
					Y: s.tr[t].lo.Y,
				}
				intoD0 = s.lessThan(atBottom, s.tr[t].lo)
			}

			s.updateUpperNeighbors(t, tn, sv.v1)

			var tnext int
			if tribot && s.equal(s.tr[t].lo, s.tr[tlast].lo) {
				// Only the lowest trapezoid can look like this, and only
				// when the lower endpoint was already in the map: the
				// segment ends exactly between d0 and d1.
				s.tr[s.tr[t].d0].u0 = t
				s.tr[s.tr[t].d0].u1 = 0
				s.tr[s.tr[t].d1].u0 = tn
				s.tr[s.tr[t].d1].u1 = 0

				s.tr[tn].d0 = s.tr[t].d1
				s.tr[t].d1 = 0
				s.tr[tn].d1 = 0

				tnext = s.tr[t].d1 // cleared above; ends the walk
			} else if intoD0 {
				s.tr[s.tr[t].d0].u0 = t
				s.tr[s.tr[t].d0].u1 = tn
				s.tr[s.tr[t].d1].u0 = tn
				s.tr[s.tr[t].d1].u1 = 0

				s.tr[t].d1 = 0

				tnext = s.tr[t].d0
			} else { // continues into d1
				s.tr[s.tr[t].d0].u0 = t
				s.tr[s.tr[t].d0].u1 = 0
				s.tr[s.tr[t].d1].u0 = t
				s.tr[s.tr[t].d1].u1 = tn

				s.tr[tn].d0 = s.tr[t].d1
				s.tr[tn].d1 = 0

				tnext = s.tr[t].d1
			}
			t = tnext
		}

		s.tr[tSav].rseg = segnum
		s.tr[tnSav].lseg = segnum
	}

	// Glue the freshly split halves back together wherever a vertical run of
	// them ended up bounded by the same pair of segments.
	s.mergeTrapezoids(segnum, tfirst, tlast, sideLeft)
	s.mergeTrapezoids(segnum, tfirstr, tlastr, sideRight)

	s.seg[segnum].isInserted = true
}

// Walk down one flank of the freshly threaded segment and merge vertically
// adjacent trapezoids that share both bounding segments. The lower one's
// sink parent is redirected at the upper one's sink, the neighbor links are
// stitched through, and the lower trapezoid is invalidated in place. This
// relies on each split half having exactly one DAG parent, which holds
// because they were all just created by this segment's insertion.
func (s *Session) mergeTrapezoids(segnum, tfirst, tlast, side int) {
	t := tfirst
	for t > 0 && s.greaterThanEqualTo(s.tr[t].lo, s.tr[tlast].lo) {
		var tnext int
		var cond bool
		if side == sideLeft {
			tnext = s.tr[t].d0
			cond = tnext > 0 && s.tr[tnext].rseg == segnum
			if !cond {
				tnext = s.tr[t].d1
				cond = tnext > 0 && s.tr[tnext].rseg == segnum
			}
		} else {
			tnext = s.tr[t].d0
			cond = tnext > 0 && s.tr[tnext].lseg == segnum
			if !cond {
				tnext = s.tr[t].d1
				cond = tnext > 0 && s.tr[tnext].lseg == segnum
			}
		}

		if !cond {
			t = tnext
			continue
		}
		if s.tr[t].lseg != s.tr[tnext].lseg || s.tr[t].rseg != s.tr[tnext].rseg {
			// Not the same vertical strip; step down and keep looking.
			t = tnext
			continue
		}

		// Redirect tnext's parent at t's sink.
		ptnext := s.qs[s.tr[tnext].sink].parent
		if s.qs[ptnext].left == s.tr[tnext].sink {
			s.qs[ptnext].left = s.tr[t].sink
		} else {
			s.qs[ptnext].right = s.tr[t].sink
		}

		// t absorbs tnext's lower neighborhood.
		s.tr[t].d0 = s.tr[tnext].d0
		if d0 := s.tr[t].d0; d0 > 0 {
			if s.tr[d0].u0 == tnext {
				s.tr[d0].u0 = t
			} else if s.tr[d0].u1 == tnext {
				s.tr[d0].u1 = t
			}
		}
		s.tr[t].d1 = s.tr[tnext].d1
		if d1 := s.tr[t].d1; d1 > 0 {
			if s.tr[d1].u0 == tnext {
				s.tr[d1].u0 = t
			} else if s.tr[d1].u1 == tnext {
				s.tr[d1].u1 = t
			}
		}

		s.tr[t].lo = s.tr[tnext].lo
		s.tr[tnext].valid = false
	}
}
