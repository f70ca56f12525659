package seidel

// Triangulation of the individual y-monotone polygons, by the classic
// greedy corner-cutting sweep: walk the long chain from the top vertex to
// the bottom one, keeping a stack of the current reflex chain, and cut a
// triangle whenever the next vertex turns the top of the stack convex.

// For each monotone polygon: find its highest and lowest vertices (which
// split the boundary into the two chains), then hand it to the sweep.
// Chains can be recorded more than once, so nodes are marked as they are
// consumed and a chain that hits a marked node is a duplicate to skip.
func (s *Session) triangulateMonotonePolygons(nvert, nmonpoly int) int {
	for i := 0; i < nmonpoly; i++ {
		vcount := 1
		processed := false
		vfirst := s.mchain[s.mon[i]].vnum
		ymax := s.vert[vfirst].pt
		ymin := ymax
		posmax := s.mon[i]
		s.mchain[s.mon[i]].marked = true

		p := s.mchain[s.mon[i]].next
		var v int
		for v = s.mchain[p].vnum; v != vfirst; v = s.mchain[p].vnum {
			if s.mchain[p].marked {
				processed = true
				break
			}
			s.mchain[p].marked = true

			if s.greaterThan(s.vert[v].pt, ymax) {
				ymax = s.vert[v].pt
				posmax = p
			}
			if s.lessThan(s.vert[v].pt, ymin) {
				ymin = s.vert[v].pt
			}
			p = s.mchain[p].next
			vcount++
		}

		if processed {
			continue
		}

		if vcount == 3 {
			// Already a triangle.
			s.op = append(s.op, Triangle{
				s.mchain[p].vnum,
				s.mchain[s.mchain[p].next].vnum,
				s.mchain[s.mchain[p].prev].vnum,
			})
			continue
		}

		// Which side is the single-segment chain? If the vertex right after
		// the top is already the bottom, the left-hand side is one segment.
		v = s.mchain[s.mchain[posmax].next].vnum
		if s.equal(s.vert[v].pt, ymin) {
			s.triangulateSinglePolygon(nvert, posmax, sideLHS)
		} else {
			s.triangulateSinglePolygon(nvert, posmax, sideRHS)
		}
	}
	return len(s.op)
}

// The O(n) sweep for one monotone polygon, starting at its top vertex. side
// says which chain is the trivial single segment; the sweep walks the other
// one. rc is the reflex chain; ri indexes its top.
func (s *Session) triangulateSinglePolygon(nvert, posmax, side int) {
	rc := make([]int, s.chainIdx+2)
	ri := 0

	var v, vpos, endv int
	if side == sideRHS { // right chain is a single segment
		rc[0] = s.mchain[posmax].vnum
		tmp := s.mchain[posmax].next
		rc[1] = s.mchain[tmp].vnum
		ri = 1

		vpos = s.mchain[tmp].next
		v = s.mchain[vpos].vnum

		if endv = s.mchain[s.mchain[posmax].prev].vnum; endv == 0 {
			endv = nvert
		}
	} else { // left chain is a single segment
		tmp := s.mchain[posmax].next
		rc[0] = s.mchain[tmp].vnum
		tmp = s.mchain[tmp].next
		rc[1] = s.mchain[tmp].vnum
		ri = 1

		vpos = s.mchain[tmp].next
		v = s.mchain[vpos].vnum

		endv = s.mchain[posmax].vnum
	}

	for v != endv || ri > 1 {
		if ri > 0 {
			if cross(s.vert[v].pt, s.vert[rc[ri-1]].pt, s.vert[rc[ri]].pt) > 0 {
				// Convex corner: cut it off.
				s.op = append(s.op, Triangle{rc[ri-1], rc[ri], v})
				ri--
			} else {
				// Non-convex; v extends the reflex chain.
				ri++
				rc[ri] = v
				vpos = s.mchain[vpos].next
				v = s.mchain[vpos].vnum
			}
		} else {
			// Reflex chain empty; start it at v and advance.
			ri++
			rc[ri] = v
			vpos = s.mchain[vpos].next
			v = s.mchain[vpos].vnum
		}
	}

	// Bottom vertex reached; it closes the final triangle.
	s.op = append(s.op, Triangle{rc[ri-1], rc[ri], v})
}
