package seidel

import "math"

// The query DAG locates the trapezoid containing any point in expected
// O(log n). Y nodes split on a horizontal through a vertex, X nodes split on
// a segment, sinks hold trapezoids. Splits convert a sink in place into a Y
// or X node, so every existing reference into the DAG stays valid.

// Seed the map and the DAG from the first segment. We create this picture:
/*
	                 t4
	   ------------a---------------------
	                \
	        t1       \       t2
	                  \
	   ----------------b-----------------
	                 t3

	where a and b are the segment's upper and lower endpoints. The DAG gets
	two Y nodes (for a and b), one X node for the segment, and four sinks.
*/
func (s *Session) initQueryStructure(segnum int) int {
	sg := &s.seg[segnum]

	i1 := s.newNode() // root Y node at the upper endpoint
	s.qs[i1].kind = nodeY
	s.qs[i1].yval = s.maxPoint(sg.v0, sg.v1)
	root := i1

	i2 := s.newNode()
	s.qs[i1].right = i2
	s.qs[i2].kind = nodeSink
	s.qs[i2].parent = i1

	i3 := s.newNode()
	s.qs[i1].left = i3
	s.qs[i3].kind = nodeY
	s.qs[i3].yval = s.minPoint(sg.v0, sg.v1)
	s.qs[i3].parent = i1

	i4 := s.newNode()
	s.qs[i3].left = i4
	s.qs[i4].kind = nodeSink
	s.qs[i4].parent = i3

	i5 := s.newNode()
	s.qs[i3].right = i5
	s.qs[i5].kind = nodeX
	s.qs[i5].segnum = segnum
	s.qs[i5].parent = i3

	i6 := s.newNode()
	s.qs[i5].left = i6
	s.qs[i6].kind = nodeSink
	s.qs[i6].parent = i5

	i7 := s.newNode()
	s.qs[i5].right = i7
	s.qs[i7].kind = nodeSink
	s.qs[i7].parent = i5

	t1 := s.newTrap() // middle left
	t2 := s.newTrap() // middle right
	t3 := s.newTrap() // bottommost
	t4 := s.newTrap() // topmost

	s.tr[t1].hi = s.qs[i1].yval
	s.tr[t2].hi = s.qs[i1].yval
	s.tr[t4].lo = s.qs[i1].yval
	s.tr[t1].lo = s.qs[i3].yval
	s.tr[t2].lo = s.qs[i3].yval
	s.tr[t3].hi = s.qs[i3].yval
	s.tr[t4].hi = Point{X: math.Inf(1), Y: math.Inf(1)}
	s.tr[t3].lo = Point{X: math.Inf(-1), Y: math.Inf(-1)}

	s.tr[t1].rseg = segnum
	s.tr[t2].lseg = segnum
	s.tr[t1].u0 = t4
	s.tr[t2].u0 = t4
	s.tr[t1].d0 = t3
	s.tr[t2].d0 = t3
	s.tr[t4].d0 = t1
	s.tr[t3].u0 = t1
	s.tr[t4].d1 = t2
	s.tr[t3].u1 = t2

	s.tr[t1].sink = i6
	s.tr[t2].sink = i7
	s.tr[t3].sink = i4
	s.tr[t4].sink = i2

	s.qs[i2].trnum = t4
	s.qs[i4].trnum = t3
	s.qs[i6].trnum = t1
	s.qs[i7].trnum = t2

	sg.isInserted = true
	return root
}

// Report whether the given endpoint of segnum is already a vertex of the
// trapezoidation. The contour segment sharing that endpoint carries the
// answer on its inserted flag.
func (s *Session) inserted(segnum, whichPoint int) bool {
	if whichPoint == firstPoint {
		return s.seg[s.seg[segnum].prev].isInserted
	}
	return s.seg[s.seg[segnum].next].isInserted
}

// Find the trapezoid containing v by walking the DAG from node r. vo is the
// other endpoint of the segment v belongs to: when v is already a vertex of
// the map, it sits exactly on a Y node's horizontal or on an X node's
// segment, and the direction the segment leaves v decides which side the
// query should fall to.
func (s *Session) locateEndpoint(v, vo Point, r int) int {
	node := &s.qs[r]
	switch node.kind {
	case nodeSink:
		return node.trnum

	case nodeY:
		if s.greaterThan(v, node.yval) { // above
			return s.locateEndpoint(v, vo, node.right)
		}
		if s.equal(v, node.yval) {
			// v is on the horizontal; let the other endpoint break the tie.
			if s.greaterThan(vo, node.yval) {
				return s.locateEndpoint(v, vo, node.right)
			}
			return s.locateEndpoint(v, vo, node.left)
		}
		return s.locateEndpoint(v, vo, node.left) // below

	case nodeX:
		if s.equal(v, s.seg[node.segnum].v0) || s.equal(v, s.seg[node.segnum].v1) {
			if s.fpEqual(v.Y, vo.Y) { // horizontal segment
				if vo.X < v.X {
					return s.locateEndpoint(v, vo, node.left)
				}
				return s.locateEndpoint(v, vo, node.right)
			}
			if s.isLeftOf(node.segnum, vo) {
				return s.locateEndpoint(v, vo, node.left)
			}
			return s.locateEndpoint(v, vo, node.right)
		}
		if s.isLeftOf(node.segnum, v) {
			return s.locateEndpoint(v, vo, node.left)
		}
		return s.locateEndpoint(v, vo, node.right)
	}

	fatalf(KindInternal, "locate: query node %d has kind %d", r, node.kind)
	return 0
}

// Refresh a segment's cached location roots. Re-locating each endpoint and
// caching the sink reached means the next location starts deep in the DAG,
// which is what keeps the whole construction at expected O(n log* n).
func (s *Session) findNewRoots(segnum int) {
	sg := &s.seg[segnum]
	if sg.isInserted {
		return
	}
	sg.root0 = s.tr[s.locateEndpoint(sg.v0, sg.v1, sg.root0)].sink
	sg.root1 = s.tr[s.locateEndpoint(sg.v1, sg.v0, sg.root1)].sink
}

// Thread all segments into the map, in rounds. Round h inserts segments up
// to the N(n,h) threshold and then refreshes every remaining segment's
// cached roots; a final pass inserts the rest.
func (s *Session) constructTrapezoids(nseg int) {
	root := s.initQueryStructure(s.chooseSegment())
	s.root = root

	for i := 1; i <= nseg; i++ {
		s.seg[i].root0 = root
		s.seg[i].root1 = root
	}
	for h := 1; h <= mathLogstarN(nseg); h++ {
		for i := mathN(nseg, h-1) + 1; i <= mathN(nseg, h); i++ {
			s.addSegment(s.chooseSegment())
		}
		for i := 1; i <= nseg; i++ {
			s.findNewRoots(i)
		}
	}
	for i := mathN(nseg, mathLogstarN(nseg)) + 1; i <= nseg; i++ {
		s.addSegment(s.chooseSegment())
	}
}
