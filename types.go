package seidel

// All of the algorithm's state lives in flat tables of the row types below,
// cross-referenced by integer indices. The tables are 1-based; index 0 (and
// any negative value) means "none". This is deliberate: the trapezoid map,
// the query DAG and the monotone chains are all cyclic graphs with weak
// back-edges, and plain indices into owned arenas express that without any
// ownership knots. It also keeps rows contiguous in memory, which matters
// once polygons get large.

type Point struct {
	X, Y float64
}

// A Triangle holds three 1-based indices into the flattened input vertex
// array, wound counterclockwise.
type Triangle [3]int

// One oriented edge of the input. prev/next link the edges of its contour
// into a closed cycle, so seg[i].v1 always equals seg[seg[i].next].v0.
type segment struct {
	v0, v1       Point
	isInserted   bool // threaded into the trapezoidation yet?
	root0, root1 int  // query DAG nodes to start locating v0/v1 from
	next         int
	prev         int
}

// A cell of the trapezoid map. hi and lo are the bounding horizontals,
// carried as full points: the y is the line, the x remembers the vertex that
// defined it so that ties can be broken lexicographically.
type trapezoid struct {
	lseg, rseg int // bounding segments, or 0 when open to infinity
	hi, lo     Point
	u0, u1     int // up to two neighbors above
	d0, d1     int // up to two neighbors below
	sink       int // the SINK node in the query DAG for this trapezoid
	// While a segment is being threaded, a trapezoid can briefly have three
	// upper neighbors. The third is parked in usave, and uside records which
	// side of the new segment it belongs on.
	usave, uside int
	valid        bool
}

// Query DAG node kinds.
const (
	nodeX    = iota + 1 // children are left/right of a segment
	nodeY               // children are below/above a horizontal
	nodeSink            // leaf holding a trapezoid
)

// One node of the query DAG. The node is a union over the three kinds: yval
// is set for Y nodes, segnum for X nodes, trnum for sinks. Sinks can gain
// extra parents when trapezoids merge; parent tracks the one used when the
// node is converted in place during a split.
type queryNode struct {
	kind        int
	segnum      int
	yval        Point
	trnum       int
	parent      int
	left, right int
}

// One link of a monotone polygon's circular vertex chain.
type chainNode struct {
	vnum   int // input vertex index
	next   int
	prev   int
	marked bool // consumed by the triangulator
}

// Per-input-vertex bookkeeping for the monotone decomposition. Up to four
// monotone polygons can meet at one vertex, so each vertex carries four
// chain slots: vnext[k] is the next input vertex along the k-th chain,
// vpos[k] the chain node holding this vertex in that chain.
type vertexHub struct {
	pt       Point
	vnext    [4]int
	vpos     [4]int
	nextfree int
}

// Sides, for merge passes and usave bookkeeping.
const (
	sideLeft = iota + 1
	sideRight
)

// Which endpoint of a segment, for insertion checks.
const (
	firstPoint = iota + 1
	lastPoint
)

// Direction a trapezoid was entered from during the monotone traversal.
const (
	fromUp = iota + 1
	fromDown
)

// Which side of a monotone polygon is the single (one-segment) chain.
const (
	sideLHS = iota + 1
	sideRHS
)
