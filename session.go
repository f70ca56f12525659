package seidel

import (
	"math/rand"
	"time"
)

// DefaultMaxSegments bounds the total segment count a session accepts. The
// tables are not sized from the cap: each run sizes the query and trapezoid
// tables from its own segment count (8x and 4x respectively).
const DefaultMaxSegments = 4096

// A Session owns every table the algorithm touches: the segment table, the
// trapezoid table, the query DAG, and the ephemeral monotone-chain tables.
// Sessions are cheap; make one per goroutine. A single session must not be
// shared by concurrent calls, but it can be reused for run after run, and
// after a run it keeps the query DAG alive for ContainsPoint queries.
type Session struct {
	eps         float64
	seed        int64
	useEntropy  bool
	maxSegments int

	rng *rand.Rand

	// Trapezoidation tables. All 1-based; row 0 is a dead sentinel.
	seg   []segment
	tr    []trapezoid
	qs    []queryNode
	qIdx  int
	trIdx int

	// Random insertion order.
	permute   []int
	chooseIdx int

	// Monotone decomposition tables.
	mchain   []chainNode
	vert     []vertexHub
	mon      []int
	visited  []bool
	chainIdx int
	monIdx   int

	// Output accumulator.
	op []Triangle

	nseg int // segments in the current run
	root int // query DAG root, kept for ContainsPoint
	ran  bool
}

// An Option configures a Session.
type Option func(*Session)

// WithSeed fixes the RNG seed for the random insertion order. The default
// seed is 0, so runs are reproducible unless WithEntropy is given.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.seed = seed; s.useEntropy = false }
}

// WithEntropy seeds the insertion order from the wall clock. Randomized
// results are slightly safer against adversarial inputs, at the cost of
// reproducibility.
func WithEntropy() Option {
	return func(s *Session) { s.useEntropy = true }
}

// WithEpsilon overrides the comparison tolerance. Tune it to the coordinate
// scale of the input; the default suits coordinates of roughly unit
// magnitude.
func WithEpsilon(eps float64) Option {
	return func(s *Session) { s.eps = eps }
}

// WithMaxSegments lifts (or lowers) the segment cap. Inputs with more
// segments are rejected; table memory scales with the input's segment
// count, not with the cap.
func WithMaxSegments(n int) Option {
	return func(s *Session) { s.maxSegments = n }
}

func NewSession(opts ...Option) *Session {
	s := &Session{
		eps:         DefaultEpsilon,
		maxSegments: DefaultMaxSegments,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Size and clear every table for a run over n segments. The 8n/4n ratios
// come from the worst-case growth of the query DAG and trapezoid map during
// randomized incremental construction.
func (s *Session) alloc(n int) {
	s.nseg = n
	qsize := 8 * (n + 1)
	trsize := 4 * (n + 1)

	s.seg = make([]segment, n+1)
	s.qs = make([]queryNode, qsize)
	s.tr = make([]trapezoid, trsize)
	s.qIdx = 1
	s.trIdx = 1

	s.permute = make([]int, n+1)
	s.chooseIdx = 1

	s.mchain = make([]chainNode, trsize)
	s.vert = make([]vertexHub, n+1)
	s.mon = make([]int, n+1)
	s.visited = make([]bool, trsize)
	s.chainIdx = 0
	s.monIdx = 0

	s.op = s.op[:0]
	s.root = 0
	s.ran = false

	seed := s.seed
	if s.useEntropy {
		seed = time.Now().UnixNano()
	}
	s.rng = rand.New(rand.NewSource(seed))
}

// Allocate a query DAG node.
func (s *Session) newNode() int {
	if s.qIdx >= len(s.qs) {
		fatalCapacity("query", s.nseg)
	}
	i := s.qIdx
	s.qIdx++
	return i
}

// Allocate a trapezoid, valid and unbounded on both sides.
func (s *Session) newTrap() int {
	if s.trIdx >= len(s.tr) {
		fatalCapacity("trapezoid", s.nseg)
	}
	i := s.trIdx
	s.trIdx++
	s.tr[i] = trapezoid{valid: true}
	return i
}

// Allocate a monotone polygon slot.
func (s *Session) newMon() int {
	if s.monIdx+1 >= len(s.mon) {
		fatalCapacity("chain", s.nseg)
	}
	s.monIdx++
	return s.monIdx
}

// Allocate a chain node.
func (s *Session) newChainElement() int {
	if s.chainIdx+1 >= len(s.mchain) {
		fatalCapacity("chain", s.nseg)
	}
	s.chainIdx++
	return s.chainIdx
}
