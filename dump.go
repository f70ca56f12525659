package seidel

import (
	"fmt"
	"io"

	"github.com/osuushi/seidel/dbg"
)

// DumpTrapezoids writes a human-readable listing of the trapezoid map left
// by the last run. Indices are rendered as stable pet names, which makes the
// neighbor links vastly easier to follow by eye than raw numbers.
func (s *Session) DumpTrapezoids(w io.Writer) {
	for i := 1; i < s.trIdx; i++ {
		t := s.tr[i]
		if !t.valid {
			continue
		}
		fmt.Fprintf(w, "%s { ⬆ %s %s, ⬇ %s %s } <L: %s, R: %s, hi: (%g, %g), lo: (%g, %g)>\n",
			dbg.ColorName("tr", i),
			dbg.ColorName("tr", t.u0), dbg.ColorName("tr", t.u1),
			dbg.ColorName("tr", t.d0), dbg.ColorName("tr", t.d1),
			dbg.ColorName("seg", t.lseg), dbg.ColorName("seg", t.rseg),
			t.hi.X, t.hi.Y, t.lo.X, t.lo.Y,
		)
	}
}
