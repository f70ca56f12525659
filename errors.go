package seidel

import "github.com/pkg/errors"

// Threading errors up and down the recursive trapezoidation and traversal
// code would add a ton of complexity for paths that can essentially never
// fail. Instead, internal code panics with an *Error, and the public API
// recovers and converts it back into an ordinary return value.

type Kind int

const (
	// KindCapacity means one of the fixed tables overflowed. Table and
	// Segments on the error say which one and how big the input was.
	KindCapacity Kind = iota + 1
	// KindBadInput means the input was rejected before any work began:
	// no contours, a contour with fewer than three vertices, and so on.
	KindBadInput
	// KindDegenerate means the contours themselves are malformed, e.g. two
	// consecutive vertices coincide within tolerance.
	KindDegenerate
	// KindInternal marks a "cannot happen" branch. Seeing one of these is a
	// bug in this package, not in the caller's input.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindCapacity:
		return "capacity exceeded"
	case KindBadInput:
		return "bad input"
	case KindDegenerate:
		return "degenerate input"
	case KindInternal:
		return "internal inconsistency"
	}
	return "unknown"
}

type Error struct {
	Kind Kind
	// Table names the overflowed arena for KindCapacity ("segment",
	// "query", "trapezoid", "chain").
	Table string
	// Segments is the total segment count at the time of a capacity
	// failure.
	Segments int

	err error
}

func (e *Error) Error() string { return e.err.Error() }
func (e *Error) Unwrap() error { return e.err }

// Panic with a typed error. Recovered at the public boundary.
func fatalf(kind Kind, format string, args ...interface{}) {
	panic(&Error{Kind: kind, err: errors.Errorf(format, args...)})
}

func fatalCapacity(table string, nseg int) {
	panic(&Error{
		Kind:     KindCapacity,
		Table:    table,
		Segments: nseg,
		err:      errors.Errorf("%s table overflow (%d segments)", table, nseg),
	})
}

// Convert a recovered panic value back into an error. Anything that isn't
// ours keeps propagating.
func recoverError(r interface{}) error {
	if r == nil {
		return nil
	}
	if err, ok := r.(*Error); ok {
		return err
	}
	panic(r)
}
