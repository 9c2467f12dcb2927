package spanvec

import (
	"fmt"
	"math"
)

// Infinite is the length reported for the implicit default region past the
// last explicit run.
const Infinite = math.MaxInt

// Rider is a read-only cursor over a [Vector].
//
// It caches the index and start of the run it last visited, so a sequence
// of At calls with non-decreasing positions costs O(runs crossed) in total.
// Seeking backward rescans from run 0.
//
// A Rider borrows its vector: the vector must outlive the rider, and no Set
// may run while the rider is being moved. A Set between two At calls is
// detected and the next At rescans from run 0.
type Rider[T any] struct {
	v *Vector[T]

	index    int // run the cursor is in; len(spans) past the end
	start    int // position where run index starts
	position int // last position passed to At
	length   int // positions left in the run from position on
	version  uint64
}

// NewRider returns a rider on v positioned at 0.
func NewRider[T any](v *Vector[T]) *Rider[T] {
	r := &Rider[T]{v: v, version: v.version}
	r.At(0)
	return r
}

// At moves the cursor to position. It reports whether position lies in an
// explicit run; false means position is in the default region, where
// CurrentValue is the default and Length is [Infinite].
func (r *Rider[T]) At(position int) bool {
	if r.version != r.v.version || position < r.start {
		r.index, r.start = 0, 0
		r.version = r.v.version
	}

	spans := r.v.spans
	index, start := r.index, r.start
	for index < len(spans) {
		if position < start+spans[index].Length {
			break
		}
		start += spans[index].Length
		index++
	}
	r.index, r.start, r.position = index, start, position

	if r.v.checks {
		r.check()
	}

	if index < len(spans) {
		r.length = spans[index].Length - (position - start)
		return true
	}
	r.length = Infinite
	return false
}

// check re-derives the cursor from scratch and fails if the cache disagrees.
func (r *Rider[T]) check() {
	index, start := 0, 0
	for index < len(r.v.spans) && r.position >= start+r.v.spans[index].Length {
		start += r.v.spans[index].Length
		index++
	}
	if index != r.index || start != r.start {
		failInvariant(&InvariantError{
			Op:     "at",
			Index:  r.index,
			Reason: fmt.Sprintf("cached run %d@%d, scan found %d@%d", r.index, r.start, index, start),
		})
	}
}

// CurrentSpanStart returns the start position of the run under the cursor.
// Past the last run it is the vector's extent.
func (r *Rider[T]) CurrentSpanStart() int {
	return r.start
}

// Length returns the number of positions from the cursor to the end of its
// run, or [Infinite] in the default region.
func (r *Rider[T]) Length() int {
	return r.length
}

// CurrentPosition returns the last position passed to At.
func (r *Rider[T]) CurrentPosition() int {
	return r.position
}

// CurrentValue returns the value at the cursor.
func (r *Rider[T]) CurrentValue() T {
	if r.index < len(r.v.spans) {
		return r.v.spans[r.index].Value
	}
	return r.v.def
}

// SpanIndex returns the index of the run under the cursor, or Len() of the
// vector in the default region.
func (r *Rider[T]) SpanIndex() int {
	return r.index
}
