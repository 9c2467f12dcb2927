package spanvec

import (
	"iter"
	"slices"
	"strings"
)

// Vector is a run-length encoded sequence of values over positions 0..∞.
//
// The explicit runs are contiguous and ordered: run i starts at the sum of
// the lengths of runs 0..i-1. Positions past the last run implicitly hold
// the default value. No two adjacent runs hold equal values.
//
// A Vector is owned by a single layout pass and is not safe for concurrent
// mutation.
type Vector[T any] struct {
	spans  []Span[T]
	def    T
	equal  func(a, b T) bool
	checks bool

	// version changes on every mutation so riders can drop a stale cursor.
	version uint64
}

// New creates an empty vector whose unset positions read as def.
// Values are compared with ==.
func New[T comparable](def T, opts ...Option) *Vector[T] {
	return NewFunc(def, func(a, b T) bool { return a == b }, opts...)
}

// NewFunc creates an empty vector using equal to decide whether two
// values may share a run. equal must be a value equality: reflexive,
// symmetric and transitive.
func NewFunc[T any](def T, equal func(a, b T) bool, opts ...Option) *Vector[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	v := &Vector[T]{
		def:    def,
		equal:  equal,
		checks: o.checks,
	}
	if o.capacity > 0 {
		v.spans = make([]Span[T], 0, o.capacity)
	}
	return v
}

// Len returns the number of explicit runs (not the covered length).
func (v *Vector[T]) Len() int {
	return len(v.spans)
}

// Span returns the run at run index i.
func (v *Vector[T]) Span(i int) Span[T] {
	return v.spans[i]
}

// Default returns the value of positions not covered by an explicit run.
func (v *Vector[T]) Default() T {
	return v.def
}

// Extent returns the number of positions covered by explicit runs.
func (v *Vector[T]) Extent() int {
	n := 0
	for _, s := range v.spans {
		n += s.Length
	}
	return n
}

// All iterates over the explicit runs in order, yielding each run's start
// position along with the run.
func (v *Vector[T]) All() iter.Seq2[int, Span[T]] {
	return func(yield func(int, Span[T]) bool) {
		start := 0
		for _, s := range v.spans {
			if !yield(start, s) {
				return
			}
			start += s.Length
		}
	}
}

// Reset drops all runs. The default value and options are kept.
func (v *Vector[T]) Reset() {
	clear(v.spans)
	v.spans = v.spans[:0]
	v.version++
}

// Set overwrites positions [first, first+length) with value.
//
// The written range absorbs equal-valued neighbours on both sides, and
// runs cut by the range boundaries are split, so the encoding stays
// maximal. If the vector ends before first, the gap is padded with the
// default value. A non-positive length is a no-op.
func (v *Vector[T]) Set(first, length int, value T) {
	if length <= 0 {
		return
	}
	v.version++
	v.set(first, length, value)
	if v.checks {
		if err := v.validate("set"); err != nil {
			failInvariant(err)
		}
	}
}

func (v *Vector[T]) set(first, length int, value T) {
	n := len(v.spans)

	// fs is the first run touched by the write, fc its start position.
	fs, fc := 0, 0
	for fs < n && fc+v.spans[fs].Length <= first {
		fc += v.spans[fs].Length
		fs++
	}

	if fs >= n {
		// The runs end at or before first: pad, then extend or append.
		if fc < first {
			v.appendRun(v.def, first-fc)
		}
		v.appendRun(value, length)
		return
	}

	// ls is the first run not entirely covered by the write, lc its start.
	ls, lc := fs, fc
	for ls < n && lc+v.spans[ls].Length <= first+length {
		lc += v.spans[ls].Length
		ls++
	}

	// Expand backward over an equal-valued run.
	if first == fc {
		// Run fs is replaced from its start; look at the run before it.
		if fs > 0 && v.equal(v.spans[fs-1].Value, value) {
			fs--
			fc -= v.spans[fs].Length
			first = fc
			length += v.spans[fs].Length
		}
	} else if v.equal(v.spans[fs].Value, value) {
		// Run fs is cut by the write and already holds value; keep its head.
		length = first + length - fc
		first = fc
	}

	// Expand forward over an equal-valued run.
	if ls < n && v.equal(v.spans[ls].Value, value) {
		length = lc + v.spans[ls].Length - first
		lc += v.spans[ls].Length
		ls++
	}

	if ls >= n {
		// Nothing of the old list survives past the write.
		if fc < first {
			head := v.spans[fs].Value
			v.resize(fs + 2)
			v.spans[fs] = Span[T]{Value: head, Length: first - fc}
			v.spans[fs+1] = Span[T]{Value: value, Length: length}
		} else {
			v.resize(fs + 1)
			v.spans[fs] = Span[T]{Value: value, Length: length}
		}
		return
	}

	// The remainder of run ls beyond the write, if the write cuts into it.
	var trailingValue T
	trailingLength := 0
	if first+length > lc {
		trailingValue = v.spans[ls].Value
		trailingLength = lc + v.spans[ls].Length - (first + length)
	}

	// Net change in run count: the new run, plus a split head, minus the
	// runs the write consumes. A split tail reuses the slot of run ls.
	delta := 1 - (ls - fs)
	if first > fc {
		delta++
	}
	switch {
	case delta < 0:
		v.delete(fs+1, -delta)
	case delta > 0:
		v.insert(fs+1, delta)
	}

	if fc < first {
		v.spans[fs] = Span[T]{Value: v.spans[fs].Value, Length: first - fc}
		fs++
	}

	v.spans[fs] = Span[T]{Value: value, Length: length}
	fs++

	if lc < first+length {
		v.spans[fs] = Span[T]{Value: trailingValue, Length: trailingLength}
	}
}

// appendRun adds a run at the end, extending the last run when it already
// holds value.
func (v *Vector[T]) appendRun(value T, length int) {
	if last := len(v.spans) - 1; last >= 0 && v.equal(v.spans[last].Value, value) {
		v.spans[last] = Span[T]{Value: v.spans[last].Value, Length: v.spans[last].Length + length}
		return
	}
	v.spans = append(v.spans, Span[T]{Value: value, Length: length})
}

// resize sets the number of runs to n, zeroing dropped slots.
func (v *Vector[T]) resize(n int) {
	switch {
	case n < len(v.spans):
		clear(v.spans[n:])
		v.spans = v.spans[:n]
	case n > len(v.spans):
		v.spans = slices.Grow(v.spans, n-len(v.spans))
		v.spans = v.spans[:n]
	}
}

// insert opens count zero slots at index.
func (v *Vector[T]) insert(index, count int) {
	v.spans = slices.Insert(v.spans, index, make([]Span[T], count)...)
}

// delete removes count slots starting at index as a single block.
func (v *Vector[T]) delete(index, count int) {
	v.spans = slices.Delete(v.spans, index, index+count)
}

// Validate checks the run list from scratch: every run has a positive
// length and no two adjacent runs hold equal values. It returns an
// [*InvariantError] describing the first violation, or nil.
func (v *Vector[T]) Validate() error {
	if err := v.validate("validate"); err != nil {
		return err
	}
	return nil
}

func (v *Vector[T]) validate(op string) *InvariantError {
	for i, s := range v.spans {
		if s.Length <= 0 {
			return &InvariantError{Op: op, Index: i, Reason: "non-positive run length"}
		}
		if i > 0 && v.equal(v.spans[i-1].Value, s.Value) {
			return &InvariantError{Op: op, Index: i, Reason: "adjacent runs hold equal values"}
		}
	}
	return nil
}

// String returns the run list as "[(v,n) (v,n) ...]".
func (v *Vector[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, s := range v.spans {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s.String())
	}
	b.WriteByte(']')
	return b.String()
}
