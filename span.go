package spanvec

import "fmt"

// Span is a run of Length consecutive positions that all hold Value.
// Spans stored in a [Vector] always have Length > 0.
type Span[T any] struct {
	Value  T
	Length int
}

// String returns the span as "(value,length)".
func (s Span[T]) String() string {
	return fmt.Sprintf("(%v,%d)", s.Value, s.Length)
}
