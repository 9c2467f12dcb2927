package table

import (
	"fmt"
	"math"
	"slices"

	"github.com/gogpu/spanvec"
)

// Cell is what RowSpanVector needs to know about a table cell.
// The values are read once, when the cell is registered.
type Cell interface {
	ColumnIndex() int
	ColumnSpan() int
	RowSpan() int
}

// rowSpanEntry tracks one cell that spans into rows below its own.
type rowSpanEntry struct {
	cell  Cell
	start int // first column
	span  int // number of columns
	ttl   int // rows still to be occupied below the current one
}

const (
	defaultRowSpanCapacity = 8

	// barrierStart keeps the barrier's start and end far past any real
	// column without overflowing start+span.
	barrierStart = math.MaxInt / 2
)

// barrier terminates the entry list so scans never check bounds.
var barrier = rowSpanEntry{cell: nil, start: barrierStart, span: barrierStart, ttl: math.MaxInt}

// RowSpanVector tracks which columns are occupied by cells spanning
// several rows while the rows of one row group are validated top to bottom.
//
// Each row is processed as:
//
//	available, occupied := v.FirstAvailableRange()
//	// for each cell, left to right:
//	for available+span > occupied {
//	    available, occupied = v.NextAvailableRange()
//	}
//	// place the cell at available, Register it if it spans rows
//	cells, last := v.SpanCells()
//
// RowSpanVector is single-use per row group and not safe for concurrent use.
type RowSpanVector struct {
	entries []rowSpanEntry // sorted by start; always ends with the barrier
	index   int            // cursor into entries for the current row
	checks  bool
}

// RowSpanOption configures a RowSpanVector.
type RowSpanOption func(*RowSpanVector)

// WithOverlapChecks makes Register verify that the new cell does not
// overlap its neighbours. A violation panics with an [*spanvec.InvariantError].
func WithOverlapChecks() RowSpanOption {
	return func(v *RowSpanVector) {
		v.checks = true
	}
}

// NewRowSpanVector returns an empty vector holding only the barrier.
func NewRowSpanVector(opts ...RowSpanOption) *RowSpanVector {
	v := &RowSpanVector{
		entries: make([]rowSpanEntry, 1, defaultRowSpanCapacity),
	}
	v.entries[0] = barrier
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Register records a cell that starts in the current row and spans rows
// below it. The cursor must sit on the first entry to the right of the
// cell, as left by FirstAvailableRange/NextAvailableRange.
func (v *RowSpanVector) Register(cell Cell) {
	start, span := cell.ColumnIndex(), cell.ColumnSpan()
	if v.checks {
		v.checkRegister(start, span)
	}

	if len(v.entries) == cap(v.entries) {
		v.entries = slices.Grow(v.entries, cap(v.entries))
	}
	v.entries = slices.Insert(v.entries, v.index, rowSpanEntry{
		cell:  cell,
		start: start,
		span:  span,
		ttl:   cell.RowSpan() - 1,
	})
	v.index++
}

func (v *RowSpanVector) checkRegister(start, span int) {
	if v.index < 0 || v.index >= len(v.entries) {
		spanvec.FailInvariant("register", v.index, "cursor outside the entry list")
	}
	if next := v.entries[v.index]; start+span > next.start {
		spanvec.FailInvariant("register", v.index,
			fmt.Sprintf("columns [%d,%d) overlap span starting at %d", start, start+span, next.start))
	}
	if v.index > 0 {
		if prev := v.entries[v.index-1]; prev.start+prev.span > start {
			spanvec.FailInvariant("register", v.index-1,
				fmt.Sprintf("columns [%d,%d) overlap span ending at %d", start, start+span, prev.start+prev.span))
		}
	}
}

// FirstAvailableRange starts a new row. It returns the first free column
// (always 0) and the first column occupied by a spanning cell.
func (v *RowSpanVector) FirstAvailableRange() (firstAvailable, firstOccupied int) {
	v.index = 0
	return 0, v.entries[0].start
}

// NextAvailableRange skips the occupied range under the cursor and
// returns the next free column and the start of the next occupied range.
// The skipped entry has now covered one more row.
func (v *RowSpanVector) NextAvailableRange() (firstAvailable, firstOccupied int) {
	e := &v.entries[v.index]
	firstAvailable = e.start + e.span
	e.ttl--
	v.index++
	return firstAvailable, v.entries[v.index].start
}

// SpanCells ends the current row. Entries the row never reached are
// aged, then entries with no rows left are dropped. It returns every
// spanning cell present in this row, including the ones that just ended,
// and whether any span ended in this row.
func (v *RowSpanVector) SpanCells() (cells []Cell, lastRowOfAnySpan bool) {
	last := len(v.entries) - 1 // barrier
	for ; v.index < last; v.index++ {
		v.entries[v.index].ttl--
	}
	if last == 0 {
		return nil, false
	}

	cells = make([]Cell, last)
	j := 0
	for i := 0; i < last; i++ {
		cells[i] = v.entries[i].cell
		if v.entries[i].ttl > 0 {
			v.entries[j] = v.entries[i]
			j++
		}
	}
	if j != last {
		v.entries[j] = v.entries[last]
		clear(v.entries[j+1:])
		v.entries = v.entries[:j+1]
		lastRowOfAnySpan = true
	}
	v.index = j
	return cells, lastRowOfAnySpan
}

// Empty reports whether no spanning cell is being tracked.
func (v *RowSpanVector) Empty() bool {
	return len(v.entries) == 1
}

// PendingSpan is a cell that was still spanning when its row group ended.
type PendingSpan struct {
	Cell Cell
	// Rows is the number of rows the cell asked for beyond the group end.
	Rows int
}

// Drain removes all tracked cells and returns them with the rows they
// still wanted. Called at the end of a row group, where spans are cut.
func (v *RowSpanVector) Drain() []PendingSpan {
	last := len(v.entries) - 1
	if last == 0 {
		return nil
	}
	pending := make([]PendingSpan, last)
	for i := 0; i < last; i++ {
		pending[i] = PendingSpan{Cell: v.entries[i].cell, Rows: v.entries[i].ttl}
	}
	v.entries[0] = barrier
	clear(v.entries[1:])
	v.entries = v.entries[:1]
	v.index = 0
	return pending
}
