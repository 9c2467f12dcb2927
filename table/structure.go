package table

import (
	"iter"

	"github.com/gogpu/spanvec"
)

// TableCell is a cell of a [Row]. Its column index is assigned by the
// structure pass.
type TableCell struct {
	// Name is an optional label used in diagnostics.
	Name string

	columnSpan  int
	rowSpan     int
	columnIndex int
	rowIndex    int // within the row group
	clippedRows int // rows cut off at the end of the row group
}

// NewCell returns a cell covering columnSpan columns and rowSpan rows.
// Spans below 1 are treated as 1.
func NewCell(name string, columnSpan, rowSpan int) *TableCell {
	return &TableCell{
		Name:        name,
		columnSpan:  max(columnSpan, 1),
		rowSpan:     max(rowSpan, 1),
		columnIndex: -1,
	}
}

// ColumnIndex returns the first column of the cell, or -1 before the
// structure pass placed it.
func (c *TableCell) ColumnIndex() int { return c.columnIndex }

// ColumnSpan returns the number of columns the cell covers.
func (c *TableCell) ColumnSpan() int { return c.columnSpan }

// RowSpan returns the number of rows the cell asked for.
func (c *TableCell) RowSpan() int { return c.rowSpan }

// RowIndex returns the index of the cell's own row within its group.
func (c *TableCell) RowIndex() int { return c.rowIndex }

// EffectiveRowSpan returns the rows the cell actually covers after spans
// running past the end of the row group were cut.
func (c *TableCell) EffectiveRowSpan() int { return c.rowSpan - c.clippedRows }

// Row is a table row. Cells are listed left to right, skipping columns
// held by cells spanning down from rows above.
type Row struct {
	Cells []*TableCell

	spannedCells    []Cell
	columnCount     int
	formatCellCount int
	hasRealCells    bool
	hasForeignCells bool
}

// SpannedCells returns the row-spanning cells present in this row, both
// those starting here and those continuing from above.
func (r *Row) SpannedCells() []Cell { return r.spannedCells }

// ColumnCount returns the number of columns used by this row's own cells.
func (r *Row) ColumnCount() int { return r.columnCount }

// FormatCellCount returns the number of cells the row formats: its own
// single-row cells plus all spanned cells.
func (r *Row) FormatCellCount() int { return r.formatCellCount }

// HasRealCells reports whether the row has content of its own: a
// single-row cell, or a span ending here.
func (r *Row) HasRealCells() bool { return r.hasRealCells }

// HasForeignCells reports whether cells from rows above span into this row.
func (r *Row) HasForeignCells() bool { return r.hasForeignCells }

// validateStructure places the row's cells around the occupied column
// ranges and records its spanning cells.
func (r *Row) validateStructure(rsv *RowSpanVector, rowIndex int) {
	r.hasForeignCells = !rsv.Empty()
	r.formatCellCount = 0

	available, occupied := rsv.FirstAvailableRange()
	for _, c := range r.Cells {
		span := c.ColumnSpan()
		for available+span > occupied {
			available, occupied = rsv.NextAvailableRange()
		}

		c.columnIndex = available
		c.rowIndex = rowIndex
		c.clippedRows = 0
		if c.RowSpan() > 1 {
			rsv.Register(c)
		} else {
			r.formatCellCount++
		}
		available += span
	}
	r.columnCount = available

	cells, lastRowOfAnySpan := rsv.SpanCells()
	r.spannedCells = cells
	r.hasRealCells = r.formatCellCount > 0 || lastRowOfAnySpan
	r.formatCellCount += len(cells)
}

// RowGroup is a run of rows sharing one row-span context. Spans never
// cross group boundaries.
type RowGroup struct {
	Rows []*Row

	columnCount int
}

// ColumnCount returns the widest row's column count.
func (g *RowGroup) ColumnCount() int { return g.columnCount }

func (g *RowGroup) validateStructure(checks bool) {
	var opts []RowSpanOption
	if checks {
		opts = append(opts, WithOverlapChecks())
	}
	rsv := NewRowSpanVector(opts...)

	g.columnCount = 0
	for i, row := range g.Rows {
		row.validateStructure(rsv, i)
		g.columnCount = max(g.columnCount, row.ColumnCount())
		spanvec.Logger().Debug("table: row validated",
			"row", i, "columns", row.ColumnCount(), "spanned", len(row.SpannedCells()))
	}

	for _, p := range rsv.Drain() {
		c, ok := p.Cell.(*TableCell)
		if !ok {
			continue
		}
		c.clippedRows = p.Rows
		spanvec.Logger().Warn("table: row span clipped at end of row group",
			"cell", c.Name, "rowSpan", c.RowSpan(), "effective", c.EffectiveRowSpan())
	}
}

// Table is a grid of row groups with calculated columns.
type Table struct {
	Columns []*CalculatedColumn
	Groups  []*RowGroup

	// OverlapChecks enables the RowSpanVector consistency checks during
	// ValidateStructure.
	OverlapChecks bool
}

// ValidateStructure assigns a column index to every cell, resolves which
// spanning cells belong to each row and makes sure the table has at
// least as many columns as its widest row.
func (t *Table) ValidateStructure() {
	count := 0
	for _, g := range t.Groups {
		g.validateStructure(t.OverlapChecks)
		count = max(count, g.ColumnCount())
	}
	t.EnsureColumnCount(count)
}

// EnsureColumnCount appends auto-width columns until the table has n.
func (t *Table) EnsureColumnCount(n int) {
	for len(t.Columns) < n {
		t.Columns = append(t.Columns, NewColumn(Auto()))
	}
}

// Cells iterates over all cells of the table in group, row, column order.
func (t *Table) Cells() iter.Seq[*TableCell] {
	return func(yield func(*TableCell) bool) {
		for _, g := range t.Groups {
			for _, r := range g.Rows {
				for _, c := range r.Cells {
					if !yield(c) {
						return
					}
				}
			}
		}
	}
}
