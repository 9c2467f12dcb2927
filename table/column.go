package table

import "fmt"

// GridUnit is the unit of a [GridLength].
type GridUnit uint8

const (
	// GridAuto sizes the column to its content.
	GridAuto GridUnit = iota
	// GridPixel is a fixed width.
	GridPixel
	// GridStar takes a weighted share of the space left over.
	GridStar
)

// String returns the string representation of the unit.
func (u GridUnit) String() string {
	switch u {
	case GridAuto:
		return "Auto"
	case GridPixel:
		return "Pixel"
	case GridStar:
		return "Star"
	default:
		return "Unknown"
	}
}

// GridLength is a user-specified column width.
type GridLength struct {
	Value float64
	Unit  GridUnit
}

// Auto returns a content-sized length.
func Auto() GridLength { return GridLength{Value: 1, Unit: GridAuto} }

// Pixels returns a fixed length.
func Pixels(v float64) GridLength { return GridLength{Value: v, Unit: GridPixel} }

// Star returns a proportional length with weight v.
func Star(v float64) GridLength { return GridLength{Value: v, Unit: GridStar} }

func (l GridLength) String() string {
	switch l.Unit {
	case GridPixel:
		return fmt.Sprintf("%gpx", l.Value)
	case GridStar:
		return fmt.Sprintf("%g*", l.Value)
	default:
		return "auto"
	}
}

// CalculatedColumn holds the resolved geometry of one table column.
type CalculatedColumn struct {
	UserWidth GridLength

	minWidth  float64
	maxWidth  float64
	width     float64
	offset    float64
	validAuto bool
}

// NewColumn returns a column with the given user width.
func NewColumn(w GridLength) *CalculatedColumn {
	return &CalculatedColumn{UserWidth: w}
}

// ValidateAuto records the content-derived width range.
func (c *CalculatedColumn) ValidateAuto(minWidth, maxWidth float64) {
	c.minWidth = minWidth
	c.maxWidth = max(minWidth, maxWidth)
	c.validAuto = true
}

// InvalidateAuto marks the content widths stale.
func (c *CalculatedColumn) InvalidateAuto() { c.validAuto = false }

// IsAutoValid reports whether ValidateAuto ran since the last invalidation.
func (c *CalculatedColumn) IsAutoValid() bool { return c.validAuto }

// MinWidth returns the smallest width the content fits in.
func (c *CalculatedColumn) MinWidth() float64 { return c.minWidth }

// MaxWidth returns the width the content wants without wrapping.
func (c *CalculatedColumn) MaxWidth() float64 { return c.maxWidth }

// Width returns the width assigned by ArrangeColumns.
func (c *CalculatedColumn) Width() float64 { return c.width }

// Offset returns the column's left edge assigned by ArrangeColumns.
func (c *CalculatedColumn) Offset() float64 { return c.offset }

// MeasureFunc returns the minimum and preferred width of a cell's content.
type MeasureFunc func(c *TableCell) (minWidth, maxWidth float64)

// MeasureColumns computes every column's content width range. It must run
// after ValidateStructure. Single-column cells set their column's range
// directly; multi-column cells then spread any width their columns lack
// evenly over the non-fixed columns they span.
func (t *Table) MeasureColumns(measure MeasureFunc) {
	n := len(t.Columns)
	mins := make([]float64, n)
	maxs := make([]float64, n)

	var wide []*TableCell
	for c := range t.Cells() {
		if c.ColumnIndex() < 0 || c.ColumnIndex() >= n {
			continue
		}
		if c.ColumnSpan() > 1 {
			wide = append(wide, c)
			continue
		}
		cmin, cmax := measure(c)
		i := c.ColumnIndex()
		mins[i] = max(mins[i], cmin)
		maxs[i] = max(maxs[i], cmax)
	}

	for i, col := range t.Columns {
		if col.UserWidth.Unit == GridPixel {
			mins[i], maxs[i] = col.UserWidth.Value, col.UserWidth.Value
		}
	}

	for _, c := range wide {
		first := c.ColumnIndex()
		last := min(first+c.ColumnSpan(), n)
		cmin, cmax := measure(c)
		t.spread(mins, first, last, cmin)
		t.spread(maxs, first, last, cmax)
	}

	for i, col := range t.Columns {
		col.ValidateAuto(mins[i], maxs[i])
	}
}

// spread grows the non-pixel columns in [first, last) evenly until their
// sum reaches want.
func (t *Table) spread(widths []float64, first, last int, want float64) {
	sum := 0.0
	flexible := 0
	for i := first; i < last; i++ {
		sum += widths[i]
		if t.Columns[i].UserWidth.Unit != GridPixel {
			flexible++
		}
	}
	if sum >= want || flexible == 0 {
		return
	}
	share := (want - sum) / float64(flexible)
	for i := first; i < last; i++ {
		if t.Columns[i].UserWidth.Unit != GridPixel {
			widths[i] += share
		}
	}
}

// ArrangeColumns assigns final widths and offsets within available space
// and returns the total width. Pixel columns get their value, auto and
// star columns start at their minimum. Space left over first grows auto
// columns toward their maximum, proportionally to how much they want,
// and the rest is shared by star columns by weight. If the minimums do
// not fit, columns keep their minimum and the table overflows.
func (t *Table) ArrangeColumns(available float64) float64 {
	used := 0.0
	autoWant := 0.0
	starWeight := 0.0
	for _, col := range t.Columns {
		switch col.UserWidth.Unit {
		case GridPixel:
			col.width = col.UserWidth.Value
		case GridStar:
			col.width = col.minWidth
			starWeight += col.UserWidth.Value
		default:
			col.width = col.minWidth
			autoWant += col.maxWidth - col.minWidth
		}
		used += col.width
	}

	extra := available - used
	if extra > 0 && autoWant > 0 {
		give := min(extra, autoWant)
		for _, col := range t.Columns {
			if col.UserWidth.Unit == GridAuto {
				col.width += (col.maxWidth - col.minWidth) / autoWant * give
			}
		}
		extra -= give
	}
	if extra > 0 && starWeight > 0 {
		for _, col := range t.Columns {
			if col.UserWidth.Unit == GridStar {
				col.width += extra * col.UserWidth.Value / starWeight
			}
		}
	}

	offset := 0.0
	for _, col := range t.Columns {
		col.offset = offset
		offset += col.width
	}
	return offset
}
