package table

import "testing"

// measureTable builds
//
//	| A | B |
//	|   C   |
//
// and measures it with fixed content widths.
func measureTable(cols ...*CalculatedColumn) *Table {
	widths := map[string][2]float64{
		"A": {10, 20},
		"B": {10, 30},
		"C": {50, 100},
	}
	tbl := &Table{
		Columns: cols,
		Groups: []*RowGroup{{Rows: []*Row{
			row(NewCell("A", 1, 1), NewCell("B", 1, 1)),
			row(NewCell("C", 2, 1)),
		}}},
	}
	tbl.ValidateStructure()
	tbl.MeasureColumns(func(c *TableCell) (float64, float64) {
		w := widths[c.Name]
		return w[0], w[1]
	})
	return tbl
}

func TestMeasureColumnsSpreadsWideCells(t *testing.T) {
	tbl := measureTable()

	want := [][2]float64{{25, 45}, {25, 55}}
	for i, w := range want {
		col := tbl.Columns[i]
		if !col.IsAutoValid() {
			t.Errorf("column %d: IsAutoValid() = false", i)
		}
		if col.MinWidth() != w[0] || col.MaxWidth() != w[1] {
			t.Errorf("column %d: (min, max) = (%g, %g), want (%g, %g)",
				i, col.MinWidth(), col.MaxWidth(), w[0], w[1])
		}
	}
}

func TestArrangeColumns(t *testing.T) {
	tests := []struct {
		name       string
		cols       []*CalculatedColumn
		available  float64
		wantWidths []float64
		wantTotal  float64
	}{
		{
			name:       "auto columns grow to max",
			available:  200,
			wantWidths: []float64{45, 55},
			wantTotal:  100,
		},
		{
			name:       "auto columns share partial space",
			available:  70,
			wantWidths: []float64{33, 37},
			wantTotal:  70,
		},
		{
			name:       "too narrow keeps minimums",
			available:  10,
			wantWidths: []float64{25, 25},
			wantTotal:  50,
		},
		{
			name:       "star takes the remainder",
			cols:       []*CalculatedColumn{NewColumn(Auto()), NewColumn(Star(1))},
			available:  200,
			wantWidths: []float64{45, 155},
			wantTotal:  200,
		},
		{
			name:       "pixel column is fixed",
			cols:       []*CalculatedColumn{NewColumn(Pixels(40)), NewColumn(Auto())},
			available:  80,
			wantWidths: []float64{40, 40},
			wantTotal:  80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := measureTable(tt.cols...)
			total := tbl.ArrangeColumns(tt.available)
			if total != tt.wantTotal {
				t.Errorf("ArrangeColumns() = %g, want %g", total, tt.wantTotal)
			}
			offset := 0.0
			for i, w := range tt.wantWidths {
				col := tbl.Columns[i]
				if col.Width() != w {
					t.Errorf("column %d: Width() = %g, want %g", i, col.Width(), w)
				}
				if col.Offset() != offset {
					t.Errorf("column %d: Offset() = %g, want %g", i, col.Offset(), offset)
				}
				offset += w
			}
		})
	}
}

func TestColumnInvalidateAuto(t *testing.T) {
	col := NewColumn(Auto())
	col.ValidateAuto(30, 10)
	if col.MaxWidth() != 30 {
		t.Errorf("MaxWidth() = %g, want clamped to min 30", col.MaxWidth())
	}
	col.InvalidateAuto()
	if col.IsAutoValid() {
		t.Error("IsAutoValid() = true after InvalidateAuto")
	}
}

func TestGridLengthString(t *testing.T) {
	tests := []struct {
		l    GridLength
		want string
	}{
		{Auto(), "auto"},
		{Pixels(12.5), "12.5px"},
		{Star(2), "2*"},
	}
	for _, tt := range tests {
		if got := tt.l.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
	if GridStar.String() != "Star" || GridUnit(9).String() != "Unknown" {
		t.Error("GridUnit.String() mismatch")
	}
}
