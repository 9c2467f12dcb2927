// Package table resolves the cell structure and column widths of tables.
//
// The structure pass walks each row group top to bottom with a
// [RowSpanVector], which remembers the columns held by cells spanning
// several rows. Every cell is placed at the first free column range wide
// enough for it, and every row learns which spanning cells cover it.
//
//	t := &table.Table{Groups: []*table.RowGroup{{Rows: rows}}}
//	t.ValidateStructure()
//	t.MeasureColumns(measure)
//	width := t.ArrangeColumns(400)
//
// Nothing here is safe for concurrent use; a table is validated by one
// layout pass at a time.
package table
