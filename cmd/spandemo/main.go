// Command spandemo formats a paragraph with run-length style vectors,
// prints its runs and wrapped lines, and lays out a small table with
// row-spanning cells.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/spanvec"
	"github.com/gogpu/spanvec/table"
	"github.com/gogpu/spanvec/text"
)

// styleEdit is a -style flag value: start:length:weight[:italic].
type styleEdit struct {
	start, length int
	weight        text.Weight
	italic        bool
}

func parseStyleEdit(s string) (styleEdit, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return styleEdit{}, fmt.Errorf("style %q: want start:length:weight[:italic]", s)
	}
	var e styleEdit
	var err error
	if e.start, err = strconv.Atoi(parts[0]); err != nil {
		return styleEdit{}, fmt.Errorf("style %q: start: %w", s, err)
	}
	if e.length, err = strconv.Atoi(parts[1]); err != nil {
		return styleEdit{}, fmt.Errorf("style %q: length: %w", s, err)
	}
	w, err := strconv.ParseUint(parts[2], 10, 16)
	if err != nil {
		return styleEdit{}, fmt.Errorf("style %q: weight: %w", s, err)
	}
	e.weight = text.Weight(w)
	e.italic = len(parts) == 4 && parts[3] == "italic"
	return e, nil
}

func parseWrapMode(s string) (text.WrapMode, error) {
	for _, m := range []text.WrapMode{text.WrapWordChar, text.WrapNone, text.WrapWord, text.WrapChar} {
		if strings.EqualFold(m.String(), s) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown wrap mode %q", s)
}

func main() {
	var (
		input   = flag.String("text", "The quick brown fox jumps over the lazy dog", "paragraph text")
		width   = flag.Int("width", 240, "line width in pixels (0 disables wrapping)")
		mode    = flag.String("mode", "WordChar", "wrap mode: WordChar, Word, Char or None")
		verbose = flag.Bool("v", false, "log debug output to stderr")
		edits   []styleEdit
	)
	flag.Func("style", "style edit start:length:weight[:italic] (repeatable)", func(s string) error {
		e, err := parseStyleEdit(s)
		if err != nil {
			return err
		}
		edits = append(edits, e)
		return nil
	})
	flag.Parse()

	if *verbose {
		spanvec.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	wrapMode, err := parseWrapMode(*mode)
	if err != nil {
		log.Fatalf("Invalid -mode: %v", err)
	}

	p := text.NewParagraph(*input, text.DefaultStyle)
	for _, e := range edits {
		p.Apply(e.start, e.length, func(s text.Style) text.Style {
			s.Weight = e.weight
			s.Italic = s.Italic || e.italic
			return s
		})
	}

	printRuns(p)
	if err := printLines(p, *width, wrapMode); err != nil {
		log.Fatalf("Failed to wrap: %v", err)
	}
	printTable()
}

func printRuns(p *text.Paragraph) {
	runes := []rune(p.Text())
	fmt.Println("runs:")
	for run := range p.Runs() {
		fmt.Printf("  [%3d,%3d) %-4s %-6v %-24v %q\n",
			run.Start, run.End(), run.Direction(), run.Script, run.Style,
			string(runes[run.Start:run.End()]))
	}
}

// goFaces opens Go font faces on demand, one per style.
type goFaces struct {
	fonts map[[2]bool]*opentype.Font
	faces map[text.Style]font.Face
}

func newGoFaces() (*goFaces, error) {
	g := &goFaces{
		fonts: make(map[[2]bool]*opentype.Font),
		faces: make(map[text.Style]font.Face),
	}
	for key, ttf := range map[[2]bool][]byte{
		{false, false}: goregular.TTF,
		{true, false}:  gobold.TTF,
		{false, true}:  goitalic.TTF,
		{true, true}:   gobolditalic.TTF,
	} {
		f, err := opentype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("parse go font: %w", err)
		}
		g.fonts[key] = f
	}
	return g, nil
}

// face returns nil if the face cannot be created, which Wrap reports.
func (g *goFaces) face(s text.Style) font.Face {
	if f, ok := g.faces[s]; ok {
		return f
	}
	f := g.fonts[[2]bool{s.Weight >= text.WeightBold, s.Italic}]
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    s.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("Failed to create face for %v: %v", s, err)
		return nil
	}
	g.faces[s] = face
	return face
}

func (g *goFaces) Close() {
	for _, f := range g.faces {
		_ = f.Close()
	}
}

func printLines(p *text.Paragraph, width int, mode text.WrapMode) error {
	faces, err := newGoFaces()
	if err != nil {
		return err
	}
	defer faces.Close()

	lines, err := p.Wrap(fixed.I(width), faces.face, mode)
	if err != nil {
		return err
	}

	runes := []rune(p.Text())
	fmt.Printf("lines (width %d, %s):\n", width, mode)
	for _, l := range lines {
		fmt.Printf("  %3dpx %d runs %q\n", l.Width.Round(), len(l.Runs), string(runes[l.Start:l.End]))
	}
	return nil
}

// printTable lays out
//
//	| Name   | Q1 | Q2 |
//	| Totals | 10 | 20 |
//	|        |   30    |
func printTable() {
	cells := map[string][2]float64{
		"Name": {28, 28}, "Q1": {14, 14}, "Q2": {14, 14},
		"Totals": {42, 42}, "10": {14, 14}, "20": {14, 14}, "30": {14, 14},
	}
	tbl := &table.Table{
		Columns: []*table.CalculatedColumn{
			table.NewColumn(table.Auto()),
			table.NewColumn(table.Pixels(40)),
			table.NewColumn(table.Star(1)),
		},
		Groups: []*table.RowGroup{{Rows: []*table.Row{
			{Cells: []*table.TableCell{table.NewCell("Name", 1, 1), table.NewCell("Q1", 1, 1), table.NewCell("Q2", 1, 1)}},
			{Cells: []*table.TableCell{table.NewCell("Totals", 1, 2), table.NewCell("10", 1, 1), table.NewCell("20", 1, 1)}},
			{Cells: []*table.TableCell{table.NewCell("30", 2, 1)}},
		}}},
		OverlapChecks: true,
	}
	tbl.ValidateStructure()
	tbl.MeasureColumns(func(c *table.TableCell) (float64, float64) {
		w := cells[c.Name]
		return w[0], w[1]
	})
	total := tbl.ArrangeColumns(200)

	fmt.Printf("table (%gpx):\n", total)
	for c := range tbl.Cells() {
		col := tbl.Columns[c.ColumnIndex()]
		fmt.Printf("  %-6s row %d col %d span %dx%d at x=%g\n",
			c.Name, c.RowIndex(), c.ColumnIndex(), c.ColumnSpan(), c.EffectiveRowSpan(), col.Offset())
	}
}
