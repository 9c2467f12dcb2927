// Package text keeps paragraph formatting and per-character analysis as
// run-length vectors and splits a paragraph into shapeable runs and lines.
//
// Styles, bidi levels and scripts each live in their own vector. Runs walks
// the three together with riders, so producing runs costs O(runs) and not
// O(characters):
//
//	p := text.NewParagraph("hello world", text.DefaultStyle)
//	p.Apply(0, 5, func(s text.Style) text.Style {
//	    s.Weight = text.WeightBold
//	    return s
//	})
//	for run := range p.Runs() {
//	    fmt.Println(run.Start, run.Length, run.Style, run.Script)
//	}
//
// # Line breaking
//
// Wrap measures characters with golang.org/x/image/font faces chosen per
// style and breaks lines at UAX #14 style opportunities:
//
//	lines, err := p.Wrap(fixed.I(320), func(text.Style) font.Face {
//	    return basicfont.Face7x13
//	}, text.WrapWordChar)
//
// Analysis results are cached by text, so re-wrapping after a style change
// does not re-run the bidi algorithm.
package text
