package text

import (
	"iter"

	"github.com/gogpu/spanvec"
)

// Paragraph is a run of text with character formatting. Styles are kept as
// a run-length vector over rune positions, so formatting a range costs
// O(runs) regardless of the text length.
//
// A Paragraph is not safe for concurrent use.
type Paragraph struct {
	runes  []rune
	base   Direction
	styles *spanvec.Vector[Style]
	rider  *spanvec.Rider[Style] // reused by StyleAt for forward scans
}

// NewParagraph returns a paragraph of s where every character has style
// base and the paragraph direction is left-to-right.
func NewParagraph(s string, base Style) *Paragraph {
	p := &Paragraph{
		runes:  []rune(s),
		base:   DirectionLTR,
		styles: spanvec.New(base),
	}
	p.rider = spanvec.NewRider(p.styles)
	return p
}

// Len returns the number of runes.
func (p *Paragraph) Len() int { return len(p.runes) }

// Text returns the paragraph text.
func (p *Paragraph) Text() string { return string(p.runes) }

// Direction returns the base direction.
func (p *Paragraph) Direction() Direction { return p.base }

// SetDirection sets the base direction used by the bidi analysis.
func (p *Paragraph) SetDirection(d Direction) { p.base = d }

// clamp limits [start, start+length) to the paragraph.
func (p *Paragraph) clamp(start, length int) (int, int) {
	end := min(start+max(length, 0), len(p.runes))
	start = max(start, 0)
	return start, max(end-start, 0)
}

// SetStyle formats runes [start, start+length) with s. The range is
// clipped to the paragraph.
func (p *Paragraph) SetStyle(start, length int, s Style) {
	start, length = p.clamp(start, length)
	p.styles.Set(start, length, s)
}

// Apply rewrites the style of every rune in [start, start+length) with f,
// keeping each existing run's other attributes:
//
//	p.Apply(0, 5, func(s text.Style) text.Style { s.Weight = text.WeightBold; return s })
func (p *Paragraph) Apply(start, length int, f func(Style) Style) {
	start, length = p.clamp(start, length)
	if length == 0 {
		return
	}

	type edit struct {
		start, length int
		style         Style
	}
	var edits []edit
	r := spanvec.NewRider(p.styles)
	end := start + length
	for pos := start; pos < end; {
		r.At(pos)
		n := min(r.Length(), end-pos)
		edits = append(edits, edit{pos, n, f(r.CurrentValue())})
		pos += n
	}

	// Set bumps the vector version; collect first so the rider walk stays linear.
	for _, e := range edits {
		p.styles.Set(e.start, e.length, e.style)
	}
}

// StyleAt returns the style of rune pos. Calls with increasing positions
// are amortized O(1).
func (p *Paragraph) StyleAt(pos int) Style {
	p.rider.At(pos)
	return p.rider.CurrentValue()
}

// StyleRuns iterates over the explicit style runs with their start
// positions. Runes past the last run have the paragraph's base style.
func (p *Paragraph) StyleRuns() iter.Seq2[int, spanvec.Span[Style]] {
	return p.styles.All()
}

// Analysis returns the cached bidi and script analysis of the text.
func (p *Paragraph) Analysis() *Analysis {
	return Analyze(string(p.runes), p.base)
}
