package text

import (
	"iter"
	"slices"

	"github.com/go-text/typesetting/language"

	"github.com/gogpu/spanvec"
)

// Run is a maximal range of runes sharing style, bidi level and script.
// Runs are the unit handed to a shaper.
type Run struct {
	// Start is the rune index of the first rune.
	Start int
	// Length is the number of runes.
	Length int

	Style  Style
	Level  int
	Script language.Script
}

// End returns the rune index just past the run.
func (r Run) End() int { return r.Start + r.Length }

// Direction returns the direction implied by the bidi level.
func (r Run) Direction() Direction {
	if r.Level%2 == 1 {
		return DirectionRTL
	}
	return DirectionLTR
}

func (r Run) sameAttrs(o Run) bool {
	return r.Style == o.Style && r.Level == o.Level && r.Script == o.Script
}

// Runs iterates over the paragraph split at every change of style, bidi
// level or script. It walks the three vectors with riders in lockstep, so
// the cost is linear in the number of runs produced.
func (p *Paragraph) Runs() iter.Seq[Run] {
	a := p.Analysis()
	n := len(p.runes)
	return func(yield func(Run) bool) {
		styles := spanvec.NewRider(p.styles)
		levels := spanvec.NewRider(a.levels)
		scripts := spanvec.NewRider(a.scripts)

		var cur Run
		for pos := 0; pos < n; {
			styles.At(pos)
			levels.At(pos)
			scripts.At(pos)
			length := min(styles.Length(), levels.Length(), scripts.Length(), n-pos)

			next := Run{
				Start:  pos,
				Length: length,
				Style:  styles.CurrentValue(),
				Level:  levels.CurrentValue(),
				Script: scripts.CurrentValue(),
			}
			pos += length

			// An explicit run can end next to the implicit default region
			// holding the same value.
			if cur.Length > 0 && cur.sameAttrs(next) {
				cur.Length += next.Length
				continue
			}
			if cur.Length > 0 && !yield(cur) {
				return
			}
			cur = next
		}
		if cur.Length > 0 {
			yield(cur)
		}
	}
}

// CollectRuns returns all runs of the paragraph.
func (p *Paragraph) CollectRuns() []Run {
	return slices.Collect(p.Runs())
}
