package text

import (
	"iter"

	"github.com/go-text/typesetting/language"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/spanvec"
	"github.com/gogpu/spanvec/internal/cache"
)

// Direction specifies the base direction of a paragraph.
type Direction int

const (
	// DirectionLTR is left-to-right text (English, French, etc.)
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return unknownStr
	}
}

// Analysis holds the per-rune bidi embedding level and script of a text,
// each as a run-length vector. An Analysis is shared through a cache and
// must be treated as read-only.
type Analysis struct {
	n       int
	levels  *spanvec.Vector[int]
	scripts *spanvec.Vector[language.Script]
}

// Len returns the number of runes analyzed.
func (a *Analysis) Len() int { return a.n }

// Levels iterates over the runs of equal bidi level.
func (a *Analysis) Levels() iter.Seq2[int, spanvec.Span[int]] {
	return a.levels.All()
}

// Scripts iterates over the runs of equal script.
func (a *Analysis) Scripts() iter.Seq2[int, spanvec.Span[language.Script]] {
	return a.scripts.All()
}

// LevelAt returns the bidi level at rune index pos.
func (a *Analysis) LevelAt(pos int) int {
	r := spanvec.NewRider(a.levels)
	r.At(pos)
	return r.CurrentValue()
}

// ScriptAt returns the script at rune index pos.
func (a *Analysis) ScriptAt(pos int) language.Script {
	r := spanvec.NewRider(a.scripts)
	r.At(pos)
	return r.CurrentValue()
}

type analysisKey struct {
	text string
	base Direction
}

// analysisCache memoizes Analyze. Paragraphs are re-laid out far more often
// than their text changes.
var analysisCache = cache.New[analysisKey, *Analysis](256)

// Analyze computes bidi levels and scripts for text with the given base
// direction. Results are cached.
func Analyze(text string, base Direction) *Analysis {
	return analysisCache.GetOrCreate(analysisKey{text: text, base: base}, func() *Analysis {
		return analyze(text, base)
	})
}

func analyze(text string, base Direction) *Analysis {
	runes := []rune(text)
	a := &Analysis{
		n:       len(runes),
		levels:  spanvec.New(0, spanvec.WithCapacity(4)),
		scripts: spanvec.New(language.Common, spanvec.WithCapacity(4)),
	}
	if len(runes) == 0 {
		return a
	}

	setRuns(a.levels, computeBidiLevels(text, len(runes), base))
	setRuns(a.scripts, resolveInheritedScripts(detectScripts(runes)))
	return a
}

// setRuns writes values into v one run at a time.
func setRuns[T comparable](v *spanvec.Vector[T], values []T) {
	start := 0
	for i := 1; i <= len(values); i++ {
		if i < len(values) && values[i] == values[start] {
			continue
		}
		v.Set(start, i-start, values[start])
		start = i
	}
}

// computeBidiLevels returns 0 for runes in left-to-right runs and 1 for
// runes in right-to-left runs. If the bidi algorithm fails, all levels
// are 0.
func computeBidiLevels(text string, n int, base Direction) []int {
	levels := make([]int, n)

	defaultDir := bidi.Neutral
	if base == DirectionRTL {
		defaultDir = bidi.RightToLeft
	}

	p := bidi.Paragraph{}
	if _, err := p.SetString(text, bidi.DefaultDirection(defaultDir)); err != nil {
		spanvec.Logger().Debug("text: bidi paragraph rejected", "err", err)
		return levels
	}
	ordering, err := p.Order()
	if err != nil {
		spanvec.Logger().Debug("text: bidi ordering failed", "err", err)
		return levels
	}

	// run.Pos() returns rune indices, end inclusive.
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		if run.Direction() != bidi.RightToLeft {
			continue
		}
		start, end := run.Pos()
		for j := start; j <= end && j < n; j++ {
			levels[j] = 1
		}
	}
	return levels
}

func detectScripts(runes []rune) []language.Script {
	scripts := make([]language.Script, len(runes))
	for i, r := range runes {
		scripts[i] = language.LookupScript(r)
	}
	return scripts
}

// resolveInheritedScripts gives combining marks the script of their base
// and Common characters the script of their surroundings. Each stretch of
// Common characters is resolved once, when its end is known, so the cost
// is linear in the text length.
func resolveInheritedScripts(scripts []language.Script) []language.Script {
	last := language.Common
	for i, s := range scripts {
		switch s {
		case language.Inherited:
			scripts[i] = last
		case language.Common:
		default:
			last = s
		}
	}

	// No Inherited values remain past this point.
	last = language.Common
	for i := 0; i < len(scripts); {
		if scripts[i] != language.Common {
			last = scripts[i]
			i++
			continue
		}
		end := i + 1
		for end < len(scripts) && scripts[end] == language.Common {
			end++
		}
		next := language.Common
		if end < len(scripts) {
			next = scripts[end]
		}
		resolved := resolveCommonScript(last, next)
		for k := i; k < end; k++ {
			scripts[k] = resolved
		}
		i = end
	}
	return scripts
}

// resolveCommonScript determines what script a Common character should inherit.
func resolveCommonScript(prev, next language.Script) language.Script {
	switch {
	case prev != language.Common && prev == next:
		return prev
	case prev != language.Common && next == language.Common:
		return prev
	case prev == language.Common && next != language.Common:
		return next
	default:
		return prev
	}
}
