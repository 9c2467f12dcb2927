package text

import (
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/spanvec"
)

// WrapMode specifies how text is wrapped when it exceeds the maximum width.
type WrapMode uint8

const (
	// WrapWordChar breaks at word boundaries first,
	// then falls back to character boundaries for long words.
	// This is the default (zero value).
	WrapWordChar WrapMode = iota

	// WrapNone disables wrapping. Only newlines end a line.
	WrapNone

	// WrapWord breaks at word boundaries only.
	// Long words that exceed the width overflow.
	WrapWord

	// WrapChar breaks between any two characters.
	WrapChar
)

// String returns the string representation of the wrap mode.
func (m WrapMode) String() string {
	switch m {
	case WrapNone:
		return "None"
	case WrapWord:
		return "Word"
	case WrapChar:
		return "Char"
	case WrapWordChar:
		return "WordChar"
	default:
		return unknownStr
	}
}

// BreakClass represents Unicode line breaking classes (UAX #14 simplified).
type BreakClass uint8

const (
	breakOther BreakClass = iota
	breakSpace
	breakZero // zero-width space
	breakOpen
	breakClose
	breakHyphen
	breakIdeographic
)

// classifyRune returns the break class of a rune.
func classifyRune(r rune) BreakClass {
	switch r {
	case ' ', '\t':
		return breakSpace
	case '\u200B':
		return breakZero
	case '(', '[', '{', '\u201C', '\u2018':
		return breakOpen
	case ')', ']', '}', '\u201D', '\u2019':
		return breakClose
	case '-', '\u2010', '\u2011', '\u2013', '\u2014':
		return breakHyphen
	}
	if isCJKRune(r) {
		return breakIdeographic
	}
	return breakOther
}

// isCJKRune reports whether r is a CJK character that allows breaking on
// either side.
func isCJKRune(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || // CJK Unified Ideographs
		(r >= 0x3400 && r <= 0x4DBF) || // CJK Extension A
		(r >= 0x20000 && r <= 0x2A6DF) || // CJK Extension B
		(r >= 0x3040 && r <= 0x309F) || // Hiragana
		(r >= 0x30A0 && r <= 0x30FF) || // Katakana
		(r >= 0xAC00 && r <= 0xD7AF) || // Hangul Syllables
		(r >= 0xFF00 && r <= 0xFFEF) // Fullwidth forms
}

// BreakOpportunity represents a line break opportunity.
type BreakOpportunity uint8

const (
	// BreakNo means no break allowed here.
	BreakNo BreakOpportunity = iota
	// BreakAllowed means break is allowed here.
	BreakAllowed
	// BreakMandatory means break is required here (after a newline).
	BreakMandatory
)

// findBreakOpportunities returns, for each rune i, the opportunity to
// break before it. breaks[0] is always BreakNo.
func findBreakOpportunities(runes []rune, mode WrapMode) []BreakOpportunity {
	if len(runes) == 0 {
		return nil
	}
	breaks := make([]BreakOpportunity, len(runes))
	classes := make([]BreakClass, len(runes))
	for i, r := range runes {
		classes[i] = classifyRune(r)
	}
	for i := 1; i < len(runes); i++ {
		breaks[i] = computeBreak(runes, classes, i, mode)
	}
	return breaks
}

// computeBreak determines the break opportunity before position i.
func computeBreak(runes []rune, classes []BreakClass, i int, mode WrapMode) BreakOpportunity {
	prevRune, currRune := runes[i-1], runes[i]
	prevClass, currClass := classes[i-1], classes[i]

	if prevRune == '\n' {
		return BreakMandatory
	}
	if mode == WrapNone {
		return BreakNo
	}
	if currClass == breakClose || prevClass == breakOpen {
		return BreakNo
	}
	if prevClass == breakZero {
		return BreakAllowed
	}

	switch mode {
	case WrapChar:
		return BreakAllowed
	case WrapWord, WrapWordChar:
		// WrapWordChar falls back to characters in the line breaker.
		return computeWordBreak(prevRune, currRune, prevClass, currClass)
	default:
		return BreakNo
	}
}

// computeWordBreak determines break opportunity for word-based wrapping.
func computeWordBreak(prevRune, currRune rune, prevClass, currClass BreakClass) BreakOpportunity {
	switch {
	case prevClass == breakSpace:
		return BreakAllowed
	case prevClass == breakHyphen && currClass != breakHyphen:
		return BreakAllowed
	case currClass == breakIdeographic:
		return BreakAllowed
	case prevClass == breakIdeographic:
		return BreakAllowed
	case isBreakBetweenCategories(prevRune, currRune):
		return BreakAllowed
	}
	return BreakNo
}

// isBreakBetweenCategories checks for breaks between letters and
// punctuation.
func isBreakBetweenCategories(prev, curr rune) bool {
	if (unicode.IsLetter(prev) || unicode.IsDigit(prev)) && unicode.IsPunct(curr) {
		// Not inside contractions or numbers.
		if curr != '\'' && curr != '.' && curr != ',' {
			return true
		}
	}
	return unicode.IsPunct(prev) && prev != '\'' && unicode.IsLetter(curr)
}

// FaceFunc returns the font face used to measure characters of a style.
// It returns nil if no face is available.
type FaceFunc func(Style) font.Face

// Line is one line of a wrapped paragraph.
type Line struct {
	// Start and End are rune indices; lines of a paragraph are contiguous.
	Start, End int
	// Width is the advance width, excluding trailing whitespace.
	Width fixed.Int26_6
	// Runs are the paragraph runs clipped to the line.
	Runs []Run
}

// Wrap breaks the paragraph into lines no wider than maxWidth where the
// mode allows it. Characters are measured with the face returned by faces
// for their style. A maxWidth <= 0 disables wrapping; newlines always end
// a line.
//
// Wrap returns [ErrNoFace] if faces is nil and a [*FaceError] if faces has
// no face for a style in use.
func (p *Paragraph) Wrap(maxWidth fixed.Int26_6, faces FaceFunc, mode WrapMode) ([]Line, error) {
	if faces == nil {
		return nil, ErrNoFace
	}
	n := len(p.runes)
	if n == 0 {
		return []Line{{}}, nil
	}

	advances, kerns, err := p.measure(faces)
	if err != nil {
		return nil, err
	}
	breaks := findBreakOpportunities(p.runes, mode)
	if maxWidth <= 0 || mode == WrapNone {
		maxWidth = fixed.Int26_6(1<<31 - 1)
	}

	runs := p.CollectRuns()
	var lines []Line
	for start := 0; start < n; {
		end := p.lineEnd(start, maxWidth, mode, breaks, advances, kerns)
		lines = append(lines, Line{
			Start: start,
			End:   end,
			Width: p.lineWidth(start, end, advances, kerns),
			Runs:  clipRuns(runs, start, end),
		})
		start = end
	}
	spanvec.Logger().Debug("text: paragraph wrapped",
		"runes", n, "lines", len(lines), "mode", mode)
	return lines, nil
}

// measure returns the advance of every rune and the kerning between it
// and the previous rune. Kerning is only applied within one style run;
// adjacent runs never share a style, and faces are not compared.
func (p *Paragraph) measure(faces FaceFunc) ([]fixed.Int26_6, []fixed.Int26_6, error) {
	n := len(p.runes)
	advances := make([]fixed.Int26_6, n)
	kerns := make([]fixed.Int26_6, n)
	resolved := make(map[Style]font.Face)

	r := spanvec.NewRider(p.styles)
	for pos := 0; pos < n; {
		r.At(pos)
		style := r.CurrentValue()
		face, ok := resolved[style]
		if !ok {
			if face = faces(style); face == nil {
				return nil, nil, &FaceError{Style: style}
			}
			resolved[style] = face
		}

		end := min(pos+r.Length(), n)
		for i := pos; i < end; i++ {
			adv, ok := face.GlyphAdvance(p.runes[i])
			if !ok {
				spanvec.Logger().Debug("text: glyph missing", "rune", p.runes[i])
			}
			advances[i] = adv
			if i > pos {
				kerns[i] = face.Kern(p.runes[i-1], p.runes[i])
			}
		}
		pos = end
	}
	return advances, kerns, nil
}

// lineEnd finds the rune index where the line beginning at start ends.
func (p *Paragraph) lineEnd(start int, maxWidth fixed.Int26_6, mode WrapMode,
	breaks []BreakOpportunity, advances, kerns []fixed.Int26_6) int {
	var width fixed.Int26_6
	lastBreak := -1
	for i := start; i < len(p.runes); i++ {
		if i > start {
			if breaks[i] == BreakMandatory {
				return i
			}
			if breaks[i] == BreakAllowed {
				lastBreak = i
			}
			width += kerns[i]
		}
		width += advances[i]
		// Trailing whitespace hangs past the edge.
		if width > maxWidth && i > start && !unicode.IsSpace(p.runes[i]) {
			return overflowBreak(breaks, i, start, lastBreak, mode)
		}
	}
	return len(p.runes)
}

// overflowBreak chooses the break for a line that overflows at rune pos.
func overflowBreak(breaks []BreakOpportunity, pos, start, lastBreak int, mode WrapMode) int {
	if lastBreak > start {
		return lastBreak
	}
	if mode != WrapWord {
		return pos
	}
	for j := pos + 1; j < len(breaks); j++ {
		if breaks[j] != BreakNo {
			return j
		}
	}
	return len(breaks)
}

// lineWidth sums advances over [start, end), ignoring trailing whitespace.
func (p *Paragraph) lineWidth(start, end int, advances, kerns []fixed.Int26_6) fixed.Int26_6 {
	for end > start && unicode.IsSpace(p.runes[end-1]) {
		end--
	}
	var width fixed.Int26_6
	for i := start; i < end; i++ {
		width += advances[i]
		if i > start {
			width += kerns[i]
		}
	}
	return width
}

// clipRuns returns the parts of runs that overlap [start, end).
func clipRuns(runs []Run, start, end int) []Run {
	var out []Run
	for _, r := range runs {
		if r.End() <= start || r.Start >= end {
			continue
		}
		s, e := max(r.Start, start), min(r.End(), end)
		r.Start, r.Length = s, e-s
		out = append(out, r)
	}
	return out
}
