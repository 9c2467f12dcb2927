package text

import (
	"errors"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// monoFaces measures every style with the 7px-advance basic font.
func monoFaces(Style) font.Face { return basicfont.Face7x13 }

func TestWrapModeString(t *testing.T) {
	tests := []struct {
		mode WrapMode
		want string
	}{
		{WrapWordChar, "WordChar"},
		{WrapNone, "None"},
		{WrapWord, "Word"},
		{WrapChar, "Char"},
		{WrapMode(99), unknownStr},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("WrapMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestClassifyRune(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want BreakClass
	}{
		{"space", ' ', breakSpace},
		{"tab", '\t', breakSpace},
		{"zero-width space", '\u200B', breakZero},
		{"open paren", '(', breakOpen},
		{"close bracket", ']', breakClose},
		{"right double quote", '\u201D', breakClose},
		{"hyphen", '-', breakHyphen},
		{"en dash", '\u2013', breakHyphen},
		{"CJK ideograph", '\u4E00', breakIdeographic},
		{"hangul", '\uAC00', breakIdeographic},
		{"latin a", 'a', breakOther},
		{"digit 1", '1', breakOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyRune(tt.r); got != tt.want {
				t.Errorf("classifyRune(%q) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestFindBreakOpportunities(t *testing.T) {
	tests := []struct {
		name string
		text string
		mode WrapMode
		want []BreakOpportunity
	}{
		{"empty", "", WrapWord, nil},
		{"word", "a b", WrapWord, []BreakOpportunity{BreakNo, BreakNo, BreakAllowed}},
		{"char", "abc", WrapChar, []BreakOpportunity{BreakNo, BreakAllowed, BreakAllowed}},
		{"none keeps newline", "a b\nc", WrapNone, []BreakOpportunity{BreakNo, BreakNo, BreakNo, BreakNo, BreakMandatory}},
		{"no break before close", "(a)", WrapChar, []BreakOpportunity{BreakNo, BreakNo, BreakNo}},
		{"cjk", "\u4E2D\u6587", WrapWord, []BreakOpportunity{BreakNo, BreakAllowed}},
		{"hyphen", "a-b", WrapWord, []BreakOpportunity{BreakNo, BreakAllowed, BreakAllowed}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := findBreakOpportunities([]rune(tt.text), tt.mode)
			if len(got) != len(tt.want) {
				t.Fatalf("findBreakOpportunities(%q) = %v, want %v", tt.text, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("findBreakOpportunities(%q)[%d] = %v, want %v", tt.text, i, got[i], tt.want[i])
				}
			}
		})
	}
}

type lineSummary struct {
	start, end, width int
}

func summarize(lines []Line) []lineSummary {
	out := make([]lineSummary, len(lines))
	for i, l := range lines {
		out[i] = lineSummary{l.Start, l.End, l.Width.Round()}
	}
	return out
}

func TestParagraphWrap(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth int
		mode     WrapMode
		want     []lineSummary
	}{
		{
			name:     "fits exactly with hanging space",
			text:     "hello world foo",
			maxWidth: 77,
			want:     []lineSummary{{0, 12, 77}, {12, 15, 21}},
		},
		{
			name:     "breaks at spaces",
			text:     "hello world foo",
			maxWidth: 56,
			want:     []lineSummary{{0, 6, 35}, {6, 12, 35}, {12, 15, 21}},
		},
		{
			name:     "char mode",
			text:     "abcdefghij",
			maxWidth: 21,
			mode:     WrapChar,
			want:     []lineSummary{{0, 3, 21}, {3, 6, 21}, {6, 9, 21}, {9, 10, 7}},
		},
		{
			name:     "word mode overflows long word",
			text:     "abcdefghij xy",
			maxWidth: 21,
			mode:     WrapWord,
			want:     []lineSummary{{0, 11, 70}, {11, 13, 14}},
		},
		{
			name:     "word-char falls back to characters",
			text:     "abcdefghij xy",
			maxWidth: 21,
			want:     []lineSummary{{0, 3, 21}, {3, 6, 21}, {6, 9, 21}, {9, 11, 7}, {11, 13, 14}},
		},
		{
			name:     "newline in none mode",
			text:     "ab\ncd",
			maxWidth: 7,
			mode:     WrapNone,
			want:     []lineSummary{{0, 3, 14}, {3, 5, 14}},
		},
		{
			name: "unbounded width",
			text: "hello world foo",
			want: []lineSummary{{0, 15, 105}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParagraph(tt.text, DefaultStyle)
			lines, err := p.Wrap(fixed.I(tt.maxWidth), monoFaces, tt.mode)
			if err != nil {
				t.Fatalf("Wrap() error = %v", err)
			}
			got := summarize(lines)
			if len(got) != len(tt.want) {
				t.Fatalf("Wrap() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParagraphWrapClipsRuns(t *testing.T) {
	p := NewParagraph("hello world foo", DefaultStyle)
	p.SetStyle(0, 5, bold)

	lines, err := p.Wrap(fixed.I(56), monoFaces, WrapWordChar)
	if err != nil {
		t.Fatalf("Wrap() error = %v", err)
	}
	first := lines[0].Runs
	if len(first) != 2 {
		t.Fatalf("line 0 runs = %+v, want 2", first)
	}
	if first[0].Style != bold || first[0].Length != 5 {
		t.Errorf("line 0 run 0 = %+v, want bold over 5", first[0])
	}
	if first[1].Start != 5 || first[1].Length != 1 {
		t.Errorf("line 0 run 1 = %+v, want 5+1", first[1])
	}
	second := lines[1].Runs
	if len(second) != 1 || second[0].Start != 6 || second[0].Length != 6 {
		t.Errorf("line 1 runs = %+v, want one run 6+6", second)
	}
}

func TestParagraphWrapEmpty(t *testing.T) {
	lines, err := NewParagraph("", DefaultStyle).Wrap(fixed.I(10), monoFaces, WrapWord)
	if err != nil {
		t.Fatalf("Wrap() error = %v", err)
	}
	if len(lines) != 1 || lines[0].Start != 0 || lines[0].End != 0 {
		t.Errorf("Wrap() = %+v, want one empty line", lines)
	}
}

func TestParagraphWrapFaceErrors(t *testing.T) {
	p := NewParagraph("hello", DefaultStyle)
	p.SetStyle(2, 1, bold)

	if _, err := p.Wrap(fixed.I(10), nil, WrapWord); !errors.Is(err, ErrNoFace) {
		t.Errorf("Wrap(nil faces) error = %v, want ErrNoFace", err)
	}

	regularOnly := func(s Style) font.Face {
		if s.Weight != WeightRegular {
			return nil
		}
		return basicfont.Face7x13
	}
	_, err := p.Wrap(fixed.I(10), regularOnly, WrapWord)
	var fe *FaceError
	if !errors.As(err, &fe) {
		t.Fatalf("Wrap() error = %v, want *FaceError", err)
	}
	if fe.Style != bold {
		t.Errorf("FaceError.Style = %v, want %v", fe.Style, bold)
	}
	if !errors.Is(err, ErrNoFace) {
		t.Error("FaceError does not unwrap to ErrNoFace")
	}
}

// taggedFace is a font.Face held by value whose type cannot be compared
// with ==.
type taggedFace struct {
	font.Face
	tags []string
}

func TestParagraphWrapUncomparableFace(t *testing.T) {
	p := NewParagraph("hello world", DefaultStyle)
	p.SetStyle(0, 5, bold)
	faces := func(s Style) font.Face {
		return taggedFace{Face: basicfont.Face7x13, tags: []string{s.Weight.String()}}
	}

	lines, err := p.Wrap(fixed.I(56), faces, WrapWordChar)
	if err != nil {
		t.Fatalf("Wrap() error = %v", err)
	}
	want := []lineSummary{{0, 6, 35}, {6, 11, 35}}
	got := summarize(lines)
	if len(got) != len(want) {
		t.Fatalf("Wrap() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %v, want %v", i, got[i], want[i])
		}
	}
}
