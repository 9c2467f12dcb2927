package text

import (
	"fmt"
	"image/color"
)

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Weight is a font weight on the usual 100..900 scale.
type Weight uint16

const (
	WeightThin    Weight = 100
	WeightLight   Weight = 300
	WeightRegular Weight = 400
	WeightMedium  Weight = 500
	WeightBold    Weight = 700
	WeightBlack   Weight = 900
)

// String returns the string representation of the weight.
func (w Weight) String() string {
	switch w {
	case WeightThin:
		return "Thin"
	case WeightLight:
		return "Light"
	case WeightRegular:
		return "Regular"
	case WeightMedium:
		return "Medium"
	case WeightBold:
		return "Bold"
	case WeightBlack:
		return "Black"
	default:
		return fmt.Sprintf("Weight(%d)", uint16(w))
	}
}

// Style is the formatting of a run of characters. Styles are compared with
// ==, so two runs with equal fields merge into one.
type Style struct {
	Family string
	Size   float64
	Weight Weight
	Italic bool
	Color  color.RGBA
}

// DefaultStyle is the style of characters nobody formatted.
var DefaultStyle = Style{
	Family: "sans-serif",
	Size:   16,
	Weight: WeightRegular,
	Color:  color.RGBA{A: 0xff},
}

func (s Style) String() string {
	it := ""
	if s.Italic {
		it = " italic"
	}
	return fmt.Sprintf("%s %g %s%s", s.Family, s.Size, s.Weight, it)
}
