// Package paint describes how shapes are painted: color, style,
// stroke width and text size.
package paint

import (
	"fmt"
	"image/color"
)

// Color is a non premultiplied 0xAARRGGBB value.
type Color uint32

const (
	Transparent Color = 0x00000000
	Black       Color = 0xFF000000
	White       Color = 0xFFFFFFFF
)

var _ color.Color = Color(0) // assert interface conformance

// ARGB packs the four components into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(a)<<24 | Color(r)<<16 | Color(g)<<8 | Color(b)
}

func (c Color) Alpha() uint8 { return uint8(c >> 24) }
func (c Color) Red() uint8   { return uint8(c >> 16) }
func (c Color) Green() uint8 { return uint8(c >> 8) }
func (c Color) Blue() uint8  { return uint8(c) }

// NRGBA returns the components of c as a color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}
}

// RGBA implements color.Color, returning alpha premultiplied components.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// ColorOf converts any color to its ARGB representation.
func ColorOf(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ARGB(n.A, n.R, n.G, n.B)
}

// Style selects whether a shape is filled, stroked or both.
type Style uint8

const (
	Fill Style = iota
	Stroke
	FillAndStroke
)

func (s Style) String() string {
	switch s {
	case Fill:
		return "Fill"
	case Stroke:
		return "Stroke"
	case FillAndStroke:
		return "FillAndStroke"
	default:
		return fmt.Sprintf("Style(%d)", uint8(s))
	}
}

// Default values restored after each draw operation.
const (
	DefaultColor       = Transparent
	DefaultStyle       = Fill
	DefaultStrokeWidth = 0
	DefaultTextSize    = 0
)

// Paint holds the parameters applied to one draw operation.
// A StrokeWidth of 0 strokes a one pixel hairline.
type Paint struct {
	Color       Color
	Style       Style
	StrokeWidth int
	TextSize    int
}

// Default returns the paint with every field at its default value.
func Default() Paint {
	return Paint{
		Color:       DefaultColor,
		Style:       DefaultStyle,
		StrokeWidth: DefaultStrokeWidth,
		TextSize:    DefaultTextSize,
	}
}

// Filled returns the default paint with the given color.
func Filled(c Color) Paint {
	p := Default()
	p.Color = c
	return p
}

// Stroked returns a stroking paint.
func Stroked(c Color, width int) Paint {
	p := Default()
	p.Color = c
	p.Style = Stroke
	p.StrokeWidth = width
	return p
}

// Fills returns true if the style paints the interior of shapes.
func (p Paint) Fills() bool { return p.Style == Fill || p.Style == FillAndStroke }

// Strokes returns true if the style paints the outline of shapes.
func (p Paint) Strokes() bool { return p.Style == Stroke || p.Style == FillAndStroke }

// IsDefault returns true if every field holds its default value.
func (p Paint) IsDefault() bool { return p == Default() }
