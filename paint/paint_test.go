package paint

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorComponents(t *testing.T) {
	c := Color(0x80FF4020)
	assert.Equal(t, uint8(0x80), c.Alpha())
	assert.Equal(t, uint8(0xFF), c.Red())
	assert.Equal(t, uint8(0x40), c.Green())
	assert.Equal(t, uint8(0x20), c.Blue())
	assert.Equal(t, c, ARGB(0x80, 0xFF, 0x40, 0x20))
	assert.Equal(t, "#80FF4020", c.String())
}

func TestColorRGBAIsPremultiplied(t *testing.T) {
	r, g, b, a := Color(0xFF0000FF).RGBA()
	assert.Equal(t, [4]uint32{0, 0, 0xffff, 0xffff}, [4]uint32{r, g, b, a})

	r, _, _, a = ARGB(0x80, 0xFF, 0, 0).RGBA()
	assert.Equal(t, uint32(0x8080), a)
	assert.Equal(t, a, r)

	_, _, _, a = Transparent.RGBA()
	assert.Zero(t, a)
}

func TestColorOf(t *testing.T) {
	assert.Equal(t, Color(0xFF0000FF), ColorOf(color.RGBA{B: 0xff, A: 0xff}))
	assert.Equal(t, Color(0xFF102030), ColorOf(Color(0xFF102030)))
	assert.Equal(t, Black, ColorOf(color.Black))
	assert.Equal(t, Transparent, ColorOf(color.Transparent))
}

func TestStyle(t *testing.T) {
	for _, tc := range []struct {
		style          Style
		name           string
		fills, strokes bool
	}{
		{Fill, "Fill", true, false},
		{Stroke, "Stroke", false, true},
		{FillAndStroke, "FillAndStroke", true, true},
	} {
		p := Paint{Style: tc.style}
		assert.Equal(t, tc.name, tc.style.String())
		assert.Equal(t, tc.fills, p.Fills(), tc.name)
		assert.Equal(t, tc.strokes, p.Strokes(), tc.name)
	}
	assert.Equal(t, "Style(9)", Style(9).String())
}

func TestDefaults(t *testing.T) {
	d := Default()
	assert.Equal(t, Paint{Color: Transparent, Style: Fill}, d)
	assert.True(t, d.IsDefault())

	f := Filled(White)
	assert.Equal(t, White, f.Color)
	assert.Equal(t, Fill, f.Style)
	assert.False(t, f.IsDefault())

	s := Stroked(Black, 3)
	assert.Equal(t, Paint{Color: Black, Style: Stroke, StrokeWidth: 3}, s)
}
