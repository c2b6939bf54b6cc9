package raster

import (
	"fmt"

	"github.com/numco/objectpainter/paint"
	"github.com/numco/objectpainter/shape"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// TextPath returns the outlines of text, set with the canvas font
// at size pixels per em. (x, y) is the origin of the baseline.
// A non positive size returns an empty path.
func (c *Canvas) TextPath(text string, x, y float64, size int) (shape.Path, error) {
	var p shape.Path
	if size <= 0 {
		return p, nil
	}
	ppem := fixed.I(size)
	dot := fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}

	var (
		prev    sfnt.GlyphIndex
		hasPrev bool
	)
	for _, r := range text {
		index, err := c.font.GlyphIndex(&c.buf, r)
		if err != nil {
			return nil, fmt.Errorf("raster: glyph index of %q: %w", r, err)
		}
		if hasPrev {
			// fonts without kerning data return an error, which is not fatal
			if kern, err := c.font.Kern(&c.buf, prev, index, ppem, font.HintingNone); err == nil {
				dot.X += kern
			}
		}

		segments, err := c.font.LoadGlyph(&c.buf, index, ppem, nil)
		if err != nil {
			return nil, fmt.Errorf("raster: loading glyph of %q: %w", r, err)
		}
		addSegments(&p, segments, dot)

		advance, err := c.font.GlyphAdvance(&c.buf, index, ppem, font.HintingNone)
		if err != nil {
			return nil, fmt.Errorf("raster: advance of %q: %w", r, err)
		}
		dot.X += advance
		prev, hasPrev = index, true
	}
	return p, nil
}

// addSegments appends glyph outlines, which are y-down and
// relative to the dot, to the path.
func addSegments(p *shape.Path, segments sfnt.Segments, dot fixed.Point26_6) {
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			p.Start(seg.Args[0].Add(dot))
		case sfnt.SegmentOpLineTo:
			p.Line(seg.Args[0].Add(dot))
		case sfnt.SegmentOpQuadTo:
			p.QuadBezier(seg.Args[0].Add(dot), seg.Args[1].Add(dot))
		case sfnt.SegmentOpCubeTo:
			p.CubeBezier(seg.Args[0].Add(dot), seg.Args[1].Add(dot), seg.Args[2].Add(dot))
		}
	}
}

// DrawText draws text with its baseline starting at (x, y),
// at pt.TextSize pixels per em. Nothing is drawn for a non positive size.
func (c *Canvas) DrawText(text string, x, y float64, pt paint.Paint) error {
	p, err := c.TextPath(text, x, y, pt.TextSize)
	if err != nil {
		return err
	}
	c.DrawPath(p, pt)
	return nil
}

// MeasureText returns the advance width of text at size pixels per em.
func (c *Canvas) MeasureText(text string, size int) (float64, error) {
	if size <= 0 {
		return 0, nil
	}
	ppem := fixed.I(size)
	var (
		width   fixed.Int26_6
		prev    sfnt.GlyphIndex
		hasPrev bool
	)
	for _, r := range text {
		index, err := c.font.GlyphIndex(&c.buf, r)
		if err != nil {
			return 0, fmt.Errorf("raster: glyph index of %q: %w", r, err)
		}
		if hasPrev {
			if kern, err := c.font.Kern(&c.buf, prev, index, ppem, font.HintingNone); err == nil {
				width += kern
			}
		}
		advance, err := c.font.GlyphAdvance(&c.buf, index, ppem, font.HintingNone)
		if err != nil {
			return 0, fmt.Errorf("raster: advance of %q: %w", r, err)
		}
		width += advance
		prev, hasPrev = index, true
	}
	return float64(width) / 64, nil
}
