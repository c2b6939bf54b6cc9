// Implements a drawing context on top of a bitmap,
// by wrapping rasterx.
package raster

import (
	"errors"
	"image"
	"math"

	"github.com/numco/objectpainter/bitmap"
	"github.com/numco/objectpainter/paint"
	"github.com/numco/objectpainter/shape"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// ErrRestoreUnderflow is returned by Restore when there is no matching Save.
var ErrRestoreUnderflow = errors.New("raster: restore without matching save")

// miter cutoff used for stroke joins
const miterLimit = 4 * 64

// state is the part of the canvas scoped by Save and Restore.
type state struct {
	matrix shape.Matrix2D
	clip   image.Rectangle // in bitmap coordinates
}

// Canvas issues draw operations on the bitmap it is bound to.
// A Canvas is not safe for concurrent use.
type Canvas struct {
	bitmap *bitmap.Bitmap

	scanner *rasterx.ScannerGV
	dasher  *rasterx.Dasher // stroking
	filler  *rasterx.Filler // filling, sharing the scanner with dasher

	font         *sfnt.Font
	buf          sfnt.Buffer
	interpolator draw.Interpolator

	current state
	stack   []state
}

// NewCanvas returns a canvas drawing on b, with an identity
// transform and no clipping.
func NewCanvas(b *bitmap.Bitmap, opts ...Option) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	w, h := b.Width(), b.Height()
	scanner := rasterx.NewScannerGV(w, h, b.Image(), b.Image().Bounds())
	return &Canvas{
		bitmap:       b,
		scanner:      scanner,
		filler:       rasterx.NewFiller(w, h, scanner),
		dasher:       rasterx.NewDasher(w, h, scanner),
		font:         o.font,
		interpolator: o.interpolator,
		current: state{
			matrix: shape.Identity,
			clip:   image.Rect(0, 0, w, h),
		},
	}
}

// Bitmap returns the bitmap the canvas draws on.
func (c *Canvas) Bitmap() *bitmap.Bitmap { return c.bitmap }

func (c *Canvas) bounds() image.Rectangle {
	return image.Rect(0, 0, c.bitmap.Width(), c.bitmap.Height())
}

// applyClip hands the current clip to the scanner. The scanner
// reads image.ZR as "no clip", so an empty clip is never passed
// down: draws check for it instead.
func (c *Canvas) applyClip() {
	if c.current.clip == c.bounds() || c.current.clip.Empty() {
		c.scanner.SetClip(image.ZR)
		return
	}
	c.scanner.SetClip(c.current.clip)
}

// strokeWidth returns the stroke width in device space.
// A zero width is a hairline, one pixel wide whatever the transform.
func (c *Canvas) strokeWidth(pt paint.Paint) fixed.Int26_6 {
	if pt.StrokeWidth <= 0 {
		return 64
	}
	return fixed.Int26_6(float64(pt.StrokeWidth) * c.current.matrix.ScaleFactor() * 64)
}

// DrawPath fills and/or strokes p, according to the style of pt.
func (c *Canvas) DrawPath(p shape.Path, pt paint.Paint) {
	if len(p) == 0 || pt.Color.Alpha() == 0 || c.current.clip.Empty() {
		return
	}
	if pt.Fills() {
		c.filler.Clear()
		c.filler.SetWinding(true)
		p.AddTo(c.filler, c.current.matrix)
		c.filler.SetColor(pt.Color)
		c.filler.Draw()
	}
	if pt.Strokes() {
		c.dasher.Clear()
		c.dasher.SetStroke(c.strokeWidth(pt), miterLimit, rasterx.ButtCap, rasterx.ButtCap,
			rasterx.FlatGap, rasterx.Miter, nil, 0)
		p.AddTo(c.dasher, c.current.matrix)
		c.dasher.SetColor(pt.Color)
		c.dasher.Draw()
	}
}

func (c *Canvas) DrawCircle(cx, cy, radius float64, pt paint.Paint) {
	var p shape.Path
	p.AddCircle(cx, cy, radius)
	c.DrawPath(p, pt)
}

func (c *Canvas) DrawRect(r shape.Rect, pt paint.Paint) {
	var p shape.Path
	p.AddRect(r)
	c.DrawPath(p, pt)
}

func (c *Canvas) DrawRoundRect(r shape.Rect, rx, ry float64, pt paint.Paint) {
	var p shape.Path
	p.AddRoundRect(r, rx, ry)
	c.DrawPath(p, pt)
}

// DrawArc draws an arc of the ellipse inscribed in oval. See shape.Path.AddArc.
func (c *Canvas) DrawArc(oval shape.Rect, startAngle, sweepAngle float64, useCenter bool, pt paint.Paint) {
	var p shape.Path
	p.AddArc(oval, startAngle, sweepAngle, useCenter)
	c.DrawPath(p, pt)
}

// DrawBitmap composites src over the canvas, after mapping
// its pixels with m and then the current transform.
func (c *Canvas) DrawBitmap(src *bitmap.Bitmap, m shape.Matrix2D) {
	if c.current.clip.Empty() {
		return
	}
	dstMin := c.bitmap.Image().Bounds().Min
	sr := src.Image().Bounds()
	full := shape.Identity.Translate(float64(dstMin.X), float64(dstMin.Y)).
		Mult(c.current.matrix).
		Mult(m).
		Translate(-float64(sr.Min.X), -float64(sr.Min.Y))
	aff := f64.Aff3{full.A, full.C, full.E, full.B, full.D, full.F}
	opts := &draw.Options{DstMask: c.current.clip.Add(dstMin)}
	c.interpolator.Transform(c.bitmap.Image(), aff, src.Image(), sr, draw.Over, opts)
}

// Save pushes the current transform and clip, and
// returns the resulting depth of the stack.
func (c *Canvas) Save() int {
	c.stack = append(c.stack, c.current)
	return len(c.stack)
}

// Restore reverts the transform and clip to the last saved state.
func (c *Canvas) Restore() error {
	if len(c.stack) == 0 {
		return ErrRestoreUnderflow
	}
	previousClip := c.current.clip
	c.current = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	if c.current.clip != previousClip {
		c.applyClip()
	}
	return nil
}

// SaveCount returns the number of saved states.
func (c *Canvas) SaveCount() int { return len(c.stack) }

// Matrix returns the current transform.
func (c *Canvas) Matrix() shape.Matrix2D { return c.current.matrix }

// Clip returns the current clip rectangle, in bitmap coordinates.
func (c *Canvas) Clip() image.Rectangle { return c.current.clip }

func (c *Canvas) Translate(dx, dy float64) {
	c.current.matrix = c.current.matrix.Translate(dx, dy)
}

// Rotate turns the coordinate system clockwise, by degrees.
func (c *Canvas) Rotate(degrees float64) {
	c.current.matrix = c.current.matrix.Rotate(degrees * math.Pi / 180)
}

func (c *Canvas) Scale(sx, sy float64) {
	c.current.matrix = c.current.matrix.Scale(sx, sy)
}

// ClipRect intersects the clip with r, given in the current
// coordinate system. Under rotation the clip is the bounding box
// of the transformed rectangle.
func (c *Canvas) ClipRect(r shape.Rect) {
	r = r.Sort()
	m := c.current.matrix
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, corner := range [4][2]float64{
		{r.Left, r.Top}, {r.Right, r.Top}, {r.Right, r.Bottom}, {r.Left, r.Bottom},
	} {
		x, y := m.Transform(corner[0], corner[1])
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	device := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
	c.current.clip = c.current.clip.Intersect(device)
	c.applyClip()
}
