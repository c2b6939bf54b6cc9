// Package painter provides a chainable helper drawing shapes and text
// on a bitmap, used to render icons and number graphics.
//
//	p, err := painter.New(100, 100, bitmap.ARGB8888)
//	if err != nil {
//		return err
//	}
//	p.DrawCircle(40, 0xFF2196F3).
//		DrawBorderedCircle(40, 4, 0xFF0D47A1).
//		DrawText("7", 38, 62, 36, paint.White)
//	if err := p.Err(); err != nil {
//		return err
//	}
//
// Every draw operation paints with the arguments it is given and then
// resets the paint state to its defaults: callers must not rely on a
// color or style set before a draw call surviving it.
//
// A Painter is not safe for concurrent use.
package painter

import (
	"fmt"
	"math"

	"github.com/numco/objectpainter/bitmap"
	"github.com/numco/objectpainter/paint"
	"github.com/numco/objectpainter/raster"
	"github.com/numco/objectpainter/shape"
)

// Painter owns a bitmap and the canvas drawing on it.
type Painter struct {
	bitmap *bitmap.Bitmap
	canvas *raster.Canvas
	paint  paint.Paint

	centerX, centerY float64

	cfg config
	err error // first error recorded by a chained call
}

// New returns a painter drawing on a new blank bitmap.
func New(width, height int, cfg bitmap.Config, opts ...Option) (*Painter, error) {
	b, err := bitmap.New(width, height, cfg)
	if err != nil {
		return nil, fmt.Errorf("painter: %w", err)
	}
	return NewFromBitmap(b, opts...)
}

// NewFromBitmap returns a painter drawing directly on b (no copy is made).
func NewFromBitmap(b *bitmap.Bitmap, opts ...Option) (*Painter, error) {
	if b == nil {
		return nil, fmt.Errorf("painter: %w", bitmap.ErrNilBitmap)
	}
	p := &Painter{}
	for _, opt := range opts {
		opt(&p.cfg)
	}
	p.bind(b)
	return p, nil
}

// bind replaces the surface, the canvas and the center point,
// and resets the paint state.
func (p *Painter) bind(b *bitmap.Bitmap) {
	p.bitmap = b
	p.canvas = raster.NewCanvas(b, p.cfg.canvas...)
	p.centerX = math.Ceil(float64(b.Width()) / 2)
	p.centerY = math.Ceil(float64(b.Height()) / 2)
	p.paint = paint.Default()
}

// fail records err, if it is the first one, and returns p.
func (p *Painter) fail(err error) *Painter {
	Logger().Warn("painter: operation failed", "err", err)
	if p.err == nil {
		p.err = err
	}
	return p
}

// Err returns the first error recorded by a chained call, or nil.
func (p *Painter) Err() error { return p.err }

// draw sets the paint state to pt for the duration of one canvas
// operation, then resets it.
func (p *Painter) draw(pt paint.Paint, op func(pt paint.Paint)) *Painter {
	p.paint = pt
	op(p.paint)
	return p.ResetPaintParameters()
}

// borderRadius returns the radius at which a border of the given
// thickness is stroked, so that its outer edge is close to radius.
func borderRadius(radius, thickness int) float64 {
	return math.Abs(math.Ceil(float64(radius) - float64(thickness)/2))
}

// borderBounds insets a rectangle by half the thickness.
// The right and bottom edges go through math.Abs, which inverts
// the rectangle when they are smaller than half the thickness.
func borderBounds(left, top, right, bottom float64, thickness int) shape.Rect {
	half := float64(thickness) / 2
	return shape.Rect{
		Left:   left + half,
		Top:    top + half,
		Right:  math.Abs(right - half),
		Bottom: math.Abs(bottom - half),
	}
}

// DrawCircle fills a circle centered on the center point.
func (p *Painter) DrawCircle(radius int, color paint.Color) *Painter {
	return p.DrawCircleAt(p.centerX, p.centerY, radius, color)
}

// DrawCircleAt fills a circle centered on (cx, cy).
func (p *Painter) DrawCircleAt(cx, cy float64, radius int, color paint.Color) *Painter {
	return p.draw(paint.Filled(color), func(pt paint.Paint) {
		p.canvas.DrawCircle(cx, cy, float64(radius), pt)
	})
}

// DrawBorderedCircle strokes a circle centered on the center point.
// The border is drawn inside radius.
func (p *Painter) DrawBorderedCircle(radius, thickness int, color paint.Color) *Painter {
	return p.DrawBorderedCircleAt(p.centerX, p.centerY, radius, thickness, color)
}

// DrawBorderedCircleAt strokes a circle centered on (cx, cy),
// with radius abs(ceil(radius - thickness/2)).
func (p *Painter) DrawBorderedCircleAt(cx, cy float64, radius, thickness int, color paint.Color) *Painter {
	return p.draw(paint.Stroked(color, thickness), func(pt paint.Paint) {
		p.canvas.DrawCircle(cx, cy, borderRadius(radius, thickness), pt)
	})
}

func (p *Painter) DrawRectangle(left, top, right, bottom float64, color paint.Color) *Painter {
	return p.draw(paint.Filled(color), func(pt paint.Paint) {
		p.canvas.DrawRect(shape.Rect{Left: left, Top: top, Right: right, Bottom: bottom}, pt)
	})
}

// DrawBorderedRectangle strokes a rectangle inset by thickness/2.
func (p *Painter) DrawBorderedRectangle(left, top, right, bottom float64, thickness int, color paint.Color) *Painter {
	return p.draw(paint.Stroked(color, thickness), func(pt paint.Paint) {
		p.canvas.DrawRect(borderBounds(left, top, right, bottom, thickness), pt)
	})
}

// DrawRoundedRectangle fills a rectangle with elliptical corners of radii rx, ry.
func (p *Painter) DrawRoundedRectangle(left, top, right, bottom, rx, ry float64, color paint.Color) *Painter {
	return p.draw(paint.Filled(color), func(pt paint.Paint) {
		p.canvas.DrawRoundRect(shape.Rect{Left: left, Top: top, Right: right, Bottom: bottom}, rx, ry, pt)
	})
}

// DrawBorderedRoundedRectangle strokes a rounded rectangle inset by thickness/2.
func (p *Painter) DrawBorderedRoundedRectangle(left, top, right, bottom, rx, ry float64, thickness int, color paint.Color) *Painter {
	return p.draw(paint.Stroked(color, thickness), func(pt paint.Paint) {
		p.canvas.DrawRoundRect(borderBounds(left, top, right, bottom, thickness), rx, ry, pt)
	})
}

// DrawText fills text with its baseline starting at (x, y).
// Nothing is drawn if the text cannot be laid out.
func (p *Painter) DrawText(text string, x, y float64, textSize int, color paint.Color) *Painter {
	pt := paint.Filled(color)
	pt.TextSize = textSize
	var err error
	p.draw(pt, func(pt paint.Paint) {
		err = p.canvas.DrawText(text, x, y, pt)
	})
	if err != nil {
		return p.fail(fmt.Errorf("painter: text %q: %w", text, err))
	}
	return p
}

// MeasureText returns the advance width of text drawn at textSize,
// to center a number before calling DrawText.
func (p *Painter) MeasureText(text string, textSize int) (float64, error) {
	return p.canvas.MeasureText(text, textSize)
}

// DrawArc fills an arc of the oval (left, top, right, bottom).
// Angles are in degrees, clockwise from 3 o'clock. With useCenter
// the arc is closed through the center of the oval, drawing a wedge.
func (p *Painter) DrawArc(left, top, right, bottom, startAngle, sweepAngle float64, useCenter bool, color paint.Color) *Painter {
	return p.draw(paint.Filled(color), func(pt paint.Paint) {
		p.canvas.DrawArc(shape.Rect{Left: left, Top: top, Right: right, Bottom: bottom}, startAngle, sweepAngle, useCenter, pt)
	})
}

// DrawBorderedArc strokes an arc, without inset.
func (p *Painter) DrawBorderedArc(left, top, right, bottom, startAngle, sweepAngle float64, useCenter bool, strokeWidth int, color paint.Color) *Painter {
	return p.draw(paint.Stroked(color, strokeWidth), func(pt paint.Paint) {
		p.canvas.DrawArc(shape.Rect{Left: left, Top: top, Right: right, Bottom: bottom}, startAngle, sweepAngle, useCenter, pt)
	})
}

// DrawPath draws path with the current paint state, then resets it.
func (p *Painter) DrawPath(path shape.Path) *Painter {
	return p.draw(p.paint, func(pt paint.Paint) {
		p.canvas.DrawPath(path, pt)
	})
}

// Scale replaces the bitmap by a copy scaled by (sx, sy), of size
// ceil(width*sx) x ceil(height*sy) and the same config.
// The previous bitmap is dropped. Non positive factors record an error
// and leave the painter unchanged.
func (p *Painter) Scale(sx, sy float64) *Painter {
	old := p.bitmap
	w := int(math.Ceil(float64(old.Width()) * sx))
	h := int(math.Ceil(float64(old.Height()) * sy))
	scaled, err := bitmap.New(w, h, old.Config())
	if err != nil {
		return p.fail(fmt.Errorf("painter: scale by (%g, %g): %w", sx, sy, err))
	}
	p.bind(scaled)
	p.canvas.DrawBitmap(old, shape.Identity.Scale(sx, sy))
	Logger().Debug("painter: scaled bitmap",
		"from", fmt.Sprintf("%dx%d", old.Width(), old.Height()),
		"to", fmt.Sprintf("%dx%d", w, h))
	return p.ResetPaintParameters()
}

// Save pushes the canvas transform and clip; see Restore.
func (p *Painter) Save() *Painter {
	p.canvas.Save()
	return p
}

// Restore pops the state pushed by the matching Save.
// An unbalanced call records raster.ErrRestoreUnderflow.
func (p *Painter) Restore() *Painter {
	if err := p.canvas.Restore(); err != nil {
		return p.fail(fmt.Errorf("painter: %w", err))
	}
	return p
}

// Translate moves the origin of the following draw operations.
func (p *Painter) Translate(dx, dy float64) *Painter {
	p.canvas.Translate(dx, dy)
	return p
}

// Rotate turns the following draw operations clockwise around the origin.
func (p *Painter) Rotate(degrees float64) *Painter {
	p.canvas.Rotate(degrees)
	return p
}

// ClipRect restricts the following draw operations to the given rectangle.
func (p *Painter) ClipRect(left, top, right, bottom float64) *Painter {
	p.canvas.ClipRect(shape.Rect{Left: left, Top: top, Right: right, Bottom: bottom})
	return p
}

func (p *Painter) SetColor(color paint.Color) *Painter {
	p.paint.Color = color
	return p
}

func (p *Painter) ResetColor() *Painter {
	p.paint.Color = paint.DefaultColor
	return p
}

func (p *Painter) SetStrokeWidth(strokeWidth int) *Painter {
	p.paint.StrokeWidth = strokeWidth
	return p
}

func (p *Painter) ResetStrokeWidth() *Painter {
	p.paint.StrokeWidth = paint.DefaultStrokeWidth
	return p
}

func (p *Painter) SetTextSize(textSize int) *Painter {
	p.paint.TextSize = textSize
	return p
}

func (p *Painter) ResetTextSize() *Painter {
	p.paint.TextSize = paint.DefaultTextSize
	return p
}

func (p *Painter) SetPaintStyle(style paint.Style) *Painter {
	p.paint.Style = style
	return p
}

func (p *Painter) ResetPaintStyle() *Painter {
	p.paint.Style = paint.DefaultStyle
	return p
}

// SetPaintParameters sets the four paint attributes at once.
func (p *Painter) SetPaintParameters(color paint.Color, style paint.Style, strokeWidth, textSize int) *Painter {
	p.paint = paint.Paint{Color: color, Style: style, StrokeWidth: strokeWidth, TextSize: textSize}
	return p
}

// ResetPaintParameters restores the default paint.
func (p *Painter) ResetPaintParameters() *Painter {
	p.paint = paint.Default()
	return p
}

// Paint returns a copy of the current paint state.
func (p *Painter) Paint() paint.Paint { return p.paint }

// Bitmap returns the bitmap currently drawn on.
func (p *Painter) Bitmap() *bitmap.Bitmap { return p.bitmap }

// SetBitmap replaces the surface by a new blank bitmap.
func (p *Painter) SetBitmap(width, height int, cfg bitmap.Config) *Painter {
	b, err := bitmap.New(width, height, cfg)
	if err != nil {
		return p.fail(fmt.Errorf("painter: %w", err))
	}
	return p.SetBitmapFrom(b)
}

// SetBitmapFrom replaces the surface by b. No pixels are copied.
func (p *Painter) SetBitmapFrom(b *bitmap.Bitmap) *Painter {
	if b == nil {
		return p.fail(fmt.Errorf("painter: %w", bitmap.ErrNilBitmap))
	}
	p.bind(b)
	Logger().Debug("painter: bitmap replaced",
		"width", b.Width(), "height", b.Height(), "config", b.Config().String())
	return p
}

func (p *Painter) DefaultColor() paint.Color { return paint.DefaultColor }

func (p *Painter) DefaultTextSize() int { return paint.DefaultTextSize }

func (p *Painter) DefaultStrokeWidth() int { return paint.DefaultStrokeWidth }

func (p *Painter) DefaultStyle() paint.Style { return paint.DefaultStyle }

// CenterX returns the x coordinate used by DrawCircle and DrawBorderedCircle.
func (p *Painter) CenterX() float64 { return p.centerX }

// CenterY returns the y coordinate used by DrawCircle and DrawBorderedCircle.
func (p *Painter) CenterY() float64 { return p.centerY }

// SetCenterX moves the implicit circle center; the bitmap is unaffected.
func (p *Painter) SetCenterX(x float64) { p.centerX = x }

// SetCenterY moves the implicit circle center; the bitmap is unaffected.
func (p *Painter) SetCenterY(y float64) { p.centerY = y }
