// Builds the geometry handed to the raster canvas: paths made of
// fixed point segments, the affine matrix applied when replaying
// them, and the shapes the painter reduces to paths.
package shape

import (
	"fmt"
	"strings"

	"golang.org/x/image/math/fixed"
)

// Adder receives the segments of a path being replayed.
// The rasterx Filler and Dasher both satisfy it, and so does *Path.
type Adder interface {
	Start(a fixed.Point26_6)
	Line(b fixed.Point26_6)
	QuadBezier(b, c fixed.Point26_6)
	CubeBezier(b, c, d fixed.Point26_6)
	// Stop ends the current curve, joining it to its first point
	// when closeLoop is set.
	Stop(closeLoop bool)
}

// Operation is one segment of a Path.
type Operation interface {
	// replay sends the segment to d, with points mapped by m
	replay(d Adder, m Matrix2D)
}

type MoveTo fixed.Point26_6

type LineTo fixed.Point26_6

// QuadTo holds the control point, then the end point.
type QuadTo [2]fixed.Point26_6

// CubicTo holds both control points, then the end point.
type CubicTo [3]fixed.Point26_6

type Close struct{}

func (op MoveTo) replay(d Adder, m Matrix2D) {
	// the previous curve, if any, stays open
	d.Stop(false)
	d.Start(m.TFixed(fixed.Point26_6(op)))
}

func (op LineTo) replay(d Adder, m Matrix2D) {
	d.Line(m.TFixed(fixed.Point26_6(op)))
}

func (op QuadTo) replay(d Adder, m Matrix2D) {
	d.QuadBezier(m.TFixed(op[0]), m.TFixed(op[1]))
}

func (op CubicTo) replay(d Adder, m Matrix2D) {
	d.CubeBezier(m.TFixed(op[0]), m.TFixed(op[1]), m.TFixed(op[2]))
}

func (Close) replay(d Adder, _ Matrix2D) { d.Stop(true) }

// Path is the outline of a shape, in user coordinates.
// The zero value is an empty path, ready to use.
type Path []Operation

// AddTo replays the path on q, transforming every point by m.
// The last curve is left open unless the path closes it.
func (p Path) AddTo(q Adder, m Matrix2D) {
	for _, op := range p {
		op.replay(q, m)
	}
	q.Stop(false)
}

func px(v fixed.Int26_6) float32 { return float32(v) / 64 }

// ToSVGPath formats the path with SVG path commands, in pixels.
func (p Path) ToSVGPath() string {
	var sb strings.Builder
	for i, op := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch op := op.(type) {
		case MoveTo:
			fmt.Fprintf(&sb, "M%4.3f,%4.3f", px(op.X), px(op.Y))
		case LineTo:
			fmt.Fprintf(&sb, "L%4.3f,%4.3f", px(op.X), px(op.Y))
		case QuadTo:
			fmt.Fprintf(&sb, "Q%4.3f,%4.3f,%4.3f,%4.3f", px(op[0].X), px(op[0].Y), px(op[1].X), px(op[1].Y))
		case CubicTo:
			fmt.Fprintf(&sb, "C%4.3f,%4.3f,%4.3f,%4.3f,%4.3f,%4.3f",
				px(op[0].X), px(op[0].Y), px(op[1].X), px(op[1].Y), px(op[2].X), px(op[2].Y))
		case Close:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

func (p Path) String() string { return p.ToSVGPath() }

// Clear empties the path, keeping its storage.
func (p *Path) Clear() { *p = (*p)[:0] }

// Start, Line, QuadBezier, CubeBezier and Stop make *Path an Adder,
// so glyph outlines and arcs can be recorded as they are generated.

func (p *Path) Start(a fixed.Point26_6) { *p = append(*p, MoveTo(a)) }

func (p *Path) Line(b fixed.Point26_6) { *p = append(*p, LineTo(b)) }

func (p *Path) QuadBezier(b, c fixed.Point26_6) { *p = append(*p, QuadTo{b, c}) }

func (p *Path) CubeBezier(b, c, d fixed.Point26_6) { *p = append(*p, CubicTo{b, c, d}) }

// Stop records a Close when closeLoop is set; an open end needs no operation.
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// MoveTo starts a new curve at (x, y).
func (p *Path) MoveTo(x, y float64) { p.Start(toFixedP(x, y)) }

// LineTo adds a line to (x, y).
func (p *Path) LineTo(x, y float64) { p.Line(toFixedP(x, y)) }

// Close joins the current curve to its start point.
func (p *Path) Close() { p.Stop(true) }
