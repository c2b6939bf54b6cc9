package shape

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// This file implements the transformation from
// high level shapes to their path equivalent

// maxDx is the maximum radians a cubic splice is allowed to span
// when approximating an ellipse.
const maxDx float64 = math.Pi / 8

// toFixedP converts two floats to a fixed point.
func toFixedP(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(x * 64)
	p.Y = fixed.Int26_6(y * 64)
	return
}

// Rect is an axis aligned rectangle. Right and Bottom are not required
// to be greater than Left and Top; see Sort.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Sort returns r with Left <= Right and Top <= Bottom.
func (r Rect) Sort() Rect {
	if r.Left > r.Right {
		r.Left, r.Right = r.Right, r.Left
	}
	if r.Top > r.Bottom {
		r.Top, r.Bottom = r.Bottom, r.Top
	}
	return r
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Center returns the middle point of r.
func (r Rect) Center() (x, y float64) {
	return (r.Left + r.Right) / 2, (r.Top + r.Bottom) / 2
}

// IsEmpty returns true if r has no area.
func (r Rect) IsEmpty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// AddRect adds the closed outline of r, clockwise from the top left corner.
func (p *Path) AddRect(r Rect) {
	r = r.Sort()
	p.MoveTo(r.Left, r.Top)
	p.LineTo(r.Right, r.Top)
	p.LineTo(r.Right, r.Bottom)
	p.LineTo(r.Left, r.Bottom)
	p.Stop(true)
}

// AddRoundRect adds a rectangle with elliptical corners of radius
// rx in the x axis and ry in the y axis. Radii larger than half the
// matching side are clamped; a non positive radius gives a plain rectangle.
func (p *Path) AddRoundRect(r Rect, rx, ry float64) {
	if rx <= 0 || ry <= 0 {
		p.AddRect(r)
		return
	}
	r = r.Sort()
	if w := r.Width(); w < rx*2 {
		rx = w / 2
	}
	if h := r.Height(); h < ry*2 {
		ry = h / 2
	}

	p.MoveTo(r.Left+rx, r.Top)
	p.LineTo(r.Right-rx, r.Top)
	p.ellipseArc(r.Right-rx, r.Top+ry, rx, ry, -math.Pi/2, math.Pi/2)
	p.LineTo(r.Right, r.Bottom-ry)
	p.ellipseArc(r.Right-rx, r.Bottom-ry, rx, ry, 0, math.Pi/2)
	p.LineTo(r.Left+rx, r.Bottom)
	p.ellipseArc(r.Left+rx, r.Bottom-ry, rx, ry, math.Pi/2, math.Pi/2)
	p.LineTo(r.Left, r.Top+ry)
	p.ellipseArc(r.Left+rx, r.Top+ry, rx, ry, math.Pi, math.Pi/2)
	p.Stop(true)
}

// AddEllipse adds the closed outline of the axis aligned ellipse
// centered at (cx, cy), starting from its rightmost point.
func (p *Path) AddEllipse(cx, cy, rx, ry float64) {
	if rx <= 0 || ry <= 0 {
		return
	}
	p.MoveTo(cx+rx, cy)
	p.ellipseArc(cx, cy, rx, ry, 0, 2*math.Pi)
	p.Stop(true)
}

// AddCircle adds the closed outline of a circle.
func (p *Path) AddCircle(cx, cy, r float64) {
	p.AddEllipse(cx, cy, r, r)
}

// AddArc adds an arc of the ellipse inscribed in oval.
// Angles are in degrees, clockwise from the 3 o'clock position.
// When useCenter is true, the arc is closed through the center of the oval
// (a wedge); otherwise it is left open.
// A sweep of 360 degrees or more (in absolute value) adds the whole ellipse.
func (p *Path) AddArc(oval Rect, startAngle, sweepAngle float64, useCenter bool) {
	oval = oval.Sort()
	rx, ry := oval.Width()/2, oval.Height()/2
	if rx <= 0 || ry <= 0 || sweepAngle == 0 {
		return
	}
	cx, cy := oval.Center()
	if sweepAngle >= 360 || sweepAngle <= -360 {
		p.AddEllipse(cx, cy, rx, ry)
		return
	}

	start := startAngle * math.Pi / 180
	sweep := sweepAngle * math.Pi / 180
	sx, sy := ellipsePointAt(rx, ry, start, cx, cy)
	if useCenter {
		p.MoveTo(cx, cy)
		p.LineTo(sx, sy)
	} else {
		p.MoveTo(sx, sy)
	}
	p.ellipseArc(cx, cy, rx, ry, start, sweep)
	if useCenter {
		p.Stop(true)
	}
}

// ellipseArc appends cubic bezier curves following the ellipse from the
// parameter etaStart, spanning deltaEta radians. The current point
// is expected to be the start of the arc.
func (p *Path) ellipseArc(cx, cy, rx, ry, etaStart, deltaEta float64) {
	// Round up to determine number of cubic splines to approximate the curve
	segs := int(math.Abs(deltaEta)/maxDx) + 1
	dEta := deltaEta / float64(segs) // span of each segment
	// Approximate the ellipse using a set of cubic bezier curves by the method of
	// L. Maisonobe, "Drawing an elliptical arc using polylines, quadratic
	// or cubic Bezier curves", 2003
	// https://www.spaceroots.org/documents/elllipse/elliptical-arc.pdf
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3
	lx, ly := ellipsePointAt(rx, ry, etaStart, cx, cy)
	ldx, ldy := ellipsePrime(rx, ry, etaStart)
	for i := 1; i <= segs; i++ {
		eta := etaStart + dEta*float64(i)
		px, py := ellipsePointAt(rx, ry, eta, cx, cy)
		dx, dy := ellipsePrime(rx, ry, eta)
		p.CubeBezier(toFixedP(lx+alpha*ldx, ly+alpha*ldy),
			toFixedP(px-alpha*dx, py-alpha*dy), toFixedP(px, py))
		lx, ly, ldx, ldy = px, py, dx, dy
	}
}

// ellipsePrime gives tangent vectors for parameterized ellipse; a, b, radii, eta parameter
func ellipsePrime(a, b, eta float64) (px, py float64) {
	return -a * math.Sin(eta), b * math.Cos(eta)
}

// ellipsePointAt gives points for parameterized ellipse; a, b, radii, eta parameter, center cx, cy
func ellipsePointAt(a, b, eta, cx, cy float64) (px, py float64) {
	return cx + a*math.Cos(eta), cy + b*math.Sin(eta)
}
