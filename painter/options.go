package painter

import (
	"github.com/numco/objectpainter/raster"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/sfnt"
)

// Option configures a Painter during creation.
// Options are kept and applied again each time the surface is replaced.
//
//	p, err := painter.New(96, 96, bitmap.ARGB8888, painter.WithFont(myFont))
type Option func(*config)

type config struct {
	canvas []raster.Option
}

// WithFont sets the font used by DrawText. The default is Go Regular.
func WithFont(f *sfnt.Font) Option {
	return func(c *config) {
		c.canvas = append(c.canvas, raster.WithFont(f))
	}
}

// WithInterpolator sets the resampling kernel used by Scale.
// The default is draw.BiLinear.
func WithInterpolator(i draw.Interpolator) Option {
	return func(c *config) {
		c.canvas = append(c.canvas, raster.WithInterpolator(i))
	}
}
