package raster

import (
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// Option configures a Canvas during creation.
type Option func(*options)

type options struct {
	font         *sfnt.Font
	interpolator draw.Interpolator
}

// defaultFont is the Go Regular font, parsed once.
var defaultFont = sync.OnceValue(func() *sfnt.Font {
	f, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		panic("raster: parsing embedded Go Regular font: " + err.Error())
	}
	return f
})

func defaultOptions() options {
	return options{
		font:         defaultFont(),
		interpolator: draw.BiLinear,
	}
}

// WithFont sets the font used by DrawText.
// A nil font keeps the default, Go Regular.
func WithFont(f *sfnt.Font) Option {
	return func(o *options) {
		if f != nil {
			o.font = f
		}
	}
}

// WithInterpolator sets the resampling kernel used by DrawBitmap,
// for instance draw.NearestNeighbor for crisp pixel art.
// The default is draw.BiLinear.
func WithInterpolator(i draw.Interpolator) Option {
	return func(o *options) {
		if i != nil {
			o.interpolator = i
		}
	}
}
