// Implements the fixed size pixel surfaces
// drawn on by the raster canvas.
package bitmap

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

var (
	// ErrInvalidSize is returned when a bitmap would have a
	// non positive width or height.
	ErrInvalidSize = errors.New("bitmap: width and height must be > 0")
	// ErrUnsupportedConfig is returned for an unknown Config or an
	// image type with no matching Config.
	ErrUnsupportedConfig = errors.New("bitmap: unsupported config")
	// ErrNilBitmap is returned when a nil surface is given.
	ErrNilBitmap = errors.New("bitmap: nil bitmap")
)

// Config describes how the pixels of a bitmap are stored.
type Config uint8

const (
	// ARGB8888 stores 8 bits per channel, with alpha. Backed by *image.RGBA.
	ARGB8888 Config = iota
	// Alpha8 stores only an 8 bit alpha channel. Backed by *image.Alpha.
	Alpha8
	// RGBAF16 stores 16 bits per channel. Backed by *image.RGBA64.
	RGBAF16
)

func (c Config) String() string {
	switch c {
	case ARGB8888:
		return "ARGB_8888"
	case Alpha8:
		return "ALPHA_8"
	case RGBAF16:
		return "RGBA_F16"
	default:
		return fmt.Sprintf("Config(%d)", uint8(c))
	}
}

// Bitmap is a fixed size grid of pixels with a color configuration.
// Coordinates given to At are relative to the top left corner
// of the bitmap, whatever the bounds of the underlying image.
type Bitmap struct {
	img    draw.Image
	config Config
}

// New allocates a blank (fully transparent) bitmap.
func New(width, height int, config Config) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	r := image.Rect(0, 0, width, height)
	var img draw.Image
	switch config {
	case ARGB8888:
		img = image.NewRGBA(r)
	case Alpha8:
		img = image.NewAlpha(r)
	case RGBAF16:
		img = image.NewRGBA64(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfig, config)
	}
	return &Bitmap{img: img, config: config}, nil
}

// FromImage wraps an existing image, without copying its pixels.
// Drawing on the returned bitmap mutates img.
func FromImage(img draw.Image) (*Bitmap, error) {
	if img == nil {
		return nil, ErrNilBitmap
	}
	var (
		config Config
		isNil  bool
	)
	switch m := img.(type) {
	case *image.RGBA:
		config, isNil = ARGB8888, m == nil
	case *image.Alpha:
		config, isNil = Alpha8, m == nil
	case *image.RGBA64:
		config, isNil = RGBAF16, m == nil
	default:
		return nil, fmt.Errorf("%w: image type %T", ErrUnsupportedConfig, img)
	}
	if isNil {
		return nil, ErrNilBitmap
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, b.Dx(), b.Dy())
	}
	return &Bitmap{img: img, config: config}, nil
}

func (b *Bitmap) Width() int { return b.img.Bounds().Dx() }

func (b *Bitmap) Height() int { return b.img.Bounds().Dy() }

func (b *Bitmap) Config() Config { return b.config }

// Image returns the underlying image. Its bounds may not start at the origin.
func (b *Bitmap) Image() draw.Image { return b.img }

// At returns the color of the pixel (x, y), relative to the top left corner.
func (b *Bitmap) At(x, y int) color.Color {
	min := b.img.Bounds().Min
	return b.img.At(min.X+x, min.Y+y)
}

// Erase sets every pixel to c, replacing the previous content.
func (b *Bitmap) Erase(c color.Color) {
	draw.Draw(b.img, b.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}
