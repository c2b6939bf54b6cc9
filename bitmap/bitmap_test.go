package bitmap

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, tc := range []struct {
		config Config
		want   image.Image
	}{
		{ARGB8888, &image.RGBA{}},
		{Alpha8, &image.Alpha{}},
		{RGBAF16, &image.RGBA64{}},
	} {
		b, err := New(30, 20, tc.config)
		require.NoError(t, err, tc.config.String())
		assert.Equal(t, 30, b.Width())
		assert.Equal(t, 20, b.Height())
		assert.Equal(t, tc.config, b.Config())
		assert.IsType(t, tc.want, b.Image())

		_, _, _, a := b.At(29, 19).RGBA()
		assert.Zero(t, a, "new bitmap should be transparent")
	}
}

func TestNewInvalid(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-3, 5}} {
		_, err := New(size[0], size[1], ARGB8888)
		assert.ErrorIs(t, err, ErrInvalidSize)
	}

	_, err := New(4, 4, Config(42))
	assert.ErrorIs(t, err, ErrUnsupportedConfig)
}

func TestFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	b, err := FromImage(img)
	require.NoError(t, err)
	assert.Equal(t, ARGB8888, b.Config())
	assert.Same(t, img, b.Image())

	// no copy: writes through the bitmap are visible in img
	b.Erase(color.RGBA{R: 0xff, A: 0xff})
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, img.RGBAAt(3, 3))

	_, err = FromImage(nil)
	assert.ErrorIs(t, err, ErrNilBitmap)

	for _, img := range []draw.Image{(*image.RGBA)(nil), (*image.Alpha)(nil), (*image.RGBA64)(nil)} {
		_, err = FromImage(img)
		assert.ErrorIs(t, err, ErrNilBitmap, "%T", img)
	}

	_, err = FromImage(image.NewGray(image.Rect(0, 0, 2, 2)))
	assert.ErrorIs(t, err, ErrUnsupportedConfig)

	_, err = FromImage(image.NewRGBA(image.Rect(0, 0, 0, 2)))
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestAtIsOriginRelative(t *testing.T) {
	parent := image.NewRGBA(image.Rect(0, 0, 20, 20))
	parent.SetRGBA(10, 12, color.RGBA{G: 0xff, A: 0xff})
	sub := parent.SubImage(image.Rect(10, 10, 20, 20)).(*image.RGBA)

	b, err := FromImage(sub)
	require.NoError(t, err)
	assert.Equal(t, 10, b.Width())
	assert.Equal(t, color.RGBA{G: 0xff, A: 0xff}, b.At(0, 2))
}
