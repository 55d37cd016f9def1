package facescan

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImage_ImgToNRGBAKeepsZeroBasedNRGBA(t *testing.T) {
	src := makeTestImage(8, 6)
	dst := imgToNRGBA(src)

	// A zero based NRGBA image is passed through untouched.
	assert.Equal(t, src, dst)
}

func TestImage_ImgToNRGBATranslatesBounds(t *testing.T) {
	src := image.NewNRGBA(image.Rect(-2, -3, 6, 5))
	for y := src.Bounds().Min.Y; y < src.Bounds().Max.Y; y++ {
		for x := src.Bounds().Min.X; x < src.Bounds().Max.X; x++ {
			v := uint8((x + 10) * (y + 10))
			src.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 0xff})
		}
	}

	dst := imgToNRGBA(src)
	assert.Equal(t, image.Rect(0, 0, 8, 8), dst.Bounds())

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := src.NRGBAAt(x-2, y-3)
			assert.Equal(t, want, dst.NRGBAAt(x, y))
		}
	}
}

func TestImage_ImgToNRGBAConvertsRGBA(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 5, 5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			src.SetRGBA(x, y, color.RGBA{R: uint8(x * 40), G: uint8(y * 40), B: 0x7f, A: 0xff})
		}
	}

	dst := imgToNRGBA(src)
	assert.Equal(t, image.Rect(0, 0, 5, 5), dst.Bounds())

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			assert.Equal(t, want, dst.NRGBAAt(x, y))
		}
	}
}

func TestImage_EncodeDefaultsToJpeg(t *testing.T) {
	var buf bytes.Buffer
	err := encodeImg(&buf, makeTestImage(16, 12))
	assert.NoError(t, err)

	cfg, format, err := image.DecodeConfig(&buf)
	assert.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 16, cfg.Width)
	assert.Equal(t, 12, cfg.Height)
}
