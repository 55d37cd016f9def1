package facescan

import (
	"image"
	"image/color"
	"testing"
)

const imgWidth = 10
const imgHeight = 10

func TestGrayscale_EqualChannels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, imgWidth, imgHeight))
	for i := 0; i < img.Bounds().Dx(); i++ {
		for j := 0; j < img.Bounds().Dy(); j++ {
			img.Set(i, j, color.NRGBA{R: 177, G: 12, B: 93, A: 255})
		}
	}

	gray := Grayscale(img)
	for i := 0; i < gray.Bounds().Dx(); i++ {
		for j := 0; j < gray.Bounds().Dy(); j++ {
			r, g, b, _ := gray.At(i, j).RGBA()
			if r != g || r != b || g != b {
				t.Errorf("R, G, B value expected to be equal. Got %v, %v, %v", r, g, b)
			}
		}
	}
}

func TestGrayscale_PixelArray(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, imgWidth, imgHeight))
	for i := 0; i < img.Bounds().Dx(); i++ {
		for j := 0; j < img.Bounds().Dy(); j++ {
			img.Set(i, j, color.NRGBA{R: 177, G: 177, B: 177, A: 255})
		}
	}

	gray := rgbToGrayscale(img)
	if len(gray) != imgWidth*imgHeight {
		t.Errorf("Grayscale array length expected to be %v. Got %v", imgWidth*imgHeight, len(gray))
	}

	for idx, v := range gray {
		if v != 177 {
			t.Errorf("Luminance of a uniform gray pixel expected to be 177. Got %v at index %v", v, idx)
		}
	}
}
