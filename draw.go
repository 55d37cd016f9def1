package facescan

import (
	"image"
	"image/color"
)

// defaultMarkThickness is the border width of the detection rectangles.
const defaultMarkThickness = 2

// DrawDetections burns the detection rectangles into a copy of the source
// image and returns it. The source image is left untouched.
func DrawDetections(src *image.NRGBA, dets []Detection, col color.NRGBA, thickness int) *image.NRGBA {
	if thickness <= 0 {
		thickness = defaultMarkThickness
	}
	dst := cropNRGBA(src, src.Bounds().Sub(src.Bounds().Min))

	for _, det := range dets {
		drawRect(dst, det.Rect, col, thickness)
	}
	return dst
}

// drawRect draws a hollow rectangle clipped to the image bounds.
func drawRect(dst *image.NRGBA, r image.Rectangle, col color.NRGBA, thickness int) {
	top := image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+thickness)
	bottom := image.Rect(r.Min.X, r.Max.Y-thickness, r.Max.X, r.Max.Y)
	left := image.Rect(r.Min.X, r.Min.Y, r.Min.X+thickness, r.Max.Y)
	right := image.Rect(r.Max.X-thickness, r.Min.Y, r.Max.X, r.Max.Y)

	for _, edge := range []image.Rectangle{top, bottom, left, right} {
		fillRect(dst, edge.Intersect(dst.Bounds()), col)
	}
}

// fillRect fills the r region of dst with a solid color.
func fillRect(dst *image.NRGBA, r image.Rectangle, col color.NRGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.SetNRGBA(x, y, col)
		}
	}
}
