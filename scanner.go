package facescan

import (
	"errors"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// Validation errors reported by NewScanner before any window is enumerated.
var (
	ErrInvalidPatchSize = errors.New("patch size dimensions must be positive")
	ErrInvalidStride    = errors.New("strides must be positive")
	ErrInvalidScale     = errors.New("scale factor must be a positive number")
)

// DefaultStride is the window step size used when no explicit stride is provided.
const DefaultStride = 2

// Scanner holds the fixed parameters of a sliding-window scan: the patch
// size the downstream feature extractor expects, the row and column strides
// and the scale factor applied to the extraction window.
type Scanner struct {
	patchWidth  int
	patchHeight int
	colStride   int
	rowStride   int
	scale       float64
}

// NewScanner validates the scan parameters and returns a new Scanner.
// The patch size is the shape every yielded patch is guaranteed to have;
// the extraction window itself is scale*patchWidth x scale*patchHeight,
// rounded to the nearest integer.
func NewScanner(patchWidth, patchHeight, colStride, rowStride int, scale float64) (*Scanner, error) {
	if patchWidth <= 0 || patchHeight <= 0 {
		return nil, ErrInvalidPatchSize
	}
	if colStride <= 0 || rowStride <= 0 {
		return nil, ErrInvalidStride
	}
	if math.IsNaN(scale) || scale <= 0 {
		return nil, ErrInvalidScale
	}
	return &Scanner{
		patchWidth:  patchWidth,
		patchHeight: patchHeight,
		colStride:   colStride,
		rowStride:   rowStride,
		scale:       scale,
	}, nil
}

// PatchSize returns the width and height every yielded patch has.
func (s *Scanner) PatchSize() (int, int) {
	return s.patchWidth, s.patchHeight
}

// WindowSize returns the dimensions of the extraction window,
// i.e. the patch size multiplied by the scale factor.
func (s *Scanner) WindowSize() (int, int) {
	if s.scale == 1.0 {
		return s.patchWidth, s.patchHeight
	}
	w := int(math.Round(s.scale * float64(s.patchWidth)))
	h := int(math.Round(s.scale * float64(s.patchHeight)))
	return w, h
}

// Scan returns a lazy iterator over all the valid window placements of the
// source image. The windows are visited in row-major ascending order: the
// row offsets range over [0, imgHeight-winHeight) stepped by the row stride
// and the column offsets over [0, imgWidth-winWidth) stepped by the column
// stride. An image smaller than the window yields an empty sequence.
func (s *Scanner) Scan(img *image.NRGBA) *Scan {
	winW, winH := s.WindowSize()
	sc := &Scan{
		scanner: s,
		src:     img,
		winW:    winW,
		winH:    winH,
		maxX:    img.Bounds().Dx() - winW,
		maxY:    img.Bounds().Dy() - winH,
	}
	return sc
}

// Scan iterates over the window placements of one image. It advances plain
// loop counters on each call, retains no per-window state and can be
// rewound with Reset. The source image is never mutated.
type Scan struct {
	scanner *Scanner
	src     *image.NRGBA
	winW    int
	winH    int
	maxX    int
	maxY    int
	x       int
	y       int
}

// Next returns the position of the next window and its patch content.
// The position is expressed as an image.Point where X is the column and Y
// the row of the window's top-left corner within the source image. The
// returned patch has exactly the scanner's patch size: when the scale
// factor is not 1 the extracted window is resampled with a Lanczos filter.
// The third return value is false once the sequence is exhausted.
func (sc *Scan) Next() (image.Point, *image.NRGBA, bool) {
	if sc.maxX <= 0 || sc.maxY <= 0 || sc.y >= sc.maxY {
		return image.Point{}, nil, false
	}
	pos := image.Point{X: sc.x, Y: sc.y}
	patch := sc.extract(sc.x, sc.y)

	sc.x += sc.scanner.colStride
	if sc.x >= sc.maxX {
		sc.x = 0
		sc.y += sc.scanner.rowStride
	}
	return pos, patch, true
}

// Reset rewinds the iterator to the first window. Scanning the same image
// twice with identical parameters yields identical sequences.
func (sc *Scan) Reset() {
	sc.x, sc.y = 0, 0
}

// Count returns the number of windows the scan yields without iterating.
func (sc *Scan) Count() int {
	if sc.maxX <= 0 || sc.maxY <= 0 {
		return 0
	}
	cols := ceilDiv(sc.maxX, sc.scanner.colStride)
	rows := ceilDiv(sc.maxY, sc.scanner.rowStride)
	return cols * rows
}

// extract copies the winW x winH window anchored at (x, y) into a fresh
// image and resamples it back to the patch size when the window was scaled.
func (sc *Scan) extract(x, y int) *image.NRGBA {
	patch := cropNRGBA(sc.src, image.Rect(x, y, x+sc.winW, y+sc.winH))
	if sc.winW != sc.scanner.patchWidth || sc.winH != sc.scanner.patchHeight {
		patch = imaging.Resize(patch, sc.scanner.patchWidth, sc.scanner.patchHeight, imaging.Lanczos)
	}
	return patch
}

// cropNRGBA copies the r region of src into a new image anchored at (0, 0).
func cropNRGBA(src *image.NRGBA, r image.Rectangle) *image.NRGBA {
	r = r.Add(src.Bounds().Min)
	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	rowSize := r.Dx() * 4

	for dstY := 0; dstY < r.Dy(); dstY++ {
		di := dst.PixOffset(0, dstY)
		si := src.PixOffset(r.Min.X, r.Min.Y+dstY)
		copy(dst.Pix[di:di+rowSize], src.Pix[si:si+rowSize])
	}
	return dst
}

// ceilDiv returns the ceiling of a/b for positive operands.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
