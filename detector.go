package facescan

import (
	"image"

	"github.com/pkg/errors"
)

// FeatureExtractor converts a fixed-size patch into a fixed-length
// feature vector. Implementations must not retain the patch.
type FeatureExtractor interface {
	Extract(patch *image.NRGBA) []float64
}

// Classifier scores a feature vector. Higher scores mean more face-like;
// the detector thresholds the score into a binary label.
type Classifier interface {
	Classify(features []float64) (float64, error)
}

// PatchClassifier scores a patch directly, for engines which carry their
// own internal feature pipeline.
type PatchClassifier interface {
	ClassifyPatch(patch *image.NRGBA) (float64, error)
}

// Detection is a single positively classified window.
type Detection struct {
	// Point is the window's top-left corner in source image coordinates.
	Point image.Point
	// Rect is the window footprint in source image coordinates,
	// scale factor applied.
	Rect image.Rectangle
	// Scale is the scale factor the window was extracted at.
	Scale float64
	// Score is the raw classifier score.
	Score float64
}

// Detector drives the scan-and-classify loop. All of its state is provided
// explicitly through the struct fields; the detector retains nothing
// between invocations. Either a PatchClassifier or an Extractor/Classifier
// pair must be supplied. The windows of each configured scale are scanned
// independently and the per-scale results concatenated: the detector does
// not merge or suppress overlapping windows.
type Detector struct {
	PatchWidth  int
	PatchHeight int
	ColStride   int
	RowStride   int
	Scales      []float64
	Threshold   float64

	Extractor  FeatureExtractor
	Classifier Classifier
	Patch      PatchClassifier
}

// Detect scans the image at every configured scale (1.0 when none is set)
// and returns the windows whose score reached the detector threshold.
func (d *Detector) Detect(img *image.NRGBA) ([]Detection, error) {
	scales := d.Scales
	if len(scales) == 0 {
		scales = []float64{1.0}
	}

	var dets []Detection
	for _, scale := range scales {
		res, err := d.DetectAt(img, scale)
		if err != nil {
			return nil, err
		}
		dets = append(dets, res...)
	}
	return dets, nil
}

// DetectAt scans the image at a single scale.
func (d *Detector) DetectAt(img *image.NRGBA, scale float64) ([]Detection, error) {
	if d.Patch == nil && (d.Extractor == nil || d.Classifier == nil) {
		return nil, errors.New("no classifier has been configured")
	}

	s, err := NewScanner(d.PatchWidth, d.PatchHeight, d.colStride(), d.rowStride(), scale)
	if err != nil {
		return nil, err
	}
	winW, winH := s.WindowSize()

	var dets []Detection
	scan := s.Scan(img)
	for {
		pos, patch, ok := scan.Next()
		if !ok {
			break
		}
		score, err := d.score(patch)
		if err != nil {
			return nil, errors.Wrapf(err, "could not classify the window at (%d, %d)", pos.X, pos.Y)
		}
		if score < d.Threshold {
			continue
		}
		dets = append(dets, Detection{
			Point: pos,
			Rect:  image.Rect(pos.X, pos.Y, pos.X+winW, pos.Y+winH),
			Scale: scale,
			Score: score,
		})
	}
	return dets, nil
}

func (d *Detector) score(patch *image.NRGBA) (float64, error) {
	if d.Patch != nil {
		return d.Patch.ClassifyPatch(patch)
	}
	return d.Classifier.Classify(d.Extractor.Extract(patch))
}

func (d *Detector) colStride() int {
	if d.ColStride <= 0 {
		return DefaultStride
	}
	return d.ColStride
}

func (d *Detector) rowStride() int {
	if d.RowStride <= 0 {
		return DefaultStride
	}
	return d.RowStride
}

// PixelExtractor is the baseline feature extractor: it flattens the patch
// into mean-centered luminance values, scaled to the -1..1 range.
type PixelExtractor struct{}

// Extract implements the FeatureExtractor interface.
func (PixelExtractor) Extract(patch *image.NRGBA) []float64 {
	gray := rgbToGrayscale(patch)
	features := make([]float64, len(gray))
	if len(gray) == 0 {
		return features
	}

	var mean float64
	for _, v := range gray {
		mean += float64(v)
	}
	mean /= float64(len(gray))

	for i, v := range gray {
		features[i] = (float64(v) - mean) / 255.0
	}
	return features
}
