package facescan

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

// brightCorner scores a patch by the red channel of its top-left pixel.
type brightCorner struct{}

func (brightCorner) ClassifyPatch(patch *image.NRGBA) (float64, error) {
	return float64(patch.NRGBAAt(0, 0).R) / 255.0, nil
}

// constScore accepts every window with a fixed score.
type constScore float64

func (c constScore) ClassifyPatch(_ *image.NRGBA) (float64, error) {
	return float64(c), nil
}

// vectorLen is a stub classifier scoring the feature vector by its length.
type vectorLen struct {
	gotLen int
}

func (v *vectorLen) Classify(features []float64) (float64, error) {
	v.gotLen = len(features)
	return 1.0, nil
}

func TestDetector_Threshold(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.SetNRGBA(x, y, color.NRGBA{A: 0xff})
		}
	}
	// A single bright window origin at (4, 4).
	img.SetNRGBA(4, 4, color.NRGBA{R: 0xff, A: 0xff})

	d := &Detector{
		PatchWidth:  4,
		PatchHeight: 4,
		Threshold:   0.5,
		Patch:       brightCorner{},
	}

	dets, err := d.Detect(img)
	assert.NoError(t, err)
	assert.Len(t, dets, 1)
	assert.Equal(t, image.Point{X: 4, Y: 4}, dets[0].Point)
	assert.Equal(t, image.Rect(4, 4, 8, 8), dets[0].Rect)
	assert.Equal(t, 1.0, dets[0].Scale)
	assert.Equal(t, 1.0, dets[0].Score)
}

func TestDetector_MultiScale(t *testing.T) {
	img := makeTestImage(12, 12)

	d := &Detector{
		PatchWidth:  4,
		PatchHeight: 4,
		Scales:      []float64{1.0, 2.0},
		Threshold:   0.5,
		Patch:       constScore(1.0),
	}

	dets, err := d.Detect(img)
	assert.NoError(t, err)

	// 16 windows at scale 1 (4x4 grid) plus 4 windows at scale 2 (2x2 grid),
	// concatenated without any overlap suppression.
	assert.Len(t, dets, 20)

	var small, large int
	for _, det := range dets {
		switch det.Rect.Dx() {
		case 4:
			small++
		case 8:
			large++
		}
	}
	assert.Equal(t, 16, small)
	assert.Equal(t, 4, large)
}

func TestDetector_NoClassifier(t *testing.T) {
	d := &Detector{PatchWidth: 4, PatchHeight: 4}

	_, err := d.Detect(makeTestImage(10, 10))
	assert.Error(t, err)
}

func TestDetector_InvalidParams(t *testing.T) {
	d := &Detector{
		PatchWidth:  0,
		PatchHeight: 4,
		Patch:       constScore(1.0),
	}

	_, err := d.Detect(makeTestImage(10, 10))
	assert.ErrorIs(t, err, ErrInvalidPatchSize)
}

func TestDetector_FeaturePipeline(t *testing.T) {
	cls := &vectorLen{}
	d := &Detector{
		PatchWidth:  4,
		PatchHeight: 4,
		Threshold:   0.5,
		Extractor:   PixelExtractor{},
		Classifier:  cls,
	}

	dets, err := d.Detect(makeTestImage(10, 10))
	assert.NoError(t, err)
	assert.Len(t, dets, 9)
	assert.Equal(t, 16, cls.gotLen)
}

func TestPixelExtractor_MeanCentered(t *testing.T) {
	patch := makeTestImage(4, 4)
	features := PixelExtractor{}.Extract(patch)

	assert.Len(t, features, 16)

	var sum float64
	for _, f := range features {
		assert.GreaterOrEqual(t, f, -1.0)
		assert.LessOrEqual(t, f, 1.0)
		sum += f
	}
	assert.InDelta(t, 0.0, sum, 0.1)
}

func TestNewCascade_MissingFile(t *testing.T) {
	_, err := NewCascade("testdata/no-such-cascade")
	assert.Error(t, err)
}
