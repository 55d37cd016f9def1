package facescan

import (
	"image"
	"os"

	pigo "github.com/esimov/pigo/core"
	"github.com/pkg/errors"

	"github.com/qsilt/facescan/utils"
)

// Pigo cascade parameters used when classifying a single patch.
const (
	cascadeMinSize     = 20  // smallest face size the cascade is run at, in pixels
	cascadeShiftFactor = 0.1 // window shift as a fraction of its size
	cascadeScaleFactor = 1.1 // growth factor of the cascade's internal pyramid
)

// Cascade is a PatchClassifier backed by a pigo binary cascade. The cascade
// brings its own feature pipeline, so it plugs into the detector directly
// instead of going through a FeatureExtractor.
type Cascade struct {
	classifier *pigo.Pigo
}

// NewCascade reads a binary cascade file and unpacks it. This will decode
// the number of cascade trees, the tree depth, the threshold and the
// prediction from the tree's leaf nodes.
func NewCascade(path string) (*Cascade, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read the cascade file")
	}

	p := pigo.NewPigo()
	classifier, err := p.Unpack(data)
	if err != nil {
		return nil, errors.Wrap(err, "error unpacking the cascade file")
	}
	return &Cascade{classifier: classifier}, nil
}

// ClassifyPatch runs the cascade over a single fixed-size patch and returns
// the best detection quality, normalized to the 0..1 range. A score of zero
// means the cascade found no face in the patch.
func (c *Cascade) ClassifyPatch(patch *image.NRGBA) (float64, error) {
	bounds := patch.Bounds()
	rows, cols := bounds.Dy(), bounds.Dx()
	if rows == 0 || cols == 0 {
		return 0, errors.New("cannot classify an empty patch")
	}

	minSize := utils.Min(cascadeMinSize, utils.Min(rows, cols))
	cParams := pigo.CascadeParams{
		MinSize:     minSize,
		MaxSize:     utils.Min(rows, cols),
		ShiftFactor: cascadeShiftFactor,
		ScaleFactor: cascadeScaleFactor,
		ImageParams: pigo.ImageParams{
			Pixels: rgbToGrayscale(patch),
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}

	dets := c.classifier.RunCascade(cParams, 0.0)

	var best float32
	for _, det := range dets {
		if det.Q > best {
			best = det.Q
		}
	}
	return float64(best) / 100.0, nil
}
