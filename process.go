package facescan

import (
	"image"
	"io"

	"github.com/pkg/errors"

	"github.com/qsilt/facescan/utils"
)

// Processor options
type Processor struct {
	PatchWidth  int
	PatchHeight int
	ColStride   int
	RowStride   int
	Scales      []float64
	Threshold   float64
	CascadePath string
	MarkColor   string
	Mark        bool

	// Extractor, Classifier and Patch override the cascade file based
	// classifier when the processor is embedded into another program.
	Extractor  FeatureExtractor
	Classifier Classifier
	Patch      PatchClassifier
}

// Process decodes the source image from an io.Reader interface, scans it
// at the configured scales and encodes the result into an io.Writer
// interface. We are using the io package, since we can provide different
// input and output types, as long as they implement the io.Reader and
// io.Writer interface. When the Mark option is active the detected windows
// are drawn into the output image, otherwise the image is written through
// unchanged.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	src, _, err := image.Decode(r)
	if err != nil {
		return errors.Wrap(err, "could not decode the source image")
	}
	img := imgToNRGBA(src)

	dets, err := p.Detect(img)
	if err != nil {
		return err
	}

	if p.Mark {
		img = DrawDetections(img, dets, utils.HexToRGBA(p.MarkColor), defaultMarkThickness)
	}
	return encodeImg(w, img)
}

// Detect runs the scan-and-classify loop over an already decoded image.
func (p *Processor) Detect(img *image.NRGBA) ([]Detection, error) {
	d, err := p.detector()
	if err != nil {
		return nil, err
	}
	return d.Detect(img)
}

// detector assembles a Detector out of the processor options. The cascade
// file is loaded lazily, on the first invocation.
func (p *Processor) detector() (*Detector, error) {
	d := &Detector{
		PatchWidth:  p.PatchWidth,
		PatchHeight: p.PatchHeight,
		ColStride:   p.ColStride,
		RowStride:   p.RowStride,
		Scales:      p.Scales,
		Threshold:   p.Threshold,
		Extractor:   p.Extractor,
		Classifier:  p.Classifier,
		Patch:       p.Patch,
	}

	if d.Patch == nil && d.Classifier == nil {
		if len(p.CascadePath) == 0 {
			return nil, errors.New("please provide a face classifier cascade file")
		}
		cascade, err := NewCascade(p.CascadePath)
		if err != nil {
			return nil, err
		}
		p.Patch = cascade
		d.Patch = cascade
	}
	return d, nil
}
