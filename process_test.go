package facescan

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcess_EncodesScannedImage(t *testing.T) {
	var in bytes.Buffer
	err := png.Encode(&in, makeTestImage(20, 16))
	assert.NoError(t, err)

	p := &Processor{
		PatchWidth:  4,
		PatchHeight: 4,
		Threshold:   0.5,
		Mark:        true,
		MarkColor:   "#00ff00",
		Patch:       constScore(1.0),
	}

	var out bytes.Buffer
	err = p.Process(&in, &out)
	assert.NoError(t, err)

	cfg, format, err := image.DecodeConfig(&out)
	assert.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 20, cfg.Width)
	assert.Equal(t, 16, cfg.Height)
}

func TestProcess_RequiresClassifier(t *testing.T) {
	var in bytes.Buffer
	err := png.Encode(&in, makeTestImage(10, 10))
	assert.NoError(t, err)

	p := &Processor{
		PatchWidth:  4,
		PatchHeight: 4,
	}

	err = p.Process(&in, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestProcess_InvalidPatchSize(t *testing.T) {
	var in bytes.Buffer
	err := png.Encode(&in, makeTestImage(10, 10))
	assert.NoError(t, err)

	p := &Processor{
		PatchWidth:  -4,
		PatchHeight: 4,
		Patch:       constScore(1.0),
	}

	err = p.Process(&in, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrInvalidPatchSize)
}

func TestProcess_UndecodableInput(t *testing.T) {
	in := bytes.NewBufferString("not an image")

	p := &Processor{
		PatchWidth:  4,
		PatchHeight: 4,
		Patch:       constScore(1.0),
	}

	err := p.Process(in, &bytes.Buffer{})
	assert.Error(t, err)
}
