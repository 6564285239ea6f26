package parsing

import (
	"fmt"
	"image"
	"runtime/debug"
	"time"
)

// DefaultInputSize is the square input resolution of the BiSeNet face parser.
const DefaultInputSize = 512

// Segmenter runs the segmentation network on a normalized NCHW tensor.
type Segmenter interface {
	Segment(input []float32, size int) (Tensor, error)
	Close() error
}

// Parser turns images into per-region statistics using a segmentation model.
// A Parser without a model is valid and always returns empty results.
type Parser struct {
	model     Segmenter
	inputSize int
}

// New creates a face parser around a loaded model. model may be nil.
func New(model Segmenter, inputSize int) *Parser {
	if inputSize <= 0 {
		inputSize = DefaultInputSize
	}
	return &Parser{model: model, inputSize: inputSize}
}

// Ready returns true if a model is loaded.
func (p *Parser) Ready() bool {
	return p != nil && p.model != nil
}

// InputSize returns the model input resolution.
func (p *Parser) InputSize() int {
	return p.inputSize
}

// Detect parses img. It never fails: a missing model, a nil image or an
// unusable model output produce an empty zero-confidence result.
func (p *Parser) Detect(img image.Image) (result *Result) {
	if !p.Ready() {
		return Empty(SourceNoModel)
	}

	if img == nil || img.Bounds().Empty() {
		return Empty(SourceNoImage)
	}

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("parser: %s (panic)\nstack: %s", r, debug.Stack())
			result = Empty(SourceInferError)
		}
	}()

	start := time.Now()
	bounds := img.Bounds()

	input := imageToTensor(img, p.inputSize)

	output, err := p.model.Segment(input, p.inputSize)
	if err != nil {
		log.Errorf("parser: %s", err)
		return Empty(SourceInferError)
	}

	mask, layout, ok := DecodeMask(output)
	if !ok {
		log.Warnf("parser: unrecognized output shape %v (%s)", output.Shape, output.Type)
		return Empty(SourceBadOutput)
	}

	mask = mask.Resize(bounds.Dx(), bounds.Dy())

	result = NewResult(mask, SourceModel)

	log.Debugf("parser: %s in %s, decoded as %s", result.Summary(), time.Since(start), layout)

	return result
}

// Close releases the model.
func (p *Parser) Close() error {
	if p == nil || p.model == nil {
		return nil
	}

	err := p.model.Close()
	p.model = nil

	if err != nil {
		return fmt.Errorf("failed to close face parser model: %w", err)
	}

	return nil
}
