package pipeline

import (
	"image"

	"github.com/dudu/facescore/internal/parsing"
)

// FaceParser segments a face image into labeled regions.
type FaceParser interface {
	Detect(img image.Image) *parsing.Result
	Close() error
}

// Candidate is an unanalyzed face to rank against a target.
type Candidate struct {
	Name      string
	Image     image.Image // optional
	Landmarks []float64
}
