package scoring

// SmileState is an opaque expression tag produced by a SmileDetector.
type SmileState string

// SmileUnknown is used when no detector is configured or no landmarks were given.
const SmileUnknown SmileState = ""

// SmileDetector tags a face from its landmarks. Tags annotate results only
// and never change scores.
type SmileDetector interface {
	DetectSmile(landmarks []float64) SmileState
}

// SmileDetectorFunc adapts a function to SmileDetector.
type SmileDetectorFunc func(landmarks []float64) SmileState

// DetectSmile implements SmileDetector.
func (f SmileDetectorFunc) DetectSmile(landmarks []float64) SmileState {
	return f(landmarks)
}
