package proportions

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/dudu/facescore/internal/landmarks"
	"github.com/dudu/facescore/internal/parsing"
)

// DefaultReliableThreshold is the minimum parsing confidence for segmentation
// to refine landmark measurements.
const DefaultReliableThreshold = 0.5

var (
	landmarkConfidence = [NumFeatures]float64{0.65, 0.60, 0.60, 0.65, 0.70, 0.55}
	refinedConfidence  = [NumFeatures]float64{0.85, 0.85, 0.80, 0.85, 0.80, 0.80}
	confidenceWeights  = [NumFeatures]float64{1.0, 1.2, 1.0, 1.0, 0.8, 0.6}
)

func confidence(f Feature, refined bool) float64 {
	if refined {
		return refinedConfidence[f]
	}
	return landmarkConfidence[f]
}

// Analyzer turns landmarks and an optional parsing result into normalized
// facial proportions. It holds no mutable state and is safe for concurrent use.
type Analyzer struct {
	reliableThreshold float64
}

// NewAnalyzer returns an analyzer. A threshold <= 0 selects the default.
func NewAnalyzer(reliableThreshold float64) *Analyzer {
	if reliableThreshold <= 0 {
		reliableThreshold = DefaultReliableThreshold
	}
	return &Analyzer{reliableThreshold: reliableThreshold}
}

// Analyze measures one face. Landmarks may be in any layout accepted by
// landmarks.Normalize. Parsed may be nil.
func (a *Analyzer) Analyze(raw []float64, parsed *parsing.Result) *Result {
	if raw == nil {
		return Empty("no landmarks")
	}

	lm, ok := landmarks.FromFlat(landmarks.Normalize(raw))
	if !ok {
		log.Debugf("analyzer: %d landmark values, need %d", len(raw), landmarks.FlatSize)
		return Empty(fmt.Sprintf("need %d landmark values, got %d", landmarks.FlatSize, len(raw)))
	}

	seg := a.reliable(parsed)
	f := newFrame(&lm, seg)

	r := &Result{
		Face:     analyzeFace(f),
		Eyes:     analyzeEyes(f),
		Nose:     analyzeNose(f),
		Mouth:    analyzeMouth(f),
		Jaw:      analyzeJaw(f),
		Eyebrows: analyzeEyebrows(f),
		Source:   SourceLandmarks,
	}

	if seg != nil {
		r.Source = SourceSegmentation
	}

	r.Confidence = overallConfidence(r)

	log.Debugf("analyzer: %s shape via %s, confidence %.2f", r.Face.Shape, r.Source, r.Confidence)

	return r
}

// reliable returns parsed if it may refine measurements, nil otherwise.
func (a *Analyzer) reliable(parsed *parsing.Result) *parsing.Result {
	if !parsed.IsValid() || parsed.Confidence < a.reliableThreshold {
		return nil
	}
	return parsed
}

// overallConfidence is the weighted mean of the present feature confidences.
func overallConfidence(r *Result) float64 {
	values := make([]float64, 0, NumFeatures)
	weights := make([]float64, 0, NumFeatures)

	for _, f := range Features {
		if r.Has(f) {
			values = append(values, r.FeatureConfidence(f))
			weights = append(weights, confidenceWeights[f])
		}
	}

	if len(values) == 0 {
		return 0
	}

	return stat.Mean(values, weights)
}
