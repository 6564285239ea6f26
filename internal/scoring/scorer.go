package scoring

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/dudu/facescore/internal/proportions"
)

// Blend of the weighted mean and the worst feature in FeatureOnly.
const (
	meanShare  = 0.7
	worstShare = 0.3
)

// Scorer compares proportions results. It holds no mutable state and is safe
// for concurrent use.
type Scorer struct {
	smile SmileDetector
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithSmileDetector annotates results with smile tags.
func WithSmileDetector(d SmileDetector) Option {
	return func(s *Scorer) {
		s.smile = d
	}
}

// NewScorer returns a scorer.
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Compare scores a candidate against a target. Landmarks are optional and
// only used for smile annotation.
func (s *Scorer) Compare(target, candidate *proportions.Result, targetLM, candidateLM []float64) *Result {
	r := &Result{
		TargetShape:    target.Shape(),
		CandidateShape: candidate.Shape(),
	}

	present := 0
	for _, f := range proportions.Features {
		t, c := target.Values(f), candidate.Values(f)
		if t == nil || c == nil {
			r.Scores[f] = NeutralScore
			continue
		}
		r.Scores[f] = featureScore(metrics[f], t, c)
		r.Present[f] = true
		present++
	}

	scores := r.Scores[:]
	r.Raw = stat.Mean(scores, featureWeights[:])
	r.WorstScore = floats.Min(scores)
	r.WorstFeature = proportions.Feature(floats.MinIdx(scores))
	r.FeatureOnly = r.Raw*meanShare + r.WorstScore*worstShare

	r.ShapeMatch = CalculateShapeMatch(r.TargetShape, r.CandidateShape)
	r.Overall = r.FeatureOnly * r.ShapeMatch
	r.Confidence = float64(present) / proportions.NumFeatures
	r.MatchConfidence = Calibrate(r.Overall)

	if s.smile != nil {
		if targetLM != nil {
			r.TargetSmile = s.smile.DetectSmile(targetLM)
		}
		if candidateLM != nil {
			r.CandidateSmile = s.smile.DetectSmile(candidateLM)
		}
	}

	log.Tracef("scorer: %s", r)

	return r
}

// featureScore is the weighted mean of the sub-measurement scores.
func featureScore(table []Metric, target, candidate []float64) float64 {
	scores := make([]float64, len(table))
	weights := make([]float64, len(table))

	for i, m := range table {
		scores[i] = Biweight(candidate[i]-target[i], m.Tolerance)
		weights[i] = m.Weight
	}

	return stat.Mean(scores, weights)
}
