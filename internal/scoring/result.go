package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dudu/facescore/internal/proportions"
)

// NeutralScore is assigned to a feature missing on either side.
const NeutralScore = 0.5

// Result is the comparison of a candidate face against a target.
type Result struct {
	Scores  [proportions.NumFeatures]float64
	Present [proportions.NumFeatures]bool // measured on both sides

	Raw         float64 // feature weighted mean
	FeatureOnly float64 // Raw blended with the worst feature
	ShapeMatch  float64
	Overall     float64 // FeatureOnly * ShapeMatch

	WorstFeature proportions.Feature
	WorstScore   float64

	TargetShape    proportions.FaceShape
	CandidateShape proportions.FaceShape
	TargetSmile    SmileState
	CandidateSmile SmileState

	Confidence      float64 // share of features present on both sides
	MatchConfidence float64 // Calibrate(Overall)
}

// Score returns the similarity of one feature.
func (r *Result) Score(f proportions.Feature) float64 {
	return r.Scores[f]
}

// ProblemFeatures returns features scoring below threshold, worst first.
func (r *Result) ProblemFeatures(threshold float64) []proportions.Feature {
	var problems []proportions.Feature
	for _, f := range proportions.Features {
		if r.Scores[f] < threshold {
			problems = append(problems, f)
		}
	}

	sort.SliceStable(problems, func(i, j int) bool {
		return r.Scores[problems[i]] < r.Scores[problems[j]]
	})

	return problems
}

// Map returns the feature scores keyed by feature name.
func (r *Result) Map() map[string]float64 {
	out := make(map[string]float64, proportions.NumFeatures)
	for _, f := range proportions.Features {
		out[f.String()] = r.Scores[f]
	}
	return out
}

// String returns a compact one-line summary.
func (r *Result) String() string {
	parts := make([]string, 0, proportions.NumFeatures)
	for _, f := range proportions.Features {
		parts = append(parts, fmt.Sprintf("%s=%.3f", f, r.Scores[f]))
	}

	return fmt.Sprintf("overall %.3f (features %.3f, shape %s/%s %.2f) worst %s %.3f [%s]",
		r.Overall, r.FeatureOnly, r.TargetShape, r.CandidateShape, r.ShapeMatch,
		r.WorstFeature, r.WorstScore, strings.Join(parts, " "))
}
