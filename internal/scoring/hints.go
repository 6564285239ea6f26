package scoring

import (
	"fmt"
	"sort"

	"github.com/dudu/facescore/internal/proportions"
)

// Quality buckets a similarity score.
type Quality int

const (
	Bad Quality = iota
	Poor
	Okay
	Good
	Great
)

var qualityNames = [...]string{"bad", "poor", "okay", "good", "great"}

// String returns the bucket name.
func (q Quality) String() string {
	if q >= Bad && q <= Great {
		return qualityNames[q]
	}
	return "unknown"
}

// QualityOf buckets a score.
func QualityOf(score float64) Quality {
	switch {
	case score < 0.25:
		return Bad
	case score < 0.5:
		return Poor
	case score < 0.75:
		return Okay
	case score < 0.9:
		return Good
	default:
		return Great
	}
}

// Direction tells which way a candidate measurement should move.
type Direction int

const (
	Keep Direction = iota
	Increase
	Decrease
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Increase:
		return "increase"
	case Decrease:
		return "decrease"
	default:
		return "keep"
	}
}

// SubFeatureHint describes one compared sub-measurement.
type SubFeatureHint struct {
	Feature   proportions.Feature
	Name      string
	Target    float64
	Candidate float64
	Delta     float64 // candidate - target
	Tolerance float64
	Score     float64
	Quality   Quality
	Direction Direction
}

// String returns a short human readable description.
func (h SubFeatureHint) String() string {
	return fmt.Sprintf("%s.%s %s (%.3f, %s %.4f -> %.4f)", h.Feature, h.Name, h.Quality, h.Score, h.Direction, h.Candidate, h.Target)
}

// FeatureHints groups the sub-measurement hints of one feature.
type FeatureHints struct {
	Feature  proportions.Feature
	Score    float64
	Quality  Quality
	SubHints []SubFeatureHint
	Worst    SubFeatureHint
}

// Hints is a per sub-measurement breakdown of a comparison. It is diagnostic
// output only.
type Hints struct {
	Features []FeatureHints // features measured on both sides
	Worst    *SubFeatureHint
}

// Hints recomputes every sub-measurement score individually. Features
// missing on either side are skipped.
func (s *Scorer) Hints(target, candidate *proportions.Result) *Hints {
	h := &Hints{}

	for _, f := range proportions.Features {
		t, c := target.Values(f), candidate.Values(f)
		if t == nil || c == nil {
			continue
		}

		fh := FeatureHints{
			Feature: f,
			Score:   featureScore(metrics[f], t, c),
		}
		fh.Quality = QualityOf(fh.Score)

		for i, m := range metrics[f] {
			sub := subHint(f, m, t[i], c[i])
			if len(fh.SubHints) == 0 || sub.Score < fh.Worst.Score {
				fh.Worst = sub
			}
			fh.SubHints = append(fh.SubHints, sub)
		}

		if h.Worst == nil || fh.Worst.Score < h.Worst.Score {
			worst := fh.Worst
			h.Worst = &worst
		}

		h.Features = append(h.Features, fh)
	}

	return h
}

func subHint(f proportions.Feature, m Metric, target, candidate float64) SubFeatureHint {
	delta := candidate - target
	score := Biweight(delta, m.Tolerance)

	h := SubFeatureHint{
		Feature:   f,
		Name:      m.Name,
		Target:    target,
		Candidate: candidate,
		Delta:     delta,
		Tolerance: m.Tolerance,
		Score:     score,
		Quality:   QualityOf(score),
	}

	switch {
	case delta < 0:
		h.Direction = Increase
	case delta > 0:
		h.Direction = Decrease
	}

	return h
}

// Feature returns the hints of one feature.
func (h *Hints) Feature(f proportions.Feature) (FeatureHints, bool) {
	for _, fh := range h.Features {
		if fh.Feature == f {
			return fh, true
		}
	}
	return FeatureHints{}, false
}

// Below returns sub-measurement hints scoring under threshold, worst first.
func (h *Hints) Below(threshold float64) []SubFeatureHint {
	var out []SubFeatureHint
	for _, fh := range h.Features {
		for _, sub := range fh.SubHints {
			if sub.Score < threshold {
				out = append(out, sub)
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score < out[j].Score
	})

	return out
}
