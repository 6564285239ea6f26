package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/dudu/facescore/internal/pipeline"
	"github.com/dudu/facescore/internal/proportions"
)

func printTiming(w io.Writer, t pipeline.Timing) {
	fmt.Fprintf(w, "N:%.1fms P:%.0fms A:%.1fms S:%.1fms T:%.0fms\n",
		float64(t.Normalize.Microseconds())/1000,
		float64(t.Parse.Milliseconds()),
		float64(t.Analyze.Microseconds())/1000,
		float64(t.Score.Microseconds())/1000,
		float64(t.Total.Milliseconds()))
}

func printFace(w io.Writer, face *pipeline.Face) {
	r := face.Proportions

	fmt.Fprintf(w, "%s: ", face.Name)
	if !r.IsValid() {
		fmt.Fprintf(w, "no measurements (%s)\n", r.Reason)
		return
	}

	fmt.Fprintf(w, "%s face, %s, confidence %.2f\n", r.Shape(), r.Source, r.Confidence)
	if face.Parsing != nil {
		fmt.Fprintf(w, "  parsing: %s\n", face.Parsing.Summary())
	}

	for _, f := range proportions.Features {
		fields := proportions.Fields(f)
		values := r.Values(f)
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = fmt.Sprintf("%s=%.3f", fields[i], v)
		}
		fmt.Fprintf(w, "  %-8s %.2f  %s\n", f, r.FeatureConfidence(f), strings.Join(parts, " "))
	}
}

func printComparison(w io.Writer, c *pipeline.Comparison, hints bool, threshold float64) {
	r := c.Result

	fmt.Fprintf(w, "%s: overall %.3f (match confidence %.3f, data %.0f%%)\n",
		c.Name, r.Overall, r.MatchConfidence, r.Confidence*100)
	fmt.Fprintf(w, "  features %.3f (weighted %.3f), shape %s vs %s = %.2f\n",
		r.FeatureOnly, r.Raw, r.TargetShape, r.CandidateShape, r.ShapeMatch)

	for _, f := range proportions.Features {
		mark := ""
		if !r.Present[f] {
			mark = " (missing)"
		} else if r.Score(f) < threshold {
			mark = " !"
		}
		fmt.Fprintf(w, "  %-8s %.3f%s\n", f, r.Score(f), mark)
	}

	fmt.Fprintf(w, "  worst: %s %.3f\n", r.WorstFeature, r.WorstScore)

	if r.TargetSmile != "" || r.CandidateSmile != "" {
		fmt.Fprintf(w, "  smile: target %q, candidate %q\n", r.TargetSmile, r.CandidateSmile)
	}

	if !hints || c.Hints == nil {
		return
	}

	below := c.Hints.Below(threshold)
	if len(below) == 0 {
		fmt.Fprintln(w, "  hints: nothing below threshold")
		return
	}

	fmt.Fprintln(w, "  hints:")
	for _, h := range below {
		fmt.Fprintf(w, "    %s\n", h)
	}
}
