package pipeline

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/dustin/go-humanize/english"
	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
)

// Summary describes the overall scores of a ranked batch.
type Summary struct {
	Count    int
	Mean     float64
	Median   float64
	StdDev   float64
	P90      float64
	Best     float64
	BestName string
}

// String returns a one-line summary.
func (s Summary) String() string {
	if s.Count == 0 {
		return "no candidates"
	}
	return fmt.Sprintf("%s, best %s %.3f, mean %.3f, median %.3f, stddev %.3f, p90 %.3f",
		english.Plural(s.Count, "candidate", ""), s.BestName, s.Best, s.Mean, s.Median, s.StdDev, s.P90)
}

// Rank analyzes and scores candidates concurrently and returns comparisons
// sorted by overall score, best first.
func (p *Pipeline) Rank(ctx context.Context, target *Face, candidates []Candidate) ([]*Comparison, Summary, error) {
	start := time.Now()
	results := make([]*Comparison, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.config.Workers)

	for i := range candidates {
		i, c := i, candidates[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			face := p.AnalyzeFace(c.Name, c.Image, c.Landmarks)
			results[i] = p.Compare(target, face)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, Summary{}, fmt.Errorf("ranking aborted: %w", err)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Result.Overall > results[j].Result.Overall
	})

	summary, err := Summarize(results)
	if err != nil {
		return results, summary, err
	}

	log.Infof("pipeline: ranked %s in %s", english.Plural(len(results), "candidate", ""), time.Since(start))

	return results, summary, nil
}

// Summarize computes score statistics over comparisons.
func Summarize(comparisons []*Comparison) (Summary, error) {
	s := Summary{Count: len(comparisons)}
	if s.Count == 0 {
		return s, nil
	}

	data := make(stats.Float64Data, 0, len(comparisons))
	for i, c := range comparisons {
		data = append(data, c.Result.Overall)
		if i == 0 || c.Result.Overall > s.Best {
			s.Best = c.Result.Overall
			s.BestName = c.Name
		}
	}

	var err error

	if s.Mean, err = data.Mean(); err != nil {
		return s, fmt.Errorf("failed to compute mean: %w", err)
	}
	if s.Median, err = data.Median(); err != nil {
		return s, fmt.Errorf("failed to compute median: %w", err)
	}
	if s.StdDev, err = data.StandardDeviation(); err != nil {
		return s, fmt.Errorf("failed to compute stddev: %w", err)
	}
	if s.P90, err = data.Percentile(90); err != nil {
		return s, fmt.Errorf("failed to compute p90: %w", err)
	}

	return s, nil
}
