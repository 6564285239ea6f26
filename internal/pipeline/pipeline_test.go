package pipeline

import (
	"context"
	"image"
	"math"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dudu/facescore/internal/config"
	"github.com/dudu/facescore/internal/inference"
	"github.com/dudu/facescore/internal/landmarks"
	"github.com/dudu/facescore/internal/parsing"
	"github.com/dudu/facescore/internal/proportions"
)

type stubParser struct {
	calls  atomic.Int32
	closed bool
}

func (s *stubParser) Detect(img image.Image) *parsing.Result {
	s.calls.Add(1)
	return parsing.Empty(parsing.SourceNoModel)
}

func (s *stubParser) Close() error {
	s.closed = true
	return nil
}

// face returns flat canonical landmarks of a symmetric face scaled by k, with
// the nose wings spread by noseSpread pixels on each side.
func face(k, noseSpread float64) []float64 {
	var c landmarks.Canonical

	for i := 0; i <= 16; i++ {
		t := math.Pi - float64(i)*math.Pi/16
		c[i] = landmarks.Point{X: 100 + 80*math.Cos(t), Y: 90 + 110*math.Sin(t)}
	}

	rest := [][2]float64{
		{35, 60}, {45, 54}, {60, 50}, {72, 52}, {85, 58},
		{115, 58}, {128, 52}, {140, 50}, {155, 54}, {165, 60},
		{100, 75}, {100, 90}, {100, 105}, {100, 120},
		{85 - noseSpread, 130}, {92, 132}, {100, 134}, {108, 132}, {115 + noseSpread, 130},
		{45, 80}, {55, 74}, {67, 74}, {77, 80}, {67, 84}, {55, 84},
		{123, 80}, {133, 74}, {145, 74}, {155, 80}, {145, 84}, {133, 84},
		{75, 160}, {85, 154}, {94, 151}, {100, 152}, {106, 151}, {115, 154},
		{125, 160}, {115, 168}, {106, 172}, {100, 173}, {94, 172}, {85, 168},
		{80, 160}, {92, 157}, {100, 157}, {108, 157}, {120, 160}, {108, 165}, {100, 165}, {92, 165},
	}
	for i, p := range rest {
		c[17+i] = landmarks.Point{X: p[0], Y: p[1]}
	}

	for i := range c {
		c[i].X *= k
		c[i].Y *= k
	}

	return c.Flat()
}

func TestPipelineCompare(t *testing.T) {
	p := New(Config{ProblemThreshold: 0.6}, nil)
	target := p.AnalyzeFace("target", nil, face(1, 0))

	t.Run("ScaleInvariant", func(t *testing.T) {
		c := p.Compare(target, p.AnalyzeFace("scaled", nil, face(2.5, 0)))

		assert.InDelta(t, 1.0, c.Result.Overall, 1e-9)
		assert.Empty(t, c.Problems)
		assert.Equal(t, proportions.SourceLandmarks, c.Face.Proportions.Source)
	})
	t.Run("WideNose", func(t *testing.T) {
		c := p.Compare(target, p.AnalyzeFace("wide", nil, face(1, 6)))

		assert.Less(t, c.Result.Score(proportions.FeatureNose), 0.6)
		assert.Equal(t, proportions.FeatureNose, c.Result.WorstFeature)
		assert.Contains(t, c.Problems, proportions.FeatureNose)
		require.NotNil(t, c.Hints.Worst)
		assert.Equal(t, proportions.FeatureNose, c.Hints.Worst.Feature)
		assert.Greater(t, p.LastTiming().Score, time.Duration(0))
	})
	t.Run("NoLandmarks", func(t *testing.T) {
		c := p.Compare(target, p.AnalyzeFace("empty", nil, make([]float64, 50)))

		assert.False(t, c.Face.Proportions.IsValid())
		assert.Equal(t, 0.0, c.Result.Confidence)
		assert.Len(t, c.Face.Landmarks, 50)
	})
}

func TestPipelineRank(t *testing.T) {
	parser := &stubParser{}
	p := New(Config{ProblemThreshold: 0.6, Workers: 2}, parser)
	target := p.AnalyzeFace("target", image.NewRGBA(image.Rect(0, 0, 4, 4)), face(1, 0))

	candidates := []Candidate{
		{Name: "far", Landmarks: face(1, 10)},
		{Name: "same", Landmarks: face(1.5, 0), Image: image.NewRGBA(image.Rect(0, 0, 4, 4))},
		{Name: "near", Landmarks: face(1, 2)},
	}

	results, summary, err := p.Rank(context.Background(), target, candidates)

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "same", results[0].Name)
	assert.Equal(t, "near", results[1].Name)
	assert.Equal(t, "far", results[2].Name)
	assert.Equal(t, int32(2), parser.calls.Load())

	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, "same", summary.BestName)
	assert.InDelta(t, 1.0, summary.Best, 1e-9)
	assert.InDelta(t, results[1].Result.Overall, summary.Median, 1e-12)
	assert.Greater(t, summary.StdDev, 0.0)
	assert.Contains(t, summary.String(), "3 candidates")

	require.NoError(t, p.Close())
	assert.True(t, parser.closed)
}

func TestPipelineRankCanceled(t *testing.T) {
	p := New(Config{Workers: 1}, nil)
	target := p.AnalyzeFace("target", nil, face(1, 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := p.Rank(ctx, target, []Candidate{{Name: "a", Landmarks: face(1, 0)}})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	s, err := Summarize(nil)

	require.NoError(t, err)
	assert.Equal(t, 0, s.Count)
	assert.Equal(t, "no candidates", s.String())
}

func TestOpenMissingModel(t *testing.T) {
	dir := t.TempDir()
	c := config.Default()
	c.ModelPath = filepath.Join(dir, "face_parsing.onnx")
	c.LibraryPath = filepath.Join(dir, "libonnxruntime.so")

	p, err := Open(c)

	assert.Nil(t, p)
	assert.ErrorIs(t, err, parsing.ErrModelNotFound)
	assert.False(t, inference.Initialized())
}
