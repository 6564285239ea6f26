package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dudu/facescore/internal/proportions"
)

func testResult() *proportions.Result {
	return &proportions.Result{
		Face: &proportions.FaceGeometry{
			AspectRatio: 0.8, UpperThird: 0.3, MiddleThird: 0.35, LowerThird: 0.35, JawTaper: 0.8,
			Shape: proportions.ShapeOval, Confidence: 0.65,
		},
		Eyes: &proportions.Eyes{
			Width: 0.2, Height: 0.06, AspectRatio: 0.3, InnerDistance: 0.29, OuterDistance: 0.69,
			TiltAngle: 2, Symmetry: 0.98, Confidence: 0.6,
		},
		Nose: &proportions.Nose{
			Length: 0.3, Width: 0.19, WidthLengthRatio: 0.5, BridgeAngle: 175, NostrilAngle: 120,
			TipPosition: 0.28, Deviation: 0.01, Confidence: 0.6,
		},
		Mouth: &proportions.Mouth{
			Width: 0.31, Height: 0.11, UpperLip: 0.03, LowerLip: 0.04, LipRatio: 0.75, Openness: 0.02,
			CornerTilt: 1, Position: 0.14, Symmetry: 0.97, Confidence: 0.65,
		},
		Jaw: &proportions.Jaw{
			Width: 0.7, Angle: 150, ChinWidth: 0.2, ChinLength: 0.14, Taper: 0.8, Symmetry: 0.96, Confidence: 0.7,
		},
		Eyebrows: &proportions.Eyebrows{
			Length: 0.31, ArchHeight: 0.05, ArchAngle: 150, Slope: 5, Gap: 0.19, EyeDistance: 0.12,
			Symmetry: 0.99, Confidence: 0.55,
		},
		Confidence: 0.62,
		Source:     proportions.SourceLandmarks,
	}
}

func totalWeight() float64 {
	var sum float64
	for _, w := range featureWeights {
		sum += w
	}
	return sum
}

func TestBiweight(t *testing.T) {
	assert.Equal(t, 1.0, Biweight(0, 0.05))
	assert.Equal(t, 0.0, Biweight(0.05, 0.05))
	assert.Equal(t, 0.0, Biweight(-0.05, 0.05))
	assert.Equal(t, 0.0, Biweight(1, 0.05))
	assert.InDelta(t, 0.5625, Biweight(0.025, 0.05), 1e-12)
	assert.Equal(t, Biweight(0.01, 0.05), Biweight(-0.01, 0.05))

	prev := 1.0
	for d := 0.001; d < 0.06; d += 0.001 {
		s := Biweight(d, 0.05)
		assert.LessOrEqual(t, s, prev, "delta %.3f", d)
		assert.GreaterOrEqual(t, s, 0.0)
		prev = s
	}

	assert.Equal(t, 1.0, Biweight(0, 0))
	assert.Equal(t, 0.0, Biweight(0.1, 0))
}

func TestCalibrate(t *testing.T) {
	assert.Equal(t, 0.0, Calibrate(0))
	assert.Equal(t, 0.5, Calibrate(0.5))
	assert.Equal(t, 1.0, Calibrate(1))
	assert.InDelta(t, 0.625, Calibrate(0.75), 1e-12)
	assert.InDelta(t, 0.375, Calibrate(0.25), 1e-12)
	assert.Equal(t, 1.0, Calibrate(3))
}

func TestCompareIdentity(t *testing.T) {
	r := testResult()

	result := NewScorer().Compare(r, r, nil, nil)

	for _, f := range proportions.Features {
		assert.Equal(t, 1.0, result.Score(f), f.String())
		assert.True(t, result.Present[f])
	}
	assert.InDelta(t, 1.0, result.Raw, 1e-12)
	assert.InDelta(t, 1.0, result.FeatureOnly, 1e-12)
	assert.Equal(t, 1.0, result.ShapeMatch)
	assert.InDelta(t, 1.0, result.Overall, 1e-12)
	assert.Equal(t, 1.0, result.Confidence)
	assert.InDelta(t, 1.0, result.MatchConfidence, 1e-12)
	assert.Empty(t, result.ProblemFeatures(0.99))
}

func TestCompareWorstFeatureFloor(t *testing.T) {
	target := testResult()
	candidate := testResult()
	candidate.Nose = &proportions.Nose{Length: 1, Width: 1, WidthLengthRatio: 2, BridgeAngle: 90, NostrilAngle: 40, TipPosition: 1, Deviation: 0.5}

	result := NewScorer().Compare(target, candidate, nil, nil)

	require.Equal(t, 0.0, result.Score(proportions.FeatureNose))
	assert.Equal(t, proportions.FeatureNose, result.WorstFeature)
	assert.Equal(t, 0.0, result.WorstScore)

	expectedRaw := (totalWeight() - featureWeights[proportions.FeatureNose]) / totalWeight()
	assert.InDelta(t, expectedRaw, result.Raw, 1e-12)
	assert.InDelta(t, 0.7*expectedRaw, result.FeatureOnly, 1e-12)
	assert.Less(t, result.FeatureOnly, 5.0/6)
	assert.Equal(t, []proportions.Feature{proportions.FeatureNose}, result.ProblemFeatures(0.6))
}

func TestCompareMissingFeature(t *testing.T) {
	target := testResult()
	candidate := testResult()
	candidate.Mouth = nil

	result := NewScorer().Compare(target, candidate, nil, nil)

	assert.Equal(t, NeutralScore, result.Score(proportions.FeatureMouth))
	assert.False(t, result.Present[proportions.FeatureMouth])
	assert.InDelta(t, 5.0/6, result.Confidence, 1e-12)
	assert.Equal(t, proportions.FeatureMouth, result.WorstFeature)

	empty := NewScorer().Compare(proportions.Empty("none"), nil, nil, nil)
	for _, f := range proportions.Features {
		assert.Equal(t, NeutralScore, empty.Score(f))
	}
	assert.Equal(t, 0.0, empty.Confidence)
	assert.Equal(t, ShapeMatchUnknown, empty.ShapeMatch)
	assert.InDelta(t, 0.5*0.9, empty.Overall, 1e-12)
}

func TestCompareShape(t *testing.T) {
	target := testResult()
	candidate := testResult()
	candidate.Face.Shape = proportions.ShapeRound

	result := NewScorer().Compare(target, candidate, nil, nil)

	assert.Equal(t, 0.9, result.ShapeMatch)
	assert.InDelta(t, result.FeatureOnly*0.9, result.Overall, 1e-12)
	assert.Equal(t, proportions.ShapeOval, result.TargetShape)
	assert.Equal(t, proportions.ShapeRound, result.CandidateShape)
}

func TestCompareSmile(t *testing.T) {
	var calls int
	detector := SmileDetectorFunc(func(lm []float64) SmileState {
		calls++
		if len(lm) > 1 {
			return "smiling"
		}
		return "neutral"
	})

	r := testResult()
	plain := NewScorer().Compare(r, r, nil, nil)
	result := NewScorer(WithSmileDetector(detector)).Compare(r, r, []float64{1, 2}, []float64{1})

	assert.Equal(t, 2, calls)
	assert.Equal(t, SmileState("smiling"), result.TargetSmile)
	assert.Equal(t, SmileState("neutral"), result.CandidateSmile)
	assert.Equal(t, plain.Overall, result.Overall)
	assert.Equal(t, SmileUnknown, plain.TargetSmile)

	NewScorer(WithSmileDetector(detector)).Compare(r, r, nil, nil)
	assert.Equal(t, 2, calls)
}

func TestCalculateShapeMatch(t *testing.T) {
	assert.Equal(t, 0.5, CalculateShapeMatch(proportions.ShapeRound, proportions.ShapeDiamond))
	assert.Equal(t, 1.0, CalculateShapeMatch(proportions.ShapeRound, proportions.ShapeRound))
	assert.Equal(t, 0.88, CalculateShapeMatch(proportions.ShapeOval, proportions.ShapeOblong))
	assert.Equal(t, 0.55, CalculateShapeMatch(proportions.ShapeHeart, proportions.ShapeSquare))
	assert.Equal(t, ShapeMatchDefault, CalculateShapeMatch(proportions.ShapeOblong, proportions.ShapeSquare))

	shapes := []proportions.FaceShape{
		proportions.ShapeUnknown, proportions.ShapeOval, proportions.ShapeRound, proportions.ShapeSquare,
		proportions.ShapeHeart, proportions.ShapeOblong, proportions.ShapeDiamond,
	}
	for _, a := range shapes {
		assert.Equal(t, 0.9, CalculateShapeMatch(a, proportions.ShapeUnknown), a.String())
		assert.Equal(t, 0.9, CalculateShapeMatch(proportions.ShapeUnknown, a), a.String())
		for _, b := range shapes {
			assert.Equal(t, CalculateShapeMatch(a, b), CalculateShapeMatch(b, a), "%s/%s", a, b)
		}
	}
}

func TestMetricTablesMatchFields(t *testing.T) {
	for _, f := range proportions.Features {
		fields := proportions.Fields(f)
		table := Metrics(f)

		require.Len(t, table, len(fields), f.String())
		for i, m := range table {
			assert.Equal(t, fields[i], m.Name, f.String())
			assert.Greater(t, m.Tolerance, 0.0, m.Name)
			assert.Greater(t, m.Weight, 0.0, m.Name)
		}
	}

	assert.Equal(t, 0.025, Metrics(proportions.FeatureNose)[0].Tolerance)
	assert.Equal(t, 0.025, Metrics(proportions.FeatureNose)[1].Tolerance)
	assert.Equal(t, 0.05, Metrics(proportions.FeatureMouth)[0].Tolerance)
	assert.Equal(t, 8.0, Metrics(proportions.FeatureJaw)[1].Tolerance)
}
