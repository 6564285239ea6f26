package proportions

import (
	"github.com/dudu/facescore/internal/landmarks"
	"github.com/dudu/facescore/internal/parsing"
)

func analyzeMouth(f *frame) *Mouth {
	lm := f.lm

	left := lm[landmarks.MouthLeft]
	right := lm[landmarks.MouthRight]
	top := lm[landmarks.UpperLipTop]
	center := lm.Mid(landmarks.InnerLipTop, landmarks.InnerLipBottom)

	width := distance(left, right)
	height := distance(top, lm[landmarks.LowerLipBottom])
	upper := distance(top, lm[landmarks.InnerLipTop])
	lower := distance(lm[landmarks.InnerLipBottom], lm[landmarks.LowerLipBottom])
	refined := false

	up, okUp := f.region(parsing.UpperLip, minLipPixels)
	low, okLow := f.region(parsing.LowerLip, minLipPixels)
	if okUp && okLow {
		lips := up.Union(low)
		if inner, ok := f.region(parsing.Mouth, 0); ok {
			lips = lips.Union(inner)
		}
		width = float64(lips.Width())
		height = float64(lips.Height())
		upper = float64(up.Height())
		lower = float64(low.Height())
		refined = true
	}

	lipRatio := 1.0
	if lower > epsilon {
		lipRatio = upper / lower
	}

	tiltL := slope(center, left, center.X-left.X)
	tiltR := slope(center, right, right.X-center.X)

	return &Mouth{
		Width:      f.x(width),
		Height:     f.y(height),
		UpperLip:   f.y(upper),
		LowerLip:   f.y(lower),
		LipRatio:   lipRatio,
		Openness:   f.y(distance(lm[landmarks.InnerLipTop], lm[landmarks.InnerLipBottom])),
		CornerTilt: (tiltL + tiltR) / 2,
		Position:   f.y((top.Y+lm[landmarks.LowerLipBottom].Y)/2 - lm[landmarks.NoseBottom].Y),
		Symmetry:   symmetry(distance(top, left), distance(top, right)),
		Confidence: confidence(FeatureMouth, refined),
	}
}
