package proportions

import (
	"github.com/dudu/facescore/internal/landmarks"
	"github.com/dudu/facescore/internal/parsing"
)

func analyzeEyes(f *frame) *Eyes {
	lm := f.lm

	// 36..41 is the image-left eye, 42..47 the image-right eye.
	wR := distance(lm[landmarks.RightEyeOuter], lm[landmarks.RightEyeInner])
	wL := distance(lm[landmarks.LeftEyeInner], lm[landmarks.LeftEyeOuter])
	hR := (distance(lm[37], lm[41]) + distance(lm[38], lm[40])) / 2
	hL := (distance(lm[43], lm[47]) + distance(lm[44], lm[46])) / 2

	tiltR := slope(lm[landmarks.RightEyeInner], lm[landmarks.RightEyeOuter], lm[landmarks.RightEyeInner].X-lm[landmarks.RightEyeOuter].X)
	tiltL := slope(lm[landmarks.LeftEyeInner], lm[landmarks.LeftEyeOuter], lm[landmarks.LeftEyeOuter].X-lm[landmarks.LeftEyeInner].X)

	width := (wR + wL) / 2
	height := (hR + hL) / 2
	refined := false

	if left, right, ok := f.pair(parsing.LeftEye, parsing.RightEye, minEyePixels); ok {
		width = float64(left.Width()+right.Width()) / 2
		height = float64(left.Height()+right.Height()) / 2
		refined = true
	}

	return &Eyes{
		Width:         f.x(width),
		Height:        f.x(height),
		AspectRatio:   ratio(height, width),
		InnerDistance: f.x(distance(lm[landmarks.RightEyeInner], lm[landmarks.LeftEyeInner])),
		OuterDistance: f.x(distance(lm[landmarks.RightEyeOuter], lm[landmarks.LeftEyeOuter])),
		TiltAngle:     (tiltR + tiltL) / 2,
		Symmetry:      symmetry(wR, wL),
		Confidence:    confidence(FeatureEyes, refined),
	}
}
