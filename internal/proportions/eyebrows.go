package proportions

import (
	"github.com/dudu/facescore/internal/landmarks"
	"github.com/dudu/facescore/internal/parsing"
)

func analyzeEyebrows(f *frame) *Eyebrows {
	lm := f.lm

	// 17 and 26 are the outer ends, 21 and 22 the inner ends.
	outerR, innerR := lm[landmarks.RightBrowStart], lm[landmarks.RightBrowEnd]
	innerL, outerL := lm[landmarks.LeftBrowStart], lm[landmarks.LeftBrowEnd]

	lenR := distance(outerR, innerR)
	lenL := distance(innerL, outerL)
	archR := (outerR.Y+innerR.Y)/2 - lm[19].Y
	archL := (innerL.Y+outerL.Y)/2 - lm[24].Y

	length := (lenR + lenL) / 2
	gap := distance(innerR, innerL)
	refined := false

	if left, right, ok := f.pair(parsing.LeftBrow, parsing.RightBrow, minBrowPixels); ok {
		length = float64(left.Width()+right.Width()) / 2
		if g := float64(right.MinX - left.MaxX); g > 0 {
			gap = g
		}
		refined = true
	}

	browY := lm.MeanY(landmarks.RightBrowStart, landmarks.LeftBrowEnd)
	lidY := (lm[37].Y + lm[38].Y + lm[43].Y + lm[44].Y) / 4

	return &Eyebrows{
		Length:      f.x(length),
		ArchHeight:  f.x((archR + archL) / 2),
		ArchAngle:   (angle(outerR, lm[19], innerR) + angle(innerL, lm[24], outerL)) / 2,
		Slope:       (slope(innerR, outerR, innerR.X-outerR.X) + slope(innerL, outerL, outerL.X-innerL.X)) / 2,
		Gap:         f.x(gap),
		EyeDistance: f.y(lidY - browY),
		Symmetry:    symmetry(lenR, lenL),
		Confidence:  confidence(FeatureEyebrows, refined),
	}
}
