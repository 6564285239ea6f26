package proportions

import (
	"github.com/dudu/facescore/internal/landmarks"
	"github.com/dudu/facescore/internal/parsing"
)

func analyzeJaw(f *frame) *Jaw {
	lm := f.lm
	chin := lm[landmarks.Chin]

	lipBottom := lm[landmarks.LowerLipBottom].Y
	chinBottom := chin.Y
	refined := false

	if f.skin {
		chinBottom = f.bottom
		if low, ok := f.region(parsing.LowerLip, minLipPixels); ok {
			lipBottom = float64(low.MaxY)
		}
		refined = true
	}

	return &Jaw{
		Width:      f.x(distance(lm[4], lm[12])),
		Angle:      (angle(lm[3], lm[5], chin) + angle(lm[13], lm[11], chin)) / 2,
		ChinWidth:  f.x(distance(lm[7], lm[9])),
		ChinLength: f.y(chinBottom - lipBottom),
		Taper:      ratio(distance(lm[4], lm[12]), distance(lm[1], lm[15])),
		Symmetry:   symmetry(pathLength(lm, landmarks.JawStart, landmarks.Chin), pathLength(lm, landmarks.Chin, landmarks.JawEnd)),
		Confidence: confidence(FeatureJaw, refined),
	}
}
