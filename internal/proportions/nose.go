package proportions

import (
	"github.com/dudu/facescore/internal/landmarks"
	"github.com/dudu/facescore/internal/parsing"
)

func analyzeNose(f *frame) *Nose {
	lm := f.lm

	length := distance(lm[landmarks.NoseBridge], lm[landmarks.NoseBottom])
	width := distance(lm[landmarks.NoseLeftWing], lm[landmarks.NoseRightWing])
	refined := false

	if b, ok := f.region(parsing.Nose, minNosePixels); ok {
		length = float64(b.Height())
		width = float64(b.Width())
		refined = true
	}

	eyeLine := lm.MeanY(landmarks.RightEyeOuter, landmarks.EyesEnd)
	midline := (lm[landmarks.JawStart].X + lm[landmarks.JawEnd].X) / 2

	return &Nose{
		Length:           f.y(length),
		Width:            f.x(width),
		WidthLengthRatio: ratio(width, length),
		BridgeAngle:      angle(lm[landmarks.NoseBridge], lm[landmarks.NoseTip], lm[landmarks.NoseBottom]),
		NostrilAngle:     angle(lm[landmarks.NoseLeftWing], lm[landmarks.NoseBottom], lm[landmarks.NoseRightWing]),
		TipPosition:      f.y(lm[landmarks.NoseBottom].Y - eyeLine),
		Deviation:        f.x(lm[landmarks.NoseTip].X - midline),
		Confidence:       confidence(FeatureNose, refined),
	}
}
