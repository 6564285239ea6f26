package proportions

import "github.com/dudu/facescore/internal/landmarks"

// ClassifyShape maps aspect ratio and jaw taper to a face shape. Rules are
// checked in order and the first match wins.
func ClassifyShape(aspectRatio, jawTaper float64) FaceShape {
	switch {
	case aspectRatio > 0.95:
		return ShapeRound
	case aspectRatio >= 0.85 && aspectRatio <= 0.95 && jawTaper < 0.7:
		return ShapeHeart
	case aspectRatio >= 0.85 && aspectRatio <= 0.95:
		return ShapeSquare
	case aspectRatio < 0.75:
		return ShapeOblong
	case jawTaper < 0.75:
		return ShapeDiamond
	default:
		return ShapeOval
	}
}

func analyzeFace(f *frame) *FaceGeometry {
	lm := f.lm

	browY := (lm[19].Y + lm[24].Y) / 2
	noseY := lm[landmarks.NoseBottom].Y

	g := &FaceGeometry{
		AspectRatio: f.width / f.height,
		UpperThird:  f.y(browY - f.top),
		MiddleThird: f.y(noseY - browY),
		LowerThird:  f.y(f.bottom - noseY),
		JawTaper:    ratio(distance(lm[4], lm[12]), distance(lm[1], lm[15])),
		Confidence:  confidence(FeatureFace, f.skin),
	}
	g.Shape = ClassifyShape(g.AspectRatio, g.JawTaper)

	return g
}
