package proportions

import (
	"math"

	"github.com/dudu/facescore/internal/landmarks"
	"github.com/dudu/facescore/internal/parsing"
)

const epsilon = 1e-6

// foreheadFactor extends the brow-to-chin span to an estimated hairline-to-chin
// height when no skin mask is available.
const foreheadFactor = 1.3

func distance(a, b landmarks.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// angle returns the angle at vertex b between rays b->a and b->c in degrees.
// Degenerate rays yield 90.
func angle(a, b, c landmarks.Point) float64 {
	bax, bay := a.X-b.X, a.Y-b.Y
	bcx, bcy := c.X-b.X, c.Y-b.Y

	n1 := math.Hypot(bax, bay)
	n2 := math.Hypot(bcx, bcy)
	if n1 < epsilon || n2 < epsilon {
		return 90
	}

	cos := (bax*bcx + bay*bcy) / (n1 * n2)
	cos = math.Max(-1, math.Min(1, cos))

	return math.Acos(cos) * 180 / math.Pi
}

// slope returns the elevation of `to` seen from `from` in degrees, positive
// when `to` is higher in the image. dx is taken as given so callers can
// mirror one side of the face.
func slope(from, to landmarks.Point, dx float64) float64 {
	return math.Atan2(from.Y-to.Y, dx) * 180 / math.Pi
}

func ratio(a, b float64) float64 {
	if math.Abs(b) < epsilon {
		return 0
	}
	return a / b
}

// symmetry returns 1 for equal values and falls toward 0 as they diverge.
func symmetry(a, b float64) float64 {
	m := math.Max(a, b)
	if m < epsilon {
		return 1
	}
	return 1 - math.Abs(a-b)/m
}

func pathLength(lm *landmarks.Canonical, from, to int) float64 {
	var sum float64
	for i := from; i < to; i++ {
		sum += distance(lm[i], lm[i+1])
	}
	return sum
}

// frame carries the landmarks, the optional segmentation and the face
// dimensions every measurement is normalized by.
type frame struct {
	lm  *landmarks.Canonical
	seg *parsing.Result // nil unless reliable

	width  float64
	height float64
	top    float64 // estimated hairline
	bottom float64 // chin

	skin bool // width and height come from the skin mask
}

func newFrame(lm *landmarks.Canonical, seg *parsing.Result) *frame {
	f := &frame{lm: lm, seg: seg}

	browY := (lm[19].Y + lm[24].Y) / 2
	f.bottom = lm[landmarks.Chin].Y
	f.width = distance(lm[landmarks.JawStart], lm[landmarks.JawEnd])
	f.height = (f.bottom - browY) * foreheadFactor
	f.top = f.bottom - f.height

	if b, ok := f.region(parsing.Skin, minSkinPixels); ok && b.Width() > 1 && b.Height() > 1 {
		f.width = float64(b.Width())
		f.height = float64(b.Height())
		f.top = float64(b.MinY)
		f.bottom = float64(b.MaxY)
		f.skin = true
	}

	if f.width < epsilon {
		f.width = 1
	}
	if f.height < epsilon {
		f.height = 1
	}

	return f
}

// region returns region bounds when segmentation is reliable and the region
// covers more than minPixels.
func (f *frame) region(r parsing.Region, minPixels int) (parsing.RegionBounds, bool) {
	if f.seg == nil || !f.seg.Has(r, minPixels) {
		return parsing.RegionBounds{}, false
	}
	return f.seg.Bounds(r)
}

// pair returns the image-left and image-right bounds of a mirrored region pair.
func (f *frame) pair(a, b parsing.Region, minPixels int) (left, right parsing.RegionBounds, ok bool) {
	ba, okA := f.region(a, minPixels)
	bb, okB := f.region(b, minPixels)
	if !okA || !okB {
		return left, right, false
	}
	if ba.CenterX() <= bb.CenterX() {
		return ba, bb, true
	}
	return bb, ba, true
}

func (f *frame) x(v float64) float64 { return v / f.width }
func (f *frame) y(v float64) float64 { return v / f.height }

// Minimum pixel counts before a region overrides landmark measurements.
const (
	minSkinPixels = 100
	minEyePixels  = 20
	minNosePixels = 50
	minLipPixels  = 20
	minBrowPixels = 20
)
