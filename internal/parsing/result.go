package parsing

import (
	"fmt"
	"strings"
)

// Source tags describing how a result was produced.
const (
	SourceModel      = "segmentation"
	SourceNoModel    = "unavailable: model not loaded"
	SourceNoImage    = "unavailable: no image"
	SourceBadOutput  = "unavailable: unrecognized model output"
	SourceInferError = "unavailable: inference failed"
)

// Minimum pixel counts for the anchor regions used by the confidence heuristic.
const (
	minSkinPixels = 100
	minEyePixels  = 20
	minNosePixels = 50
	minLipPixels  = 20
)

// Result is the outcome of one face parsing pass.
type Result struct {
	Mask       *Mask
	Regions    map[Region]RegionBounds
	Confidence float64
	Source     string
}

// Empty returns a zero-confidence result with an explanatory source tag.
func Empty(source string) *Result {
	return &Result{
		Regions: map[Region]RegionBounds{},
		Source:  source,
	}
}

// NewResult builds a result from a label mask at source resolution.
func NewResult(mask *Mask, source string) *Result {
	r := &Result{
		Mask:    mask,
		Regions: ComputeBounds(mask),
		Source:  source,
	}
	r.Confidence = r.anchorConfidence()
	return r
}

// IsValid returns true if a mask exists and at least one region has pixels.
func (r *Result) IsValid() bool {
	if r == nil || r.Mask == nil {
		return false
	}
	for _, b := range r.Regions {
		if b.Pixels > 0 {
			return true
		}
	}
	return false
}

// Bounds returns the bounds of a region and whether it is present.
func (r *Result) Bounds(region Region) (RegionBounds, bool) {
	if r == nil {
		return RegionBounds{}, false
	}
	b, ok := r.Regions[region]
	return b, ok && b.Pixels > 0
}

// Has reports whether a region covers more than minPixels pixels.
func (r *Result) Has(region Region, minPixels int) bool {
	b, ok := r.Bounds(region)
	return ok && b.Pixels > minPixels
}

// Pixels returns the pixel count of a region.
func (r *Result) Pixels(region Region) int {
	b, _ := r.Bounds(region)
	return b.Pixels
}

// anchorConfidence is a sanity heuristic, not a calibrated probability:
// a quarter for each of skin, an eye, the nose and a lip being present.
func (r *Result) anchorConfidence() float64 {
	var found int

	if r.Has(Skin, minSkinPixels) {
		found++
	}
	if r.Has(LeftEye, minEyePixels) || r.Has(RightEye, minEyePixels) {
		found++
	}
	if r.Has(Nose, minNosePixels) {
		found++
	}
	if r.Has(UpperLip, minLipPixels) || r.Has(LowerLip, minLipPixels) {
		found++
	}

	return float64(found) / 4
}

// Summary returns a one-line description of the regions found, largest first.
func (r *Result) Summary() string {
	if !r.IsValid() {
		return r.Source
	}

	parts := make([]string, 0, len(r.Regions))
	for _, b := range sortedRegions(r.Regions) {
		parts = append(parts, fmt.Sprintf("%s=%d", b.Region, b.Pixels))
	}

	return fmt.Sprintf("confidence %.2f [%s]", r.Confidence, strings.Join(parts, " "))
}

// SortedRegions returns present regions ordered by pixel count.
func (r *Result) SortedRegions() []RegionBounds {
	if r == nil {
		return nil
	}
	return sortedRegions(r.Regions)
}
