package proportions

import "fmt"

// Field names per feature group, in vector order.
var fieldNames = [NumFeatures][]string{
	FeatureFace:     {"aspect_ratio", "upper_third", "middle_third", "lower_third", "jaw_taper"},
	FeatureEyes:     {"width", "height", "aspect_ratio", "inner_distance", "outer_distance", "tilt_angle", "symmetry"},
	FeatureNose:     {"length", "width", "width_length_ratio", "bridge_angle", "nostril_angle", "tip_position", "deviation"},
	FeatureMouth:    {"width", "height", "upper_lip", "lower_lip", "lip_ratio", "openness", "corner_tilt", "position", "symmetry"},
	FeatureJaw:      {"width", "angle", "chin_width", "chin_length", "taper", "symmetry"},
	FeatureEyebrows: {"length", "arch_height", "arch_angle", "slope", "gap", "eye_distance", "symmetry"},
}

// VectorSize is the length of Result.ToArray.
const VectorSize = 41

// Fields returns the field names of one feature group.
func Fields(f Feature) []string {
	return append([]string(nil), fieldNames[f]...)
}

// FeatureNames returns the dotted keys of ToFlatDictionary in ToArray order.
func FeatureNames() []string {
	names := make([]string, 0, VectorSize)
	for _, f := range Features {
		for _, field := range fieldNames[f] {
			names = append(names, fmt.Sprintf("%s.%s", f, field))
		}
	}
	return names
}

// Values returns the measurements of one feature group in field order, or
// nil if the record is absent.
func (r *Result) Values(f Feature) []float64 {
	if !r.Has(f) {
		return nil
	}

	switch f {
	case FeatureFace:
		g := r.Face
		return []float64{g.AspectRatio, g.UpperThird, g.MiddleThird, g.LowerThird, g.JawTaper}
	case FeatureEyes:
		e := r.Eyes
		return []float64{e.Width, e.Height, e.AspectRatio, e.InnerDistance, e.OuterDistance, e.TiltAngle, e.Symmetry}
	case FeatureNose:
		n := r.Nose
		return []float64{n.Length, n.Width, n.WidthLengthRatio, n.BridgeAngle, n.NostrilAngle, n.TipPosition, n.Deviation}
	case FeatureMouth:
		m := r.Mouth
		return []float64{m.Width, m.Height, m.UpperLip, m.LowerLip, m.LipRatio, m.Openness, m.CornerTilt, m.Position, m.Symmetry}
	case FeatureJaw:
		j := r.Jaw
		return []float64{j.Width, j.Angle, j.ChinWidth, j.ChinLength, j.Taper, j.Symmetry}
	case FeatureEyebrows:
		b := r.Eyebrows
		return []float64{b.Length, b.ArchHeight, b.ArchAngle, b.Slope, b.Gap, b.EyeDistance, b.Symmetry}
	}

	return nil
}

// ToArray flattens all measurements into a fixed-order vector. Absent
// records contribute zeros.
func (r *Result) ToArray() []float64 {
	out := make([]float64, 0, VectorSize)
	for _, f := range Features {
		values := r.Values(f)
		if values == nil {
			values = make([]float64, len(fieldNames[f]))
		}
		out = append(out, values...)
	}
	return out
}

// ToFlatDictionary returns measurements keyed like "face.aspect_ratio".
// Absent records are omitted.
func (r *Result) ToFlatDictionary() map[string]float64 {
	out := make(map[string]float64, VectorSize)
	for _, f := range Features {
		for i, v := range r.Values(f) {
			out[fmt.Sprintf("%s.%s", f, fieldNames[f][i])] = v
		}
	}
	return out
}
