package scoring

import "github.com/dudu/facescore/internal/proportions"

// Metric is one compared sub-measurement.
type Metric struct {
	Name      string
	Tolerance float64 // difference at which the score drops to 0
	Weight    float64
}

// Metric tables in proportions field order. Angles are in degrees, everything
// else in face-normalized units or plain ratios.
var metrics = [proportions.NumFeatures][]Metric{
	proportions.FeatureFace: {
		{"aspect_ratio", 0.06, 1.5},
		{"upper_third", 0.04, 0.8},
		{"middle_third", 0.04, 1.0},
		{"lower_third", 0.04, 1.0},
		{"jaw_taper", 0.06, 1.2},
	},
	proportions.FeatureEyes: {
		{"width", 0.02, 1.2},
		{"height", 0.012, 1.0},
		{"aspect_ratio", 0.08, 1.0},
		{"inner_distance", 0.03, 1.2},
		{"outer_distance", 0.04, 1.0},
		{"tilt_angle", 5, 0.8},
		{"symmetry", 0.1, 0.5},
	},
	proportions.FeatureNose: {
		{"length", 0.025, 1.2},
		{"width", 0.025, 1.2},
		{"width_length_ratio", 0.12, 1.0},
		{"bridge_angle", 8, 0.7},
		{"nostril_angle", 15, 0.6},
		{"tip_position", 0.04, 0.8},
		{"deviation", 0.03, 0.5},
	},
	proportions.FeatureMouth: {
		{"width", 0.05, 1.3},
		{"height", 0.03, 1.0},
		{"upper_lip", 0.015, 0.9},
		{"lower_lip", 0.015, 0.9},
		{"lip_ratio", 0.25, 0.7},
		{"openness", 0.03, 0.6},
		{"corner_tilt", 6, 0.6},
		{"position", 0.04, 0.8},
		{"symmetry", 0.1, 0.4},
	},
	proportions.FeatureJaw: {
		{"width", 0.05, 1.2},
		{"angle", 8, 1.0},
		{"chin_width", 0.03, 0.9},
		{"chin_length", 0.03, 0.9},
		{"taper", 0.06, 1.0},
		{"symmetry", 0.08, 0.5},
	},
	proportions.FeatureEyebrows: {
		{"length", 0.04, 1.0},
		{"arch_height", 0.015, 0.9},
		{"arch_angle", 10, 0.7},
		{"slope", 6, 0.8},
		{"gap", 0.04, 0.8},
		{"eye_distance", 0.03, 0.9},
		{"symmetry", 0.1, 0.4},
	},
}

// featureWeights weight the six feature scores in the overall blend.
var featureWeights = [proportions.NumFeatures]float64{1.0, 1.3, 1.1, 1.1, 0.9, 0.8}

// Metrics returns the metric table of one feature.
func Metrics(f proportions.Feature) []Metric {
	return append([]Metric(nil), metrics[f]...)
}

// FeatureWeight returns the blend weight of one feature.
func FeatureWeight(f proportions.Feature) float64 {
	return featureWeights[f]
}
