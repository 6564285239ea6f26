package scoring

import "math"

// Biweight maps a measurement difference to a similarity in [0, 1]:
// (1 - t²)² for t = |delta| / tolerance below 1, otherwise 0.
func Biweight(delta, tolerance float64) float64 {
	if tolerance <= 0 {
		if delta == 0 {
			return 1
		}
		return 0
	}

	t := math.Abs(delta) / tolerance
	if t >= 1 || math.IsNaN(t) {
		return 0
	}

	u := 1 - t*t
	return u * u
}

// Calibrate compresses a score toward 0.5 so that only clear matches or
// mismatches move far from neutral. It maps 0, 0.5 and 1 onto themselves.
func Calibrate(p float64) float64 {
	p = math.Max(0, math.Min(1, p))
	d := p - 0.5
	if d < 0 {
		return 0.5 - 2*d*d
	}
	return 0.5 + 2*d*d
}
