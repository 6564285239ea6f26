package landmarks

// Recognized flat layouts.
const (
	meshPoints = 468
	mesh2DSize = meshPoints * 2
	mesh3DSize = meshPoints * 3
)

// meshToCanonical maps each canonical landmark to one vertex of the
// 468-point face mesh.
var meshToCanonical = [NumPoints]int{
	// jaw 0-16
	162, 234, 93, 58, 172, 136, 149, 148, 152, 377, 378, 365, 397, 288, 323, 454, 389,
	// brows 17-26
	71, 63, 105, 66, 107, 336, 296, 334, 293, 301,
	// nose 27-35
	168, 197, 5, 4, 75, 97, 2, 326, 305,
	// eyes 36-47
	33, 160, 158, 133, 153, 144, 362, 385, 387, 263, 373, 380,
	// mouth 48-67
	61, 39, 37, 0, 267, 269, 291, 405, 314, 17, 84, 181, 78, 82, 13, 312, 308, 317, 14, 87,
}

// Normalize converts a flat landmark array into the canonical 68-point
// layout. The layout is inferred from the length: 136 values are already
// canonical, 936 values are 468 (x,y) mesh points and 1404 values are 468
// (x,y,z) mesh points whose depth is dropped.
//
// Any other length is returned unchanged. Callers must not assume 68-point
// semantics in that case.
func Normalize(raw []float64) []float64 {
	switch len(raw) {
	case FlatSize:
		out := make([]float64, FlatSize)
		copy(out, raw)
		return out
	case mesh2DSize:
		return fromMesh(raw, 2)
	case mesh3DSize:
		return fromMesh(raw, 3)
	default:
		if raw != nil {
			log.Debugf("landmarks: unrecognized layout with %d values, passing through", len(raw))
		}
		return raw
	}
}

// IsCanonical reports whether a flat array has the canonical length.
func IsCanonical(flat []float64) bool {
	return len(flat) == FlatSize
}

func fromMesh(raw []float64, stride int) []float64 {
	out := make([]float64, FlatSize)
	for i, v := range meshToCanonical {
		out[i*2] = raw[v*stride]
		out[i*2+1] = raw[v*stride+1]
	}
	return out
}
