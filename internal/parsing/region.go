package parsing

// Region is a semantic face-parsing class label.
type Region uint8

// CelebAMask-HQ class vocabulary, in model output order.
const (
	Background Region = iota
	Skin
	LeftBrow
	RightBrow
	LeftEye
	RightEye
	Eyeglasses
	LeftEar
	RightEar
	Earring
	Nose
	Mouth // inner mouth
	UpperLip
	LowerLip
	Neck
	Necklace
	Cloth
	Hair
	Hat

	NumRegions = 19
)

var regionNames = [NumRegions]string{
	"background", "skin", "l_brow", "r_brow", "l_eye", "r_eye", "eye_g",
	"l_ear", "r_ear", "ear_r", "nose", "mouth", "u_lip", "l_lip",
	"neck", "neck_l", "cloth", "hair", "hat",
}

// String returns the region label name.
func (r Region) String() string {
	if int(r) < NumRegions {
		return regionNames[r]
	}
	return "unknown"
}

// ClampLabel converts a raw label value into a valid region.
func ClampLabel(v int64) Region {
	if v < 0 {
		return Background
	}
	if v >= NumRegions {
		return Hat
	}
	return Region(v)
}
