package proportions

// Feature identifies one of the six analyzed feature groups.
type Feature int

const (
	FeatureFace Feature = iota
	FeatureEyes
	FeatureNose
	FeatureMouth
	FeatureJaw
	FeatureEyebrows

	NumFeatures = 6
)

// Features lists all feature groups in vector order.
var Features = [NumFeatures]Feature{
	FeatureFace, FeatureEyes, FeatureNose, FeatureMouth, FeatureJaw, FeatureEyebrows,
}

var featureNames = [NumFeatures]string{"face", "eyes", "nose", "mouth", "jaw", "eyebrows"}

// String returns the feature name.
func (f Feature) String() string {
	if f >= 0 && int(f) < NumFeatures {
		return featureNames[f]
	}
	return "unknown"
}

// FaceShape is the categorical outline classification.
type FaceShape int

const (
	ShapeUnknown FaceShape = iota
	ShapeOval
	ShapeRound
	ShapeSquare
	ShapeHeart
	ShapeOblong
	ShapeDiamond

	NumShapes = 7
)

var shapeNames = [NumShapes]string{"unknown", "oval", "round", "square", "heart", "oblong", "diamond"}

// String returns the shape name.
func (s FaceShape) String() string {
	if s >= 0 && int(s) < NumShapes {
		return shapeNames[s]
	}
	return "unknown"
}

// FaceGeometry describes overall face proportions.
type FaceGeometry struct {
	AspectRatio float64 // width / height
	UpperThird  float64 // forehead share of face height
	MiddleThird float64 // brows to nose base
	LowerThird  float64 // nose base to chin
	JawTaper    float64 // lower jaw width / upper jaw width
	Shape       FaceShape
	Confidence  float64
}

// Eyes holds eye measurements normalized by face width.
type Eyes struct {
	Width         float64
	Height        float64
	AspectRatio   float64 // height / width
	InnerDistance float64
	OuterDistance float64
	TiltAngle     float64 // degrees, positive when outer corners are higher
	Symmetry      float64
	Confidence    float64
}

// Nose holds nose measurements.
type Nose struct {
	Length           float64 // by face height
	Width            float64 // by face width
	WidthLengthRatio float64
	BridgeAngle      float64 // degrees at the nose tip, 180 is straight
	NostrilAngle     float64 // degrees at the nose base
	TipPosition      float64 // eye line to nose base, by face height
	Deviation        float64 // signed tip offset from the face midline, by face width
	Confidence       float64
}

// Mouth holds lip and mouth measurements.
type Mouth struct {
	Width      float64 // by face width
	Height     float64 // by face height
	UpperLip   float64 // upper lip thickness by face height
	LowerLip   float64 // lower lip thickness by face height
	LipRatio   float64 // upper / lower
	Openness   float64 // inner lip gap by face height
	CornerTilt float64 // degrees, positive when corners are raised
	Position   float64 // nose base to mouth center, by face height
	Symmetry   float64
	Confidence float64
}

// Jaw holds jawline and chin measurements.
type Jaw struct {
	Width      float64 // by face width
	Angle      float64 // degrees
	ChinWidth  float64 // by face width
	ChinLength float64 // lower lip to chin, by face height
	Taper      float64
	Symmetry   float64
	Confidence float64
}

// Eyebrows holds eyebrow measurements.
type Eyebrows struct {
	Length      float64 // by face width
	ArchHeight  float64 // by face width
	ArchAngle   float64 // degrees at the arch peak
	Slope       float64 // degrees, positive when outer ends are higher
	Gap         float64 // between inner ends, by face width
	EyeDistance float64 // brow line to upper lids, by face height
	Symmetry    float64
	Confidence  float64
}

// Source tags describing how a result was produced.
const (
	SourceLandmarks    = "landmarks"
	SourceSegmentation = "landmarks+segmentation"
	SourceNone         = "none"
)

// Result holds the six feature records of one face.
type Result struct {
	Face       *FaceGeometry
	Eyes       *Eyes
	Nose       *Nose
	Mouth      *Mouth
	Jaw        *Jaw
	Eyebrows   *Eyebrows
	Confidence float64
	Source     string
	Reason     string // set when the result is empty
}

// Empty returns a result without measurements.
func Empty(reason string) *Result {
	return &Result{Source: SourceNone, Reason: reason}
}

// IsValid returns true if at least one feature was measured.
func (r *Result) IsValid() bool {
	if r == nil {
		return false
	}
	for _, f := range Features {
		if r.Has(f) {
			return true
		}
	}
	return false
}

// Has reports whether the feature record is present.
func (r *Result) Has(f Feature) bool {
	if r == nil {
		return false
	}
	switch f {
	case FeatureFace:
		return r.Face != nil
	case FeatureEyes:
		return r.Eyes != nil
	case FeatureNose:
		return r.Nose != nil
	case FeatureMouth:
		return r.Mouth != nil
	case FeatureJaw:
		return r.Jaw != nil
	case FeatureEyebrows:
		return r.Eyebrows != nil
	}
	return false
}

// Shape returns the classified face shape or ShapeUnknown.
func (r *Result) Shape() FaceShape {
	if r == nil || r.Face == nil {
		return ShapeUnknown
	}
	return r.Face.Shape
}

// FeatureConfidence returns the confidence of one feature record, 0 if absent.
func (r *Result) FeatureConfidence(f Feature) float64 {
	if !r.Has(f) {
		return 0
	}
	switch f {
	case FeatureFace:
		return r.Face.Confidence
	case FeatureEyes:
		return r.Eyes.Confidence
	case FeatureNose:
		return r.Nose.Confidence
	case FeatureMouth:
		return r.Mouth.Confidence
	case FeatureJaw:
		return r.Jaw.Confidence
	case FeatureEyebrows:
		return r.Eyebrows.Confidence
	}
	return 0
}
