package parsing

import "math"

// DataType identifies the element type carried by a Tensor.
type DataType int

const (
	Float32 DataType = iota
	Int32
	Int64
)

// String returns the element type name.
func (d DataType) String() string {
	switch d {
	case Float32:
		return "float32"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	default:
		return "unknown"
	}
}

// Tensor is a model output detached from the inference runtime. Exactly one
// of the data slices is populated, selected by Type.
type Tensor struct {
	Shape    []int64
	Type     DataType
	Float32s []float32
	Int32s   []int32
	Int64s   []int64
}

// Len returns the number of elements backing the tensor.
func (t Tensor) Len() int {
	switch t.Type {
	case Float32:
		return len(t.Float32s)
	case Int32:
		return len(t.Int32s)
	case Int64:
		return len(t.Int64s)
	}
	return 0
}

// elements returns the product of the shape dimensions.
func (t Tensor) elements() int64 {
	if len(t.Shape) == 0 {
		return 0
	}
	n := int64(1)
	for _, d := range t.Shape {
		n *= d
	}
	return n
}

// labelDims returns H and W for label maps shaped [1,H,W] or [1,1,H,W].
func (t Tensor) labelDims() (h, w int, ok bool) {
	switch len(t.Shape) {
	case 3:
		if t.Shape[0] == 1 {
			return int(t.Shape[1]), int(t.Shape[2]), true
		}
	case 4:
		if t.Shape[0] == 1 && t.Shape[1] == 1 {
			return int(t.Shape[2]), int(t.Shape[3]), true
		}
	}
	return 0, 0, false
}

// decoder interprets one output layout.
type decoder interface {
	Name() string
	Decode(t Tensor) (*Mask, bool)
}

// decoders are tried in order; the first that accepts the tensor wins.
// New layouts are supported by appending to this list.
var decoders = []decoder{
	scoreMapDecoder{},
	floatLabelDecoder{},
	intLabelDecoder{dtype: Int32},
	intLabelDecoder{dtype: Int64},
}

// DecodeMask converts a model output into a label mask. It returns the name
// of the decoder that accepted the tensor.
func DecodeMask(t Tensor) (*Mask, string, bool) {
	if t.elements() <= 0 || int64(t.Len()) != t.elements() {
		return nil, "", false
	}

	for _, d := range decoders {
		if m, ok := d.Decode(t); ok {
			return m, d.Name(), true
		}
	}

	return nil, "", false
}

// scoreMapDecoder handles per-class scores shaped [1,C,H,W] with C > 1.
type scoreMapDecoder struct{}

func (scoreMapDecoder) Name() string { return "class scores" }

func (scoreMapDecoder) Decode(t Tensor) (*Mask, bool) {
	if t.Type != Float32 || len(t.Shape) != 4 || t.Shape[0] != 1 || t.Shape[1] <= 1 {
		return nil, false
	}

	channels := int(t.Shape[1])
	h, w := int(t.Shape[2]), int(t.Shape[3])
	plane := h * w

	classes := channels
	if classes > NumRegions {
		classes = NumRegions
	}

	m := NewMask(w, h)
	data := t.Float32s

	for i := 0; i < plane; i++ {
		best := 0
		bestScore := data[i]
		for c := 1; c < classes; c++ {
			if s := data[c*plane+i]; s > bestScore {
				best = c
				bestScore = s
			}
		}
		m.Labels[i] = Region(best)
	}

	return m, true
}

// floatLabelDecoder handles single-channel float label maps.
type floatLabelDecoder struct{}

func (floatLabelDecoder) Name() string { return "float labels" }

func (floatLabelDecoder) Decode(t Tensor) (*Mask, bool) {
	if t.Type != Float32 {
		return nil, false
	}

	h, w, ok := t.labelDims()
	if !ok {
		return nil, false
	}

	m := NewMask(w, h)
	for i, v := range t.Float32s {
		if math.IsNaN(float64(v)) {
			continue
		}
		m.Labels[i] = ClampLabel(int64(math.Round(float64(v))))
	}

	return m, true
}

// intLabelDecoder handles integer label maps of either rank.
type intLabelDecoder struct {
	dtype DataType
}

func (d intLabelDecoder) Name() string { return d.dtype.String() + " labels" }

func (d intLabelDecoder) Decode(t Tensor) (*Mask, bool) {
	if t.Type != d.dtype {
		return nil, false
	}

	h, w, ok := t.labelDims()
	if !ok {
		return nil, false
	}

	m := NewMask(w, h)
	switch d.dtype {
	case Int32:
		for i, v := range t.Int32s {
			m.Labels[i] = ClampLabel(int64(v))
		}
	case Int64:
		for i, v := range t.Int64s {
			m.Labels[i] = ClampLabel(v)
		}
	default:
		return nil, false
	}

	return m, true
}
