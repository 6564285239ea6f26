package landmarks

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// BoundingBox represents an axis aligned box around a set of points
type BoundingBox struct {
	X1, Y1 float64 // top-left
	X2, Y2 float64 // bottom-right
}

// Width returns box width
func (b BoundingBox) Width() float64 {
	return b.X2 - b.X1
}

// Height returns box height
func (b BoundingBox) Height() float64 {
	return b.Y2 - b.Y1
}

// Center returns box center point
func (b BoundingBox) Center() Point {
	return Point{
		X: (b.X1 + b.X2) / 2,
		Y: (b.Y1 + b.Y2) / 2,
	}
}

// Canonical 68-point layout.
const (
	JawStart       = 0
	JawEnd         = 16
	Chin           = 8
	RightBrowStart = 17
	RightBrowEnd   = 21
	LeftBrowStart  = 22
	LeftBrowEnd    = 26
	NoseBridge     = 27
	NoseTip        = 30
	NoseLeftWing   = 31
	NoseBottom     = 33
	NoseRightWing  = 35
	RightEyeOuter  = 36
	RightEyeInner  = 39
	LeftEyeInner   = 42
	LeftEyeOuter   = 45
	MouthLeft      = 48
	UpperLipTop    = 51
	MouthRight     = 54
	LowerLipBottom = 57
	InnerLipTop    = 62
	InnerLipBottom = 66
	EyesEnd        = 47
	MouthEnd       = 67

	NumPoints = 68
	// FlatSize is the length of a flattened canonical landmark array.
	FlatSize = NumPoints * 2
)

// Canonical holds the 68 canonical landmarks. Indices are positional; the
// named constants above describe the layout.
type Canonical [NumPoints]Point

// FromFlat builds canonical landmarks from a flat [x0,y0,x1,y1,...] slice.
// It returns false when the slice is shorter than FlatSize.
func FromFlat(flat []float64) (Canonical, bool) {
	var c Canonical
	if len(flat) < FlatSize {
		return c, false
	}
	for i := 0; i < NumPoints; i++ {
		c[i] = Point{X: flat[i*2], Y: flat[i*2+1]}
	}
	return c, true
}

// Flat returns landmarks as a flat slice [x0,y0,x1,y1,...]
func (c *Canonical) Flat() []float64 {
	flat := make([]float64, 0, FlatSize)
	for _, p := range c {
		flat = append(flat, p.X, p.Y)
	}
	return flat
}

// Point returns landmark i, or the zero point when i is out of range.
func (c *Canonical) Point(i int) Point {
	if i < 0 || i >= NumPoints {
		return Point{}
	}
	return c[i]
}

// Mid returns the midpoint between two landmarks.
func (c *Canonical) Mid(a, b int) Point {
	return Point{
		X: (c[a].X + c[b].X) / 2,
		Y: (c[a].Y + c[b].Y) / 2,
	}
}

// MeanY returns the average Y of the landmarks in [from, to].
func (c *Canonical) MeanY(from, to int) float64 {
	var sum float64
	for i := from; i <= to; i++ {
		sum += c[i].Y
	}
	return sum / float64(to-from+1)
}

// BoundingBox computes tight bounding box around all 68 points
func (c *Canonical) BoundingBox() BoundingBox {
	minX, minY := c[0].X, c[0].Y
	maxX, maxY := c[0].X, c[0].Y
	for i := 1; i < len(c); i++ {
		if c[i].X < minX {
			minX = c[i].X
		}
		if c[i].X > maxX {
			maxX = c[i].X
		}
		if c[i].Y < minY {
			minY = c[i].Y
		}
		if c[i].Y > maxY {
			maxY = c[i].Y
		}
	}
	return BoundingBox{X1: minX, Y1: minY, X2: maxX, Y2: maxY}
}
