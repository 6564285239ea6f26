package scoring

import "github.com/dudu/facescore/internal/proportions"

// Shape match factors.
const (
	ShapeMatchExact   = 1.0
	ShapeMatchUnknown = 0.9
	ShapeMatchDefault = 0.65
)

type shapePair [2]proportions.FaceShape

func pairOf(a, b proportions.FaceShape) shapePair {
	if a > b {
		a, b = b, a
	}
	return shapePair{a, b}
}

// shapeTable holds compatibilities of unordered shape pairs.
var shapeTable = map[shapePair]float64{
	// near identical
	pairOf(proportions.ShapeRound, proportions.ShapeOval):  0.90,
	pairOf(proportions.ShapeOblong, proportions.ShapeOval): 0.88,

	// related
	pairOf(proportions.ShapeSquare, proportions.ShapeDiamond): 0.78,
	pairOf(proportions.ShapeHeart, proportions.ShapeDiamond):  0.75,
	pairOf(proportions.ShapeHeart, proportions.ShapeOval):     0.80,

	// opposites
	pairOf(proportions.ShapeRound, proportions.ShapeDiamond): 0.50,
	pairOf(proportions.ShapeRound, proportions.ShapeSquare):  0.55,
	pairOf(proportions.ShapeRound, proportions.ShapeOblong):  0.50,
	pairOf(proportions.ShapeRound, proportions.ShapeHeart):   0.60,
	pairOf(proportions.ShapeSquare, proportions.ShapeHeart):  0.55,
}

// CalculateShapeMatch returns the compatibility factor of two face shapes.
// It is symmetric in its arguments.
func CalculateShapeMatch(a, b proportions.FaceShape) float64 {
	if a == proportions.ShapeUnknown || b == proportions.ShapeUnknown {
		return ShapeMatchUnknown
	}
	if a == b {
		return ShapeMatchExact
	}
	if v, ok := shapeTable[pairOf(a, b)]; ok {
		return v
	}
	return ShapeMatchDefault
}
