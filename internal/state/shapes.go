package state

import "math"

// ShapeKind names a polygon primitive.
type ShapeKind string

const (
	ShapeSquare ShapeKind = "square"
	ShapeRect   ShapeKind = "rect"
	ShapeCircle ShapeKind = "circle"
	ShapeTri    ShapeKind = "tri"
	ShapeStar   ShapeKind = "star"
	ShapeHex    ShapeKind = "hex"
	ShapeOct    ShapeKind = "oct"
)

// ShapeKinds lists the primitives in toolbar order.
var ShapeKinds = []ShapeKind{ShapeSquare, ShapeRect, ShapeCircle, ShapeTri, ShapeStar, ShapeHex, ShapeOct}

const (
	circleSegments  = 24
	starPoints      = 5
	starInnerFactor = 2.5
	rectAspect      = 1.5
)

// VertexCount returns the fixed number of vertices for kind, or 0 if unknown.
func VertexCount(kind ShapeKind) int {
	switch kind {
	case ShapeSquare, ShapeRect:
		return 4
	case ShapeCircle:
		return circleSegments
	case ShapeTri:
		return 3
	case ShapeStar:
		return starPoints * 2
	case ShapeHex:
		return 6
	case ShapeOct:
		return 8
	}
	return 0
}

// Generate returns the initial vertices of kind centred at center.
// An unknown kind yields nil.
func Generate(kind ShapeKind, center Point, size float64) []Point {
	r := size / 2
	cx, cy := center.X, center.Y
	switch kind {
	case ShapeSquare:
		return []Point{{cx - r, cy - r}, {cx + r, cy - r}, {cx + r, cy + r}, {cx - r, cy + r}}
	case ShapeRect:
		w := r * rectAspect
		return []Point{{cx - w, cy - r}, {cx + w, cy - r}, {cx + w, cy + r}, {cx - w, cy + r}}
	case ShapeCircle:
		return ring(center, r, circleSegments, 0)
	case ShapeTri, ShapeHex, ShapeOct:
		return ring(center, r, VertexCount(kind), -math.Pi/2)
	case ShapeStar:
		pts := make([]Point, 0, starPoints*2)
		a := -math.Pi / 2
		step := math.Pi / starPoints
		for i := 0; i < starPoints; i++ {
			pts = append(pts, polar(center, r, a))
			a += step
			pts = append(pts, polar(center, r/starInnerFactor, a))
			a += step
		}
		return pts
	}
	return nil
}

func ring(center Point, r float64, n int, start float64) []Point {
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = polar(center, r, start+float64(i)/float64(n)*2*math.Pi)
	}
	return pts
}

func polar(c Point, r, a float64) Point {
	return Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
}
