package state

import (
	"image/color"
	"math"
	"time"
)

// Point is a position in world coordinates.
type Point struct{ X, Y float64 }

func (p Point) Add(dx, dy float64) Point { return Point{X: p.X + dx, Y: p.Y + dy} }

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Style is the style snapshot an element is created with.
type Style struct {
	Color       color.NRGBA
	Thickness   float64
	ShadeRadius float64
	Smoothness  float64 // 0..100
	Opacity     float64 // 0..1
}

// DefaultStyle matches the initial toolbar values.
func DefaultStyle() Style {
	return Style{
		Color:       color.NRGBA{A: 255},
		Thickness:   4,
		ShadeRadius: 40,
		Smoothness:  50,
		Opacity:     0.3,
	}
}

type Kind string

const (
	KindLine   Kind = "line"
	KindShape  Kind = "shape"
	KindShader Kind = "shader"
)

// Element is the tagged union of drawable elements.
// Implementations: *Line, *PolygonShape, *SoftStroke.
type Element interface {
	Kind() Kind
	// Clone returns a deep copy with interaction state cleared.
	Clone() Element
	isElement()
}

type Endpoint int

const (
	EndpointNone Endpoint = iota
	EndpointA
	EndpointB
)

type EditMode int

const (
	ModeTransform EditMode = iota
	ModeMorph
)

func (m EditMode) String() string {
	if m == ModeMorph {
		return "morph"
	}
	return "transform"
}

// NoVertex marks a PolygonShape with no grabbed vertex.
const NoVertex = -1

// Line is a straight segment with two draggable endpoints.
type Line struct {
	A, B      Point
	Thickness float64
	Color     color.NRGBA
	Active    Endpoint
}

func (*Line) Kind() Kind { return KindLine }
func (*Line) isElement() {}

func (l *Line) Clone() Element {
	c := *l
	c.Active = EndpointNone
	return &c
}

// Move sets the active endpoint to p. It reports false when no endpoint is active.
func (l *Line) Move(p Point) bool {
	switch l.Active {
	case EndpointA:
		l.A = p
	case EndpointB:
		l.B = p
	default:
		return false
	}
	return true
}

// Grab selects the endpoint within radius of p, checking A first.
func (l *Line) Grab(p Point, radius float64) Endpoint {
	switch {
	case p.Dist(l.A) < radius:
		l.Active = EndpointA
	case p.Dist(l.B) < radius:
		l.Active = EndpointB
	default:
		l.Active = EndpointNone
	}
	return l.Active
}

// PolygonShape is a closed polygon whose vertex count is fixed at creation.
type PolygonShape struct {
	Shape        ShapeKind
	Center       Point
	Size         float64
	Vertices     []Point
	Thickness    float64
	Color        color.NRGBA
	Mode         EditMode
	ActiveVertex int
}

// NewPolygonShape builds a shape of the given kind, or nil for an unknown kind.
func NewPolygonShape(kind ShapeKind, center Point, size float64, style Style) *PolygonShape {
	verts := Generate(kind, center, size)
	if len(verts) == 0 {
		return nil
	}
	return &PolygonShape{
		Shape:        kind,
		Center:       center,
		Size:         size,
		Vertices:     verts,
		Thickness:    style.Thickness,
		Color:        style.Color,
		Mode:         ModeTransform,
		ActiveVertex: NoVertex,
	}
}

func (*PolygonShape) Kind() Kind { return KindShape }
func (*PolygonShape) isElement() {}

func (s *PolygonShape) Clone() Element {
	c := *s
	c.Vertices = append([]Point(nil), s.Vertices...)
	c.ActiveVertex = NoVertex
	return &c
}

// Translate moves the centre and every vertex by (dx, dy).
func (s *PolygonShape) Translate(dx, dy float64) {
	s.Center = s.Center.Add(dx, dy)
	for i := range s.Vertices {
		s.Vertices[i] = s.Vertices[i].Add(dx, dy)
	}
}

// Scale scales the shape uniformly about its centre.
func (s *PolygonShape) Scale(k float64) {
	c := s.Center
	for i, v := range s.Vertices {
		s.Vertices[i] = Point{X: c.X + (v.X-c.X)*k, Y: c.Y + (v.Y-c.Y)*k}
	}
	s.Size *= k
}

// HitVertex returns the index of the closest vertex within radius of p,
// or NoVertex. Ties go to the lowest index.
func (s *PolygonShape) HitVertex(p Point, radius float64) int {
	best, bestDist := NoVertex, radius
	for i, v := range s.Vertices {
		if d := p.Dist(v); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// MoveVertex shifts vertex i by (dx, dy). Out of range indexes are ignored.
func (s *PolygonShape) MoveVertex(i int, dx, dy float64) bool {
	if i < 0 || i >= len(s.Vertices) {
		return false
	}
	s.Vertices[i] = s.Vertices[i].Add(dx, dy)
	return true
}

// SoftStroke is a run of radial-gradient daubs.
type SoftStroke struct {
	Radius     float64
	Smoothness float64
	Color      color.NRGBA
	Opacity    float64
	Points     []Point
}

func NewSoftStroke(at Point, radius float64, style Style) *SoftStroke {
	return &SoftStroke{
		Radius:     radius,
		Smoothness: style.Smoothness,
		Color:      style.Color,
		Opacity:    style.Opacity,
		Points:     []Point{at},
	}
}

func (*SoftStroke) Kind() Kind { return KindShader }
func (*SoftStroke) isElement() {}

func (s *SoftStroke) Clone() Element {
	c := *s
	c.Points = append([]Point(nil), s.Points...)
	return &c
}

// MinSpacing is the minimum distance between two accepted points.
func (s *SoftStroke) MinSpacing() float64 { return s.Radius / 10 }

// AddPoint appends p if it lies farther than MinSpacing from the last point.
func (s *SoftStroke) AddPoint(p Point) bool {
	if n := len(s.Points); n > 0 && p.Dist(s.Points[n-1]) <= s.MinSpacing() {
		return false
	}
	s.Points = append(s.Points, p)
	return true
}

// Committed is an element in the permanent collection.
type Committed struct {
	ID        string
	Element   Element
	CreatedAt time.Time
}
