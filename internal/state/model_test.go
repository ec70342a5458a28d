package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(t *testing.T) *PolygonShape {
	t.Helper()
	s := NewPolygonShape(ShapeSquare, Point{X: 100, Y: 100}, 80, DefaultStyle())
	require.NotNil(t, s)
	return s
}

func TestPolygonShape_Translate(t *testing.T) {
	s := square(t)
	s.Translate(10, -5)
	assert.Equal(t, []Point{{70, 55}, {150, 55}, {150, 135}, {70, 135}}, s.Vertices)
	assert.Equal(t, Point{X: 110, Y: 95}, s.Center)
}

func TestPolygonShape_ScaleRoundTrip(t *testing.T) {
	for _, kind := range ShapeKinds {
		s := NewPolygonShape(kind, Point{X: 12.5, Y: -40}, 73, DefaultStyle())
		before := append([]Point(nil), s.Vertices...)
		s.Scale(1.37)
		s.Scale(1 / 1.37)
		for i := range before {
			assert.InDelta(t, before[i].X, s.Vertices[i].X, 1e-9, kind)
			assert.InDelta(t, before[i].Y, s.Vertices[i].Y, 1e-9, kind)
		}
		assert.InDelta(t, 73, s.Size, 1e-9)
	}
}

func TestPolygonShape_MoveVertexOnlyTouchesOne(t *testing.T) {
	s := NewPolygonShape(ShapeHex, Point{X: 1, Y: 2}, 60, DefaultStyle())
	before := append([]Point(nil), s.Vertices...)

	require.True(t, s.MoveVertex(2, 7.25, -3.5))
	for i := range before {
		if i == 2 {
			assert.Equal(t, before[i].Add(7.25, -3.5), s.Vertices[i])
			continue
		}
		assert.Equal(t, before[i], s.Vertices[i])
	}
	assert.False(t, s.MoveVertex(6, 1, 1))
	assert.False(t, s.MoveVertex(NoVertex, 1, 1))
}

func TestPolygonShape_HitVertex(t *testing.T) {
	s := square(t)
	assert.Equal(t, 1, s.HitVertex(Point{X: 135, Y: 62}, 20))
	assert.Equal(t, NoVertex, s.HitVertex(Point{X: 100, Y: 100}, 20))
	// closest wins when two are in range
	assert.Equal(t, 0, s.HitVertex(Point{X: 61, Y: 60}, 200))
}

func TestClone_IsDeep(t *testing.T) {
	s := square(t)
	s.Mode = ModeMorph
	s.ActiveVertex = 3

	c := s.Clone().(*PolygonShape)
	c.Vertices[0] = Point{X: -1, Y: -1}
	assert.Equal(t, Point{X: 60, Y: 60}, s.Vertices[0])
	assert.Equal(t, NoVertex, c.ActiveVertex)
	assert.Equal(t, ModeMorph, c.Mode)

	l := &Line{A: Point{X: 1}, B: Point{Y: 1}, Active: EndpointB}
	lc := l.Clone().(*Line)
	assert.Equal(t, EndpointNone, lc.Active)
	assert.Equal(t, l.A, lc.A)

	ss := NewSoftStroke(Point{}, 10, DefaultStyle())
	sc := ss.Clone().(*SoftStroke)
	sc.Points[0] = Point{X: 9}
	assert.Equal(t, Point{}, ss.Points[0])
}

func TestLine_GrabPrefersA(t *testing.T) {
	l := &Line{A: Point{X: 0}, B: Point{X: 10}}
	assert.Equal(t, EndpointA, l.Grab(Point{X: 5}, 50))
	assert.Equal(t, EndpointB, l.Grab(Point{X: 40}, 35))
	assert.Equal(t, EndpointNone, l.Grab(Point{X: 500}, 35))
	assert.False(t, l.Move(Point{X: 3}))
	assert.Equal(t, Point{X: 10}, l.B)
}

func TestSoftStroke_Spacing(t *testing.T) {
	ss := NewSoftStroke(Point{}, 40, DefaultStyle())
	assert.False(t, ss.AddPoint(Point{X: 4}))
	assert.True(t, ss.AddPoint(Point{X: 4.5}))
	assert.False(t, ss.AddPoint(Point{X: 6}))
	assert.True(t, ss.AddPoint(Point{X: 9}))
	assert.Len(t, ss.Points, 3)

	for i := 1; i < len(ss.Points); i++ {
		assert.Greater(t, ss.Points[i].Dist(ss.Points[i-1]), ss.MinSpacing())
	}
}
