package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrokes_AppendCopies(t *testing.T) {
	s := NewStrokes()
	changes := 0
	s.OnChange = func() { changes++ }

	line := &Line{A: Point{X: 1}, B: Point{X: 2}, Active: EndpointB}
	id := s.Append(line)
	require.NotEmpty(t, id)

	line.A = Point{X: 99}
	all := s.All()
	require.Len(t, all, 1)
	assert.Equal(t, id, all[0].ID)
	got := all[0].Element.(*Line)
	assert.Equal(t, Point{X: 1}, got.A)
	assert.Equal(t, EndpointNone, got.Active)

	// snapshots are independent too
	got.B = Point{X: -5}
	assert.Equal(t, Point{X: 2}, s.All()[0].Element.(*Line).B)
	assert.Equal(t, 1, changes)
}

func TestStrokes_Order(t *testing.T) {
	s := NewStrokes()
	s.Append(&Line{})
	s.Append(NewSoftStroke(Point{}, 10, DefaultStyle()))
	s.Append(NewPolygonShape(ShapeTri, Point{}, 10, DefaultStyle()))
	s.Append(nil)

	els := s.Elements()
	require.Len(t, els, 3)
	assert.Equal(t, KindLine, els[0].Kind())
	assert.Equal(t, KindShader, els[1].Kind())
	assert.Equal(t, KindShape, els[2].Kind())
}

func TestStrokes_Accrete(t *testing.T) {
	s := NewStrokes()
	id := s.Append(NewSoftStroke(Point{}, 20, DefaultStyle()))

	assert.False(t, s.Accrete(id, Point{X: 1}))
	assert.True(t, s.Accrete(id, Point{X: 3}))
	assert.False(t, s.Accrete("missing", Point{X: 30}))

	lineID := s.Append(&Line{})
	assert.False(t, s.Accrete(lineID, Point{X: 30}))

	ss := s.All()[0].Element.(*SoftStroke)
	assert.Equal(t, []Point{{0, 0}, {3, 0}}, ss.Points)
}

func TestStrokes_Clear(t *testing.T) {
	s := NewStrokes()
	id := s.Append(NewSoftStroke(Point{}, 20, DefaultStyle()))
	s.Clear()
	assert.Zero(t, s.Len())
	assert.False(t, s.Accrete(id, Point{X: 50}))
}
