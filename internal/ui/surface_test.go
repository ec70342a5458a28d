package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VisionaryBoard/internal/render"
	"VisionaryBoard/internal/state"
)

func TestCanvasSurface_Polyline(t *testing.T) {
	cam := NewCamera()
	cam.ZoomAt(2, 0, 0)
	cam.PanBy(10, 0)
	s := newCanvasSurface(cam)

	tri := []state.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	s.StrokePolyline(tri, true, 3, color.NRGBA{R: 255, A: 255})
	require.Len(t, s.objs, 3)

	first := s.objs[0].(*canvas.Line)
	assert.Equal(t, fyne.NewPos(10, 0), first.Position1)
	assert.Equal(t, fyne.NewPos(30, 0), first.Position2)
	assert.Equal(t, float32(6), first.StrokeWidth)

	closing := s.objs[2].(*canvas.Line)
	assert.Equal(t, fyne.NewPos(10, 20), closing.Position1)
	assert.Equal(t, fyne.NewPos(10, 0), closing.Position2)

	s.StrokePolyline(tri[:2], false, 1, color.NRGBA{A: 255})
	assert.Len(t, s.objs, 4)
	s.StrokePolyline(tri[:1], false, 1, color.NRGBA{A: 255})
	assert.Len(t, s.objs, 4)
}

func TestCanvasSurface_AlphaAndSoft(t *testing.T) {
	s := newCanvasSurface(NewCamera())
	style := state.DefaultStyle()
	style.Opacity = 0.5
	soft := state.NewSoftStroke(state.Point{X: 50, Y: 50}, 20, style)
	render.Draw(s, soft)

	require.Len(t, s.objs, 2)
	g := s.objs[0].(*canvas.RadialGradient)
	assert.Equal(t, fyne.NewPos(30, 30), g.Position())
	assert.Equal(t, fyne.NewSize(40, 40), g.Size())
	assert.Equal(t, uint8(128), g.StartColor.(color.NRGBA).A)
	assert.Equal(t, uint8(0), g.EndColor.(color.NRGBA).A)

	core := s.objs[1].(*canvas.Circle)
	assert.InDelta(t, 20*render.CoreRatio(style.Smoothness), float64(core.Position2.X-50), 1e-4)

	// alpha is restored after the stroke
	s.FillCircle(state.Point{}, 1, color.NRGBA{A: 255}, false)
	assert.Equal(t, uint8(255), s.objs[2].(*canvas.Circle).FillColor.(color.NRGBA).A)
}

func TestCanvasSurface_LiveHandles(t *testing.T) {
	cam := NewCamera()
	cam.ZoomAt(2, 0, 0)
	s := newCanvasSurface(cam)
	line := &state.Line{A: state.Point{X: 0}, B: state.Point{X: 50}, Thickness: 2, Color: color.NRGBA{A: 255}}
	render.DrawLive(s, line)

	// one segment, then shadow and dot per endpoint
	require.Len(t, s.objs, 5)
	dot := s.objs[2].(*canvas.Circle)
	assert.Equal(t, float32(2*render.HandlePx), dot.Position2.X-dot.Position1.X)
}

func TestGridLines(t *testing.T) {
	cam := NewCamera()
	cam.Resize(100, 50)
	lines := gridLines(cam, 25, color.Black)
	// x = 0,25,50,75,100 and y = 0,25,50
	assert.Len(t, lines, 8)

	cam.ZoomAt(0.1, 0, 0)
	assert.Empty(t, gridLines(cam, 25, color.Black))
	assert.Empty(t, gridLines(NewCamera(), 0, color.Black))
}
