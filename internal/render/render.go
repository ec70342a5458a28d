// Package render paints elements onto an abstract 2D surface. It holds no
// state: the same element always produces the same calls.
package render

import (
	"image/color"
	"math"

	"VisionaryBoard/internal/state"
)

// Surface is the drawing context an element is painted on. Coordinates are
// world units; the surface applies its own camera.
type Surface interface {
	// Save pushes the current alpha; Restore pops it.
	Save()
	Restore()
	// SetAlpha sets the alpha applied to everything drawn until Restore.
	SetAlpha(a float64)
	Zoom() float64

	StrokePolyline(pts []state.Point, closed bool, width float64, c color.NRGBA)
	FillCircle(center state.Point, r float64, c color.NRGBA, shadow bool)
	// FillRadialGradient paints c solid out to core*radius, fading to
	// transparent at radius.
	FillRadialGradient(center state.Point, radius, core float64, c color.NRGBA)
}

const (
	// HandlePx is the on-screen handle radius.
	HandlePx = 12.0
	// CenterHandleScale enlarges the transform handle.
	CenterHandleScale = 1.5
)

var handleColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// CoreRatio is the solid fraction of a soft stroke daub for smoothness 0..100.
func CoreRatio(smoothness float64) float64 {
	return math.Max(0.01, 1-smoothness/100)
}

// HandleRadius returns the world-space radius of a handle on s.
func HandleRadius(s Surface) float64 {
	if z := s.Zoom(); z > 0 {
		return HandlePx / z
	}
	return HandlePx
}

// Draw paints a committed element.
func Draw(s Surface, el state.Element) {
	switch el := el.(type) {
	case *state.Line:
		s.StrokePolyline([]state.Point{el.A, el.B}, false, el.Thickness, el.Color)
	case *state.PolygonShape:
		if len(el.Vertices) > 0 {
			s.StrokePolyline(el.Vertices, true, el.Thickness, el.Color)
		}
	case *state.SoftStroke:
		drawSoft(s, el)
	}
}

// DrawAll paints elements in order.
func DrawAll(s Surface, els []state.Element) {
	for _, el := range els {
		Draw(s, el)
	}
}

// DrawLive paints the live element with its interaction handles.
func DrawLive(s Surface, el state.Element) {
	if el == nil {
		return
	}
	Draw(s, el)

	r := HandleRadius(s)
	switch el := el.(type) {
	case *state.Line:
		s.FillCircle(el.A, r, handleColor, true)
		s.FillCircle(el.B, r, handleColor, true)
	case *state.PolygonShape:
		if el.Mode == state.ModeTransform {
			s.FillCircle(el.Center, r*CenterHandleScale, handleColor, true)
			return
		}
		for _, v := range el.Vertices {
			s.FillCircle(v, r, handleColor, true)
		}
	}
}

func drawSoft(s Surface, el *state.SoftStroke) {
	core := CoreRatio(el.Smoothness)
	s.Save()
	s.SetAlpha(el.Opacity)
	for _, p := range el.Points {
		s.FillRadialGradient(p, el.Radius, core, el.Color)
	}
	s.Restore()
}
