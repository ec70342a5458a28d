package ui

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"VisionaryBoard/internal/render"
	"VisionaryBoard/internal/state"
)

var (
	shadowColor       = color.NRGBA{A: 70}
	handleStrokeColor = color.NRGBA{R: 120, G: 120, B: 120, A: 255}
)

// canvasSurface collects fyne canvas objects for one frame.
type canvasSurface struct {
	cam   *Camera
	objs  []fyne.CanvasObject
	alpha float64
	stack []float64
}

var _ render.Surface = (*canvasSurface)(nil)

func newCanvasSurface(cam *Camera) *canvasSurface {
	return &canvasSurface{cam: cam, alpha: 1}
}

func (s *canvasSurface) Save() { s.stack = append(s.stack, s.alpha) }

func (s *canvasSurface) Restore() {
	if n := len(s.stack); n > 0 {
		s.alpha = s.stack[n-1]
		s.stack = s.stack[:n-1]
	}
}

func (s *canvasSurface) SetAlpha(a float64) { s.alpha = a }

func (s *canvasSurface) Zoom() float64 { return s.cam.Zoom() }

func (s *canvasSurface) pos(p state.Point) fyne.Position {
	x, y := s.cam.WorldToScreen(p)
	return fyne.NewPos(float32(x), float32(y))
}

func (s *canvasSurface) tint(c color.NRGBA) color.NRGBA {
	c.A = uint8(math.Round(float64(c.A) * math.Min(math.Max(s.alpha, 0), 1)))
	return c
}

func (s *canvasSurface) StrokePolyline(pts []state.Point, closed bool, width float64, c color.NRGBA) {
	n := len(pts)
	if n < 2 {
		return
	}
	stroke := float32(math.Max(width*s.Zoom(), 1))
	c = s.tint(c)
	seg := func(a, b state.Point) {
		l := canvas.NewLine(c)
		l.StrokeWidth = stroke
		l.Position1 = s.pos(a)
		l.Position2 = s.pos(b)
		s.objs = append(s.objs, l)
	}
	for i := 1; i < n; i++ {
		seg(pts[i-1], pts[i])
	}
	if closed && n > 2 {
		seg(pts[n-1], pts[0])
	}
}

func (s *canvasSurface) FillCircle(center state.Point, r float64, c color.NRGBA, shadow bool) {
	rp := float32(r * s.Zoom())
	at := s.pos(center)
	if shadow {
		sh := canvas.NewCircle(s.tint(shadowColor))
		sh.Position1 = fyne.NewPos(at.X-rp-1, at.Y-rp+1)
		sh.Position2 = fyne.NewPos(at.X+rp+3, at.Y+rp+3)
		s.objs = append(s.objs, sh)
	}
	dot := canvas.NewCircle(s.tint(c))
	dot.Position1 = fyne.NewPos(at.X-rp, at.Y-rp)
	dot.Position2 = fyne.NewPos(at.X+rp, at.Y+rp)
	if shadow {
		dot.StrokeColor = handleStrokeColor
		dot.StrokeWidth = 1
	}
	s.objs = append(s.objs, dot)
}

// FillRadialGradient paints a fading disc and a solid core on top.
func (s *canvasSurface) FillRadialGradient(center state.Point, radius, core float64, c color.NRGBA) {
	rp := float32(radius * s.Zoom())
	at := s.pos(center)
	solid := s.tint(c)
	faded := solid
	faded.A = 0

	g := canvas.NewRadialGradient(solid, faded)
	g.Move(fyne.NewPos(at.X-rp, at.Y-rp))
	g.Resize(fyne.NewSize(2*rp, 2*rp))
	s.objs = append(s.objs, g)

	cr := rp * float32(core)
	dot := canvas.NewCircle(solid)
	dot.Position1 = fyne.NewPos(at.X-cr, at.Y-cr)
	dot.Position2 = fyne.NewPos(at.X+cr, at.Y+cr)
	s.objs = append(s.objs, dot)
}

// gridLines returns the grid covering the camera viewport.
func gridLines(cam *Camera, size float64, c color.Color) []fyne.CanvasObject {
	if size <= 0 || size*cam.Zoom() < 4 {
		return nil
	}
	tl := cam.ScreenToWorld(0, 0)
	br := cam.ScreenToWorld(cam.w, cam.h)
	var out []fyne.CanvasObject
	for x := math.Floor(tl.X/size) * size; x <= br.X; x += size {
		sx, _ := cam.WorldToScreen(state.Point{X: x})
		l := canvas.NewLine(c)
		l.StrokeWidth = 0.5
		l.Position1 = fyne.NewPos(float32(sx), 0)
		l.Position2 = fyne.NewPos(float32(sx), float32(cam.h))
		out = append(out, l)
	}
	for y := math.Floor(tl.Y/size) * size; y <= br.Y; y += size {
		_, sy := cam.WorldToScreen(state.Point{Y: y})
		l := canvas.NewLine(c)
		l.StrokeWidth = 0.5
		l.Position1 = fyne.NewPos(0, float32(sy))
		l.Position2 = fyne.NewPos(float32(cam.w), float32(sy))
		out = append(out, l)
	}
	return out
}
