package render

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VisionaryBoard/internal/state"
)

// recorder is a Surface that logs calls.
type recorder struct {
	zoom   float64
	alpha  float64
	stack  []float64
	calls  []string
	alphas []float64
}

func newRecorder(zoom float64) *recorder { return &recorder{zoom: zoom, alpha: 1} }

func (r *recorder) Save() {
	r.stack = append(r.stack, r.alpha)
	r.calls = append(r.calls, "save")
}

func (r *recorder) Restore() {
	r.alpha = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.calls = append(r.calls, "restore")
}

func (r *recorder) SetAlpha(a float64) { r.alpha = a }
func (r *recorder) Zoom() float64      { return r.zoom }

func (r *recorder) StrokePolyline(pts []state.Point, closed bool, width float64, c color.NRGBA) {
	r.calls = append(r.calls, fmt.Sprintf("poly n=%d closed=%v w=%g", len(pts), closed, width))
}

func (r *recorder) FillCircle(center state.Point, rad float64, c color.NRGBA, shadow bool) {
	r.calls = append(r.calls, fmt.Sprintf("circle %g,%g r=%g", center.X, center.Y, rad))
}

func (r *recorder) FillRadialGradient(center state.Point, radius, core float64, c color.NRGBA) {
	r.calls = append(r.calls, fmt.Sprintf("grad %g,%g r=%g core=%g", center.X, center.Y, radius, core))
	r.alphas = append(r.alphas, r.alpha)
}

func TestCoreRatio(t *testing.T) {
	assert.Equal(t, 1.0, CoreRatio(0))
	assert.InDelta(t, 0.5, CoreRatio(50), 1e-12)
	assert.Equal(t, 0.01, CoreRatio(100))
	assert.Equal(t, 0.01, CoreRatio(99.5))
}

func TestDraw_Line(t *testing.T) {
	r := newRecorder(1)
	line := &state.Line{A: state.Point{}, B: state.Point{X: 10}, Thickness: 3}
	Draw(r, line)
	assert.Equal(t, []string{"poly n=2 closed=false w=3"}, r.calls)
}

func TestDrawLive_LineHandlesScaleWithZoom(t *testing.T) {
	r := newRecorder(2)
	DrawLive(r, &state.Line{A: state.Point{}, B: state.Point{X: 10}, Thickness: 3})
	assert.Equal(t, []string{
		"poly n=2 closed=false w=3",
		"circle 0,0 r=6",
		"circle 10,0 r=6",
	}, r.calls)
}

func TestDrawLive_ShapeModes(t *testing.T) {
	shape := state.NewPolygonShape(state.ShapeSquare, state.Point{X: 5, Y: 5}, 10, state.DefaultStyle())
	require.NotNil(t, shape)

	r := newRecorder(1)
	DrawLive(r, shape)
	assert.Equal(t, []string{"poly n=4 closed=true w=4", "circle 5,5 r=18"}, r.calls)

	shape.Mode = state.ModeMorph
	r = newRecorder(1)
	DrawLive(r, shape)
	assert.Len(t, r.calls, 5)
	assert.Equal(t, "circle 0,0 r=12", r.calls[1])
}

func TestDraw_SoftStrokeScopesAlpha(t *testing.T) {
	style := state.DefaultStyle()
	style.Smoothness = 100
	style.Opacity = 0.25
	ss := state.NewSoftStroke(state.Point{}, 20, style)
	ss.AddPoint(state.Point{X: 10})

	r := newRecorder(1)
	Draw(r, ss)
	assert.Equal(t, []string{
		"save",
		"grad 0,0 r=20 core=0.01",
		"grad 10,0 r=20 core=0.01",
		"restore",
	}, r.calls)
	assert.Equal(t, []float64{0.25, 0.25}, r.alphas)
	assert.Equal(t, 1.0, r.alpha)

	// soft strokes have no handles
	r = newRecorder(1)
	DrawLive(r, ss)
	assert.Len(t, r.calls, 4)
}

func TestDrawAll_Order(t *testing.T) {
	r := newRecorder(1)
	DrawAll(r, []state.Element{
		&state.Line{Thickness: 1},
		state.NewPolygonShape(state.ShapeTri, state.Point{}, 10, state.DefaultStyle()),
	})
	assert.Equal(t, []string{"poly n=2 closed=false w=1", "poly n=3 closed=true w=4"}, r.calls)
	DrawLive(r, nil)
	assert.Len(t, r.calls, 2)
}
