package ui

import (
	"math"
	"time"

	"fyne.io/fyne/v2"

	"VisionaryBoard/internal/gesture"
)

// touchTarget is anything driven by touch events: the tool controller and
// the viewer controller.
type touchTarget interface {
	TouchStart(touches []gesture.Touch, at time.Time)
	TouchMove(touches []gesture.Touch, at time.Time)
	TouchEnd(changed []gesture.Touch, remaining int, at time.Time)
}

const (
	mouseTouchID = 1
	// scrollZoomRate converts scroll units into an exponential zoom factor.
	scrollZoomRate = 0.01
	// pinchSpan is the finger spread a synthesized pinch starts from.
	pinchSpan = 100.0
)

// pointer turns the single fyne mouse pointer into touch events. The
// desktop driver has no multi-touch, so pinches come from the scroll wheel.
type pointer struct {
	target touchTarget
	now    func() time.Time
	down   bool
	last   fyne.Position
}

func newPointer(t touchTarget) *pointer {
	return &pointer{target: t, now: time.Now}
}

func touchAt(pos fyne.Position) []gesture.Touch {
	return []gesture.Touch{{ID: mouseTouchID, X: float64(pos.X), Y: float64(pos.Y)}}
}

func (p *pointer) start(pos fyne.Position) {
	p.down = true
	p.last = pos
	p.target.TouchStart(touchAt(pos), p.now())
}

func (p *pointer) move(pos fyne.Position) {
	if !p.down {
		return
	}
	p.last = pos
	p.target.TouchMove(touchAt(pos), p.now())
}

// end finishes the gesture once; MouseUp and DragEnd may both call it.
func (p *pointer) end(pos fyne.Position) {
	if !p.down {
		return
	}
	p.down = false
	p.target.TouchEnd(touchAt(pos), 0, p.now())
}

// pinch plays a complete two-finger pinch by factor k centred on at.
func (p *pointer) pinch(at fyne.Position, k float64) {
	if p.down || k <= 0 {
		return
	}
	cx, cy := float64(at.X), float64(at.Y)
	pair := func(d float64) []gesture.Touch {
		return []gesture.Touch{
			{ID: mouseTouchID, X: cx - d/2, Y: cy},
			{ID: mouseTouchID + 1, X: cx + d/2, Y: cy},
		}
	}
	now := p.now()
	p.target.TouchStart(pair(pinchSpan), now)
	p.target.TouchMove(pair(pinchSpan*k), now)
	p.target.TouchEnd(pair(pinchSpan*k), 0, now)
}

func scrollFactor(e *fyne.ScrollEvent) float64 {
	return math.Exp(float64(e.Scrolled.DY) * scrollZoomRate)
}
