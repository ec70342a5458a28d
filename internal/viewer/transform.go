// Package viewer holds the pan/zoom state of the full-screen artwork viewer.
package viewer

import (
	"log"
	"math"
	"time"

	"VisionaryBoard/internal/gesture"
)

// Transform maps artwork to the screen: scale about the origin, then translate.
type Transform struct {
	Scale float64
	X, Y  float64
}

func Identity() Transform { return Transform{Scale: 1} }

func (t Transform) IsIdentity() bool { return t == Identity() }

// Placement returns where content of size cw×ch lands inside a vw×vh
// viewport: fitted and centred at identity, then scaled about the viewport
// centre and translated.
func (t Transform) Placement(cw, ch, vw, vh float64) (x, y, w, h float64) {
	if cw <= 0 || ch <= 0 || vw <= 0 || vh <= 0 {
		return 0, 0, 0, 0
	}
	fit := math.Min(vw/cw, vh/ch)
	w, h = cw*fit*t.Scale, ch*fit*t.Scale
	x = (vw-w)/2 + t.X
	y = (vh-h)/2 + t.Y
	return x, y, w, h
}

type ContentKind int

const (
	ContentRaster ContentKind = iota
	ContentVector
)

type Options struct {
	MinScale       float64
	RasterMaxScale float64
	// VectorMaxScale can be much higher: vector artwork re-renders sharply.
	VectorMaxScale float64
	// ResetTaps is the tap count that resets the view, 2 or 3.
	ResetTaps int
	TapSlop   float64
	TapWindow time.Duration
}

func DefaultOptions() Options {
	return Options{
		MinScale:       1,
		RasterMaxScale: 5,
		VectorMaxScale: 50,
		ResetTaps:      3,
		TapSlop:        gesture.DefaultSlop,
		TapWindow:      gesture.DefaultTapWindow,
	}
}

// Controller tracks the single viewer transform.
type Controller struct {
	opts    Options
	gest    *gesture.Disambiguator
	t       Transform
	content ContentKind
	open    bool

	// OnReset is called after a reset gesture restores identity.
	OnReset func()
	// OnChange is called whenever the transform changes.
	OnChange func(Transform)
}

func New(opts Options) *Controller {
	if opts.MinScale <= 0 {
		opts.MinScale = 1
	}
	if opts.RasterMaxScale < opts.MinScale {
		opts.RasterMaxScale = opts.MinScale
	}
	if opts.VectorMaxScale < opts.MinScale {
		opts.VectorMaxScale = opts.MinScale
	}
	if opts.ResetTaps < 2 {
		opts.ResetTaps = 2
	}
	return &Controller{
		opts: opts,
		gest: gesture.New(opts.TapSlop, opts.TapWindow),
		t:    Identity(),
	}
}

// Open starts viewing content of the given kind at identity.
func (c *Controller) Open(kind ContentKind) {
	c.content = kind
	c.open = true
	c.gest.Reset()
	c.set(Identity())
}

// Close ends viewing and drops the transform.
func (c *Controller) Close() {
	c.open = false
	c.gest.Reset()
	c.set(Identity())
}

func (c *Controller) IsOpen() bool { return c.open }

func (c *Controller) Transform() Transform { return c.t }

// MaxScale is the zoom ceiling for the current content.
func (c *Controller) MaxScale() float64 {
	if c.content == ContentVector {
		return c.opts.VectorMaxScale
	}
	return c.opts.RasterMaxScale
}

// Reset restores identity.
func (c *Controller) Reset() {
	c.set(Identity())
	log.Println("[VIEWER] Reset to identity")
	if c.OnReset != nil {
		c.OnReset()
	}
}

// ZoomBy multiplies the scale by k, clamped.
func (c *Controller) ZoomBy(k float64) {
	if k <= 0 || math.IsNaN(k) || math.IsInf(k, 0) {
		return
	}
	t := c.t
	t.Scale = clamp(t.Scale*k, c.opts.MinScale, c.MaxScale())
	c.set(t)
}

// PanBy translates by (dx, dy) screen pixels, only while zoomed in.
func (c *Controller) PanBy(dx, dy float64) {
	if c.t.Scale <= 1 {
		return
	}
	t := c.t
	t.X += dx
	t.Y += dy
	c.set(t)
}

func (c *Controller) TouchStart(touches []gesture.Touch, at time.Time) {
	c.gest.Start(touches, at)
}

func (c *Controller) TouchMove(touches []gesture.Touch, at time.Time) {
	a := c.gest.Move(touches, at)
	switch a.Kind {
	case gesture.Pinch:
		c.ZoomBy(a.Scale)
	case gesture.Drag:
		c.PanBy(a.Pos.X-a.Prev.X, a.Pos.Y-a.Prev.Y)
	}
}

func (c *Controller) TouchEnd(changed []gesture.Touch, remaining int, at time.Time) {
	a := c.gest.End(changed, remaining, at)
	if a.Kind == gesture.Tap && a.Taps >= c.opts.ResetTaps {
		c.gest.Taps.Reset()
		c.Reset()
	}
}

func (c *Controller) set(t Transform) {
	if t == c.t {
		return
	}
	c.t = t
	if c.OnChange != nil {
		c.OnChange(t)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
