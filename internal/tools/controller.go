// Package tools owns the active drawing tool and the single live element.
// It routes classified gestures to the handler for the active tool and
// commits finished elements to the permanent collection.
package tools

import (
	"log"
	"time"

	"VisionaryBoard/internal/gesture"
	"VisionaryBoard/internal/state"
)

type Tool int

const (
	ToolNone Tool = iota
	ToolLine
	ToolShade
	ToolShape
)

func (t Tool) String() string {
	switch t {
	case ToolLine:
		return "line"
	case ToolShade:
		return "shade"
	case ToolShape:
		return "shape"
	}
	return "none"
}

// Camera converts screen positions to world positions.
type Camera interface {
	ScreenToWorld(x, y float64) state.Point
	Zoom() float64
	// ViewportCenter returns the centre of the visible area in screen pixels.
	ViewportCenter() (x, y float64)
}

// Sink is the permanent collection committed elements go to.
type Sink interface {
	Append(el state.Element) string
	Accrete(id string, p state.Point) bool
}

// DefaultShapePx is the on-screen size of a freshly added shape.
const DefaultShapePx = 150.0

type Options struct {
	GrabPx     float64
	TapSlop    float64
	TapWindow  time.Duration
	AllowMorph bool
	// Snap, if set, adjusts line endpoints and new shape centres.
	Snap func(state.Point) state.Point
}

func DefaultOptions() Options {
	return Options{
		GrabPx:     gesture.DefaultGrabPx,
		TapSlop:    gesture.DefaultSlop,
		TapWindow:  gesture.DefaultTapWindow,
		AllowMorph: true,
	}
}

// Controller is the editor's tool state machine. It is not safe for
// concurrent use; all calls must come from the UI goroutine.
type Controller struct {
	cam   Camera
	sink  Sink
	opts  Options
	style state.Style
	gest  *gesture.Disambiguator

	tool      Tool
	live      state.Element
	shadeID   string
	dragShape bool

	// OnChange, if set, is called whenever the live element or tool changes.
	OnChange func()
}

func New(cam Camera, sink Sink, opts Options) *Controller {
	if opts.GrabPx <= 0 {
		opts.GrabPx = gesture.DefaultGrabPx
	}
	return &Controller{
		cam:   cam,
		sink:  sink,
		opts:  opts,
		style: state.DefaultStyle(),
		gest:  gesture.New(opts.TapSlop, opts.TapWindow),
	}
}

func (c *Controller) Tool() Tool { return c.tool }

// Live returns the live element, or nil.
func (c *Controller) Live() state.Element { return c.live }

// SetTool activates t and discards any live element without committing it.
func (c *Controller) SetTool(t Tool) {
	if c.live != nil {
		log.Printf("[TOOLS] Discarding live %s on switch to %s", c.live.Kind(), t)
	}
	c.tool = t
	c.live = nil
	c.shadeID = ""
	c.dragShape = false
	c.gest.Reset()
	c.changed()
}

// SetStyle sets the style used for elements created from now on.
func (c *Controller) SetStyle(s state.Style) { c.style = s }

func (c *Controller) Style() state.Style { return c.style }

func (c *Controller) SetAllowMorph(allow bool) { c.opts.AllowMorph = allow }

func (c *Controller) SetSnap(snap func(state.Point) state.Point) { c.opts.Snap = snap }

// AddShape switches to the shape tool and creates a live shape of kind
// centred in the viewport. It reports false for an unknown kind.
func (c *Controller) AddShape(kind state.ShapeKind) bool {
	zoom := c.zoom()
	center := c.snap(c.cam.ScreenToWorld(c.cam.ViewportCenter()))
	style := c.style
	style.Thickness /= zoom

	shape := state.NewPolygonShape(kind, center, DefaultShapePx/zoom, style)
	if shape == nil {
		log.Printf("[TOOLS] Unknown shape kind %q", kind)
		return false
	}
	c.tool = ToolShape
	c.live = shape
	c.shadeID = ""
	c.dragShape = false
	c.gest.Reset()
	c.changed()
	return true
}

// Commit moves the live element into the permanent collection.
// It reports false when there was nothing to commit.
func (c *Controller) Commit() bool {
	if c.live == nil {
		return false
	}
	id := c.sink.Append(c.live)
	log.Printf("[TOOLS] Committed %s %s", c.live.Kind(), id)
	c.live = nil
	c.dragShape = false
	c.changed()
	return true
}

// TouchStart handles a touch-start with every finger currently down.
func (c *Controller) TouchStart(touches []gesture.Touch, at time.Time) {
	a := c.gest.Start(touches, at)
	switch a.Kind {
	case gesture.Begin:
		c.begin(c.world(a.Pos))
	case gesture.PinchBegin:
		c.dragShape = false
	}
	c.changed()
}

// TouchMove handles a touch-move with every finger currently down.
func (c *Controller) TouchMove(touches []gesture.Touch, at time.Time) {
	a := c.gest.Move(touches, at)
	switch a.Kind {
	case gesture.Pinch:
		c.pinch(a.Scale)
	case gesture.PinchBegin:
		c.dragShape = false
	case gesture.Drag:
		c.drag(c.world(a.Prev), c.world(a.Pos))
	default:
		return
	}
	c.changed()
}

// TouchEnd handles a touch-end; changed are the lifted fingers and
// remaining the count still down.
func (c *Controller) TouchEnd(changed []gesture.Touch, remaining int, at time.Time) {
	a := c.gest.End(changed, remaining, at)
	if a.Kind == gesture.None {
		return
	}

	c.dragShape = false
	c.shadeID = ""
	switch el := c.live.(type) {
	case *state.Line:
		el.Active = state.EndpointNone
	case *state.PolygonShape:
		el.ActiveVertex = state.NoVertex
	}
	if a.Kind == gesture.Tap {
		c.tap(a.Taps)
	}
	c.changed()
}

func (c *Controller) begin(pos state.Point) {
	grab := gesture.GrabRadius(c.opts.GrabPx, c.zoom())

	switch c.tool {
	case ToolLine:
		line, ok := c.live.(*state.Line)
		if !ok {
			p := c.snap(pos)
			c.live = &state.Line{
				A:         p,
				B:         p,
				Thickness: c.style.Thickness / c.zoom(),
				Color:     c.style.Color,
				Active:    state.EndpointB,
			}
			return
		}
		line.Grab(pos, grab)

	case ToolShade:
		stroke := state.NewSoftStroke(pos, c.style.ShadeRadius/c.zoom(), c.style)
		c.shadeID = c.sink.Append(stroke)

	case ToolShape:
		shape, ok := c.live.(*state.PolygonShape)
		if !ok {
			return
		}
		shape.ActiveVertex = state.NoVertex
		if shape.Mode == state.ModeMorph {
			shape.ActiveVertex = shape.HitVertex(pos, grab)
		}
		c.dragShape = shape.ActiveVertex == state.NoVertex
	}
}

func (c *Controller) drag(prev, pos state.Point) {
	switch el := c.live.(type) {
	case *state.Line:
		if c.tool == ToolLine {
			el.Move(c.snap(pos))
		}
	case *state.PolygonShape:
		dx, dy := pos.X-prev.X, pos.Y-prev.Y
		if el.ActiveVertex != state.NoVertex {
			el.MoveVertex(el.ActiveVertex, dx, dy)
		} else if c.dragShape {
			el.Translate(dx, dy)
		}
	}
	if c.tool == ToolShade && c.shadeID != "" {
		c.sink.Accrete(c.shadeID, pos)
	}
}

func (c *Controller) pinch(k float64) {
	if shape, ok := c.live.(*state.PolygonShape); ok && c.tool == ToolShape && k > 0 {
		shape.Scale(k)
	}
}

// tap advances the edit cycle: Transform, Morph, commit.
func (c *Controller) tap(n int) {
	switch {
	case n == 1:
		if shape, ok := c.live.(*state.PolygonShape); ok {
			shape.Mode = state.ModeTransform
		}
	case n == 2:
		if shape, ok := c.live.(*state.PolygonShape); ok && c.opts.AllowMorph {
			shape.Mode = state.ModeMorph
		}
	case n >= 3:
		c.Commit()
		c.gest.Taps.Reset()
	}
}

func (c *Controller) world(t gesture.Touch) state.Point {
	return c.cam.ScreenToWorld(t.X, t.Y)
}

func (c *Controller) zoom() float64 {
	if z := c.cam.Zoom(); z > 0 {
		return z
	}
	return 1
}

func (c *Controller) snap(p state.Point) state.Point {
	if c.opts.Snap == nil {
		return p
	}
	return c.opts.Snap(p)
}

func (c *Controller) changed() {
	if c.OnChange != nil {
		c.OnChange()
	}
}
