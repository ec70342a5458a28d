// Package gesture turns raw multi-touch pointer input into semantic actions:
// begin, drag, pinch, tap and release. It knows nothing about tools; callers
// interpret the actions for their own surface.
package gesture

import (
	"math"
	"time"
)

const (
	// DefaultSlop is how far a finger may travel, in screen pixels, and
	// still count as a tap.
	DefaultSlop = 10.0
	// DefaultGrabPx is the screen-space hit tolerance for handles.
	DefaultGrabPx = 50.0
)

// GrabRadius converts a screen-space tolerance into world units at zoom.
func GrabRadius(px, zoom float64) float64 {
	if zoom <= 0 {
		return px
	}
	return px / zoom
}

// Touch is one finger in screen coordinates.
type Touch struct {
	ID   int
	X, Y float64
}

func (t Touch) dist(o Touch) float64 { return math.Hypot(t.X-o.X, t.Y-o.Y) }

type ActionKind int

const (
	None ActionKind = iota
	Begin
	PinchBegin
	Drag
	Pinch
	Tap
	Release
)

func (k ActionKind) String() string {
	switch k {
	case Begin:
		return "begin"
	case PinchBegin:
		return "pinch-begin"
	case Drag:
		return "drag"
	case Pinch:
		return "pinch"
	case Tap:
		return "tap"
	case Release:
		return "release"
	}
	return "none"
}

// Action is the classification of one input event.
type Action struct {
	Kind ActionKind
	// Pos is the primary finger; Prev its position on the previous move.
	Pos, Prev Touch
	// Scale is the pinch factor relative to the previous pinch frame.
	Scale float64
	// Taps is the running tap count for Tap actions.
	Taps int
}

// Disambiguator classifies touch events for one interaction surface.
type Disambiguator struct {
	Slop float64
	Taps TapCounter

	active   bool
	multi    bool
	moved    bool
	pinching bool
	start    Touch
	last     Touch
	lastDist float64
}

// New returns a Disambiguator with the given tap slop and tap window.
// Non-positive values select the defaults.
func New(slop float64, window time.Duration) *Disambiguator {
	if slop <= 0 {
		slop = DefaultSlop
	}
	return &Disambiguator{Slop: slop, Taps: TapCounter{Window: window}}
}

// Active reports whether a gesture is in progress.
func (d *Disambiguator) Active() bool { return d.active }

// Start handles a touch-start carrying every finger currently down.
func (d *Disambiguator) Start(touches []Touch, at time.Time) Action {
	if len(touches) == 0 {
		return Action{}
	}
	if !d.active {
		d.active = true
		d.multi = false
		d.moved = false
	}
	if len(touches) >= 2 {
		d.multi = true
		d.pinching = true
		d.lastDist = touches[0].dist(touches[1])
		return Action{Kind: PinchBegin, Pos: touches[0], Scale: 1}
	}

	d.pinching = false
	d.start, d.last = touches[0], touches[0]
	return Action{Kind: Begin, Pos: touches[0], Prev: touches[0]}
}

// Move handles a touch-move carrying every finger currently down.
func (d *Disambiguator) Move(touches []Touch, at time.Time) Action {
	if !d.active || len(touches) == 0 {
		return Action{}
	}

	if len(touches) >= 2 {
		d.multi = true
		dist := touches[0].dist(touches[1])
		if !d.pinching {
			// a second finger joined mid-gesture
			d.pinching = true
			d.lastDist = dist
			return Action{Kind: PinchBegin, Pos: touches[0], Scale: 1}
		}
		scale := 1.0
		switch {
		case dist <= 0:
		case d.lastDist <= 0:
			d.lastDist = dist
		default:
			scale = dist / d.lastDist
			d.lastDist = dist
		}
		return Action{Kind: Pinch, Pos: touches[0], Scale: scale}
	}

	t := touches[0]
	if d.pinching {
		// back to one finger, rebase so the drag does not jump
		d.pinching = false
		d.last = t
		return Action{}
	}
	prev := d.last
	d.last = t
	if t.dist(d.start) >= d.Slop {
		d.moved = true
	}
	return Action{Kind: Drag, Pos: t, Prev: prev}
}

// End handles a touch-end. changed holds the lifted fingers and remaining
// the number still down. A release without a matching start yields None.
func (d *Disambiguator) End(changed []Touch, remaining int, at time.Time) Action {
	if !d.active {
		return Action{}
	}
	if remaining > 0 {
		return Action{}
	}

	d.active = false
	d.pinching = false
	d.lastDist = 0

	pos := d.last
	if len(changed) > 0 {
		pos = changed[0]
	}
	if !d.multi && !d.moved && pos.dist(d.start) < d.Slop {
		return Action{Kind: Tap, Pos: pos, Prev: d.start, Taps: d.Taps.Tap(at)}
	}
	return Action{Kind: Release, Pos: pos, Prev: d.start}
}

// Reset abandons the current gesture and tap sequence.
func (d *Disambiguator) Reset() {
	*d = Disambiguator{Slop: d.Slop, Taps: TapCounter{Window: d.Taps.Window}}
}
