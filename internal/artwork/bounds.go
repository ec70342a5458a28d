// Package artwork encodes committed drawings to SVG, PNG and PDF, and reads
// saved artwork back for the viewer.
package artwork

import (
	"errors"
	"math"

	"VisionaryBoard/internal/state"
)

var (
	ErrEmpty       = errors.New("artwork: nothing to encode")
	ErrNotDataURL  = errors.New("artwork: not a base64 data URL")
	ErrUnsupported = errors.New("artwork: unsupported mime type")
)

const (
	MimeSVG = "image/svg+xml"
	MimePNG = "image/png"
)

// Rect is an axis-aligned box in world units.
type Rect struct{ MinX, MinY, MaxX, MaxY float64 }

func (r Rect) W() float64 { return r.MaxX - r.MinX }
func (r Rect) H() float64 { return r.MaxY - r.MinY }

func (r Rect) pad(d float64) Rect {
	return Rect{r.MinX - d, r.MinY - d, r.MaxX + d, r.MaxY + d}
}

// Bounds returns the box covering every element including stroke widths
// and soft radii. ok is false when nothing is drawn.
func Bounds(els []state.Element) (r Rect, ok bool) {
	r = Rect{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	add := func(p state.Point, extent float64) {
		r.MinX = math.Min(r.MinX, p.X-extent)
		r.MinY = math.Min(r.MinY, p.Y-extent)
		r.MaxX = math.Max(r.MaxX, p.X+extent)
		r.MaxY = math.Max(r.MaxY, p.Y+extent)
		ok = true
	}
	for _, el := range els {
		switch el := el.(type) {
		case *state.Line:
			add(el.A, el.Thickness/2)
			add(el.B, el.Thickness/2)
		case *state.PolygonShape:
			for _, v := range el.Vertices {
				add(v, el.Thickness/2)
			}
		case *state.SoftStroke:
			for _, p := range el.Points {
				add(p, el.Radius)
			}
		}
	}
	if !ok {
		return Rect{}, false
	}
	return r, true
}
