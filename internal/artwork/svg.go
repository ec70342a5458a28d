package artwork

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"

	"VisionaryBoard/internal/render"
	"VisionaryBoard/internal/state"
)

// Margin is the blank border around encoded artwork, in world units.
const Margin = 16.0

// SVGSurface is a render.Surface that writes SVG 1.1 markup.
type SVGSurface struct {
	defs  bytes.Buffer
	body  bytes.Buffer
	alpha float64
	stack []float64
	grads int
}

var _ render.Surface = (*SVGSurface)(nil)

func NewSVGSurface() *SVGSurface { return &SVGSurface{alpha: 1} }

func (s *SVGSurface) Save() { s.stack = append(s.stack, s.alpha) }

func (s *SVGSurface) Restore() {
	if n := len(s.stack); n > 0 {
		s.alpha = s.stack[n-1]
		s.stack = s.stack[:n-1]
	}
}

func (s *SVGSurface) SetAlpha(a float64) { s.alpha = a }
func (s *SVGSurface) Zoom() float64      { return 1 }

func (s *SVGSurface) StrokePolyline(pts []state.Point, closed bool, width float64, c color.NRGBA) {
	if len(pts) == 0 {
		return
	}
	switch {
	case !closed && len(pts) <= 2:
		// oksvg drops polylines of fewer than three points.
		a, b := pts[0], pts[len(pts)-1]
		fmt.Fprintf(&s.body, `<path d="M %s %s L %s %s`, num(a.X), num(a.Y), num(b.X), num(b.Y))
	default:
		tag := "polyline"
		if closed {
			tag = "polygon"
		}
		fmt.Fprintf(&s.body, `<%s points="`, tag)
		for i, p := range pts {
			if i > 0 {
				s.body.WriteByte(' ')
			}
			fmt.Fprintf(&s.body, "%s,%s", num(p.X), num(p.Y))
		}
	}
	fmt.Fprintf(&s.body, `" fill="none" stroke="%s" stroke-opacity="%s" stroke-width="%s" stroke-linecap="round" stroke-linejoin="round"/>`+"\n",
		hex(c), num(s.opacity(c)), num(width))
}

func (s *SVGSurface) FillCircle(center state.Point, r float64, c color.NRGBA, shadow bool) {
	fmt.Fprintf(&s.body, `<circle cx="%s" cy="%s" r="%s" fill="%s" fill-opacity="%s"/>`+"\n",
		num(center.X), num(center.Y), num(r), hex(c), num(s.opacity(c)))
}

func (s *SVGSurface) FillRadialGradient(center state.Point, radius, core float64, c color.NRGBA) {
	s.grads++
	id := "soft" + strconv.Itoa(s.grads)
	op := num(s.opacity(c))
	fmt.Fprintf(&s.defs, `<radialGradient id="%s" gradientUnits="userSpaceOnUse" cx="%s" cy="%s" r="%s">`,
		id, num(center.X), num(center.Y), num(radius))
	fmt.Fprintf(&s.defs, `<stop offset="0" stop-color="%s" stop-opacity="%s"/>`, hex(c), op)
	fmt.Fprintf(&s.defs, `<stop offset="%s" stop-color="%s" stop-opacity="%s"/>`, num(core), hex(c), op)
	fmt.Fprintf(&s.defs, `<stop offset="1" stop-color="%s" stop-opacity="0"/>`, hex(c))
	s.defs.WriteString("</radialGradient>\n")
	fmt.Fprintf(&s.body, `<circle cx="%s" cy="%s" r="%s" fill="url(#%s)"/>`+"\n",
		num(center.X), num(center.Y), num(radius), id)
}

// Flush writes a complete document with the given view box.
func (s *SVGSurface) Flush(w io.Writer, box Rect) error {
	var doc bytes.Buffer
	fmt.Fprintf(&doc, `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" viewBox="%s %s %s %s" width="%s" height="%s">`+"\n",
		num(box.MinX), num(box.MinY), num(box.W()), num(box.H()), num(box.W()), num(box.H()))
	if s.defs.Len() > 0 {
		doc.WriteString("<defs>\n")
		doc.Write(s.defs.Bytes())
		doc.WriteString("</defs>\n")
	}
	doc.Write(s.body.Bytes())
	doc.WriteString("</svg>\n")
	_, err := doc.WriteTo(w)
	return err
}

func (s *SVGSurface) opacity(c color.NRGBA) float64 {
	return s.alpha * float64(c.A) / 255
}

// EncodeSVG writes els as a standalone SVG document.
func EncodeSVG(w io.Writer, els []state.Element) error {
	box, ok := Bounds(els)
	if !ok {
		return ErrEmpty
	}
	s := NewSVGSurface()
	render.DrawAll(s, els)
	if err := s.Flush(w, box.pad(Margin)); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}
	return nil
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func num(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
