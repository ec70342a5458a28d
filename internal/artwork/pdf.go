package artwork

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math"

	"github.com/jung-kurt/gofpdf"

	"VisionaryBoard/internal/render"
	"VisionaryBoard/internal/state"
)

const (
	pdfPageW  = 210.0 // A4, mm
	pdfPageH  = 297.0
	pdfMargin = 10.0
	// softRings approximates a radial fade with concentric discs.
	softRings = 4
)

// pdfSurface is a render.Surface drawing into a gofpdf page, mapping the
// artwork box onto the printable area.
type pdfSurface struct {
	pdf   *gofpdf.Fpdf
	box   Rect
	scale float64
	offX  float64
	offY  float64
	alpha float64
	stack []float64
}

var _ render.Surface = (*pdfSurface)(nil)

func newPDFSurface(pdf *gofpdf.Fpdf, box Rect) *pdfSurface {
	availW, availH := pdfPageW-2*pdfMargin, pdfPageH-2*pdfMargin
	scale := math.Min(availW/box.W(), availH/box.H())
	return &pdfSurface{
		pdf:   pdf,
		box:   box,
		scale: scale,
		offX:  pdfMargin + (availW-box.W()*scale)/2,
		offY:  pdfMargin + (availH-box.H()*scale)/2,
		alpha: 1,
	}
}

func (s *pdfSurface) pt(p state.Point) (float64, float64) {
	return s.offX + (p.X-s.box.MinX)*s.scale, s.offY + (p.Y-s.box.MinY)*s.scale
}

func (s *pdfSurface) Save() { s.stack = append(s.stack, s.alpha) }

func (s *pdfSurface) Restore() {
	if n := len(s.stack); n > 0 {
		s.alpha = s.stack[n-1]
		s.stack = s.stack[:n-1]
	}
	s.pdf.SetAlpha(s.alpha, "Normal")
}

func (s *pdfSurface) SetAlpha(a float64) {
	s.alpha = a
	s.pdf.SetAlpha(a, "Normal")
}

func (s *pdfSurface) Zoom() float64 { return 1 }

func (s *pdfSurface) StrokePolyline(pts []state.Point, closed bool, width float64, c color.NRGBA) {
	s.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	s.pdf.SetLineWidth(math.Max(width*s.scale, 0.1))
	s.pdf.SetLineCapStyle("round")
	s.pdf.SetLineJoinStyle("round")
	if closed {
		poly := make([]gofpdf.PointType, len(pts))
		for i, p := range pts {
			poly[i].X, poly[i].Y = s.pt(p)
		}
		s.pdf.Polygon(poly, "D")
		return
	}
	for i := 1; i < len(pts); i++ {
		x1, y1 := s.pt(pts[i-1])
		x2, y2 := s.pt(pts[i])
		s.pdf.Line(x1, y1, x2, y2)
	}
}

func (s *pdfSurface) FillCircle(center state.Point, r float64, c color.NRGBA, shadow bool) {
	x, y := s.pt(center)
	s.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	s.pdf.Circle(x, y, r*s.scale, "F")
}

func (s *pdfSurface) FillRadialGradient(center state.Point, radius, core float64, c color.NRGBA) {
	x, y := s.pt(center)
	s.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	base := s.alpha
	for i := 0; i < softRings; i++ {
		f := 1 - float64(i)/softRings*(1-core)
		s.pdf.SetAlpha(base/softRings, "Normal")
		s.pdf.Circle(x, y, radius*f*s.scale, "F")
	}
	s.pdf.SetAlpha(base, "Normal")
}

// WritePDF renders els onto a single A4 page.
func WritePDF(w io.Writer, els []state.Element) error {
	box, ok := Bounds(els)
	if !ok {
		return ErrEmpty
	}
	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()
	render.DrawAll(newPDFSurface(p, box.pad(Margin)), els)

	if err := p.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	log.Printf("[EXPORT] Wrote PDF with %d elements", len(els))
	return nil
}
