package artwork

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"VisionaryBoard/internal/state"
)

// Vector is parsed SVG artwork that can be re-rasterised at any scale.
type Vector struct {
	icon *oksvg.SvgIcon
}

// ParseVector parses SVG markup.
func ParseVector(data []byte) (*Vector, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse svg: %w", err)
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, fmt.Errorf("failed to parse svg: empty view box")
	}
	return &Vector{icon: icon}, nil
}

// Size is the view box size in artwork units.
func (v *Vector) Size() (w, h float64) {
	return v.icon.ViewBox.W, v.icon.ViewBox.H
}

// Render rasterises into a w×h image, mapping the view box onto the target
// rectangle (tx, ty, tw, th). Parts outside the image are clipped, so the
// target may be far larger than the image when zoomed in.
func (v *Vector) Render(w, h int, tx, ty, tw, th float64) *image.RGBA {
	w, h = max(w, 1), max(h, 1)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	v.icon.SetTarget(tx, ty, tw, th)
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	v.icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
	return img
}

// RenderScaled rasterises the whole artwork at scale.
func (v *Vector) RenderScaled(scale float64) *image.RGBA {
	vw, vh := v.Size()
	// trim float noise so an exact fit does not grow a pixel
	w := int(math.Ceil(vw*scale - 1e-6))
	h := int(math.Ceil(vh*scale - 1e-6))
	return v.Render(w, h, 0, 0, float64(w), float64(h))
}

// EncodePNG rasterises els at scale and writes a PNG.
func EncodePNG(w io.Writer, els []state.Element, scale float64) error {
	var svg bytes.Buffer
	if err := EncodeSVG(&svg, els); err != nil {
		return err
	}
	v, err := ParseVector(svg.Bytes())
	if err != nil {
		return err
	}
	if scale <= 0 {
		scale = 1
	}
	if err := png.Encode(w, v.RenderScaled(scale)); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
