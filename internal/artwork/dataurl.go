package artwork

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"
)

// EncodeDataURL wraps data in a base64 data URL.
func EncodeDataURL(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURL splits a base64 data URL into its mime type and payload.
func DecodeDataURL(s string) (mime string, data []byte, err error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", nil, ErrNotDataURL
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrNotDataURL
	}
	mime, ok = strings.CutSuffix(header, ";base64")
	if !ok {
		return "", nil, ErrNotDataURL
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrNotDataURL, err)
	}
	return mime, data, nil
}

// Artwork is a decoded gallery item: exactly one of Raster or Vector is set.
type Artwork struct {
	Mime   string
	Raster image.Image
	Vector *Vector
}

// Decode reads a data URL produced by EncodeDataURL.
func Decode(dataURL string) (*Artwork, error) {
	mime, data, err := DecodeDataURL(dataURL)
	if err != nil {
		return nil, err
	}
	switch mime {
	case MimeSVG:
		v, err := ParseVector(data)
		if err != nil {
			return nil, err
		}
		return &Artwork{Mime: mime, Vector: v}, nil
	case MimePNG:
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", mime, err)
		}
		return &Artwork{Mime: mime, Raster: img}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, mime)
}

// Thumbnail renders the artwork to fit within size×size pixels.
func (a *Artwork) Thumbnail(size int) image.Image {
	if a.Vector != nil {
		w, h := a.Vector.Size()
		return a.Vector.RenderScaled(float64(size) / max(w, h))
	}
	return fitImage(a.Raster, size)
}

func fitImage(src image.Image, size int) image.Image {
	b := src.Bounds()
	if b.Dx() <= size && b.Dy() <= size {
		return src
	}
	scale := float64(size) / float64(max(b.Dx(), b.Dy()))
	w := max(int(float64(b.Dx())*scale), 1)
	h := max(int(float64(b.Dy())*scale), 1)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
