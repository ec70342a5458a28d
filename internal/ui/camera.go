package ui

import (
	"math"

	"VisionaryBoard/internal/state"
)

const (
	minCameraZoom = 0.1
	maxCameraZoom = 10.0
)

// Camera is the editor's pan and zoom. Pan is the screen position of the
// world origin.
type Camera struct {
	scale      float64
	panX, panY float64
	w, h       float64
}

func NewCamera() *Camera { return &Camera{scale: 1} }

func (c *Camera) ScreenToWorld(x, y float64) state.Point {
	return state.Point{X: (x - c.panX) / c.scale, Y: (y - c.panY) / c.scale}
}

func (c *Camera) WorldToScreen(p state.Point) (x, y float64) {
	return p.X*c.scale + c.panX, p.Y*c.scale + c.panY
}

func (c *Camera) Zoom() float64 { return c.scale }

func (c *Camera) ViewportCenter() (x, y float64) { return c.w / 2, c.h / 2 }

// Resize records the viewport size in screen pixels.
func (c *Camera) Resize(w, h float64) { c.w, c.h = w, h }

func (c *Camera) PanBy(dx, dy float64) {
	c.panX += dx
	c.panY += dy
}

// ZoomAt multiplies the zoom by k keeping the world point under (x, y) fixed.
func (c *Camera) ZoomAt(k, x, y float64) {
	if k <= 0 || math.IsNaN(k) || math.IsInf(k, 0) {
		return
	}
	anchor := c.ScreenToWorld(x, y)
	c.scale = math.Min(math.Max(c.scale*k, minCameraZoom), maxCameraZoom)
	c.panX = x - anchor.X*c.scale
	c.panY = y - anchor.Y*c.scale
}

func (c *Camera) Reset() {
	c.scale = 1
	c.panX, c.panY = 0, 0
}
