package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"VisionaryBoard/internal/artwork"
	"VisionaryBoard/internal/viewer"
)

// ViewerWidget shows one saved artwork full size with pinch zoom, pan and a
// multi-tap reset.
type ViewerWidget struct {
	widget.BaseWidget
	ctl     *viewer.Controller
	art     *artwork.Artwork
	pointer *pointer
}

var _ fyne.Draggable = (*ViewerWidget)(nil)
var _ fyne.Scrollable = (*ViewerWidget)(nil)
var _ desktop.Mouseable = (*ViewerWidget)(nil)

func NewViewerWidget(opts viewer.Options) *ViewerWidget {
	v := &ViewerWidget{ctl: viewer.New(opts)}
	v.ctl.OnChange = func(viewer.Transform) { v.Refresh() }
	v.pointer = newPointer(v.ctl)
	v.ExtendBaseWidget(v)
	return v
}

func (v *ViewerWidget) Controller() *viewer.Controller { return v.ctl }

// Show opens a at identity.
func (v *ViewerWidget) Show(a *artwork.Artwork) {
	v.art = a
	kind := viewer.ContentRaster
	if a.Vector != nil {
		kind = viewer.ContentVector
	}
	log.Printf("[VIEWER] Showing %s", a.Mime)
	v.ctl.Open(kind)
	v.Refresh()
}

// Close drops the artwork and the transform.
func (v *ViewerWidget) Close() {
	v.art = nil
	v.ctl.Close()
	v.Refresh()
}

func (v *ViewerWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		v.pointer.start(e.Position)
	}
}

func (v *ViewerWidget) Dragged(e *fyne.DragEvent)     { v.pointer.move(e.Position) }
func (v *ViewerWidget) MouseUp(e *desktop.MouseEvent) { v.pointer.end(e.Position) }
func (v *ViewerWidget) DragEnd()                      { v.pointer.end(v.pointer.last) }
func (v *ViewerWidget) Scrolled(e *fyne.ScrollEvent)  { v.pointer.pinch(e.Position, scrollFactor(e)) }

func (v *ViewerWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &viewerRenderer{
		viewer:     v,
		background: canvas.NewRectangle(color.Black),
		image:      canvas.NewImageFromImage(nil),
	}
	r.image.FillMode = canvas.ImageFillStretch
	r.image.ScaleMode = canvas.ImageScaleSmooth
	return r
}

type viewerRenderer struct {
	viewer     *ViewerWidget
	background *canvas.Rectangle
	image      *canvas.Image
	size       fyne.Size
}

// place positions the artwork for the current transform. Vector artwork is
// rasterised for just the viewport at the current scale.
func (r *viewerRenderer) place() {
	a := r.viewer.art
	vw, vh := float64(r.size.Width), float64(r.size.Height)
	if a == nil || vw <= 0 || vh <= 0 {
		r.image.Hide()
		return
	}
	t := r.viewer.ctl.Transform()

	if a.Vector != nil {
		cw, ch := a.Vector.Size()
		x, y, w, h := t.Placement(cw, ch, vw, vh)
		r.image.Image = a.Vector.Render(int(vw), int(vh), x, y, w, h)
		r.image.Move(fyne.NewPos(0, 0))
		r.image.Resize(r.size)
	} else {
		b := a.Raster.Bounds()
		x, y, w, h := t.Placement(float64(b.Dx()), float64(b.Dy()), vw, vh)
		r.image.Image = a.Raster
		r.image.Move(fyne.NewPos(float32(x), float32(y)))
		r.image.Resize(fyne.NewSize(float32(w), float32(h)))
	}
	r.image.Show()
}

func (r *viewerRenderer) Layout(size fyne.Size) {
	r.size = size
	r.background.Resize(size)
	r.place()
}

func (r *viewerRenderer) Refresh() {
	r.place()
	r.image.Refresh()
	canvas.Refresh(r.viewer)
}

func (r *viewerRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.image}
}

func (r *viewerRenderer) MinSize() fyne.Size { return fyne.NewSize(320, 240) }
func (r *viewerRenderer) Destroy()           {}

func (v *ViewerWidget) MouseIn(*desktop.MouseEvent)    {}
func (v *ViewerWidget) MouseOut()                      {}
func (v *ViewerWidget) MouseMoved(*desktop.MouseEvent) {}
