package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"VisionaryBoard/internal/render"
	"VisionaryBoard/internal/state"
	"VisionaryBoard/internal/tools"
)

var (
	boardBackground = color.NRGBA{R: 245, G: 246, B: 248, A: 255}
	gridColor       = color.NRGBA{R: 220, G: 220, B: 220, A: 160}
)

// BoardWidget is the editor canvas. Primary-button input goes to the tool
// controller; the secondary button, or no active tool, pans the camera.
type BoardWidget struct {
	widget.BaseWidget
	Tools   *tools.Controller
	cam     *Camera
	strokes *state.Strokes
	pointer *pointer

	showGrid bool
	gridSize float64
	panning  bool
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Scrollable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(strokes *state.Strokes, opts tools.Options) *BoardWidget {
	b := &BoardWidget{
		cam:      NewCamera(),
		strokes:  strokes,
		gridSize: 50,
	}
	b.Tools = tools.New(b.cam, strokes, opts)
	b.Tools.OnChange = b.Refresh
	strokes.OnChange = b.Refresh
	b.pointer = newPointer(b.Tools)
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) Camera() *Camera { return b.cam }

// Elements returns the committed drawing in z-order.
func (b *BoardWidget) Elements() []state.Element { return b.strokes.Elements() }

func (b *BoardWidget) SetGrid(show bool, size float64) {
	b.showGrid = show
	if size > 0 {
		b.gridSize = size
	}
	b.Refresh()
}

// Clear drops the live element and every committed element.
func (b *BoardWidget) Clear() {
	b.Tools.SetTool(b.Tools.Tool())
	b.strokes.Clear()
}

func (b *BoardWidget) ResetView() {
	b.cam.Reset()
	log.Println("[UI] View reset")
	b.Refresh()
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonSecondary || b.Tools.Tool() == tools.ToolNone {
		b.panning = true
		return
	}
	if e.Button == desktop.MouseButtonPrimary {
		b.pointer.start(e.Position)
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if b.panning {
		b.cam.PanBy(float64(e.Dragged.DX), float64(e.Dragged.DY))
		b.Refresh()
		return
	}
	b.pointer.move(e.Position)
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if b.panning {
		b.panning = false
		return
	}
	b.pointer.end(e.Position)
}

func (b *BoardWidget) DragEnd() {
	b.panning = false
	b.pointer.end(b.pointer.last)
}

// Scrolled pinches the live shape, or zooms the camera about the pointer.
func (b *BoardWidget) Scrolled(e *fyne.ScrollEvent) {
	k := scrollFactor(e)
	if _, ok := b.Tools.Live().(*state.PolygonShape); ok && b.Tools.Tool() == tools.ToolShape {
		b.pointer.pinch(e.Position, k)
		return
	}
	b.cam.ZoomAt(k, float64(e.Position.X), float64(e.Position.Y))
	b.Refresh()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseOut()                      {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(boardBackground)
	r.rebuild()
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *boardWidgetRenderer) rebuild() {
	b := r.board
	objects := []fyne.CanvasObject{r.background}
	if b.showGrid {
		objects = append(objects, gridLines(b.cam, b.gridSize, gridColor)...)
	}
	surf := newCanvasSurface(b.cam)
	render.DrawAll(surf, b.strokes.Elements())
	render.DrawLive(surf, b.Tools.Live())
	r.objects = append(objects, surf.objs...)
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject { return r.objects }

func (r *boardWidgetRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.board.cam.Resize(float64(size.Width), float64(size.Height))
	r.rebuild()
}

func (r *boardWidgetRenderer) MinSize() fyne.Size { return fyne.NewSize(300, 300) }
func (r *boardWidgetRenderer) Destroy()           {}
