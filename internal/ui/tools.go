package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"VisionaryBoard/internal/artwork"
	"VisionaryBoard/internal/state"
	"VisionaryBoard/internal/tools"
)

var palette = []color.NRGBA{
	{A: 255},
	{R: 255, A: 255},
	{G: 160, A: 255},
	{B: 255, A: 255},
	{R: 255, G: 200, A: 255},
	{R: 140, G: 60, B: 200, A: 255},
}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.NRGBA
	OnTapped func(color.NRGBA)
}

func newColorSwatch(c color.NRGBA, tapped func(color.NRGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

func styleSlider(lo, hi, value float64, set func(*state.Style, float64), ctl *tools.Controller) fyne.CanvasObject {
	sl := widget.NewSlider(lo, hi)
	sl.Step = (hi - lo) / 100
	sl.SetValue(value)
	sl.OnChanged = func(v float64) {
		st := ctl.Style()
		set(&st, v)
		ctl.SetStyle(st)
	}
	return container.New(layout.NewGridWrapLayout(fyne.NewSize(110, 35)), sl)
}

// NewToolbar builds the editor toolbar: tools, shapes, style and actions.
func NewToolbar(s *Studio) fyne.CanvasObject {
	ctl := s.board.Tools
	pick := func(t tools.Tool) func() {
		return func() {
			ctl.SetTool(t)
			s.setStatus("Tool: " + t.String())
		}
	}

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.ZoomFitIcon(), pick(tools.ToolNone)),
		widget.NewToolbarAction(theme.DocumentCreateIcon(), pick(tools.ToolLine)),
		widget.NewToolbarAction(theme.ColorPaletteIcon(), pick(tools.ToolShade)),
		widget.NewToolbarAction(theme.ConfirmIcon(), func() { ctl.Commit() }),
		widget.NewToolbarAction(theme.ViewRefreshIcon(), func() { s.board.ResetView() }),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), s.showSaveMenu),
		widget.NewToolbarAction(theme.MediaPhotoIcon(), s.showGallery),
		widget.NewToolbarAction(theme.SettingsIcon(), s.showSettings),
		widget.NewToolbarAction(theme.ContentClearIcon(), s.confirmClear),
	)

	names := make([]string, len(state.ShapeKinds))
	for i, k := range state.ShapeKinds {
		names[i] = string(k)
	}
	shapes := widget.NewSelect(names, func(name string) {
		if ctl.AddShape(state.ShapeKind(name)) {
			s.setStatus("Shape: " + name + " (tap: transform, double tap: morph, triple tap: done)")
		}
	})
	shapes.PlaceHolder = "Shape"

	onColorTapped := func(c color.NRGBA) {
		st := ctl.Style()
		st.Color = c
		ctl.SetStyle(st)
	}
	colorBox := container.NewHBox()
	for _, c := range palette {
		colorBox.Add(newColorSwatch(c, onColorTapped))
	}

	st := ctl.Style()
	return container.NewHBox(
		tb,
		shapes,
		widget.NewSeparator(),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size"),
		styleSlider(1, 50, st.Thickness, func(st *state.Style, v float64) { st.Thickness = v }, ctl),
		widget.NewLabel("Shade"),
		styleSlider(5, 150, st.ShadeRadius, func(st *state.Style, v float64) { st.ShadeRadius = v }, ctl),
		widget.NewLabel("Soft"),
		styleSlider(0, 100, st.Smoothness, func(st *state.Style, v float64) { st.Smoothness = v }, ctl),
		widget.NewLabel("Opacity"),
		styleSlider(0.05, 1, st.Opacity, func(st *state.Style, v float64) { st.Opacity = v }, ctl),
		layout.NewSpacer(),
	)
}

func (s *Studio) showSaveMenu() {
	items := []*fyne.MenuItem{
		fyne.NewMenuItem("Save to gallery as SVG", func() { s.saveToGallery(artwork.MimeSVG) }),
		fyne.NewMenuItem("Save to gallery as PNG", func() { s.saveToGallery(artwork.MimePNG) }),
		fyne.NewMenuItem("Export PDF…", s.exportPDF),
	}
	c := s.window.Canvas()
	widget.ShowPopUpMenuAtPosition(fyne.NewMenu("", items...), c, fyne.NewPos(c.Size().Width/2, 40))
}

func (s *Studio) confirmClear() {
	dialog.ShowConfirm("Clear drawing", "Discard the whole drawing?", func(ok bool) {
		if !ok {
			return
		}
		s.board.Clear()
		log.Println("[UI] Drawing cleared")
		s.setStatus("Cleared")
	}, s.window)
}
