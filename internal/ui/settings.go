package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"VisionaryBoard/internal/config"
)

// applySettings pushes the user toggles into the editor and persists them.
func (s *Studio) applySettings(next config.Settings) {
	s.settings = next
	ctl := s.board.Tools
	ctl.SetAllowMorph(next.AllowMorph)
	ctl.SetSnap(next.ToolOptions().Snap)
	s.board.SetGrid(next.ShowGrid, next.GridSize)
	next.StorePreferences(s.app.Preferences())
	log.Printf("[UI] Settings: morph=%t grid=%t snap=%t size=%.0f",
		next.AllowMorph, next.ShowGrid, next.SnapToGrid, next.GridSize)
}

func (s *Studio) showSettings() {
	next := s.settings

	morph := widget.NewCheck("Allow morph (double tap)", func(on bool) { next.AllowMorph = on })
	morph.SetChecked(next.AllowMorph)
	grid := widget.NewCheck("Show grid", func(on bool) { next.ShowGrid = on })
	grid.SetChecked(next.ShowGrid)
	snap := widget.NewCheck("Snap to grid", func(on bool) { next.SnapToGrid = on })
	snap.SetChecked(next.SnapToGrid)

	sizeLabel := widget.NewLabel(fmt.Sprintf("Grid size: %.0f", next.GridSize))
	size := widget.NewSlider(10, 200)
	size.Step = 5
	size.OnChanged = func(v float64) {
		next.GridSize = v
		sizeLabel.SetText(fmt.Sprintf("Grid size: %.0f", v))
	}
	size.SetValue(next.GridSize)

	form := widget.NewForm(
		widget.NewFormItem("", morph),
		widget.NewFormItem("", grid),
		widget.NewFormItem("", snap),
		widget.NewFormItem("", sizeLabel),
		widget.NewFormItem("", size),
	)
	dialog.ShowCustomConfirm("Settings", "Apply", "Cancel", form, func(ok bool) {
		if ok {
			s.applySettings(next)
		}
	}, s.window)
}
