package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"VisionaryBoard/internal/config"
	"VisionaryBoard/internal/gallery"
	"VisionaryBoard/internal/state"
)

const appID = "com.visionaryboard.app"

// Gallery is the artwork store the studio saves to.
type Gallery interface {
	Save(ctx context.Context, data, mimeType string) (gallery.Record, error)
	ListAll(ctx context.Context) ([]gallery.Record, error)
	Get(ctx context.Context, id int64) (gallery.Record, error)
	Delete(ctx context.Context, id int64) error
}

// Studio wires the editor window, its toolbar and the gallery together.
type Studio struct {
	app      fyne.App
	window   fyne.Window
	board    *BoardWidget
	store    Gallery
	settings config.Settings
	status   *widget.Label
}

func NewStudio(a fyne.App, settings config.Settings, store Gallery) *Studio {
	settings = settings.ApplyPreferences(a.Preferences())
	s := &Studio{
		app:      a,
		window:   a.NewWindow("VisionaryBoard"),
		store:    store,
		settings: settings,
		status:   widget.NewLabel("Ready"),
	}
	s.board = NewBoardWidget(state.NewStrokes(), settings.ToolOptions())
	s.board.SetGrid(settings.ShowGrid, settings.GridSize)

	s.window.Resize(fyne.NewSize(1024, 768))
	s.window.SetContent(container.NewBorder(NewToolbar(s), s.status, nil, nil, s.board))
	return s
}

func (s *Studio) Board() *BoardWidget { return s.board }

func (s *Studio) setStatus(text string) { s.status.SetText(text) }

// RunApp opens the editor and blocks until it is closed.
func RunApp(settings config.Settings, store Gallery) {
	a := app.NewWithID(appID)
	NewStudio(a, settings, store).window.ShowAndRun()
}
