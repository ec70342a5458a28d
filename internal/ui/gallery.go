package ui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"VisionaryBoard/internal/artwork"
	"VisionaryBoard/internal/gallery"
	"VisionaryBoard/internal/state"
)

const (
	galleryTimeout = 10 * time.Second
	thumbSize      = 160
	// pngScale is the pixel density of PNG saves.
	pngScale = 2.0
)

// encodeDrawing renders els to a data URL of the given mime type.
func encodeDrawing(els []state.Element, mime string) (string, error) {
	var buf bytes.Buffer
	var err error
	switch mime {
	case artwork.MimeSVG:
		err = artwork.EncodeSVG(&buf, els)
	case artwork.MimePNG:
		err = artwork.EncodePNG(&buf, els, pngScale)
	default:
		err = fmt.Errorf("%w: %s", artwork.ErrUnsupported, mime)
	}
	if err != nil {
		return "", err
	}
	return artwork.EncodeDataURL(mime, buf.Bytes()), nil
}

// saveToGallery encodes the committed drawing and stores it in the
// background. The editor is not touched whatever the outcome.
func (s *Studio) saveToGallery(mime string) {
	els := s.board.Elements()
	if len(els) == 0 {
		s.setStatus("Nothing to save")
		return
	}
	s.setStatus("Saving…")

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), galleryTimeout)
		defer cancel()

		rec, err := func() (gallery.Record, error) {
			data, err := encodeDrawing(els, mime)
			if err != nil {
				return gallery.Record{}, err
			}
			return s.store.Save(ctx, data, mime)
		}()

		fyne.Do(func() {
			if err != nil {
				log.Printf("[UI] Save to gallery failed: %v", err)
				s.setStatus("Save failed")
				dialog.ShowError(err, s.window)
				return
			}
			s.setStatus(fmt.Sprintf("Saved to gallery (%s)", rec.CreatedDate))
		})
	}()
}

func (s *Studio) exportPDF() {
	els := s.board.Elements()
	if len(els) == 0 {
		s.setStatus("Nothing to export")
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, s.window)
			return
		}
		if writer == nil {
			return
		}
		defer func() {
			if err := writer.Close(); err != nil {
				log.Printf("[UI] Error closing %s: %v", writer.URI(), err)
			}
		}()
		if err := artwork.WritePDF(writer, els); err != nil {
			log.Printf("[UI] PDF export failed: %v", err)
			dialog.ShowError(err, s.window)
			return
		}
		s.setStatus("Exported " + writer.URI().Name())
	}, s.window)
	d.SetFileName("drawing.pdf")
	d.Show()
}

// galleryItem is one decoded record ready for display.
type galleryItem struct {
	rec   gallery.Record
	thumb image.Image
}

// cardLabel names a record by its format and creation time, e.g. "SVG 2024-05-01 09:30".
func cardLabel(rec gallery.Record) string {
	kind := rec.MimeType
	if _, sub, ok := strings.Cut(kind, "/"); ok {
		kind, _, _ = strings.Cut(sub, "+")
	}
	return strings.ToUpper(kind) + " " + rec.Created().Format("2006-01-02 15:04")
}

// fetchArtwork reloads a record by ID, so a card whose record was deleted
// since the listing fails with gallery.ErrNotFound.
func fetchArtwork(ctx context.Context, store Gallery, id int64) (gallery.Record, *artwork.Artwork, error) {
	rec, err := store.Get(ctx, id)
	if err != nil {
		return gallery.Record{}, nil, err
	}
	a, err := artwork.Decode(rec.Data)
	if err != nil {
		return gallery.Record{}, nil, fmt.Errorf("failed to decode artwork %d: %w", id, err)
	}
	return rec, a, nil
}

func loadGallery(ctx context.Context, store Gallery) ([]galleryItem, error) {
	recs, err := store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]galleryItem, 0, len(recs))
	for _, rec := range recs {
		a, err := artwork.Decode(rec.Data)
		if err != nil {
			log.Printf("[UI] Skipping gallery item %d: %v", rec.ID, err)
			continue
		}
		items = append(items, galleryItem{rec: rec, thumb: a.Thumbnail(thumbSize)})
	}
	return items, nil
}

// showGallery opens the gallery window, newest artwork first.
func (s *Studio) showGallery() {
	w := s.app.NewWindow("Gallery")
	w.Resize(fyne.NewSize(720, 540))
	grid := container.NewGridWrap(fyne.NewSize(thumbSize+20, thumbSize+70))
	w.SetContent(container.NewVScroll(grid))
	w.Show()

	var reload func()
	reload = func() {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), galleryTimeout)
			defer cancel()
			items, err := loadGallery(ctx, s.store)

			fyne.Do(func() {
				if err != nil {
					log.Printf("[UI] Gallery load failed: %v", err)
					dialog.ShowError(err, w)
					return
				}
				grid.Objects = nil
				for _, it := range items {
					grid.Add(s.galleryCard(w, it, reload))
				}
				if len(items) == 0 {
					grid.Add(widget.NewLabel("No saved artwork yet"))
				}
				grid.Refresh()
			})
		}()
	}
	reload()
}

func (s *Studio) galleryCard(w fyne.Window, it galleryItem, reload func()) fyne.CanvasObject {
	img := canvas.NewImageFromImage(it.thumb)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(thumbSize, thumbSize))

	open := widget.NewButtonWithIcon("", theme.ZoomInIcon(), func() {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), galleryTimeout)
			defer cancel()
			rec, a, err := fetchArtwork(ctx, s.store, it.rec.ID)
			fyne.Do(func() {
				if err != nil {
					log.Printf("[UI] Open %d failed: %v", it.rec.ID, err)
					dialog.ShowError(err, w)
					if errors.Is(err, gallery.ErrNotFound) {
						reload()
					}
					return
				}
				s.openViewer(rec, a)
			})
		}()
	})
	del := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		dialog.ShowConfirm("Delete artwork", "Delete this artwork from the gallery?", func(ok bool) {
			if !ok {
				return
			}
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), galleryTimeout)
				defer cancel()
				err := s.store.Delete(ctx, it.rec.ID)
				fyne.Do(func() {
					if err != nil {
						log.Printf("[UI] Delete %d failed: %v", it.rec.ID, err)
						dialog.ShowError(err, w)
					}
					reload()
				})
			}()
		}, w)
	})

	label := widget.NewLabel(cardLabel(it.rec))
	label.Alignment = fyne.TextAlignCenter
	return container.NewBorder(nil, container.NewHBox(label, open, del), nil, nil, img)
}

func (s *Studio) openViewer(rec gallery.Record, a *artwork.Artwork) {
	w := s.app.NewWindow("Artwork " + cardLabel(rec))
	w.Resize(fyne.NewSize(900, 700))
	v := NewViewerWidget(s.settings.ViewerOptions())
	v.Controller().OnReset = func() { log.Printf("[UI] Viewer reset on %d", rec.ID) }
	w.SetContent(v)
	w.SetOnClosed(v.Close)
	v.Show(a)
	w.Show()
}
