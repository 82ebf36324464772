package ui

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"PaintPad/internal/export"
	"PaintPad/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

const AppID = "com.example.paintpad"

// Painter wires the board, the toolbar and the exporter to one session.
type Painter struct {
	Session  *state.Session
	Board    *Board
	Exporter *export.Exporter

	window fyne.Window
	tools  *toolbar
	status *widget.Label
}

func NewPainter(s *state.Session, w fyne.Window) *Painter {
	p := &Painter{
		Session: s,
		Board:   NewBoard(s),
		window:  w,
		status:  widget.NewLabel("Ready"),
	}
	p.Exporter = export.NewExporter(p.exportDone)
	p.tools = newToolbar(p)
	return p
}

// Content is the window layout: toolbar on top, board filling the rest.
func (p *Painter) Content() fyne.CanvasObject {
	return container.NewBorder(p.tools.objects(), p.status, nil, nil, p.Board)
}

func (p *Painter) SetStatus(text string) {
	p.status.SetText(text)
}

func (p *Painter) SelectColor(c color.NRGBA) {
	p.Session.Tool.SelectColor(c)
}

func (p *Painter) SelectEraser() {
	p.Session.Tool.SelectEraser()
}

func (p *Painter) Reset() {
	p.Session.Store.Reset()
	p.Board.Refresh()
}

// DefaultFileName names an export after the time it was requested.
func DefaultFileName(t time.Time, f export.Format) string {
	return fmt.Sprintf("Painting_%d.%s", t.UnixMilli(), f)
}

// ShowSaveDialog asks for a destination and exports the drawing there.
func (p *Painter) ShowSaveDialog(f export.Format) {
	d := dialog.NewFileSave(p.saveTo(f), p.window)
	d.SetFileName(DefaultFileName(time.Now(), f))
	d.SetFilter(storage.NewExtensionFileFilter([]string{"." + f.String()}))
	d.Show()
}

// saveTo handles the save dialog's answer. A nil writer means the dialog
// was cancelled.
func (p *Painter) saveTo(f export.Format) func(fyne.URIWriteCloser, error) {
	return func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			log.Printf("[UI] Save dialog failed: %v", err)
			p.SetStatus(export.Notification(export.WriteError(err)))
			return
		}
		if w == nil {
			return
		}
		p.Export(w, w.URI().Name(), f)
	}
}

// Export snapshots the drawing and hands it to the background exporter.
// Drawing can continue while the export runs.
func (p *Painter) Export(dest io.WriteCloser, name string, f export.Format) {
	p.SetStatus("Saving " + name + "...")
	p.Exporter.Submit(export.Job{
		Name:     name,
		Format:   f,
		Segments: p.Session.Store.Snapshot(),
		Dest:     dest,
		Info:     export.PDFInfo{Title: name, Session: p.Session.ID},
	})
}

func (p *Painter) exportDone(job export.Job, err error) {
	text := export.Notification(err)
	if err == nil {
		text = "Saved " + job.Name
	}
	fyne.Do(func() {
		p.SetStatus(text)
	})
}

// RunApp opens the painting window and blocks until it is closed.
func RunApp(s *state.Session) {
	a := app.NewWithID(AppID)
	w := a.NewWindow("Paint")
	w.Resize(fyne.NewSize(540, 960))

	p := NewPainter(s, w)
	w.SetContent(p.Content())
	w.ShowAndRun()

	// Let in-flight exports finish writing.
	p.Exporter.Wait()
	log.Printf("[UI] Session %s closed with %d segments", s.ID, s.Store.Len())
}
