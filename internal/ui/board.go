package ui

import (
	"image"

	"PaintPad/internal/export"
	"PaintPad/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// Board is the painting surface. Drags are turned into segments, or erase
// them when the eraser is active. It renders by rasterizing the store, the
// same way an export does.
type Board struct {
	widget.BaseWidget
	session *state.Session

	cache    *image.RGBA
	cacheRev uint64
}

var _ fyne.Widget = (*Board)(nil)
var _ fyne.Draggable = (*Board)(nil)

// NewBoard returns a board drawing into s.
func NewBoard(s *state.Session) *Board {
	b := &Board{session: s}
	b.ExtendBaseWidget(b)
	return b
}

func (b *Board) Dragged(e *fyne.DragEvent) {
	next := state.Point{X: e.Position.X, Y: e.Position.Y}
	prev := next.Sub(state.Point{X: e.Dragged.DX, Y: e.Dragged.DY})
	if b.session.Store.Apply(state.Translate(b.session.Tool, prev, next)) > 0 {
		b.Refresh()
	}
}

func (b *Board) DragEnd() {}

// render draws the store in gesture units; fyne stretches the result to
// device pixels.
func (b *Board) render(_, _ int) image.Image {
	size := b.Size()
	w, h := int(size.Width), int(size.Height)
	rev := b.session.Store.Revision()
	if b.cache != nil && b.cacheRev == rev && b.cache.Bounds().Dx() == w && b.cache.Bounds().Dy() == h {
		return b.cache
	}
	b.cache = export.Rasterize(b.session.Store.Snapshot(), w, h)
	b.cacheRev = rev
	return b.cache
}

func (b *Board) CreateRenderer() fyne.WidgetRenderer {
	return &boardRenderer{board: b, raster: canvas.NewRaster(b.render)}
}

type boardRenderer struct {
	board  *Board
	raster *canvas.Raster
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardRenderer) Refresh() {
	r.raster.Refresh()
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster}
}

func (r *boardRenderer) Destroy() {}
