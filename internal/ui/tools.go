package ui

import (
	"fmt"
	"image/color"

	"PaintPad/internal/export"
	"PaintPad/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

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
	dot := canvas.NewCircle(s.Color)
	dot.StrokeColor = color.Gray{Y: 150}
	dot.StrokeWidth = 1

	bg := canvas.NewRectangle(color.Transparent)
	bg.SetMinSize(fyne.NewSize(36, 36))

	return widget.NewSimpleRenderer(container.NewStack(bg, dot))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// toolbar holds the controls so tests can drive them.
type toolbar struct {
	swatches []*colorSwatch
	size     *widget.Entry
	eraser   *widget.Button
	reset    *widget.Button
	save     *widget.Button
	pdf      *widget.Button
}

func newToolbar(p *Painter) *toolbar {
	tb := &toolbar{}

	for _, c := range state.Palette {
		tb.swatches = append(tb.swatches, newColorSwatch(c, p.SelectColor))
	}

	tb.size = widget.NewEntry()
	tb.size.SetText(fmt.Sprint(p.Session.Tool.BrushSize))
	tb.size.OnChanged = func(text string) {
		p.Session.Tool.SetBrushSizeText(text)
	}

	tb.eraser = widget.NewButtonWithIcon("Eraser", theme.DeleteIcon(), p.SelectEraser)
	tb.reset = widget.NewButtonWithIcon("Reset", theme.ContentClearIcon(), p.Reset)
	tb.save = widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), func() {
		p.ShowSaveDialog(export.FormatPNG)
	})
	tb.pdf = widget.NewButtonWithIcon("PDF", theme.DocumentPrintIcon(), func() {
		p.ShowSaveDialog(export.FormatPDF)
	})
	return tb
}

func (tb *toolbar) objects() fyne.CanvasObject {
	colorBox := container.NewHBox()
	for _, s := range tb.swatches {
		colorBox.Add(s)
	}
	sizeBox := container.NewHBox(
		container.New(layout.NewGridWrapLayout(fyne.NewSize(80, 36)), tb.size),
		widget.NewLabel("px"),
	)

	return container.NewHScroll(container.NewHBox(
		colorBox,
		widget.NewSeparator(),
		sizeBox,
		widget.NewSeparator(),
		tb.eraser,
		tb.reset,
		tb.save,
		tb.pdf,
		layout.NewSpacer(),
	))
}
