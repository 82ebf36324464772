package state

import (
	"image/color"
	"math"
	"strconv"
	"strings"
)

// DefaultBrushSize is the stroke width a new session starts with.
const DefaultBrushSize float32 = 10

// Tool holds the user's current drawing settings.
type Tool struct {
	Color     color.NRGBA
	BrushSize float32
	Eraser    bool
}

func NewTool() Tool {
	return Tool{Color: Black, BrushSize: DefaultBrushSize}
}

// SelectColor switches to c and leaves eraser mode.
func (t *Tool) SelectColor(c color.NRGBA) {
	t.Color = c
	t.Eraser = false
}

// SelectEraser enters eraser mode. The colour is kept so that picking the
// pen again is not needed to restore it.
func (t *Tool) SelectEraser() {
	t.Eraser = true
}

// SetBrushSizeText parses the brush-size field. Input that is not a
// positive finite number leaves the size unchanged. It returns the size in
// effect afterwards.
func (t *Tool) SetBrushSizeText(text string) float32 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 32)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return t.BrushSize
	}
	t.BrushSize = float32(v)
	return t.BrushSize
}

// Transition describes what one drag update does to the store. Exactly one
// of Append and Erase is set.
type Transition struct {
	Append *Segment

	Erase     bool
	Cursor    Point
	BrushSize float32
}

// Translate turns a drag update from prev to next into a store transition.
func Translate(t Tool, prev, next Point) Transition {
	if t.Eraser {
		return Transition{Erase: true, Cursor: next, BrushSize: t.BrushSize}
	}
	return Transition{Append: &Segment{
		Start: prev,
		End:   next,
		Color: t.Color,
		Width: t.BrushSize,
	}}
}
