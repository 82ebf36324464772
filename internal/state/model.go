package state

import (
	"image/color"
)

// Point is a position in gesture coordinates.
type Point struct{ X, Y float32 }

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Segment is one straight piece of a stroke. A freehand stroke becomes many
// short segments, one per drag update.
type Segment struct {
	Start Point
	End   Point
	Color color.NRGBA
	Width float32
}

// ErasableBy reports whether an eraser at cursor with the given brush size
// removes the segment. Either endpoint in range is enough.
func (s Segment) ErasableBy(cursor Point, brushSize float32) bool {
	return s.inArea(EraseArea(cursor, brushSize))
}

func (s Segment) inArea(a Area) bool {
	return a.Contains(s.Start) || a.Contains(s.End)
}

var (
	Black = color.NRGBA{A: 255}
	Red   = color.NRGBA{R: 255, A: 255}
	Green = color.NRGBA{G: 255, A: 255}
	Blue  = color.NRGBA{B: 255, A: 255}
	White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Palette is the set of colours offered by the colour picker, in display order.
var Palette = []color.NRGBA{Red, Green, Blue, Black}
