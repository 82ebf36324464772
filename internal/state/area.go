package state

// EraseRadiusFactor scales the brush size into the eraser's half-extent.
const EraseRadiusFactor = 1.5

// Area represents a rectangular area on the canvas
type Area struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// Contains reports whether p lies in the area. Edges are inclusive.
func (a Area) Contains(p Point) bool {
	return p.X >= a.MinX && p.X <= a.MaxX &&
		p.Y >= a.MinY && p.Y <= a.MaxY
}

// EraseArea is the box swept by the eraser at cursor. It is axis-aligned,
// not a circle: corners reach further than the edges.
func EraseArea(cursor Point, brushSize float32) Area {
	radius := brushSize * EraseRadiusFactor
	return Area{
		MinX: cursor.X - radius,
		MinY: cursor.Y - radius,
		MaxX: cursor.X + radius,
		MaxY: cursor.Y + radius,
	}
}

// WithinEraseRadius reports whether target falls inside the eraser box
// centred on cursor.
func WithinEraseRadius(cursor Point, brushSize float32, target Point) bool {
	return EraseArea(cursor, brushSize).Contains(target)
}
