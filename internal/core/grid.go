package core

// GridLayout places particles row-major into a fixed rectangular grid.
type GridLayout struct {
	Cols     int
	Rows     int
	CellSize float64
	Gap      float64
}

// Index returns the particle index for grid coordinates (col, row).
func (g GridLayout) Index(col, row int) int { return row*g.Cols + col }

// Cell returns the row and column of particle id. Ids beyond the last row
// are placed on the last row.
func (g GridLayout) Cell(id int) (row, col int) {
	cols := g.Cols
	if cols <= 0 {
		cols = 1
	}
	if id < 0 {
		id = 0
	}
	row = id / cols
	col = id % cols
	if g.Rows > 0 && row >= g.Rows {
		row = g.Rows - 1
	}
	return row, col
}

// Extent returns the total width and height of the grid.
func (g GridLayout) Extent() (w, h float64) {
	w = float64(g.Cols)*g.CellSize + float64(max(g.Cols-1, 0))*g.Gap
	h = float64(g.Rows)*g.CellSize + float64(max(g.Rows-1, 0))*g.Gap
	return w, h
}

// CellCenter returns the screen position of a cell's center with the whole
// grid centered on center.
func (g GridLayout) CellCenter(row, col int, center Point) Point {
	w, h := g.Extent()
	pitch := g.CellSize + g.Gap
	return Point{
		X: center.X - w/2 + float64(col)*pitch + g.CellSize/2,
		Y: center.Y - h/2 + float64(row)*pitch + g.CellSize/2,
	}
}
