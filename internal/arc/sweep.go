package arc

import "math"

// InSweep is an angle-based reference check: it reports whether the
// direction from the centre to (x, y) falls within the clockwise sweep
// from angle1 to angle2. It ignores the ellipse boundary entirely. The
// centre itself is the apex of every sweep and is always included.
func (a *Arc) InSweep(x, y float64) bool {
	if a.fullSweep {
		return true
	}

	dx := x - a.middleX
	dy := y - a.middleY
	if math.IsNaN(dx) || math.IsNaN(dy) {
		return false
	}
	if dx == 0 && dy == 0 {
		return true
	}

	// screen space: y grows downward, so atan2 already runs clockwise
	phi := math.Atan2(dy, dx)
	span := NormalizeAngle(a.angle2 - a.angle1)
	rel := NormalizeAngle(phi - a.angle1)
	return rel <= span
}

// Mask is a grid of hit-test results over an arc's bounding rectangle.
// Row 0 is the top of the rectangle.
type Mask struct {
	Cols int
	Rows int
	Rect Rect

	hits []bool
}

// At reports whether the sample at (col, row) was inside the arc.
// Out-of-range cells are reported as outside.
func (m *Mask) At(col, row int) bool {
	if col < 0 || row < 0 || col >= m.Cols || row >= m.Rows {
		return false
	}
	return m.hits[row*m.Cols+col]
}

// Count returns the number of samples inside the arc.
func (m *Mask) Count() int {
	n := 0
	for _, h := range m.hits {
		if h {
			n++
		}
	}
	return n
}

// CellCenter returns the coordinate sampled for (col, row).
func (m *Mask) CellCenter(col, row int) Point {
	return Point{
		X: m.Rect.Left + (float64(col)+0.5)*m.Rect.Width/float64(m.Cols),
		Y: m.Rect.Top + (float64(row)+0.5)*m.Rect.Height/float64(m.Rows),
	}
}

// Sample evaluates Contains at the centre of every cell of a cols × rows
// grid laid over the bounding rectangle.
func (a *Arc) Sample(cols, rows int) *Mask {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	m := &Mask{
		Cols: cols,
		Rows: rows,
		Rect: a.rect,
		hits: make([]bool, cols*rows),
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			p := m.CellCenter(col, row)
			m.hits[row*cols+col] = a.Contains(p.X, p.Y)
		}
	}
	return m
}

// Boundary returns n points evenly spaced (by parameter) around the
// outer ellipse, starting at 3 o'clock and running clockwise.
func (a *Arc) Boundary(n int) []Point {
	if n < 1 {
		return nil
	}
	pts := make([]Point, n)
	for i := range pts {
		t := fullTurn * float64(i) / float64(n)
		pts[i] = Point{
			X: a.middleX + a.radiusX*math.Cos(t),
			Y: a.middleY + a.radiusY*math.Sin(t),
		}
	}
	return pts
}
