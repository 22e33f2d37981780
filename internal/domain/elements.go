package domain

// XYZ is a point in the model's coordinate system, in decimal feet.
type XYZ struct {
	X float64
	Y float64
	Z float64
}

// BoundingBox is an axis-aligned extent around one model element.
type BoundingBox struct {
	Min XYZ
	Max XYZ
}

// Wall is the footprint-relevant view of a wall element: just its extent.
type Wall struct {
	ID     string
	Bounds BoundingBox
}

// Level is a named horizontal datum in the model. Names like "Roof" or
// "Foundation" are excluded from the story count.
type Level struct {
	Name string
}

// Room is a named spatial region with its area in square feet. An area of
// zero or less marks an unplaced region and is ignored by classification.
type Room struct {
	Name string
	Area float64
}

// Report is a printed tabular schedule: a title and a grid of text cells.
// By convention the label column is index 0 and the value column is the
// last cell of each row.
type Report struct {
	Title string
	Rows  [][]string
}

// Label returns the raw label cell of row i, or "" when the row is empty
// or out of range.
func (r *Report) Label(i int) string {
	if i < 0 || i >= len(r.Rows) || len(r.Rows[i]) == 0 {
		return ""
	}
	return r.Rows[i][0]
}

// Value returns the last cell of row i, or "" when the row is empty or out
// of range.
func (r *Report) Value(i int) string {
	if i < 0 || i >= len(r.Rows) || len(r.Rows[i]) == 0 {
		return ""
	}
	row := r.Rows[i]
	return row[len(row)-1]
}
