package panel

// Rect is a rectangle in terminal cells, viewport-relative. Placement is
// always computed against the terminal itself so no scrolling container
// can clip the panel.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether a cell lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether the rectangle has no area
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Position computes the results panel rectangle: immediately below the
// input control, matching its width, clamped to the terminal. rows is
// the rendered panel height including its frame. Recomputed every time
// the panel opens; resize closes the panel, so it never tracks a live
// resize.
func Position(input Rect, rows, termWidth, termHeight int) Rect {
	r := Rect{
		X:      input.X,
		Y:      input.Y + input.Height,
		Width:  input.Width,
		Height: rows,
	}

	if r.X+r.Width > termWidth {
		r.Width = termWidth - r.X
	}
	if r.Width < 0 {
		r.Width = 0
	}
	if r.Y+r.Height > termHeight {
		r.Height = termHeight - r.Y
	}
	if r.Height < 0 {
		r.Height = 0
	}
	return r
}
