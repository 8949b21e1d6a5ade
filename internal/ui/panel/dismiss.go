package panel

// Trigger names a dismissal cause
type Trigger string

// Dismissal triggers
const (
	TriggerOutside  Trigger = "outside"  // pointer press outside input and panel
	TriggerViewport Trigger = "viewport" // resize, or scroll outside the panel
	TriggerCancel   Trigger = "cancel"   // explicit cancel (Escape)
)

// Dismisser decides whether an interaction closes the results panel.
// It only carries the two rectangles; the caller owns the actual close.
type Dismisser struct {
	input Rect
	panel Rect
}

// NewDismisser creates a dismisser for the given input and panel rects
func NewDismisser(input, panel Rect) *Dismisser {
	return &Dismisser{input: input, panel: panel}
}

// SetRects updates the rectangles after the panel repositions
func (d *Dismisser) SetRects(input, panel Rect) {
	d.input = input
	d.panel = panel
}

// PressDismisses reports whether a pointer press at (x, y) should close
// the panel: anything outside both the input and the panel does.
func (d *Dismisser) PressDismisses(x, y int) bool {
	return !d.input.Contains(x, y) && !d.panel.Contains(x, y)
}

// ScrollDismisses reports whether a wheel event at (x, y) should close
// the panel. Scrolling inside the panel pages the result list instead.
func (d *Dismisser) ScrollDismisses(x, y int) bool {
	return !d.panel.Contains(x, y)
}

// InPanel reports whether a cell is inside the results panel
func (d *Dismisser) InPanel(x, y int) bool {
	return d.panel.Contains(x, y)
}

// RowAt maps a cell to a result row index, accounting for the one-cell
// frame; returns -1 when the cell isn't on a row.
func (d *Dismisser) RowAt(x, y int) int {
	if !d.panel.Contains(x, y) {
		return -1
	}
	row := y - d.panel.Y - 1 // top border
	if row < 0 || row >= d.panel.Height-2 {
		return -1
	}
	return row
}
