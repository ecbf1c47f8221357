package life

// DragMode says what a drag gesture does to the cells it crosses.
type DragMode int

const (
	DragPaint DragMode = iota // Sets cells alive
	DragErase                 // Sets cells dead
)

// String returns a human-readable name for the drag mode.
func (m DragMode) String() string {
	switch m {
	case DragPaint:
		return "paint"
	case DragErase:
		return "erase"
	default:
		return "unknown"
	}
}

// dragState tracks one pointer gesture. The mode is fixed when the gesture
// begins, derived from the pressed cell's value before the initial toggle:
// pressing a live cell starts an erase drag, pressing a dead cell starts a
// paint drag. The state is discarded on pointer-up or when the pointer
// leaves the grid surface.
type dragState struct {
	active bool
	mode   DragMode
}

// begin starts a gesture from a cell that held pressedAlive before the
// press toggled it.
func (d *dragState) begin(pressedAlive bool) {
	d.active = true
	if pressedAlive {
		d.mode = DragErase
	} else {
		d.mode = DragPaint
	}
}

// end discards the gesture.
func (d *dragState) end() {
	d.active = false
}
