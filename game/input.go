package game

// HowToPlay describes the pointer controls decoded by Session.PointerDown.
const HowToPlay = "click left/right: move, 2nd click: rotate"

// DirectionAt maps a pointer position on a play surface of the given width to a
// move direction: the left half moves left, the right half moves right.
func DirectionAt(x, width float64) int {
	if x < width/2 {
		return -1
	}
	return 1
}
