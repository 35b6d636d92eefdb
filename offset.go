package movingquad

import "fmt"

// MoveStep is how far one held arrow key moves the viewport per frame.
const MoveStep = 2

// Offset is the viewport origin in window pixels.
// It is not clamped and may move the quad fully off-window.
type Offset struct {
	X, Y int
}

// Apply moves the offset by MoveStep for every arrow key held in s.
// Left and Right act on X, Up and Down on Y; opposite keys cancel.
func (o *Offset) Apply(s *InputState) {
	if s.KeyDown(KeyLeft) {
		o.X -= MoveStep
	}
	if s.KeyDown(KeyRight) {
		o.X += MoveStep
	}
	if s.KeyDown(KeyUp) {
		o.Y += MoveStep
	}
	if s.KeyDown(KeyDown) {
		o.Y -= MoveStep
	}
}

func (o Offset) String() string {
	return fmt.Sprintf("(%d,%d)", o.X, o.Y)
}
