package component

import "github.com/milk9111/gridworld/common"

// Input stores the input snapshot for the current frame.
type Input struct {
	MoveLeft    bool
	MoveRight   bool
	JumpPressed bool

	Place  bool
	Remove bool

	// Pointer is already in world coordinates. PointerValid is false when
	// the pointer is outside the window.
	Pointer      common.WorldPos
	PointerValid bool
}

// Axis returns the horizontal input direction. Opposing keys cancel.
func (in Input) Axis() float64 {
	axis := 0.0
	if in.MoveLeft {
		axis--
	}
	if in.MoveRight {
		axis++
	}
	return axis
}
