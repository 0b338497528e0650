package system

import (
	"github.com/milk9111/gridworld/ecs"
	"github.com/milk9111/gridworld/ecs/component"
)

// AnimationSystem derives facing and animation state from the frame's input
// and the settled actor state. Nothing downstream depends on it except
// rendering.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (as *AnimationSystem) Update(w *ecs.World) {
	if as == nil || w == nil || w.Actor == nil {
		return
	}
	a := w.Actor

	switch axis := w.Input.Axis(); {
	case axis < 0:
		a.Facing = component.FacingLeft
	case axis > 0:
		a.Facing = component.FacingRight
	}

	switch {
	case !a.Grounded:
		a.Anim = component.AnimAirborne
	case a.Velocity.X != 0:
		a.Anim = component.AnimRun
	default:
		a.Anim = component.AnimIdle
	}
}
