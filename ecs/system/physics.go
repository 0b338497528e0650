package system

import (
	"math"

	"github.com/milk9111/gridworld/common"
	"github.com/milk9111/gridworld/ecs"
	"github.com/milk9111/gridworld/ecs/component"
)

// PhysicsSystem advances the actor by one fixed step using the frame's
// input snapshot.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil || w.Actor == nil {
		return
	}
	Integrate(w.Physics, w.Actor, w.Input)
}

// Integrate applies input acceleration, clamps to MaxSpeed, applies friction
// and the snap-to-zero rule per axis, then moves the actor by its velocity.
// It returns the acceleration used for this frame.
func Integrate(cfg component.Physics, a *component.Actor, in component.Input) common.Vector {
	if a == nil {
		return common.Vector{}
	}

	accel := common.Vector{X: in.Axis() * cfg.Accel}
	// impulse: applies to this frame only
	if in.JumpPressed {
		accel.Y += cfg.JumpImpulse
	}

	v := a.Velocity.Add(accel)
	v.X = common.Clamp(v.X, -cfg.MaxSpeed, cfg.MaxSpeed)
	v.Y = common.Clamp(v.Y, -cfg.MaxSpeed, cfg.MaxSpeed)

	v.X = applyFriction(v.X, accel.X, cfg.Friction)
	v.Y = applyFriction(v.Y, accel.Y, cfg.Friction)

	a.Velocity = v
	a.Position = a.Position.Add(v)
	return accel
}

// applyFriction decelerates one axis by a fixed amount and forces it to zero
// once it falls under the friction threshold with no acceleration on that
// axis, so released motion always settles at exactly zero.
func applyFriction(v, accel, friction float64) float64 {
	if v != 0 {
		v -= common.Sign(v) * friction
	}
	if math.Abs(v) < friction && accel == 0 {
		v = 0
	}
	return v
}
