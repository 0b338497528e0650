package system

import (
	"github.com/milk9111/gridworld/common"
	"github.com/milk9111/gridworld/ecs"
	"github.com/milk9111/gridworld/ecs/component"
)

// GravitySystem runs after PhysicsSystem. Above ground level the actor is
// airborne and accelerates downward; at or below it the actor is grounded
// and pinned to the ground level.
type GravitySystem struct{}

func NewGravitySystem() *GravitySystem {
	return &GravitySystem{}
}

func (gs *GravitySystem) Update(w *ecs.World) {
	if gs == nil || w == nil || w.Actor == nil {
		return
	}
	ApplyGravity(w.Physics, w.Actor)
}

// ApplyGravity reports whether the actor is grounded after the pass.
func ApplyGravity(cfg component.Physics, a *component.Actor) bool {
	if a == nil {
		return false
	}

	if a.Position.Y > cfg.GroundLevel {
		a.Velocity.Y = common.Clamp(a.Velocity.Y-cfg.Gravity, -cfg.MaxSpeed, cfg.MaxSpeed)
		a.Grounded = false
		return false
	}

	a.Position.Y = cfg.GroundLevel
	// the ground absorbs downward motion
	if a.Velocity.Y < 0 {
		a.Velocity.Y = 0
	}
	a.Velocity.Y = applyFriction(a.Velocity.Y, 0, cfg.Friction)
	a.Grounded = true
	return true
}
