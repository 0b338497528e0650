package entity

import (
	"fmt"

	"github.com/milk9111/gridworld/common"
	"github.com/milk9111/gridworld/ecs"
	"github.com/milk9111/gridworld/ecs/component"
	"github.com/milk9111/gridworld/prefabs"
)

func NewPlayer(w *ecs.World) (*component.Actor, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, fmt.Errorf("player: load spec: %w", err)
	}
	return NewPlayerFromSpec(w, spec)
}

// NewPlayerFromSpec places the actor at the spawn cell's anchor and applies
// the spec's tuning to the world. The current ground level is kept.
func NewPlayerFromSpec(w *ecs.World, spec *prefabs.PlayerSpec) (*component.Actor, error) {
	if w == nil {
		return nil, fmt.Errorf("player: nil world")
	}
	if spec == nil {
		return nil, fmt.Errorf("player: nil spec")
	}
	if err := spec.Physics.Validate(); err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}

	width, height := spec.Size.Width, spec.Size.Height
	if width <= 0 {
		width = common.TileSize
	}
	if height <= 0 {
		height = common.TileSize
	}

	actor := &component.Actor{
		Position: common.ToWorld(common.GridPos{X: spec.Spawn.X, Y: spec.Spawn.Y}),
		Width:    width,
		Height:   height,
	}
	w.Actor = actor
	w.Physics = PhysicsFromSpec(spec.Physics, w.Physics.GroundLevel)

	return actor, nil
}

// PhysicsFromSpec converts tuning from YAML, falling back to the defaults
// for any zero field.
func PhysicsFromSpec(p prefabs.PhysicsSpec, groundLevel float64) component.Physics {
	out := component.DefaultPhysics()
	out.GroundLevel = groundLevel
	if p.Accel > 0 {
		out.Accel = p.Accel
	}
	if p.MaxSpeed > 0 {
		out.MaxSpeed = p.MaxSpeed
	}
	if p.Friction > 0 {
		out.Friction = p.Friction
	}
	if p.JumpImpulse > 0 {
		out.JumpImpulse = p.JumpImpulse
	}
	if p.Gravity > 0 {
		out.Gravity = p.Gravity
	}
	return out
}
