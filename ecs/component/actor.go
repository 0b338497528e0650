package component

import "github.com/milk9111/gridworld/common"

type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

type AnimState int

const (
	AnimIdle AnimState = iota
	AnimRun
	AnimAirborne
)

func (a AnimState) String() string {
	switch a {
	case AnimRun:
		return "run"
	case AnimAirborne:
		return "airborne"
	default:
		return "idle"
	}
}

// Actor is the single player-controlled body. Position is authoritative and
// keeps sub-pixel precision; the renderer only ever sees RenderPosition.
type Actor struct {
	Position common.WorldPos
	Velocity common.Vector
	Grounded bool

	// derived each frame from input
	Facing Facing
	Anim   AnimState

	Width  float64
	Height float64
}

func (a *Actor) RenderPosition() common.WorldPos {
	return a.Position.Round()
}
