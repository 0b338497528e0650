package component

import "github.com/milk9111/gridworld/common"

// Physics holds the per-frame movement tuning shared by the integrator and
// the gravity policy.
type Physics struct {
	Accel       float64
	MaxSpeed    float64
	Friction    float64
	JumpImpulse float64
	Gravity     float64

	// GroundLevel is the world y at which the actor rests on the surface.
	GroundLevel float64
}

func DefaultPhysics() Physics {
	return Physics{
		Accel:       common.DefaultAccel,
		MaxSpeed:    common.DefaultMaxSpeed,
		Friction:    common.DefaultFriction,
		JumpImpulse: common.DefaultJumpImpulse,
		Gravity:     common.DefaultGravity,
		GroundLevel: GroundLevelFor(common.DefaultSurfaceRow),
	}
}

// GroundLevelFor returns the resting height of an actor standing on
// surfaceRow: the anchor of the cell directly above it.
func GroundLevelFor(surfaceRow int) float64 {
	return common.ToWorld(common.GridPos{Y: surfaceRow + 1}).Y
}
