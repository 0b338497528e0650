package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TileSize is the edge length of one grid cell in world units.
	TileSize = 16
)

// Default movement tuning. All values are per frame; the simulation is
// frame-locked and never scales by elapsed time.
const (
	DefaultAccel       = 0.5
	DefaultMaxSpeed    = 4.0
	DefaultFriction    = 0.25
	DefaultJumpImpulse = 6.0
	DefaultGravity     = 0.5
)

// DefaultSurfaceRow is the grid row that holds the seeded surface tiles.
const DefaultSurfaceRow = 0
