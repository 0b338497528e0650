package system

import "github.com/milk9111/gridworld/ecs"

// AddFrameSystems appends the simulation systems in their required order.
// Input is captured before World.Update runs them. The occupancy
// mirror runs after the cursor so it only ever sees completed edits, and the
// camera runs after physics and gravity have committed the actor position.
func AddFrameSystems(w *ecs.World, occ *TileOccupancySystem) {
	if w == nil {
		return
	}
	w.AddSystem(NewPhysicsSystem())
	w.AddSystem(NewGravitySystem())
	w.AddSystem(NewCursorSystem())
	if occ != nil {
		w.AddSystem(occ)
	}
	w.AddSystem(NewCameraSystem())
	w.AddSystem(NewAnimationSystem())
}
