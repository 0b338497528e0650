package system

import (
	"github.com/milk9111/gridworld/ecs"
)

type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update copies the actor position to the camera. No smoothing, no bounds.
func (cs *CameraSystem) Update(w *ecs.World) {
	if cs == nil || w == nil || w.Camera == nil || w.Actor == nil {
		return
	}
	w.Camera.Position = w.Actor.Position
}
