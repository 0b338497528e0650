package entity

import (
	"fmt"

	"github.com/milk9111/gridworld/ecs"
	"github.com/milk9111/gridworld/ecs/component"
	"github.com/milk9111/gridworld/prefabs"
)

const defaultCameraZoom = 2.0

func NewCamera(w *ecs.World) (*component.Camera, error) {
	if w == nil {
		return nil, fmt.Errorf("camera: nil world")
	}

	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return nil, fmt.Errorf("camera: load spec: %w", err)
	}

	zoom := cameraSpec.Zoom
	if zoom <= 0 {
		zoom = defaultCameraZoom
	}

	camera := &component.Camera{Zoom: zoom}
	if w.Actor != nil {
		camera.Position = w.Actor.Position
	}
	w.Camera = camera
	return camera, nil
}
