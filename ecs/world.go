package ecs

import (
	"errors"

	"github.com/milk9111/gridworld/ecs/component"
)

var ErrAlreadyStarted = errors.New("ecs: world already started")

// World is the arena of typed records the systems operate on. There is one
// actor, one cursor and one camera; each may be nil until built, and systems
// that need a missing record skip the frame.
type World struct {
	Physics component.Physics
	Input   component.Input

	Actor  *component.Actor
	Cursor *component.Cursor
	Camera *component.Camera
	Tiles  *component.TileMap

	scheduler *Scheduler
	startup   []func(w *World)
	started   bool
	frame     uint64
	events    EventQueue
}

// NewWorld creates a world with an empty tile map and default tuning.
func NewWorld() *World {
	return &World{
		Physics:   component.DefaultPhysics(),
		Tiles:     component.NewTileMap(),
		scheduler: NewScheduler(),
	}
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	if w.scheduler == nil {
		w.scheduler = NewScheduler()
	}
	w.scheduler.Add(s)
}

// OnStartup registers fn to run once, immediately before the first frame.
func (w *World) OnStartup(fn func(w *World)) error {
	if w == nil || fn == nil {
		return nil
	}
	if w.started {
		return ErrAlreadyStarted
	}
	w.startup = append(w.startup, fn)
	return nil
}

// Update runs startup hooks on the first call, then every system once.
func (w *World) Update() {
	if w == nil {
		return
	}
	if !w.started {
		w.started = true
		for _, fn := range w.startup {
			fn(w)
		}
		w.startup = nil
	}
	if w.scheduler != nil {
		w.scheduler.Update(w)
	}
	w.frame++
	w.events.flush()
}

// Frame returns the number of completed updates.
func (w *World) Frame() uint64 {
	if w == nil {
		return 0
	}
	return w.frame
}

func (w *World) Started() bool {
	return w != nil && w.started
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}
