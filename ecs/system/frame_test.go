package system

import (
	"testing"

	"github.com/milk9111/gridworld/common"
	"github.com/milk9111/gridworld/ecs"
	"github.com/milk9111/gridworld/ecs/component"
)

func newScenarioWorld(t *testing.T, start common.GridPos) (*ecs.World, *TileOccupancySystem) {
	t.Helper()

	w := ecs.NewWorld()
	w.Actor = &component.Actor{Position: common.ToWorld(start)}
	w.Cursor = &component.Cursor{}
	w.Camera = &component.Camera{}
	if err := w.OnStartup(func(w *ecs.World) {
		w.Tiles.Seed(component.SeedRegion{SurfaceRow: 0, MinX: -8, MaxX: 8})
	}); err != nil {
		t.Fatal(err)
	}

	occ := NewTileOccupancySystem()
	AddFrameSystems(w, occ)
	return w, occ
}

func TestScenarioActorRestsOnSurface(t *testing.T) {
	cases := []struct {
		name  string
		start common.GridPos
	}{
		{"starts_on_surface", common.GridPos{X: 0, Y: 1}},
		{"drops_onto_surface", common.GridPos{X: 0, Y: 6}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, occ := newScenarioWorld(t, c.start)
			want := common.ToWorld(common.GridPos{X: 0, Y: 1}).Y

			for i := 0; i < 300; i++ {
				w.Update()
				if w.Actor.Position.Y < want {
					t.Fatalf("frame %d: actor sank to %v", i, w.Actor.Position.Y)
				}
			}

			a := w.Actor
			if a.Position.Y != want || !a.Grounded || !a.Velocity.IsZero() {
				t.Fatalf("expected to rest at y=%v, got pos=%v vel=%v grounded=%v", want, a.Position, a.Velocity, a.Grounded)
			}
			if a.Position.X != 0 {
				t.Fatalf("actor drifted horizontally to %v", a.Position.X)
			}
			if w.Camera.Position != a.Position {
				t.Fatalf("camera %v does not follow actor %v", w.Camera.Position, a.Position)
			}
			below := a.Position.Add(common.Vector{Y: -common.TileSize})
			if !occ.SolidAt(below) {
				t.Fatalf("expected the surface tile under the actor to be solid")
			}

			for i := 0; i < 60; i++ {
				w.Update()
			}
			if a.Position.Y != want || !a.Velocity.IsZero() {
				t.Fatalf("resting state is not stable: pos=%v vel=%v", a.Position, a.Velocity)
			}
		})
	}
}

func TestScenarioRunAndEditInSameFrames(t *testing.T) {
	w, occ := newScenarioWorld(t, common.GridPos{X: 0, Y: 1})
	target := common.GridPos{X: 3, Y: 4}

	for i := 0; i < 30; i++ {
		w.Input = pointerAt(target, true, false)
		w.Input.MoveRight = true
		w.Update()
	}

	if w.Actor.Velocity.X <= 0 || w.Actor.Position.X <= 0 {
		t.Fatalf("actor should be running right, got %v", w.Actor.Velocity)
	}
	if !w.Tiles.Contains(target) || !occ.SolidAt(common.ToWorld(target)) {
		t.Fatalf("expected placed tile at %v", target)
	}
	if w.Tiles.Len() != 18 || occ.ShapeCount() != 18 {
		t.Fatalf("expected 18 tiles and shapes, got %d and %d", w.Tiles.Len(), occ.ShapeCount())
	}
	if w.Actor.Anim != component.AnimRun || w.Actor.Facing != component.FacingRight {
		t.Fatalf("unexpected animation %s facing %d", w.Actor.Anim, w.Actor.Facing)
	}

	for i := 0; i < 30; i++ {
		w.Input = component.Input{}
		w.Update()
	}
	if w.Actor.Velocity.X != 0 || w.Actor.Anim != component.AnimIdle {
		t.Fatalf("actor should settle after release, got vel=%v anim=%s", w.Actor.Velocity, w.Actor.Anim)
	}
}
