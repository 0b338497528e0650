package system

import (
	"testing"

	"github.com/milk9111/gridworld/common"
	"github.com/milk9111/gridworld/ecs"
	"github.com/milk9111/gridworld/ecs/component"
)

func newCursorWorld() *ecs.World {
	w := ecs.NewWorld()
	w.Cursor = &component.Cursor{}
	w.AddSystem(NewCursorSystem())
	return w
}

func pointerAt(g common.GridPos, place, remove bool) component.Input {
	p := common.ToWorld(g)
	p.X += 3.5
	p.Y -= 2.25
	return component.Input{Pointer: p, PointerValid: true, Place: place, Remove: remove}
}

func TestCursorEdits(t *testing.T) {
	cell := common.GridPos{X: 4, Y: -2}

	cases := []struct {
		name       string
		occupied   bool
		place      bool
		remove     bool
		wantTile   bool
		wantEvents int
	}{
		{"idle_empty", false, false, false, false, 0},
		{"idle_occupied", true, false, false, true, 0},
		{"place_empty", false, true, false, true, 1},
		{"place_occupied", true, true, false, true, 0},
		{"remove_occupied", true, false, true, false, 1},
		{"remove_empty", false, false, true, false, 0},
		{"conflict_empty", false, true, true, false, 0},
		{"conflict_occupied", true, true, true, true, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newCursorWorld()
			if c.occupied {
				w.Tiles.Insert(cell)
			}

			var events []ecs.Event
			w.AddSystem(ecs.SystemFunc(func(w *ecs.World) { events = w.Events().Drain() }))

			w.Input = pointerAt(cell, c.place, c.remove)
			w.Update()

			if got := w.Tiles.Contains(cell); got != c.wantTile {
				t.Fatalf("expected tile=%v, got %v", c.wantTile, got)
			}
			if len(events) != c.wantEvents {
				t.Fatalf("expected %d events, got %d", c.wantEvents, len(events))
			}
			if w.Cursor.Cell != cell || w.Cursor.Highlight != common.ToWorld(cell) || !w.Cursor.Visible {
				t.Fatalf("cursor not tracking pointer: %+v", w.Cursor)
			}
		})
	}
}

func TestCursorHeldButtonEditsOncePerCell(t *testing.T) {
	w := newCursorWorld()

	var placed int
	w.AddSystem(ecs.SystemFunc(func(w *ecs.World) {
		for _, evt := range w.Events().Drain() {
			if te, ok := evt.Data.(ecs.TileEvent); ok && te.Kind == ecs.TilePlaced {
				placed++
			}
		}
	}))

	// drag across three cells, several frames on each
	for x := 0; x < 3; x++ {
		for f := 0; f < 5; f++ {
			w.Input = pointerAt(common.GridPos{X: x}, true, false)
			w.Update()
		}
	}

	if placed != 3 || w.Tiles.Len() != 3 {
		t.Fatalf("expected 3 placements, got events=%d tiles=%d", placed, w.Tiles.Len())
	}
}

func TestCursorSkipsWithoutPointer(t *testing.T) {
	w := newCursorWorld()
	w.Input = pointerAt(common.GridPos{X: 9, Y: 9}, false, false)
	w.Update()
	if !w.Cursor.Visible {
		t.Fatalf("cursor should be visible while the pointer is valid")
	}

	w.Input = component.Input{Place: true}
	w.Update()

	if w.Tiles.Len() != 0 {
		t.Fatalf("no edit may happen without a pointer")
	}
	if w.Cursor.Cell != (common.GridPos{X: 9, Y: 9}) {
		t.Fatalf("cursor state should stay stale, got %v", w.Cursor.Cell)
	}
	if w.Cursor.Visible {
		t.Fatalf("highlight should be hidden once the pointer is gone")
	}
}
