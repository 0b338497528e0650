package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/gridworld/common"
	"github.com/milk9111/gridworld/ecs"
	"github.com/milk9111/gridworld/ecs/component"
	"github.com/milk9111/gridworld/logger"
)

// TileOccupancySystem mirrors the tile map as static chipmunk boxes, one per
// occupied cell. It rebuilds from the tile map on its first update and then
// follows the tile events published by the cursor, so it never observes a
// half-applied edit.
type TileOccupancySystem struct {
	space  *cp.Space
	shapes map[common.GridPos]*cp.Shape
	synced bool
}

func NewTileOccupancySystem() *TileOccupancySystem {
	return &TileOccupancySystem{
		space:  cp.NewSpace(),
		shapes: make(map[common.GridPos]*cp.Shape),
	}
}

func (s *TileOccupancySystem) Space() *cp.Space {
	if s == nil {
		return nil
	}
	return s.space
}

func (s *TileOccupancySystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	if s.space == nil {
		s.space = cp.NewSpace()
		s.shapes = make(map[common.GridPos]*cp.Shape)
		s.synced = false
	}
	if !s.synced {
		s.Sync(w.Tiles)
	}

	events := w.Events()
	var rest []ecs.Event
	for _, evt := range events.Drain() {
		tileEvt, ok := evt.Data.(ecs.TileEvent)
		if evt.Type != ecs.EventTypeTile || !ok {
			rest = append(rest, evt)
			continue
		}
		switch tileEvt.Kind {
		case ecs.TilePlaced:
			s.add(tileEvt.Cell)
		case ecs.TileRemoved:
			s.remove(tileEvt.Cell)
		}
	}
	for _, evt := range rest {
		events.Push(evt)
	}
}

// Sync discards every shape and rebuilds one per cell in tiles.
func (s *TileOccupancySystem) Sync(tiles *component.TileMap) {
	if s == nil {
		return
	}
	for cell := range s.shapes {
		s.remove(cell)
	}
	for _, cell := range tiles.Cells() {
		s.add(cell)
	}
	s.synced = true
	logger.Log.WithField("shapes", len(s.shapes)).Debug("tile occupancy synced")
}

// SolidAt reports whether p lies strictly inside an occupied cell.
func (s *TileOccupancySystem) SolidAt(p common.WorldPos) bool {
	if s == nil || s.space == nil {
		return false
	}
	info := s.space.PointQueryNearest(cp.Vector{X: p.X, Y: p.Y}, 0, cp.SHAPE_FILTER_ALL)
	return info != nil && info.Shape != nil
}

func (s *TileOccupancySystem) ShapeCount() int {
	if s == nil {
		return 0
	}
	return len(s.shapes)
}

func (s *TileOccupancySystem) add(cell common.GridPos) {
	if _, ok := s.shapes[cell]; ok {
		return
	}
	shape := cp.NewBox2(s.space.StaticBody, cellBB(cell), 0)
	shape.UserData = cell
	s.space.AddShape(shape)
	s.shapes[cell] = shape
}

func (s *TileOccupancySystem) remove(cell common.GridPos) {
	shape, ok := s.shapes[cell]
	if !ok {
		return
	}
	s.space.RemoveShape(shape)
	delete(s.shapes, cell)
}

// cellBB is the world box covered by a cell. Cells are centered on their
// anchor.
func cellBB(cell common.GridPos) cp.BB {
	c := common.ToWorld(cell)
	half := float64(common.TileSize) / 2
	return cp.BB{L: c.X - half, B: c.Y - half, R: c.X + half, T: c.Y + half}
}
