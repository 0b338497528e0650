package system

import (
	"github.com/sirupsen/logrus"

	"github.com/milk9111/gridworld/common"
	"github.com/milk9111/gridworld/ecs"
	"github.com/milk9111/gridworld/logger"
)

// CursorSystem tracks the cell under the pointer and applies at most one
// tile edit per frame. It is the only system that writes the tile map.
type CursorSystem struct{}

func NewCursorSystem() *CursorSystem {
	return &CursorSystem{}
}

func (cs *CursorSystem) Update(w *ecs.World) {
	if cs == nil || w == nil || w.Cursor == nil || w.Tiles == nil {
		return
	}
	in := w.Input
	if !in.PointerValid {
		// keep the last cell, just stop drawing it
		w.Cursor.Visible = false
		return
	}

	cell := common.ToGrid(in.Pointer)
	w.Cursor.Cell = cell
	w.Cursor.Highlight = common.Snap(in.Pointer)
	w.Cursor.Visible = true

	switch {
	case in.Place && in.Remove:
		// conflicting buttons: neither wins
		return
	case in.Remove:
		if w.Tiles.Contains(cell) && w.Tiles.Remove(cell) {
			publishTileEdit(w, cell, ecs.TileRemoved)
		}
	case in.Place:
		if !w.Tiles.Contains(cell) && w.Tiles.Insert(cell) {
			publishTileEdit(w, cell, ecs.TilePlaced)
		}
	}
}

func publishTileEdit(w *ecs.World, cell common.GridPos, kind ecs.TileEventKind) {
	w.Events().Push(ecs.Event{Type: ecs.EventTypeTile, Data: ecs.TileEvent{Cell: cell, Kind: kind}})
	logger.Log.WithFields(logrus.Fields{
		"cell":  cell.String(),
		"event": string(kind),
		"frame": w.Frame(),
	}).Debug("tile edit")
}
