package entity

import (
	"fmt"

	"github.com/milk9111/gridworld/ecs"
	"github.com/milk9111/gridworld/ecs/component"
	"github.com/milk9111/gridworld/prefabs"
)

func NewCursor(w *ecs.World) (*component.Cursor, error) {
	if w == nil {
		return nil, fmt.Errorf("cursor: nil world")
	}

	cursorSpec, err := prefabs.LoadCursorSpec()
	if err != nil {
		return nil, fmt.Errorf("cursor: load spec: %w", err)
	}

	cursor := &component.Cursor{}
	if cursorSpec.Color != nil {
		cursor.Color = cursorSpec.Color.Color
	}
	w.Cursor = cursor
	return cursor, nil
}
