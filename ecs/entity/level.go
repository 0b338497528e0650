package entity

import (
	"context"
	"fmt"

	"github.com/milk9111/gridworld/ecs"
	"github.com/milk9111/gridworld/ecs/component"
	"github.com/milk9111/gridworld/levels"
	"github.com/milk9111/gridworld/logger"
	"github.com/sirupsen/logrus"
)

// LoadLevelToWorld sets the ground level for lvl and registers a startup hook
// that seeds the tile map. Script levels are generated here so that script
// errors surface before the first frame.
func LoadLevelToWorld(ctx context.Context, w *ecs.World, lvl *levels.Level) error {
	if w == nil || lvl == nil {
		return fmt.Errorf("level: nil world or level")
	}

	cells, err := lvl.Generate(ctx)
	if err != nil {
		return fmt.Errorf("level %s: %w", lvl.Name, err)
	}

	region := component.SeedRegion{
		SurfaceRow: lvl.SurfaceRow,
		MinX:       lvl.MinX,
		MaxX:       lvl.MaxX,
		Depth:      lvl.Depth,
	}
	w.Physics.GroundLevel = component.GroundLevelFor(lvl.SurfaceRow)

	return w.OnStartup(func(w *ecs.World) {
		if lvl.Script != "" {
			w.Tiles.SeedCells(cells)
		} else {
			w.Tiles.Seed(region)
		}
		logger.Log.WithFields(logrus.Fields{
			"level":  lvl.Name,
			"tiles":  w.Tiles.Len(),
			"ground": w.Physics.GroundLevel,
		}).Info("level seeded")
	})
}
