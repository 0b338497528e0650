package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/gridworld/common"
	"github.com/milk9111/gridworld/ecs"
	"github.com/milk9111/gridworld/ecs/entity"
	"github.com/milk9111/gridworld/ecs/render"
	"github.com/milk9111/gridworld/ecs/system"
	"github.com/milk9111/gridworld/levels"
	"github.com/milk9111/gridworld/logger"
	"github.com/milk9111/gridworld/prefabs"
)

const prefabDir = "prefabs"

type Game struct {
	world     *ecs.World
	input     *Input
	occupancy *system.TileOccupancySystem
	renderer  *render.RenderSystem

	debug   bool
	watcher *prefabs.Watcher

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
}

func NewGame(levelName string, debug bool) (*Game, error) {
	lvl, err := levels.Load(levelName)
	if err != nil {
		return nil, err
	}

	w := ecs.NewWorld()
	if err := entity.LoadLevelToWorld(context.Background(), w, lvl); err != nil {
		return nil, err
	}
	if _, err := entity.NewPlayer(w); err != nil {
		return nil, err
	}
	if _, err := entity.NewCamera(w); err != nil {
		return nil, err
	}
	if _, err := entity.NewCursor(w); err != nil {
		return nil, err
	}

	occ := system.NewTileOccupancySystem()
	system.AddFrameSystems(w, occ)

	g := &Game{
		world:     w,
		input:     NewInput(common.BaseWidth, common.BaseHeight),
		occupancy: occ,
		renderer:  render.NewRenderSystem(common.BaseWidth, common.BaseHeight),
		debug:     debug,
	}
	g.pauseUI = NewPauseUI(g)

	if debug {
		watcher, err := prefabs.NewWatcher(prefabDir)
		if err != nil {
			logger.Log.WithError(err).Warn("prefab hot reload disabled")
		} else {
			g.watcher = watcher
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"level": lvl.Name,
		"debug": debug,
	}).Info("game ready")

	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.drainPrefabChanges()

	g.input.Update(g.world)
	g.world.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)
	g.renderer.Draw(g.world, screen)

	if g.debug {
		render.DrawOccupancyDebug(g.occupancy, g.world, screen)
		render.DrawDebugHUD(g.world, g.occupancy, screen)
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

// drainPrefabChanges applies pending prefab edits without blocking the frame.
// Only player tuning is hot-reloaded; spawn and size take effect on restart.
func (g *Game) drainPrefabChanges() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if err := g.reloadPrefab(filepath.Base(path)); err != nil {
				logger.Log.WithError(err).WithField("file", path).Warn("prefab reload failed")
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				logger.Log.WithError(err).Warn("prefab watcher")
			}
		default:
			return
		}
	}
}

func (g *Game) reloadPrefab(name string) error {
	switch name {
	case "player.yaml":
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			return fmt.Errorf("reload %s: %w", name, err)
		}
		g.world.Physics = entity.PhysicsFromSpec(spec.Physics, g.world.Physics.GroundLevel)
		logger.Log.WithField("physics", fmt.Sprintf("%+v", g.world.Physics)).Info("player tuning reloaded")
	case "cursor.yaml":
		spec, err := prefabs.LoadCursorSpec()
		if err != nil {
			return fmt.Errorf("reload %s: %w", name, err)
		}
		if g.world.Cursor != nil && spec.Color != nil {
			g.world.Cursor.Color = spec.Color.Color
		}
	case "camera.yaml":
		spec, err := prefabs.LoadCameraSpec()
		if err != nil {
			return fmt.Errorf("reload %s: %w", name, err)
		}
		if g.world.Camera != nil && spec.Zoom > 0 {
			g.world.Camera.Zoom = spec.Zoom
		}
	}
	return nil
}
