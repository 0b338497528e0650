package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/gridworld/common"
	"github.com/milk9111/gridworld/ecs"
	"github.com/milk9111/gridworld/ecs/component"
)

// Background matches a dark plum clear colour.
var Background = color.RGBA{R: 62, G: 4, B: 45, A: 255}

// RenderSystem draws the tile map, the actor at its rounded position and the
// cursor highlight. It only reads world state.
type RenderSystem struct {
	viewW float64
	viewH float64

	TileColor    color.Color
	SurfaceColor color.Color
	ActorColor   color.Color
	AirColor     color.Color
	CursorColor  color.Color
}

func NewRenderSystem(viewW, viewH float64) *RenderSystem {
	return &RenderSystem{
		viewW:        viewW,
		viewH:        viewH,
		TileColor:    colornames.Saddlebrown,
		SurfaceColor: colornames.Forestgreen,
		ActorColor:   colornames.Crimson,
		AirColor:     colornames.Lightcoral,
		CursorColor:  colornames.Gold,
	}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	cam := w.Camera
	if cam == nil {
		cam = &component.Camera{}
	}

	r.drawTiles(w.Tiles, cam, screen)
	r.drawActor(w.Actor, cam, screen)
	r.drawCursor(w.Cursor, cam, screen)
}

func (r *RenderSystem) drawTiles(tiles *component.TileMap, cam *component.Camera, screen *ebiten.Image) {
	size := float64(common.TileSize) * cam.ZoomOrDefault()
	for _, cell := range tiles.Cells() {
		x, y, ok := r.cellRect(cam, common.ToWorld(cell), size)
		if !ok {
			continue
		}
		clr := r.TileColor
		if !tiles.Contains(cell.Add(common.GridPos{Y: 1})) {
			clr = r.SurfaceColor
		}
		vector.FillRect(screen, float32(x), float32(y), float32(size), float32(size), clr, false)
	}
}

func (r *RenderSystem) drawActor(a *component.Actor, cam *component.Camera, screen *ebiten.Image) {
	if a == nil {
		return
	}
	zoom := cam.ZoomOrDefault()
	width, height := a.Width, a.Height
	if width <= 0 {
		width = common.TileSize
	}
	if height <= 0 {
		height = common.TileSize
	}
	width *= zoom
	height *= zoom

	cx, cy := cam.WorldToScreen(a.RenderPosition(), r.viewW, r.viewH)
	x, y := cx-width/2, cy-height/2

	clr := r.ActorColor
	if a.Anim == component.AnimAirborne {
		clr = r.AirColor
	}
	vector.FillRect(screen, float32(x), float32(y), float32(width), float32(height), clr, false)

	eye := width / 4
	eyeX := x + width - eye*1.5
	if a.Facing == component.FacingLeft {
		eyeX = x + eye/2
	}
	vector.FillRect(screen, float32(eyeX), float32(y+height/4), float32(eye), float32(eye), colornames.White, false)
}

func (r *RenderSystem) drawCursor(c *component.Cursor, cam *component.Camera, screen *ebiten.Image) {
	if c == nil || !c.Visible {
		return
	}
	size := float64(common.TileSize) * cam.ZoomOrDefault()
	x, y, ok := r.cellRect(cam, c.Highlight, size)
	if !ok {
		return
	}
	clr := r.CursorColor
	if c.Color != nil {
		clr = c.Color
	}
	vector.StrokeRect(screen, float32(x), float32(y), float32(size), float32(size), 2, clr, false)
}

// cellRect returns the top-left screen corner of a cell centered at anchor,
// or ok=false when it is entirely off screen.
func (r *RenderSystem) cellRect(cam *component.Camera, anchor common.WorldPos, size float64) (float64, float64, bool) {
	cx, cy := cam.WorldToScreen(anchor, r.viewW, r.viewH)
	x, y := cx-size/2, cy-size/2
	if x+size < 0 || y+size < 0 || x > r.viewW || y > r.viewH {
		return 0, 0, false
	}
	return x, y, true
}
