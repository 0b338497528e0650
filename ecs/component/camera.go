package component

import "github.com/milk9111/gridworld/common"

type Camera struct {
	Position common.WorldPos
	Zoom     float64
}

// ScreenToWorld converts a screen pixel into world space for a viewport of
// the given size. The camera position maps to the viewport center.
func (c *Camera) ScreenToWorld(sx, sy, viewW, viewH float64) common.WorldPos {
	zoom := c.zoom()
	return common.WorldPos{
		X: c.Position.X + (sx-viewW/2)/zoom,
		Y: c.Position.Y - (sy-viewH/2)/zoom,
	}
}

// WorldToScreen is the inverse of ScreenToWorld.
func (c *Camera) WorldToScreen(p common.WorldPos, viewW, viewH float64) (float64, float64) {
	zoom := c.zoom()
	return (p.X-c.Position.X)*zoom + viewW/2, viewH/2 - (p.Y-c.Position.Y)*zoom
}

func (c *Camera) ZoomOrDefault() float64 {
	return c.zoom()
}

func (c *Camera) zoom() float64 {
	if c == nil || c.Zoom <= 0 {
		return 1
	}
	return c.Zoom
}
