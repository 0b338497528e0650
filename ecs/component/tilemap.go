package component

import (
	"sort"

	"github.com/milk9111/gridworld/common"
)

// SeedRegion describes the starting layout of a tile map: one surface row
// spanning [MinX, MaxX] at SurfaceRow and a filled block Depth rows deep
// directly beneath it.
type SeedRegion struct {
	SurfaceRow int
	MinX       int
	MaxX       int
	Depth      int
}

// TileMap is the sparse set of occupied cells. The map is conceptually
// infinite; memory grows only with inserted cells.
type TileMap struct {
	cells map[common.GridPos]struct{}
}

func NewTileMap() *TileMap {
	return &TileMap{cells: make(map[common.GridPos]struct{})}
}

func (m *TileMap) Contains(g common.GridPos) bool {
	if m == nil {
		return false
	}
	_, ok := m.cells[g]
	return ok
}

// Insert adds g and reports whether the map changed.
func (m *TileMap) Insert(g common.GridPos) bool {
	if m == nil {
		return false
	}
	if m.cells == nil {
		m.cells = make(map[common.GridPos]struct{})
	}
	if _, ok := m.cells[g]; ok {
		return false
	}
	m.cells[g] = struct{}{}
	return true
}

// Remove deletes g and reports whether the map changed.
func (m *TileMap) Remove(g common.GridPos) bool {
	if m == nil {
		return false
	}
	if _, ok := m.cells[g]; !ok {
		return false
	}
	delete(m.cells, g)
	return true
}

// Seed bulk-inserts the region's surface row and the block beneath it.
func (m *TileMap) Seed(r SeedRegion) {
	if m == nil || r.MaxX < r.MinX {
		return
	}
	for x := r.MinX; x <= r.MaxX; x++ {
		m.Insert(common.GridPos{X: x, Y: r.SurfaceRow})
		for d := 1; d <= r.Depth; d++ {
			m.Insert(common.GridPos{X: x, Y: r.SurfaceRow - d})
		}
	}
}

// SeedCells bulk-inserts an explicit cell list.
func (m *TileMap) SeedCells(cells []common.GridPos) {
	for _, g := range cells {
		m.Insert(g)
	}
}

func (m *TileMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.cells)
}

// Cells returns a snapshot ordered by row, then column.
func (m *TileMap) Cells() []common.GridPos {
	if m == nil {
		return nil
	}
	out := make([]common.GridPos, 0, len(m.cells))
	for g := range m.cells {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Bounds returns the inclusive min and max cells, or ok=false when empty.
func (m *TileMap) Bounds() (lo, hi common.GridPos, ok bool) {
	if m.Len() == 0 {
		return lo, hi, false
	}
	first := true
	for g := range m.cells {
		if first {
			lo, hi = g, g
			first = false
			continue
		}
		lo.X = min(lo.X, g.X)
		lo.Y = min(lo.Y, g.Y)
		hi.X = max(hi.X, g.X)
		hi.Y = max(hi.Y, g.Y)
	}
	return lo, hi, true
}
