package common

import (
	"fmt"
	"math"
)

// GridPos addresses one tile cell.
type GridPos struct {
	X int
	Y int
}

func (g GridPos) Add(o GridPos) GridPos {
	return GridPos{X: g.X + o.X, Y: g.Y + o.Y}
}

func (g GridPos) String() string {
	return fmt.Sprintf("(%d,%d)", g.X, g.Y)
}

// WorldPos is a continuous position measured in the same units as TileSize.
// The y axis points up.
type WorldPos struct {
	X float64
	Y float64
}

func (p WorldPos) Add(v Vector) WorldPos {
	return WorldPos{X: p.X + v.X, Y: p.Y + v.Y}
}

// Round snaps the position to whole world units for display.
func (p WorldPos) Round() WorldPos {
	return WorldPos{X: math.Round(p.X), Y: math.Round(p.Y)}
}

func (p WorldPos) String() string {
	return fmt.Sprintf("(%.2f,%.2f)", p.X, p.Y)
}

// Vector is a world-space displacement such as a velocity or acceleration.
type Vector struct {
	X float64
	Y float64
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// ToGrid maps a world position to the cell whose anchor is nearest.
// Tiles are centered on their anchor, so half-way values round away from
// zero: with a tile size of 16, x=8 is cell 1 and x=-8 is cell -1.
func ToGrid(p WorldPos) GridPos {
	return GridPos{
		X: int(math.Round(p.X / TileSize)),
		Y: int(math.Round(p.Y / TileSize)),
	}
}

// ToWorld returns the anchor of a cell. Anchors are exact while the scaled
// coordinate stays within 2^53.
func ToWorld(g GridPos) WorldPos {
	return WorldPos{X: float64(g.X) * TileSize, Y: float64(g.Y) * TileSize}
}

// Snap projects p onto the anchor of the cell that contains it.
func Snap(p WorldPos) WorldPos {
	return ToWorld(ToGrid(p))
}
