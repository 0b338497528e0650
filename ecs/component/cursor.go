package component

import (
	"image/color"

	"github.com/milk9111/gridworld/common"
)

// Cursor tracks the cell under the pointer. Highlight is always the world
// anchor of Cell.
type Cursor struct {
	Cell      common.GridPos
	Highlight common.WorldPos
	Visible   bool

	Color color.Color
}
