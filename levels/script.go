package levels

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/gridworld/common"
)

var ErrNoCells = errors.New("levels: script did not define cells")

const (
	scriptTimeout   = 2 * time.Second
	scriptMaxAllocs = 1 << 20
)

// Generate runs the level's seed script and returns the cells it produced.
// Scripts see tile_size, surface_row, min_x, max_x and depth, and must
// assign an array of [x, y] pairs to cells.
func (l *Level) Generate(ctx context.Context) ([]common.GridPos, error) {
	if l == nil || l.Script == "" {
		return nil, nil
	}
	src, err := LoadScript(l.Script)
	if err != nil {
		return nil, fmt.Errorf("levels: load script %s: %w", l.Script, err)
	}
	return RunSeedScript(ctx, src, l)
}

func RunSeedScript(ctx context.Context, src []byte, l *Level) ([]common.GridPos, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math"))
	script.SetMaxAllocs(scriptMaxAllocs)

	vars := map[string]int{
		"tile_size":   common.TileSize,
		"surface_row": l.SurfaceRow,
		"min_x":       l.MinX,
		"max_x":       l.MaxX,
		"depth":       l.Depth,
	}
	for name, v := range vars {
		if err := script.Add(name, v); err != nil {
			return nil, fmt.Errorf("levels: script var %s: %w", name, err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, scriptTimeout)
	defer cancel()

	compiled, err := script.RunContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("levels: run script: %w", err)
	}
	if !compiled.IsDefined("cells") {
		return nil, ErrNoCells
	}

	raw := compiled.Get("cells").Array()
	if raw == nil {
		return nil, fmt.Errorf("%w: cells is not an array", ErrNoCells)
	}

	cells := make([]common.GridPos, 0, len(raw))
	for i, item := range raw {
		pair, ok := item.([]interface{})
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("levels: cells[%d]: want [x, y], got %v", i, item)
		}
		x, okX := toInt(pair[0])
		y, okY := toInt(pair[1])
		if !okX || !okY {
			return nil, fmt.Errorf("levels: cells[%d]: non-integer coordinate %v", i, pair)
		}
		cells = append(cells, common.GridPos{X: x, Y: y})
	}
	return cells, nil
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int64:
		return int(n), true
	case int:
		return n, true
	default:
		return 0, false
	}
}
