package levels

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/milk9111/gridworld/common"
)

func TestLoadEmbeddedLevels(t *testing.T) {
	cases := []struct {
		name   string
		want   string
		script string
	}{
		{"", "default", ""},
		{"default", "default", ""},
		{"hills.json", "hills", "hills.tengo"},
	}

	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			lvl, err := Load(c.name)
			if err != nil {
				t.Fatalf("Load(%q): %v", c.name, err)
			}
			if lvl.Name != c.want {
				t.Fatalf("expected name %q, got %q", c.want, lvl.Name)
			}
			if lvl.Script != c.script {
				t.Fatalf("expected script %q, got %q", c.script, lvl.Script)
			}
		})
	}
}

func TestLoadLevelFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"unnamed.json":  {Data: []byte(`{"surface_row": 2, "min_x": -1, "max_x": 1}`)},
		"inverted.json": {Data: []byte(`{"min_x": 3, "max_x": 1}`)},
		"broken.json":   {Data: []byte(`{"min_x": `)},
	}

	lvl, err := LoadLevelFromFS(fsys, "unnamed.json")
	if err != nil {
		t.Fatalf("LoadLevelFromFS: %v", err)
	}
	if lvl.Name != "unnamed" || lvl.SurfaceRow != 2 || lvl.MinX != -1 || lvl.MaxX != 1 {
		t.Fatalf("unexpected level %+v", lvl)
	}

	for _, name := range []string{"inverted.json", "broken.json", "missing.json"} {
		if _, err := LoadLevelFromFS(fsys, name); err == nil {
			t.Fatalf("expected error loading %s", name)
		}
	}
}

func TestRunSeedScript(t *testing.T) {
	lvl := &Level{SurfaceRow: 1, MinX: -1, MaxX: 1}

	cases := []struct {
		name    string
		src     string
		want    []common.GridPos
		wantErr error
	}{
		{
			name: "surface_row",
			src: `
cells := []
for x := min_x; x <= max_x; x++ { cells = append(cells, [x, surface_row]) }
`,
			want: []common.GridPos{{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1}},
		},
		{
			name: "math_import",
			src: `
math := import("math")
cells := [[int(math.floor(tile_size / 3.0)), 0]]
`,
			want: []common.GridPos{{X: 5, Y: 0}},
		},
		{
			name:    "missing_cells",
			src:     `x := 1`,
			wantErr: ErrNoCells,
		},
		{
			name:    "cells_not_array",
			src:     `cells := 4`,
			wantErr: ErrNoCells,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := RunSeedScript(context.Background(), []byte(c.src), lvl)
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Fatalf("expected %v, got %v", c.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("RunSeedScript: %v", err)
			}
			if len(got) != len(c.want) {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
			for i := range c.want {
				if got[i] != c.want[i] {
					t.Fatalf("expected %v, got %v", c.want, got)
				}
			}
		})
	}
}

func TestRunSeedScriptRejectsBadPairs(t *testing.T) {
	bad := []string{
		`cells := [[1]]`,
		`cells := [["a", 2]]`,
		`cells := [3]`,
		`cells := [[1, 2` + "\n",
	}
	for _, src := range bad {
		if _, err := RunSeedScript(context.Background(), []byte(src), &Level{}); err == nil {
			t.Fatalf("expected error for %q", src)
		}
	}
}

func TestHillsScriptCoversSurface(t *testing.T) {
	lvl, err := Load("hills")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cells, err := lvl.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	seen := make(map[common.GridPos]bool, len(cells))
	for _, g := range cells {
		seen[g] = true
	}
	for x := lvl.MinX; x <= lvl.MaxX; x++ {
		if !seen[common.GridPos{X: x, Y: lvl.SurfaceRow}] {
			t.Fatalf("surface cell (%d,%d) missing", x, lvl.SurfaceRow)
		}
	}
	if !seen[common.GridPos{X: 0, Y: lvl.SurfaceRow + 4}] {
		t.Fatalf("expected a floating platform above column 0")
	}
}

func TestGenerateWithoutScript(t *testing.T) {
	cells, err := (&Level{Name: "flat"}).Generate(context.Background())
	if err != nil || cells != nil {
		t.Fatalf("expected no cells and no error, got %v %v", cells, err)
	}
}
