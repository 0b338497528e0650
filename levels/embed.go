package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

const DefaultLevel = "default"

// Level describes how the tile map is seeded: a surface row spanning
// [MinX, MaxX] with Depth filled rows beneath it, optionally replaced by the
// cells produced by a tengo script.
type Level struct {
	Name       string `json:"name"`
	SurfaceRow int    `json:"surface_row"`
	MinX       int    `json:"min_x"`
	MaxX       int    `json:"max_x"`
	Depth      int    `json:"depth"`
	Script     string `json:"script,omitempty"`
}

// Load reads a level by basename; the .json extension is optional.
func Load(name string) (*Level, error) {
	if name == "" {
		name = DefaultLevel
	}
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	return LoadLevelFromFS(LevelsFS, name)
}

func LoadLevelFromFS(fsys fs.FS, name string) (*Level, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(path.Base(name), ".json")
	}
	if lvl.MaxX < lvl.MinX {
		return nil, fmt.Errorf("levels: %s: max_x %d is left of min_x %d", name, lvl.MaxX, lvl.MinX)
	}
	return &lvl, nil
}

func LoadScript(name string) ([]byte, error) {
	clean := strings.TrimPrefix(path.Clean("/"+name), "/")
	clean = strings.TrimPrefix(clean, "scripts/")
	return ScriptsFS.ReadFile("scripts/" + clean)
}
