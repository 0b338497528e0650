package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/gridworld/common"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name    string      `yaml:"name"`
	Spawn   GridSpec    `yaml:"spawn"`
	Size    SizeSpec    `yaml:"size"`
	Physics PhysicsSpec `yaml:"physics"`
}

type GridSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type SizeSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsSpec holds per-frame movement tuning. Zero fields fall back to the
// built-in defaults when the spec is applied.
type PhysicsSpec struct {
	Accel       float64 `yaml:"accel"`
	MaxSpeed    float64 `yaml:"max_speed"`
	Friction    float64 `yaml:"friction"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	Gravity     float64 `yaml:"gravity"`
}

func (p PhysicsSpec) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"accel", p.Accel},
		{"max_speed", p.MaxSpeed},
		{"friction", p.Friction},
		{"jump_impulse", p.JumpImpulse},
		{"gravity", p.Gravity},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%w: physics.%s must not be negative, got %v", ErrInvalidSpec, f.name, f.value)
		}
	}

	// Friction also decays vertical velocity before gravity runs, so gravity
	// at or below friction is snapped away and the actor never falls.
	gravity, friction := orDefault(p.Gravity, common.DefaultGravity), orDefault(p.Friction, common.DefaultFriction)
	if gravity <= friction {
		return fmt.Errorf("%w: physics.gravity %v must exceed friction %v", ErrInvalidSpec, gravity, friction)
	}
	return nil
}

func orDefault(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Physics.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: player.yaml: %w", err)
	}
	return &spec, nil
}

type CameraSpec struct {
	Name   string  `yaml:"name"`
	Zoom   float64 `yaml:"zoom"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type CursorSpec struct {
	Name  string     `yaml:"name"`
	Color *YAMLColor `yaml:"color"`
}

func LoadCursorSpec() (*CursorSpec, error) {
	spec, err := LoadSpec[CursorSpec]("cursor.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
