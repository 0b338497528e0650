package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/gridworld/ecs"
	"github.com/milk9111/gridworld/ecs/component"
)

// Input polls ebiten and writes the frame's input snapshot into the world.
// The pointer is converted to world space through the camera of the previous
// frame.
type Input struct {
	viewW float64
	viewH float64
}

func NewInput(viewW, viewH float64) *Input {
	return &Input{viewW: viewW, viewH: viewH}
}

func (i *Input) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}

	const stickDeadzone = 0.2

	in := component.Input{
		MoveLeft:    ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		MoveRight:   ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		JumpPressed: inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		Place:       ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Remove:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			in.MoveLeft = in.MoveLeft || leftX < 0
			in.MoveRight = in.MoveRight || leftX > 0
		}
		in.JumpPressed = in.JumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}

	if w.Camera != nil && ebiten.IsFocused() {
		mx, my := ebiten.CursorPosition()
		sx, sy := float64(mx), float64(my)
		if sx >= 0 && sy >= 0 && sx < i.viewW && sy < i.viewH {
			in.Pointer = w.Camera.ScreenToWorld(sx, sy, i.viewW, i.viewH)
			in.PointerValid = true
		}
	}

	w.Input = in
}
