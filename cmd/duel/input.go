package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/arenaduel/component"
)

const stickDeadzone = 0.3

// Input turns keyboard and gamepad state into intents.
type Input struct{}

func NewInput() *Input { return &Input{} }

// Intent samples held state. Press edges for jumping are detected by the
// fighter itself, so holding a key is enough here.
func (i *Input) Intent() component.Intent {
	in := component.Intent{
		Left:   ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:  ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:     ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeySpace),
		Down:   ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Attack: ebiten.IsKeyPressed(ebiten.KeyJ),
		Block:  ebiten.IsKeyPressed(ebiten.KeyK),
		Skill:  ebiten.IsKeyPressed(ebiten.KeyL),
		Charge: ebiten.IsKeyPressed(ebiten.KeyC),
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(x) > stickDeadzone {
			in.Left = in.Left || x < 0
			in.Right = in.Right || x > 0
		}
		y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if y > stickDeadzone {
			in.Down = true
		}
		in.Up = in.Up || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		in.Attack = in.Attack || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightLeft)
		in.Block = in.Block || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomLeft)
		in.Skill = in.Skill || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightTop)
		in.Charge = in.Charge || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
	}
	return in
}
