package config

import (
	"github.com/automoto/stickbrawl/shared/netconfig"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputBinding represents the keys and buttons bound to one action.
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[netconfig.ActionID]InputBinding
	// Deadzone for the left analog stick (0.0 to 1.0)
	AnalogDeadzone float64
	Reconnect      []ebiten.Key
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Reconnect:      []ebiten.Key{ebiten.KeyR, ebiten.KeyEnter},
		Bindings: map[netconfig.ActionID]InputBinding{
			netconfig.ActionMoveLeft: {
				Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
			},
			netconfig.ActionMoveRight: {
				Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
			},
			netconfig.ActionJump: {
				Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW, ebiten.KeySpace},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
			},
			netconfig.ActionPunch: {
				Keys:                   []ebiten.Key{ebiten.KeyJ, ebiten.KeyZ},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
			},
			netconfig.ActionKick: {
				Keys:                   []ebiten.Key{ebiten.KeyK, ebiten.KeyX},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
			},
			netconfig.ActionGuard: {
				Keys:                   []ebiten.Key{ebiten.KeyL, ebiten.KeyC, ebiten.KeyShiftLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomLeft},
			},
		},
	}
}
