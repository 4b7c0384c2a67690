package systems

import (
	"time"

	cfg "github.com/automoto/stickbrawl/config"
	"github.com/automoto/stickbrawl/shared/logger"
	"github.com/automoto/stickbrawl/shared/messages"
	"github.com/automoto/stickbrawl/shared/netconfig"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// inputActions are the actions polled every frame, besides movement.
var inputActions = []netconfig.ActionID{
	netconfig.ActionJump,
	netconfig.ActionPunch,
	netconfig.ActionKick,
	netconfig.ActionGuard,
}

type netInputState struct {
	seq            uint32
	lastDirection  int
	lastActions    map[netconfig.ActionID]bool
	lastSendTime   time.Time
	currentActions map[netconfig.ActionID]bool // reused each tick to avoid allocation
}

// changed reports whether the polled input differs from what was last sent.
func (s *netInputState) changed(dir int) bool {
	if dir != s.lastDirection {
		return true
	}
	for action, pressed := range s.currentActions {
		if pressed != s.lastActions[action] {
			return true
		}
	}
	return false
}

// NewNetworkInputSystem returns an ECS system that polls keyboard and gamepad
// input and sends PlayerInput messages to the server when it changes, plus a
// periodic resend.
func NewNetworkInputSystem(sendFn func(any) error) func(*ecs.ECS) {
	state := &netInputState{
		lastActions:    make(map[netconfig.ActionID]bool),
		currentActions: make(map[netconfig.ActionID]bool),
	}
	resend := time.Duration(cfg.Net.ResendInterval) * time.Millisecond
	log := logger.For("netinput")

	return func(_ *ecs.ECS) {
		dir := 0
		left := actionPressed(netconfig.ActionMoveLeft)
		right := actionPressed(netconfig.ActionMoveRight)
		if left && !right {
			dir = -1
		} else if right && !left {
			dir = 1
		}

		for _, a := range inputActions {
			state.currentActions[a] = actionPressed(a)
		}

		now := time.Now()
		if !state.changed(dir) && now.Sub(state.lastSendTime) < resend {
			return
		}

		state.seq++
		input := messages.NewPlayerInput(state.seq)
		input.Direction = dir
		for k, v := range state.currentActions {
			input.Actions[k] = v
		}
		input.Timestamp = now.UnixMilli()

		if err := sendFn(input); err != nil {
			log.WithError(err).Debug("send input failed")
		}

		state.lastDirection = dir
		for k, v := range state.currentActions {
			state.lastActions[k] = v
		}
		state.lastSendTime = now
	}
}

func actionPressed(action netconfig.ActionID) bool {
	binding := cfg.Input.Bindings[action]
	for _, k := range binding.Keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, b := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, b) {
				return true
			}
		}
		axis := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		switch action {
		case netconfig.ActionMoveLeft:
			if axis < -cfg.Input.AnalogDeadzone {
				return true
			}
		case netconfig.ActionMoveRight:
			if axis > cfg.Input.AnalogDeadzone {
				return true
			}
		}
	}
	return false
}

// AnyKeyJustPressed reports whether one of keys went down this frame.
func AnyKeyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
