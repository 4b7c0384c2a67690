package core

import (
	"github.com/automoto/stickbrawl/shared/messages"
	"github.com/automoto/stickbrawl/shared/netconfig"
	"github.com/automoto/stickbrawl/tags"
	"github.com/solarlune/resolv"
)

const (
	fighterWidth  = 16.0
	fighterHeight = 56.0
)

// fighterBody holds per-fighter simulation state on the server. It is not a
// donburi component; it exists only on the server and is never synced.
type fighterBody struct {
	Object   *resolv.Object
	OnGround bool
	Facing   int // -1 left, 1 right

	// Latest input snapshot, written when an input command is applied.
	Direction       int
	JumpPressed     bool
	JumpWasPressed  bool
	PunchPressed    bool
	PunchWasPressed bool
	KickPressed     bool
	KickWasPressed  bool
	GuardPressed    bool
	LastInputSeq    uint32

	// LockedUntil holds an attack, hit or knockdown animation until it ends.
	LockedUntil int64
	Strike      *strike
	RespawnAt   int64 // non-zero while knocked out
	SpawnIndex  int
}

// strike is an attack waiting for its contact frame.
type strike struct {
	Kind     string
	StrikeAt int64
	Resolved bool
}

func newFighterBody(arena *ServerArena, spawnIndex int) *fighterBody {
	sp := arena.Arena.Spawn(spawnIndex)
	obj := resolv.NewObject(sp.X-fighterWidth/2, sp.Y-fighterHeight, fighterWidth, fighterHeight, tags.ResolvFighter)
	obj.SetShape(resolv.NewRectangle(0, 0, fighterWidth, fighterHeight))
	arena.Space.Add(obj)

	return &fighterBody{
		Object:     obj,
		Facing:     1,
		SpawnIndex: spawnIndex,
	}
}

func removeFighterBody(arena *ServerArena, b *fighterBody) {
	arena.Space.Remove(b.Object)
}

// applyInput copies a client's input into the body. Stale sequences are
// dropped.
func (b *fighterBody) applyInput(in messages.PlayerInput) bool {
	if in.Sequence != 0 && in.Sequence <= b.LastInputSeq {
		return false
	}
	b.LastInputSeq = in.Sequence
	b.Direction = in.Direction
	b.JumpPressed = in.Actions[netconfig.ActionJump]
	b.PunchPressed = in.Actions[netconfig.ActionPunch]
	b.KickPressed = in.Actions[netconfig.ActionKick]
	b.GuardPressed = in.Actions[netconfig.ActionGuard]
	return true
}

// feet returns the bottom-centre of the body, the synced fighter position.
func (b *fighterBody) feet() (float64, float64) {
	return b.Object.X + b.Object.W/2, b.Object.Y + b.Object.H
}

func (b *fighterBody) knockedOut() bool {
	return b.RespawnAt != 0
}

// respawn moves the body back to its spawn point.
func (b *fighterBody) respawn(arena *ServerArena) {
	sp := arena.Arena.Spawn(b.SpawnIndex)
	b.Object.X = sp.X - b.Object.W/2
	b.Object.Y = sp.Y - b.Object.H
	b.Object.Update()
	b.RespawnAt = 0
	b.LockedUntil = 0
	b.Strike = nil
}
