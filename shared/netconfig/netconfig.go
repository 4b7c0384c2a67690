// Package netconfig defines lightweight types shared between client and server
// for network serialization. It must have zero dependencies on ebiten or any
// graphics library so the dedicated server binary stays headless.
package netconfig

// Animation names. Each must have a keyframe table in assets/keyframes.
const (
	AnimIdle      = "idle"
	AnimWalk      = "walk"
	AnimJump      = "jump"
	AnimPunch     = "punch"
	AnimKick      = "kick"
	AnimGuard     = "guard"
	AnimHit       = "hit"
	AnimKnockdown = "knockdown"
)

// AnimationNames lists every animation the server may start.
var AnimationNames = []string{
	AnimIdle, AnimWalk, AnimJump, AnimPunch, AnimKick, AnimGuard, AnimHit, AnimKnockdown,
}

// Body parts of a fighter, in draw order.
const (
	PartLegLeft  = "legLeft"
	PartLegRight = "legRight"
	PartTorso    = "torso"
	PartArmLeft  = "armLeft"
	PartArmRight = "armRight"
	PartHead     = "head"
)

// FighterParts is the part set requested for every fighter.
var FighterParts = []string{
	PartLegLeft,
	PartLegRight,
	PartTorso,
	PartArmLeft,
	PartArmRight,
	PartHead,
}

// ActionID represents a logical game action.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionPunch
	ActionKick
	ActionGuard
	ActionCount // Must be last - used for array sizing
)

var actionNames = map[ActionID]string{
	ActionNone:      "none",
	ActionMoveLeft:  "move_left",
	ActionMoveRight: "move_right",
	ActionJump:      "jump",
	ActionPunch:     "punch",
	ActionKick:      "kick",
	ActionGuard:     "guard",
}

func (a ActionID) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}
