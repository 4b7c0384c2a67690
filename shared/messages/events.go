package messages

import "github.com/automoto/stickbrawl/shared/anim"

// AnimationStartEvent is broadcast the tick an entity starts an animation.
// CreatedAt and Duration travel untouched; all client math is relative to
// them.
type AnimationStartEvent struct {
	NetworkID uint
	Name      string
	CreatedAt int64 // Unix ms, server clock
	Duration  int64 // ms
}

// Descriptor returns the animation carried by the event.
func (e AnimationStartEvent) Descriptor() anim.Descriptor {
	return anim.Descriptor{Name: e.Name, CreatedAt: e.CreatedAt, Duration: e.Duration}
}

// HitEvent is broadcast when an attack connects.
type HitEvent struct {
	AttackerID uint // NetworkId of attacker
	TargetID   uint // NetworkId of target
	Damage     int
	Guarded    bool
}

// KnockoutEvent is broadcast when a fighter's health reaches zero.
type KnockoutEvent struct {
	VictimID uint
	KillerID uint
}
