package core

import (
	"math"

	"github.com/automoto/stickbrawl/shared/messages"
	"github.com/automoto/stickbrawl/shared/netcomponents"
	"github.com/automoto/stickbrawl/shared/netconfig"
	"github.com/yohamta/donburi"
)

// animInput is the per-tick state the animation choice depends on.
type animInput struct {
	Current  netcomponents.NetAnimationData
	Now      int64
	Locked   bool
	OnGround bool
	SpeedX   float64
	Punch    bool // pressed this tick
	Kick     bool // pressed this tick
	Guard    bool // held
}

// looping animations restart when they run out; the rest hold their final
// keyframe until something else starts.
var looping = map[string]bool{
	netconfig.AnimIdle: true,
	netconfig.AnimWalk: true,
}

// decideAnimation returns the animation to start this tick, or "" to keep the
// current one running.
func decideAnimation(in animInput) string {
	if in.Locked {
		return ""
	}

	var want string
	switch {
	case in.Punch:
		want = netconfig.AnimPunch
	case in.Kick:
		want = netconfig.AnimKick
	case in.Guard && in.OnGround:
		want = netconfig.AnimGuard
	case !in.OnGround:
		want = netconfig.AnimJump
	case math.Abs(in.SpeedX) >= 0.1:
		want = netconfig.AnimWalk
	default:
		want = netconfig.AnimIdle
	}

	if want != in.Current.Name {
		return want
	}
	if looping[want] && in.Now >= in.Current.CreatedAt+in.Current.Duration {
		return want
	}
	return ""
}

// startAnimation records name as the entity's current animation and queues
// the start event for every client. Duration comes from the keyframe library.
func (s *Server) startAnimation(entry *donburi.Entry, name string, now int64) netcomponents.NetAnimationData {
	duration, ok := s.keyframes.Duration(name)
	if !ok {
		s.log.WithField("animation", name).Warn("starting animation without keyframes")
	}

	data := netcomponents.NetAnimationData{
		Name:      name,
		CreatedAt: now,
		Duration:  duration,
	}
	netcomponents.NetAnimation.SetValue(entry, data)

	s.broadcastEvent(messages.AnimationStartEvent{
		NetworkID: networkID(entry),
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		Duration:  data.Duration,
	})
	return data
}

// updateAnimations runs the gameplay decisions that start animations.
func (s *Server) updateAnimations(now int64) {
	for entity, b := range s.bodies {
		if !s.world.Valid(entity) {
			continue
		}
		entry := s.world.Entry(entity)
		if b.knockedOut() {
			continue
		}

		punch := b.PunchPressed && !b.PunchWasPressed
		kick := b.KickPressed && !b.KickWasPressed
		b.PunchWasPressed = b.PunchPressed
		b.KickWasPressed = b.KickPressed

		fighter := netcomponents.NetFighter.Get(entry)
		locked := now < b.LockedUntil
		fighter.Guarding = !locked && b.GuardPressed && b.OnGround
		fighter.Direction = b.Facing
		fighter.LastSequence = b.LastInputSeq

		name := decideAnimation(animInput{
			Current:  *netcomponents.NetAnimation.Get(entry),
			Now:      now,
			Locked:   locked,
			OnGround: b.OnGround,
			SpeedX:   netcomponents.NetVelocity.Get(entry).SpeedX,
			Punch:    punch,
			Kick:     kick,
			Guard:    b.GuardPressed,
		})
		if name == "" {
			continue
		}

		data := s.startAnimation(entry, name, now)
		if atk, ok := attacks[name]; ok {
			b.LockedUntil = data.CreatedAt + data.Duration
			b.Strike = &strike{
				Kind:     name,
				StrikeAt: data.CreatedAt + data.Duration*atk.StrikePercent/100,
			}
			fighter.Guarding = false
		}
	}
}
