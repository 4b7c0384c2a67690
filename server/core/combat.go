package core

import (
	"github.com/automoto/stickbrawl/shared/gamemath"
	"github.com/automoto/stickbrawl/shared/messages"
	"github.com/automoto/stickbrawl/shared/netcomponents"
	"github.com/automoto/stickbrawl/shared/netconfig"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
)

const (
	maxHealth    = 100
	guardDivisor = 4
	reachHeight  = 32.0
	knockbackX   = 3.0
	knockbackY   = -4.0
)

// attack describes one strike animation.
type attack struct {
	Damage        int
	Reach         float64
	StrikePercent int64 // contact frame as a percentage of the animation
}

var attacks = map[string]attack{
	netconfig.AnimPunch: {Damage: 8, Reach: 34, StrikePercent: 45},
	netconfig.AnimKick:  {Damage: 12, Reach: 44, StrikePercent: 55},
}

// hitResult is the outcome of one strike landing on one target.
type hitResult struct {
	Damage  int
	Guarded bool
	KO      bool
}

// resolveHit applies an attack to a target with the given health. A guard
// only blocks strikes coming from the side the target faces.
func resolveHit(atk attack, health int, guarding bool, attackerFacing, targetFacing int) hitResult {
	res := hitResult{Damage: atk.Damage}
	if guarding && attackerFacing == -targetFacing {
		res.Guarded = true
		res.Damage = atk.Damage / guardDivisor
	}
	res.KO = health > 0 && health-res.Damage <= 0
	return res
}

// updateCombat lands strikes whose contact frame has passed and respawns
// knocked out fighters.
func (s *Server) updateCombat(now int64) {
	for entity, b := range s.bodies {
		if !s.world.Valid(entity) {
			continue
		}
		if b.knockedOut() && now >= b.RespawnAt {
			s.respawnFighter(entity, b, now)
			continue
		}
		if b.Strike == nil || b.Strike.Resolved || now < b.Strike.StrikeAt {
			continue
		}
		b.Strike.Resolved = true
		s.landStrike(entity, b, now)
	}
}

func (s *Server) landStrike(attacker donburi.Entity, ab *fighterBody, now int64) {
	atk := attacks[ab.Strike.Kind]
	ax, ay := ab.feet()
	attackerEntry := s.world.Entry(attacker)

	for target, tb := range s.bodies {
		if target == attacker || tb.knockedOut() || !s.world.Valid(target) {
			continue
		}
		tx, ty := tb.feet()
		if !gamemath.InReach(ax, ay, ab.Facing, tx, ty, atk.Reach, reachHeight) {
			continue
		}

		targetEntry := s.world.Entry(target)
		fighter := netcomponents.NetFighter.Get(targetEntry)
		res := resolveHit(atk, fighter.Health, fighter.Guarding, ab.Facing, tb.Facing)

		fighter.Health -= res.Damage
		if fighter.Health < 0 {
			fighter.Health = 0
		}

		s.broadcastEvent(messages.HitEvent{
			AttackerID: networkID(attackerEntry),
			TargetID:   networkID(targetEntry),
			Damage:     res.Damage,
			Guarded:    res.Guarded,
		})

		if res.Guarded {
			continue
		}

		vel := netcomponents.NetVelocity.Get(targetEntry)
		vel.SpeedX = knockbackX * float64(ab.Facing)
		vel.SpeedY = knockbackY
		tb.OnGround = false
		tb.Strike = nil
		fighter.Guarding = false

		if res.KO {
			netcomponents.NetFighter.Get(attackerEntry).KOs++
			data := s.startAnimation(targetEntry, netconfig.AnimKnockdown, now)
			tb.LockedUntil = data.CreatedAt + data.Duration
			tb.RespawnAt = tb.LockedUntil
			s.broadcastEvent(messages.KnockoutEvent{
				VictimID: networkID(targetEntry),
				KillerID: networkID(attackerEntry),
			})
			s.log.WithField("victim", fighter.Name).Info("fighter knocked out")
			continue
		}

		data := s.startAnimation(targetEntry, netconfig.AnimHit, now)
		tb.LockedUntil = data.CreatedAt + data.Duration
	}
}

func (s *Server) respawnFighter(entity donburi.Entity, b *fighterBody, now int64) {
	b.respawn(s.arena)
	entry := s.world.Entry(entity)
	netcomponents.NetFighter.Get(entry).Health = maxHealth
	netcomponents.NetVelocity.SetValue(entry, netcomponents.NetVelocityData{})
	s.startAnimation(entry, netconfig.AnimIdle, now)
}

func networkID(entry *donburi.Entry) uint {
	if nid := esync.GetNetworkId(entry); nid != nil {
		return uint(*nid)
	}
	return 0
}
