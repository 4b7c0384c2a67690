package systems

import (
	"github.com/automoto/stickbrawl/components"
	cfg "github.com/automoto/stickbrawl/config"
	"github.com/automoto/stickbrawl/shared/messages"
	"github.com/automoto/stickbrawl/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EventSource yields the server events received since the last frame.
type EventSource interface {
	DrainAnimationEvents(dst []messages.AnimationStartEvent) []messages.AnimationStartEvent
	DrainHitEvents(dst []messages.HitEvent) []messages.HitEvent
	DrainKnockoutEvents(dst []messages.KnockoutEvent) []messages.KnockoutEvent
}

// NewNetEventSystem applies queued server events in arrival order each frame.
func NewNetEventSystem(src EventSource, now func() int64, feed *KillFeed) func(*ecs.ECS) {
	var (
		anims []messages.AnimationStartEvent
		hits  []messages.HitEvent
		kos   []messages.KnockoutEvent
	)
	return func(e *ecs.ECS) {
		t := now()

		anims = src.DrainAnimationEvents(anims[:0])
		for _, evt := range anims {
			ApplyAnimationEvent(e.World, evt, t)
		}

		hits = src.DrainHitEvents(hits[:0])
		for _, evt := range hits {
			applyHit(e.World, evt, t)
		}

		kos = src.DrainKnockoutEvents(kos[:0])
		for _, evt := range kos {
			feed.Push(fighterName(e.World, evt.KillerID)+" knocked out "+fighterName(e.World, evt.VictimID), t)
		}
	}
}

func applyHit(world donburi.World, evt messages.HitEvent, now int64) {
	entity := esync.FindByNetworkId(world, esync.NetworkId(evt.TargetID))
	if !world.Valid(entity) {
		return
	}
	entry := world.Entry(entity)
	if !entry.HasComponent(components.FighterView) {
		return
	}
	view := components.FighterView.Get(entry)
	view.HitFlashUntil = now + cfg.Body.HitFlashMs
	view.Guarded = evt.Guarded
}

func fighterName(world donburi.World, id uint) string {
	entity := esync.FindByNetworkId(world, esync.NetworkId(id))
	if world.Valid(entity) {
		entry := world.Entry(entity)
		if entry.HasComponent(netcomponents.NetFighter) {
			if name := netcomponents.NetFighter.Get(entry).Name; name != "" {
				return name
			}
		}
	}
	return "someone"
}
