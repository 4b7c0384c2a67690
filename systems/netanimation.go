package systems

import (
	"github.com/automoto/stickbrawl/components"
	"github.com/automoto/stickbrawl/shared/anim"
	"github.com/automoto/stickbrawl/shared/messages"
	"github.com/automoto/stickbrawl/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
)

// ApplyAnimationEvent starts the event's animation on the entity it names.
// Events for entities the client has not seen yet are dropped; the entity's
// synced NetAnimation covers them. It reports whether a slot changed.
func ApplyAnimationEvent(world donburi.World, evt messages.AnimationStartEvent, now int64) bool {
	entity := esync.FindByNetworkId(world, esync.NetworkId(evt.NetworkID))
	if !world.Valid(entity) {
		return false
	}
	entry := world.Entry(entity)
	if !entry.HasComponent(components.FighterView) {
		return false
	}
	return startIfNewer(components.FighterView.Get(entry), evt.Descriptor(), now)
}

// SyncAnimation reconciles the slots with the animation carried in a
// snapshot. Only a newer animation than the one playing is started, so a
// late snapshot never rewinds an event that already arrived.
func SyncAnimation(view *components.FighterViewData, data netcomponents.NetAnimationData, now int64) bool {
	if data.Name == "" {
		return false
	}
	return startIfNewer(view, data.Descriptor(), now)
}

func startIfNewer(view *components.FighterViewData, d anim.Descriptor, now int64) bool {
	if cur := view.Slots.Load().Current; cur != nil && d.CreatedAt < cur.CreatedAt {
		return false
	}
	return view.Slots.Start(d, now)
}
