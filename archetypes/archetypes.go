package archetypes

import (
	"github.com/automoto/stickbrawl/components"
	cfg "github.com/automoto/stickbrawl/config"
	"github.com/automoto/stickbrawl/tags"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	// Fighter is a networked fighter as the client sees it. Synced
	// components are added per snapshot.
	Fighter = newArchetype(
		cfg.LayerFighters,
		tags.Fighter,
		esync.NetworkIdComponent,
		components.FighterView,
		components.NetInterp,
	)
)

type archetype struct {
	layer      ecs.LayerID
	components []donburi.IComponentType
}

func newArchetype(layer ecs.LayerID, cs ...donburi.IComponentType) *archetype {
	return &archetype{
		layer:      layer,
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		a.layer,
		append(append([]donburi.IComponentType(nil), a.components...), cs...)...,
	))
	return e
}

// SpawnFighter creates a fighter entity for a network id seen for the first
// time.
func SpawnFighter(e *ecs.ECS, id esync.NetworkId, synced ...donburi.IComponentType) *donburi.Entry {
	entry := Fighter.Spawn(e, synced...)
	esync.NetworkIdComponent.SetValue(entry, id)
	components.FighterView.SetValue(entry, components.NewFighterView())
	return entry
}
