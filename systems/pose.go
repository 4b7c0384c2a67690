package systems

import (
	"github.com/automoto/stickbrawl/components"
	"github.com/automoto/stickbrawl/shared/anim"
	"github.com/automoto/stickbrawl/shared/netconfig"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var fighterViewQuery = donburi.NewQuery(filter.Contains(components.FighterView))

// NewPoseSystem evaluates every fighter's pose once per frame from its
// animation slots, then drops previous slots that no longer contribute.
func NewPoseSystem(engine *anim.Engine) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		now := engine.Now()
		fighterViewQuery.Each(e.World, func(entry *donburi.Entry) {
			UpdatePose(components.FighterView.Get(entry), engine, now)
		})
	}
}

// UpdatePose recomputes one fighter's pose at now.
func UpdatePose(view *components.FighterViewData, engine *anim.Engine, now int64) {
	pair := view.Slots.Load()
	view.Pose = engine.ComputeTransforms(pair.Current, pair.Previous, netconfig.FighterParts, now)
	view.Slots.Settle(engine, now)
}
