package systems

import (
	"github.com/automoto/stickbrawl/components"
	"github.com/automoto/stickbrawl/shared/netcomponents"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var interpQuery = donburi.NewQuery(filter.Contains(components.NetInterp, netcomponents.NetPosition))

// NewNetInterpSystem moves every fighter towards its latest snapshot
// position so that it arrives just as the next snapshot is due.
func NewNetInterpSystem(tickRate func() int) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		rate := tickRate()
		if rate <= 0 {
			return
		}
		step := float64(rate) / float64(ebiten.TPS())
		interpQuery.Each(e.World, func(entry *donburi.Entry) {
			interp := components.NetInterp.Get(entry)
			if !interp.Initialized {
				return
			}
			pos := netcomponents.NetPosition.Get(entry)
			pos.X, pos.Y = interp.Advance(step)
		})
	}
}
