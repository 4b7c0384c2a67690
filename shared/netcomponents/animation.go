package netcomponents

import (
	"github.com/automoto/stickbrawl/shared/anim"
	"github.com/yohamta/donburi"
)

// NetAnimationData mirrors the animation an entity is currently playing so
// clients that joined late, or missed a start event, converge on it.
type NetAnimationData struct {
	Name      string
	CreatedAt int64 // Unix ms, server clock
	Duration  int64 // ms
}

var NetAnimation = donburi.NewComponentType[NetAnimationData]()

func (d NetAnimationData) Descriptor() anim.Descriptor {
	return anim.Descriptor{Name: d.Name, CreatedAt: d.CreatedAt, Duration: d.Duration}
}
