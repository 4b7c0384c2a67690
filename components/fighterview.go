package components

import (
	"github.com/automoto/stickbrawl/shared/anim"
	"github.com/yohamta/donburi"
)

// FighterViewData is the client-side render state of a fighter.
type FighterViewData struct {
	Slots *anim.Slots
	Pose  map[string]anim.Transform

	HitFlashUntil int64 // server ms
	Guarded       bool  // last hit was blocked
}

var FighterView = donburi.NewComponentType[FighterViewData]()

func NewFighterView() FighterViewData {
	return FighterViewData{
		Slots: &anim.Slots{},
		Pose:  make(map[string]anim.Transform),
	}
}
