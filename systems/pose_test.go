package systems

import (
	"testing"

	"github.com/automoto/stickbrawl/components"
	"github.com/automoto/stickbrawl/shared/anim"
	"github.com/automoto/stickbrawl/shared/netconfig"
)

func TestUpdatePoseBlendsThenSettles(t *testing.T) {
	lib := anim.NewLibrary(
		&anim.KeyframeTable{Name: "walk", Duration: 1000, Keyframes: []anim.Keyframe{
			{Percent: 0, Parts: anim.PartFrame{netconfig.PartHead: {X: 0}}},
			{Percent: 100, Parts: anim.PartFrame{netconfig.PartHead: {X: 100}}},
		}},
		&anim.KeyframeTable{Name: "punch", Duration: 1000, Keyframes: []anim.Keyframe{
			{Percent: 0, Parts: anim.PartFrame{netconfig.PartHead: {X: 0}}},
			{Percent: 50, Parts: anim.PartFrame{netconfig.PartHead: {X: 200}}},
			{Percent: 100, Parts: anim.PartFrame{netconfig.PartHead: {X: 0}}},
		}},
	)
	engine := anim.NewEngine(lib)
	view := components.NewFighterView()

	view.Slots.Start(anim.Descriptor{Name: "walk", CreatedAt: 0, Duration: 1000}, 0)
	view.Slots.Start(anim.Descriptor{Name: "punch", CreatedAt: 500, Duration: 1000}, 500)

	UpdatePose(&view, engine, 500)
	if got := view.Pose[netconfig.PartHead].X; got != 50 {
		t.Errorf("head x at crossfade start = %v, want 50 (walk frozen at 50%%)", got)
	}
	if len(view.Pose) != len(netconfig.FighterParts) {
		t.Errorf("pose has %d parts, want %d", len(view.Pose), len(netconfig.FighterParts))
	}
	if view.Slots.Load().Previous == nil {
		t.Fatal("previous dropped while still blending")
	}

	UpdatePose(&view, engine, 1100)
	if view.Slots.Load().Previous != nil {
		t.Error("previous kept after punch left its first keyframe interval")
	}
}
