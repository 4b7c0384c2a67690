package systems

import (
	"math"
	"testing"

	cfg "github.com/automoto/stickbrawl/config"
	"github.com/automoto/stickbrawl/shared/anim"
	"github.com/automoto/stickbrawl/shared/netconfig"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestStickFigureRestPose(t *testing.T) {
	body := cfg.Body
	fig := BuildStickFigure(100, 300, 1, nil, body)

	torso := fig.Limbs[netconfig.PartTorso]
	if !near(torso.X1, 100) || !near(torso.Y1, 300-body.HipHeight) {
		t.Errorf("torso starts at (%v, %v)", torso.X1, torso.Y1)
	}
	if !near(torso.Y2, 300-body.HipHeight-body.TorsoLength) {
		t.Errorf("torso ends at y %v", torso.Y2)
	}

	leg := fig.Limbs[netconfig.PartLegLeft]
	if !near(leg.X2, 100) || !near(leg.Y2, 300-body.HipHeight+body.LegLength) {
		t.Errorf("leg ends at (%v, %v)", leg.X2, leg.Y2)
	}
	if !near(fig.HeadY, torso.Y2-body.HeadRadius) {
		t.Errorf("head centre y = %v", fig.HeadY)
	}
	if len(fig.Limbs) != len(netconfig.FighterParts)-1 {
		t.Errorf("got %d limbs", len(fig.Limbs))
	}
}

func TestStickFigureMirrors(t *testing.T) {
	body := cfg.Body
	pose := map[string]anim.Transform{
		netconfig.PartArmRight: {X: 6, Rotation: -math.Pi / 2}, // punch straight ahead
	}

	right := BuildStickFigure(100, 300, 1, pose, body).Limbs[netconfig.PartArmRight]
	left := BuildStickFigure(100, 300, -1, pose, body).Limbs[netconfig.PartArmRight]

	if !near(right.X2-right.X1, body.ArmLength) {
		t.Errorf("facing right arm dx = %v, want %v", right.X2-right.X1, body.ArmLength)
	}
	if !near(left.X2-left.X1, -body.ArmLength) {
		t.Errorf("facing left arm dx = %v, want %v", left.X2-left.X1, -body.ArmLength)
	}
	if !near(right.X1-100, 6) || !near(left.X1-100, -6) {
		t.Errorf("offsets not mirrored: %v, %v", right.X1, left.X1)
	}
}
