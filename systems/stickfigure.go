package systems

import (
	"math"

	cfg "github.com/automoto/stickbrawl/config"
	"github.com/automoto/stickbrawl/shared/anim"
	"github.com/automoto/stickbrawl/shared/netconfig"
)

// Segment is a line from (X1, Y1) to (X2, Y2) in screen pixels.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// StickFigure is a posed fighter ready to draw.
type StickFigure struct {
	Limbs map[string]Segment // every part except the head
	HeadX float64
	HeadY float64
	HeadR float64
	Face  Segment // short tick showing where the head looks
}

// BuildStickFigure places each body part relative to the fighter's feet.
// Part transforms offset the rest pose in body config; facing -1 mirrors
// the figure horizontally.
func BuildStickFigure(feetX, feetY float64, facing int, pose map[string]anim.Transform, body cfg.BodyConfig) StickFigure {
	dir := 1.0
	if facing < 0 {
		dir = -1
	}
	offset := func(x, y float64, part string) (float64, float64) {
		t := pose[part]
		return x + t.X*dir, y + t.Y
	}
	angle := func(base float64, part string) float64 {
		a := base + pose[part].Rotation
		if dir < 0 {
			return math.Pi - a
		}
		return a
	}
	limb := func(x, y, length, base float64, part string) Segment {
		sx, sy := offset(x, y, part)
		a := angle(base, part)
		return Segment{X1: sx, Y1: sy, X2: sx + length*math.Cos(a), Y2: sy + length*math.Sin(a)}
	}

	hipX, hipY := feetX, feetY-body.HipHeight
	torso := limb(hipX, hipY, body.TorsoLength, body.TorsoAngle, netconfig.PartTorso)
	neckX, neckY := torso.X2, torso.Y2

	fig := StickFigure{
		Limbs: map[string]Segment{
			netconfig.PartTorso:    torso,
			netconfig.PartArmLeft:  limb(neckX, neckY, body.ArmLength, body.ArmAngle, netconfig.PartArmLeft),
			netconfig.PartArmRight: limb(neckX, neckY, body.ArmLength, body.ArmAngle, netconfig.PartArmRight),
			netconfig.PartLegLeft:  limb(hipX, hipY, body.LegLength, body.LegAngle, netconfig.PartLegLeft),
			netconfig.PartLegRight: limb(hipX, hipY, body.LegLength, body.LegAngle, netconfig.PartLegRight),
		},
		HeadR: body.HeadRadius,
	}

	// The head sits on the neck along the torso's direction.
	ta := math.Atan2(torso.Y2-torso.Y1, torso.X2-torso.X1)
	hx, hy := offset(neckX+body.HeadRadius*math.Cos(ta), neckY+body.HeadRadius*math.Sin(ta), netconfig.PartHead)
	fig.HeadX, fig.HeadY = hx, hy

	look := angle(0, netconfig.PartHead)
	fig.Face = Segment{
		X1: hx + body.HeadRadius*0.4*math.Cos(look),
		Y1: hy + body.HeadRadius*0.4*math.Sin(look),
		X2: hx + body.HeadRadius*math.Cos(look),
		Y2: hy + body.HeadRadius*math.Sin(look),
	}
	return fig
}
