package systems

import (
	"image/color"

	"github.com/automoto/stickbrawl/components"
	cfg "github.com/automoto/stickbrawl/config"
	"github.com/automoto/stickbrawl/fonts"
	"github.com/automoto/stickbrawl/shared/leveldata"
	"github.com/automoto/stickbrawl/shared/netcomponents"
	"github.com/automoto/stickbrawl/shared/netconfig"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewArenaRenderer draws the arena's solid blocks.
func NewArenaRenderer(arena *leveldata.Arena) func(*ecs.ECS, *ebiten.Image) {
	return func(_ *ecs.ECS, screen *ebiten.Image) {
		for _, r := range arena.Solids {
			vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), cfg.Colors.Solid, false)
		}
	}
}

// NewFighterRenderer draws every fighter as a stick figure with its name and
// health bar. localID marks the player's own fighter.
func NewFighterRenderer(now func() int64, localID func() esync.NetworkId) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		t := now()
		me := localID()

		esync.NetworkEntityQuery.Each(e.World, func(entry *donburi.Entry) {
			if !entry.HasComponent(netcomponents.NetPosition) || !entry.HasComponent(components.FighterView) {
				return
			}
			pos := netcomponents.NetPosition.Get(entry)
			view := components.FighterView.Get(entry)

			var id esync.NetworkId
			if nid := esync.GetNetworkId(entry); nid != nil {
				id = *nid
			}

			facing := 1
			var fighter *netcomponents.NetFighterData
			if entry.HasComponent(netcomponents.NetFighter) {
				fighter = netcomponents.NetFighter.Get(entry)
				facing = fighter.Direction
			}

			clr := cfg.FighterColor(uint(id), id == me && me != 0)
			if t < view.HitFlashUntil {
				clr = cfg.Colors.HitFlash
				if view.Guarded {
					clr = cfg.Colors.Guarded
				}
			}

			fig := BuildStickFigure(pos.X, pos.Y, facing, view.Pose, cfg.Body)
			drawStickFigure(screen, fig, clr)

			if fighter != nil {
				drawNameplate(screen, pos.X, pos.Y-cfg.Body.NameOffsetY, fighter)
			}
		})
	}
}

func drawStickFigure(screen *ebiten.Image, fig StickFigure, clr color.RGBA) {
	w := cfg.Body.StrokeWidth
	for _, part := range netconfig.FighterParts {
		seg, ok := fig.Limbs[part]
		if !ok {
			continue
		}
		vector.StrokeLine(screen, float32(seg.X1), float32(seg.Y1), float32(seg.X2), float32(seg.Y2), w, clr, true)
	}
	vector.StrokeCircle(screen, float32(fig.HeadX), float32(fig.HeadY), float32(fig.HeadR), w, clr, true)
	vector.StrokeLine(screen, float32(fig.Face.X1), float32(fig.Face.Y1), float32(fig.Face.X2), float32(fig.Face.Y2), 1, clr, true)
}

func drawNameplate(screen *ebiten.Image, x, y float64, f *netcomponents.NetFighterData) {
	barW := float32(cfg.Body.HealthBarW)
	barH := float32(cfg.Body.HealthBarH)
	bx := float32(x) - barW/2
	by := float32(y)

	ratio := float32(f.Health) / float32(cfg.Body.MaxHealth)
	if ratio < 0 {
		ratio = 0
	}
	vector.DrawFilledRect(screen, bx, by, barW, barH, cfg.Colors.HealthBack, false)
	vector.DrawFilledRect(screen, bx, by, barW*ratio, barH, cfg.Colors.HealthFill, false)

	face := fonts.Small.Get()
	labelX := int(x) - fonts.Advance(face, f.Name)/2
	text.Draw(screen, f.Name, face, labelX, int(by)-3, cfg.Colors.Text)
}
