package systems

import (
	"fmt"
	"sort"

	cfg "github.com/automoto/stickbrawl/config"
	"github.com/automoto/stickbrawl/fonts"
	"github.com/automoto/stickbrawl/shared/netcomponents"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 6
	hudLineHeight = 14
)

type scoreLine struct {
	name string
	kos  int
	hp   int
}

// NewHUDRenderer draws the server name, a KO scoreboard and the kill feed.
func NewHUDRenderer(serverName func() string, now func() int64, feed *KillFeed) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		face := fonts.Small.Get()
		y := hudMargin + hudLineHeight

		text.Draw(screen, serverName(), face, hudMargin, y, cfg.Colors.Text)

		for _, l := range scoreboard(e.World) {
			y += hudLineHeight
			text.Draw(screen, fmt.Sprintf("%-12s KO %d  HP %d", l.name, l.kos, l.hp), face, hudMargin, y, cfg.Colors.Text)
		}

		lines := feed.Lines(now())
		fy := cfg.C.Height - hudMargin - hudLineHeight*(len(lines)-1)
		for _, line := range lines {
			text.Draw(screen, line, face, hudMargin, fy, cfg.Colors.HitFlash)
			fy += hudLineHeight
		}
	}
}

// scoreboard lists fighters by KOs, then name.
func scoreboard(world donburi.World) []scoreLine {
	var lines []scoreLine
	esync.NetworkEntityQuery.Each(world, func(entry *donburi.Entry) {
		if !entry.HasComponent(netcomponents.NetFighter) {
			return
		}
		f := netcomponents.NetFighter.Get(entry)
		lines = append(lines, scoreLine{name: f.Name, kos: f.KOs, hp: f.Health})
	})
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].kos != lines[j].kos {
			return lines[i].kos > lines[j].kos
		}
		return lines[i].name < lines[j].name
	})
	return lines
}
