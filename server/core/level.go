package core

import (
	"github.com/automoto/stickbrawl/shared/leveldata"
	"github.com/automoto/stickbrawl/shared/logger"
	"github.com/automoto/stickbrawl/tags"
	"github.com/sirupsen/logrus"
	"github.com/solarlune/resolv"
)

// ServerArena holds the collision space and spawn data of the running arena.
type ServerArena struct {
	Space  *resolv.Space
	Arena  *leveldata.Arena
	Width  int
	Height int
}

// NewServerArena builds a resolv.Space from parsed arena data.
func NewServerArena(arena *leveldata.Arena) *ServerArena {
	space := resolv.NewSpace(arena.Width, arena.Height, 16, 16)

	for _, r := range arena.Solids {
		obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
		space.Add(obj)
	}

	logger.For("arena").WithFields(logrus.Fields{
		"arena":  arena.Name,
		"solids": len(arena.Solids),
		"spawns": len(arena.SpawnPoints),
	}).Infof("loaded arena %dx%d", arena.Width, arena.Height)

	return &ServerArena{
		Space:  space,
		Arena:  arena,
		Width:  arena.Width,
		Height: arena.Height,
	}
}
