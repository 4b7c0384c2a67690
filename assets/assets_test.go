package assets

import (
	"testing"

	"github.com/automoto/stickbrawl/shared/anim"
	"github.com/automoto/stickbrawl/shared/leveldata"
	"github.com/automoto/stickbrawl/shared/netconfig"
)

func TestEmbeddedKeyframesCoverGameplay(t *testing.T) {
	lib, err := anim.LoadLibrary(Keyframes(), KeyframeDir)
	if err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}
	for _, name := range netconfig.AnimationNames {
		d, ok := lib.Duration(name)
		if !ok {
			t.Errorf("animation %q missing from embedded keyframes", name)
			continue
		}
		if d <= 0 {
			t.Errorf("animation %q has duration %d", name, d)
		}
	}
}

func TestEmbeddedArenaLoads(t *testing.T) {
	arena, err := leveldata.LoadArena(Levels(), DefaultArena)
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}
	if len(arena.SpawnPoints) < 2 {
		t.Errorf("arena has %d spawn points, want at least 2", len(arena.SpawnPoints))
	}
}
