package scenes

import (
	"github.com/automoto/stickbrawl/shared/anim"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type SceneChanger interface {
	ChangeScene(scene Scene)
}

// Session holds what every scene of one client run shares.
type Session struct {
	Addr       string
	PlayerName string
	Version    string
	Keyframes  *anim.Library
}
