package scenes

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/stickbrawl/config"
	"github.com/automoto/stickbrawl/fonts"
	"github.com/automoto/stickbrawl/network"
	"github.com/automoto/stickbrawl/shared/logger"
	"github.com/automoto/stickbrawl/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// ConnectScene dials the server and waits for the join handshake.
type ConnectScene struct {
	sceneChanger SceneChanger
	session      *Session
	client       *network.Client
	reason       string // why the previous session ended, if it did
}

func NewConnectScene(sc SceneChanger, session *Session, reason string) *ConnectScene {
	return &ConnectScene{sceneChanger: sc, session: session, reason: reason}
}

func (cs *ConnectScene) Update() {
	if cs.client == nil {
		if cs.reason != "" && !systems.AnyKeyJustPressed(cfg.Input.Reconnect) {
			return
		}
		cs.reason = ""
		cs.client = network.NewClient(cfg.Net.EventBuffer)
		cs.client.Connect(cs.session.Addr, cs.session.Version, cs.session.PlayerName)
		return
	}

	switch cs.client.State() {
	case network.StateJoinedGame:
		if err := systems.SaveSettings(systems.SavedSettings{
			Addr:       cs.session.Addr,
			PlayerName: cs.session.PlayerName,
		}); err != nil {
			logger.For("connect").WithError(err).Debug("settings not saved")
		}
		cs.sceneChanger.ChangeScene(NewArenaScene(cs.sceneChanger, cs.session, cs.client))
	case network.StateError, network.StateDisconnected:
		if err := cs.client.LastError(); err != nil {
			cs.reason = err.Error()
		} else {
			cs.reason = "disconnected"
		}
		cs.client.Disconnect()
		cs.client = nil
	}
}

func (cs *ConnectScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Background)

	lines := []string{fmt.Sprintf("Connecting to %s as %s...", cs.session.Addr, cs.session.PlayerName)}
	var clr color.Color = cfg.Colors.Text
	if cs.reason != "" {
		lines = []string{cs.reason, "Press R to reconnect"}
		clr = cfg.Colors.HitFlash
	}

	face := fonts.Small.Get()
	y := cfg.C.Height/2 - len(lines)*8
	for _, line := range lines {
		x := cfg.C.Width/2 - fonts.Advance(face, line)/2
		text.Draw(screen, line, face, x, y, clr)
		y += 16
	}
}
