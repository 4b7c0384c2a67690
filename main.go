package main

import (
	"context"
	"flag"
	"os"

	"github.com/automoto/stickbrawl/assets"
	"github.com/automoto/stickbrawl/config"
	"github.com/automoto/stickbrawl/scenes"
	"github.com/automoto/stickbrawl/shared/anim"
	"github.com/automoto/stickbrawl/shared/logger"
	"github.com/automoto/stickbrawl/shared/protocol"
	"github.com/automoto/stickbrawl/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	scene scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func NewGame(session *scenes.Session) *Game {
	g := &Game{}
	g.scene = scenes.NewConnectScene(g, session, "")
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	addr := flag.String("addr", "", "Server address host:port (default: last used)")
	name := flag.String("name", "", "Player name (default: last used)")
	keyframeDir := flag.String("keyframes", "", "Directory of keyframe YAML files (empty = embedded)")
	watch := flag.Bool("watch", false, "Reload keyframes when files in -keyframes change")
	flag.Parse()

	logger.Init()
	log := logger.For("main")

	// Register network components for client-side deserialization
	if err := protocol.RegisterComponents(); err != nil {
		log.WithError(err).Fatal("failed to register network components")
	}

	if err := systems.InitPersistence(); err != nil {
		log.WithError(err).Warn("could not initialize persistence")
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		log.WithError(err).Warn("could not load saved settings")
	}
	settings := systems.MergeSettings(*addr, *name, saved, config.Net.DefaultAddr, defaultPlayerName())

	var library *anim.Library
	if *keyframeDir == "" {
		library, err = anim.LoadLibrary(assets.Keyframes(), assets.KeyframeDir)
	} else {
		library, err = anim.LoadLibrary(os.DirFS(*keyframeDir), ".")
	}
	if err != nil {
		log.WithError(err).Fatal("failed to load keyframes")
	}
	if *watch && *keyframeDir != "" {
		if _, err := library.Watch(context.Background(), *keyframeDir); err != nil {
			log.WithError(err).Warn("keyframe hot reload disabled")
		}
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	session := &scenes.Session{
		Addr:       settings.Addr,
		PlayerName: settings.PlayerName,
		Version:    config.Net.Version,
		Keyframes:  library,
	}
	if err := ebiten.RunGame(NewGame(session)); err != nil {
		log.WithError(err).Fatal("game exited with error")
	}
}

func defaultPlayerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
