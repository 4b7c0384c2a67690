package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/automoto/stickbrawl/assets"
	"github.com/automoto/stickbrawl/server/core"
	"github.com/automoto/stickbrawl/shared/anim"
	"github.com/automoto/stickbrawl/shared/leveldata"
	"github.com/automoto/stickbrawl/shared/logger"
	"github.com/automoto/stickbrawl/shared/protocol"
)

func main() {
	port := flag.Uint("port", 7373, "Server port")
	tickRate := flag.Int("tickrate", core.DefaultTickRate, "Server tick rate (updates per second)")
	name := flag.String("name", "Stickbrawl Server", "Server display name")
	version := flag.String("version", "", "Required client version (empty = accept any)")
	keyframeDir := flag.String("keyframes", "", "Directory of keyframe YAML files (empty = embedded)")
	level := flag.String("level", "", "Arena TMX file (empty = embedded arena)")
	watch := flag.Bool("watch", false, "Reload keyframes when files in -keyframes change")
	flag.Parse()

	logger.Init()
	log := logger.For("main")

	if err := protocol.RegisterComponents(); err != nil {
		log.WithError(err).Fatal("failed to register components")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	library, err := loadKeyframes(*keyframeDir)
	if err != nil {
		log.WithError(err).Fatal("failed to load keyframes")
	}
	log.WithField("animations", library.Names()).Info("keyframes loaded")

	if *watch {
		if *keyframeDir == "" {
			log.Warn("-watch needs -keyframes, embedded tables are not watched")
		} else if _, err := library.Watch(ctx, *keyframeDir); err != nil {
			log.WithError(err).Fatal("failed to watch keyframes")
		}
	}

	arena, err := loadArena(*level)
	if err != nil {
		log.WithError(err).Fatal("failed to load arena")
	}

	server, err := core.NewServer(core.Config{
		TickRate:  *tickRate,
		Name:      *name,
		Version:   *version,
		Keyframes: library,
		Arena:     arena,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to create server")
	}

	go func() {
		<-ctx.Done()
		log.Info("shutting down server")
		server.Stop()
		os.Exit(0)
	}()

	log.Infof("starting %q on port %d (tick rate: %d/s, version: %q)", *name, *port, *tickRate, *version)
	if err := server.Start(*port); err != nil {
		log.WithError(err).Fatal("server error")
	}
}

func loadKeyframes(dir string) (*anim.Library, error) {
	if dir == "" {
		return anim.LoadLibrary(assets.Keyframes(), assets.KeyframeDir)
	}
	return anim.LoadLibrary(os.DirFS(dir), ".")
}

func loadArena(file string) (*leveldata.Arena, error) {
	if file == "" {
		return leveldata.LoadArena(assets.Levels(), assets.DefaultArena)
	}
	dir, base := filepath.Split(file)
	if dir == "" {
		dir = "."
	}
	return leveldata.LoadArena(os.DirFS(dir), base)
}
