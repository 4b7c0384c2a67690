package core

import (
	"sync"
	"time"

	"github.com/automoto/stickbrawl/shared/logger"
)

// GameLoop calls tick at a fixed nominal rate. Lateness and tick work are
// subtracted from the following wait so the average rate holds.
type GameLoop struct {
	tick     func()
	tickRate int
	interval time.Duration

	stopOnce sync.Once
	stopChan chan struct{}
	done     chan struct{}
}

func NewGameLoop(tick func(), tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return &GameLoop{
		tick:     tick,
		tickRate: tickRate,
		interval: time.Second / time.Duration(tickRate),
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Run blocks until Stop is called. A tick in progress always completes.
func (g *GameLoop) Run() {
	defer close(g.done)
	log := logger.For("loop")
	log.Infof("game loop started at %d ticks/second", g.tickRate)

	scheduled := time.Now()
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-g.stopChan:
			log.Info("game loop stopped")
			return
		case <-timer.C:
		}

		g.tick()

		// Lateness of this tick plus the time spent running it.
		overrun := time.Since(scheduled)
		wait := nextWait(g.interval, overrun)
		if wait == 0 {
			log.WithField("overrun", overrun).Debug("tick overran its interval")
		}
		scheduled = time.Now().Add(wait)
		timer.Reset(wait)
	}
}

// Stop ends the loop before the next tick. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

// Done is closed once Run has returned.
func (g *GameLoop) Done() <-chan struct{} {
	return g.done
}

// TickRate returns the nominal ticks per second.
func (g *GameLoop) TickRate() int {
	return g.tickRate
}

func nextWait(interval, overrun time.Duration) time.Duration {
	if wait := interval - overrun; wait > 0 {
		return wait
	}
	return 0
}
