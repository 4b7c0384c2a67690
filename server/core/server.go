package core

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/automoto/stickbrawl/shared/anim"
	"github.com/automoto/stickbrawl/shared/leveldata"
	"github.com/automoto/stickbrawl/shared/logger"
	"github.com/automoto/stickbrawl/shared/messages"
	"github.com/automoto/stickbrawl/shared/netcomponents"
	"github.com/automoto/stickbrawl/shared/netconfig"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

const (
	DefaultTickRate = 60
	maxFighters     = 4
)

// peer is the part of a network client the server talks to.
// *router.NetworkClient satisfies it.
type peer interface {
	Id() string
	SendMessage(msg any) error
}

// Config holds what a Server needs at construction.
type Config struct {
	TickRate  int
	Name      string
	Version   string // required client version, empty accepts any
	Keyframes *anim.Library
	Arena     *leveldata.Arena
	Now       func() int64 // epoch ms; defaults to anim.NowMillis
}

// Server owns the authoritative world. Router callbacks only queue commands;
// the world is mutated on the loop goroutine.
type Server struct {
	world     donburi.World
	loop      *GameLoop
	keyframes *anim.Library
	arena     *ServerArena
	name      string
	version   string
	tickRate  int
	now       func() int64
	log       *logrus.Entry

	mu       sync.Mutex
	commands []command

	// Owned by the loop goroutine.
	peers     map[peer]donburi.Entity
	bodies    map[donburi.Entity]*fighterBody
	outbox    []any
	spawnNext int

	playerCount atomic.Int32
}

// NewServer creates a game server for one arena.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Keyframes == nil {
		return nil, errors.New("server needs a keyframe library")
	}
	if cfg.Arena == nil {
		return nil, errors.New("server needs an arena")
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultTickRate
	}
	if cfg.Now == nil {
		cfg.Now = anim.NowMillis
	}

	world := donburi.NewWorld()
	s := &Server{
		world:     world,
		keyframes: cfg.Keyframes,
		arena:     NewServerArena(cfg.Arena),
		name:      cfg.Name,
		version:   cfg.Version,
		tickRate:  cfg.TickRate,
		now:       cfg.Now,
		log:       logger.For("server"),
		peers:     make(map[peer]donburi.Entity),
		bodies:    make(map[donburi.Entity]*fighterBody),
	}
	s.loop = NewGameLoop(s.tick, cfg.TickRate)

	srvsync.UseEsync(world)
	s.setupRouterCallbacks()

	return s, nil
}

// Start runs the game loop and serves websocket clients on port. It blocks
// until the transport stops.
func (s *Server) Start(port uint) error {
	go s.loop.Run()

	transport := transports.NewWsServerTransport(port, "", nil)
	if err := transport.Start(); err != nil {
		return fmt.Errorf("websocket transport: %w", err)
	}
	return nil
}

// Stop ends the game loop after the tick in progress.
func (s *Server) Stop() {
	s.loop.Stop()
	<-s.loop.Done()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		s.log.WithField("client", client.Id()).Info("client connected")
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		log := s.log.WithField("client", client.Id())
		if err != nil {
			log.WithError(err).Info("client disconnected")
		} else {
			log.Info("client disconnected")
		}
		s.enqueue(leaveCommand{peer: client})
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.enqueue(joinCommand{peer: client, req: req})
	})

	router.On(func(client *router.NetworkClient, input messages.PlayerInput) {
		s.enqueue(inputCommand{peer: client, input: input})
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		s.log.WithError(err).Warn("client error")
	})
}

func (s *Server) tick() {
	now := s.now()
	s.ProcessCommands(now)
	s.updatePhysics(now)
	s.updateAnimations(now)
	s.updateCombat(now)
	s.flushEvents()

	if err := srvsync.DoSync(); err != nil {
		s.log.WithError(err).Warn("sync error")
	}
}

func (s *Server) enqueue(c command) {
	s.mu.Lock()
	s.commands = append(s.commands, c)
	s.mu.Unlock()
}

// ProcessCommands applies every command queued since the last tick.
func (s *Server) ProcessCommands(now int64) {
	s.mu.Lock()
	pending := s.commands
	s.commands = nil
	s.mu.Unlock()

	for _, c := range pending {
		c.apply(s, now)
	}
}

// broadcastEvent queues msg for every joined client. Events go out at the end
// of the tick in the order they were queued.
func (s *Server) broadcastEvent(msg any) {
	s.outbox = append(s.outbox, msg)
}

func (s *Server) flushEvents() {
	if len(s.outbox) == 0 {
		return
	}
	for _, msg := range s.outbox {
		for p := range s.peers {
			s.send(p, msg)
		}
	}
	s.outbox = s.outbox[:0]
}

func (s *Server) send(p peer, msg any) {
	if err := p.SendMessage(msg); err != nil {
		s.log.WithError(err).WithField("client", p.Id()).Warnf("send %T failed", msg)
	}
}

func (s *Server) join(p peer, req messages.JoinRequest, now int64) {
	log := s.log.WithFields(logrus.Fields{"client": p.Id(), "player": req.PlayerName})

	if _, joined := s.peers[p]; joined {
		return
	}
	if reason := s.rejectReason(req); reason != "" {
		log.WithField("reason", reason).Info("join rejected")
		s.send(p, messages.JoinRejected{Reason: reason})
		return
	}

	entity := s.world.Create(
		netcomponents.NetPosition,
		netcomponents.NetVelocity,
		netcomponents.NetFighter,
		netcomponents.NetAnimation,
	)
	entry := s.world.Entry(entity)

	body := newFighterBody(s.arena, s.spawnNext)
	s.spawnNext++
	x, y := body.feet()
	netcomponents.NetPosition.SetValue(entry, netcomponents.NetPositionData{X: x, Y: y})
	netcomponents.NetFighter.SetValue(entry, netcomponents.NetFighterData{
		Name:      req.PlayerName,
		Direction: body.Facing,
		Health:    maxHealth,
	})

	err := srvsync.NetworkSync(s.world, &entity,
		srvsync.WithInterp(netcomponents.NetPosition, netcomponents.NetVelocity),
		netcomponents.NetFighter,
		netcomponents.NetAnimation,
	)
	if err != nil {
		log.WithError(err).Error("network sync setup failed")
		removeFighterBody(s.arena, body)
		s.world.Remove(entity)
		s.send(p, messages.JoinRejected{Reason: "server error"})
		return
	}

	s.peers[p] = entity
	s.bodies[entity] = body
	s.playerCount.Store(int32(len(s.peers)))

	var nid esync.NetworkId
	if id := esync.GetNetworkId(entry); id != nil {
		nid = *id
	}
	s.send(p, messages.JoinAccepted{
		NetworkID:  nid,
		ServerName: s.name,
		TickRate:   s.tickRate,
		ServerTime: now,
	})
	s.startAnimation(entry, netconfig.AnimIdle, now)

	log.WithField("networkID", nid).Info("fighter spawned")
}

func (s *Server) rejectReason(req messages.JoinRequest) string {
	if s.version != "" && req.Version != s.version {
		return fmt.Sprintf("version mismatch: server %s, client %s", s.version, req.Version)
	}
	if len(s.peers) >= maxFighters {
		return "server full"
	}
	return ""
}

func (s *Server) leave(p peer) {
	entity, ok := s.peers[p]
	if !ok {
		return
	}
	delete(s.peers, p)
	s.playerCount.Store(int32(len(s.peers)))

	if b, ok := s.bodies[entity]; ok {
		removeFighterBody(s.arena, b)
		delete(s.bodies, entity)
	}
	if s.world.Valid(entity) {
		s.world.Remove(entity)
	}
	s.log.WithField("client", p.Id()).Info("fighter removed")
}

func (s *Server) input(p peer, in messages.PlayerInput) {
	entity, ok := s.peers[p]
	if !ok {
		return
	}
	if b, ok := s.bodies[entity]; ok {
		b.applyInput(in)
	}
}

// World returns the ECS world.
func (s *Server) World() donburi.World {
	return s.world
}

// PlayerCount returns the number of joined fighters. Safe from any goroutine.
func (s *Server) PlayerCount() int {
	return int(s.playerCount.Load())
}
