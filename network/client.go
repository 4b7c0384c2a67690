package network

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/automoto/stickbrawl/shared/anim"
	"github.com/automoto/stickbrawl/shared/logger"
	"github.com/automoto/stickbrawl/shared/messages"
	"github.com/coder/websocket"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/sirupsen/logrus"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateJoinedGame
	StateError
)

func (s ClientState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateJoinedGame:
		return "joined"
	case StateError:
		return "error"
	}
	return "unknown"
}

// Client manages a WebSocket connection to the game server.
// All shared fields are protected by mu (router callbacks run on necs goroutines).
type Client struct {
	mu sync.RWMutex

	state      ClientState
	lastError  error
	networkID  esync.NetworkId
	serverName string
	tickRate   int
	conn       *websocket.Conn
	clock      *Clock

	snapshotCh chan esync.WorldSnapshot // size-1 buffered; latest wins

	animCh chan messages.AnimationStartEvent
	hitCh  chan messages.HitEvent
	koCh   chan messages.KnockoutEvent

	log *logrus.Entry
}

// NewClient creates a client whose event channels hold up to buffer events
// between frames.
func NewClient(buffer int) *Client {
	if buffer <= 0 {
		buffer = 64
	}
	return &Client{
		state:      StateDisconnected,
		clock:      NewClock(anim.NowMillis),
		snapshotCh: make(chan esync.WorldSnapshot, 1),
		animCh:     make(chan messages.AnimationStartEvent, buffer),
		hitCh:      make(chan messages.HitEvent, buffer),
		koCh:       make(chan messages.KnockoutEvent, buffer),
		log:        logger.For("client"),
	}
}

// Connect dials the server in a background goroutine and initiates the join handshake.
func (c *Client) Connect(address, version, playerName string) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.mu.Unlock()

	router.OnConnect(func(_ *router.NetworkClient) {
		c.log.WithField("addr", address).Info("connected to server")
		c.mu.Lock()
		c.state = StateConnected
		c.mu.Unlock()

		if err := c.SendMessage(messages.JoinRequest{
			Version:    version,
			PlayerName: playerName,
		}); err != nil {
			c.setError(fmt.Errorf("send join request: %w", err))
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinAccepted) {
		c.clock.Sync(msg.ServerTime)
		c.log.WithFields(logrus.Fields{
			"networkID": msg.NetworkID,
			"server":    msg.ServerName,
			"tickRate":  msg.TickRate,
			"offsetMs":  c.clock.Offset(),
		}).Info("join accepted")
		c.mu.Lock()
		c.networkID = msg.NetworkID
		c.serverName = msg.ServerName
		c.tickRate = msg.TickRate
		c.state = StateJoinedGame
		c.mu.Unlock()
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinRejected) {
		c.log.WithField("reason", msg.Reason).Warn("join rejected")
		c.setError(fmt.Errorf("join rejected: %s", msg.Reason))
	})

	router.On(func(_ *router.NetworkClient, snapshot esync.WorldSnapshot) {
		select { // drain stale, push latest
		case <-c.snapshotCh:
		default:
		}
		c.snapshotCh <- snapshot
	})

	router.On(func(_ *router.NetworkClient, evt messages.AnimationStartEvent) {
		select {
		case c.animCh <- evt:
		default:
			// The snapshot's NetAnimation catches the entity up.
			c.log.WithField("networkID", evt.NetworkID).Debug("animation event dropped")
		}
	})

	router.On(func(_ *router.NetworkClient, evt messages.HitEvent) {
		select {
		case c.hitCh <- evt:
		default:
		}
	})

	router.On(func(_ *router.NetworkClient, evt messages.KnockoutEvent) {
		select {
		case c.koCh <- evt:
		default:
		}
	})

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		c.log.WithError(err).Info("disconnected")
		c.mu.Lock()
		if c.state != StateError {
			c.state = StateDisconnected
		}
		c.conn = nil
		c.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		c.log.WithError(err).Warn("network error")
	})

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
		})
		if err != nil {
			c.setError(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.state = StateDisconnected
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}

	router.ResetRouter()
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

func (c *Client) NetworkID() esync.NetworkId {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.networkID
}

func (c *Client) ServerName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.serverName
}

func (c *Client) TickRate() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tickRate
}

// Clock returns the server-aligned clock animations are evaluated against.
func (c *Client) Clock() *Clock {
	return c.clock
}

// LatestSnapshot returns the most recent WorldSnapshot, or nil. Non-blocking.
func (c *Client) LatestSnapshot() *esync.WorldSnapshot {
	select {
	case snap := <-c.snapshotCh:
		return &snap
	default:
		return nil
	}
}

// DrainAnimationEvents appends every queued AnimationStartEvent to dst in
// arrival order.
func (c *Client) DrainAnimationEvents(dst []messages.AnimationStartEvent) []messages.AnimationStartEvent {
	for {
		select {
		case evt := <-c.animCh:
			dst = append(dst, evt)
		default:
			return dst
		}
	}
}

// DrainHitEvents appends every queued HitEvent to dst.
func (c *Client) DrainHitEvents(dst []messages.HitEvent) []messages.HitEvent {
	for {
		select {
		case evt := <-c.hitCh:
			dst = append(dst, evt)
		default:
			return dst
		}
	}
}

// DrainKnockoutEvents appends every queued KnockoutEvent to dst.
func (c *Client) DrainKnockoutEvents(dst []messages.KnockoutEvent) []messages.KnockoutEvent {
	for {
		select {
		case evt := <-c.koCh:
			dst = append(dst, evt)
		default:
			return dst
		}
	}
}

var errNotConnected = errors.New("not connected")

func (c *Client) SendMessage(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return errNotConnected
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}

func (c *Client) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}
