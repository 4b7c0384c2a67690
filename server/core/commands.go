package core

import "github.com/automoto/stickbrawl/shared/messages"

// command is a unit of work queued by a router callback and applied on the
// loop goroutine.
type command interface {
	apply(s *Server, now int64)
}

type joinCommand struct {
	peer peer
	req  messages.JoinRequest
}

func (c joinCommand) apply(s *Server, now int64) { s.join(c.peer, c.req, now) }

type leaveCommand struct {
	peer peer
}

func (c leaveCommand) apply(s *Server, _ int64) { s.leave(c.peer) }

type inputCommand struct {
	peer  peer
	input messages.PlayerInput
}

func (c inputCommand) apply(s *Server, _ int64) { s.input(c.peer, c.input) }
