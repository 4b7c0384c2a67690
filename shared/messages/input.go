package messages

import "github.com/automoto/stickbrawl/shared/netconfig"

// PlayerInput is sent from client to server whenever the player's input state
// changes, and periodically as a keepalive.
type PlayerInput struct {
	Sequence  uint32                      // Incrementing ID, stale inputs are dropped
	Actions   map[netconfig.ActionID]bool // Which actions are currently pressed
	Direction int                         // -1 left, 0 none, 1 right
	Timestamp int64                       // Client timestamp (Unix ms)
}

// NewPlayerInput creates a PlayerInput with initialized map
func NewPlayerInput(seq uint32) PlayerInput {
	return PlayerInput{
		Sequence: seq,
		Actions:  make(map[netconfig.ActionID]bool),
	}
}
