package network

import "sync/atomic"

// Clock maps the local clock onto the server's. Animation timestamps arrive
// in server epoch ms, so rendering must read time through the same offset.
type Clock struct {
	local  func() int64
	offset atomic.Int64
}

func NewClock(local func() int64) *Clock {
	return &Clock{local: local}
}

// Sync records the offset between a server timestamp and the local clock.
func (c *Clock) Sync(serverTime int64) {
	c.offset.Store(serverTime - c.local())
}

// Offset returns the last recorded offset in ms.
func (c *Clock) Offset() int64 {
	return c.offset.Load()
}

// Now returns the current instant on the server clock.
func (c *Clock) Now() int64 {
	return c.local() + c.offset.Load()
}
