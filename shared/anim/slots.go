package anim

import "sync/atomic"

// Pair is the descriptor pair a renderer evaluates. Pairs are never mutated
// after they are published.
type Pair struct {
	Current  *Descriptor
	Previous *Superseded
}

// Slots owns the current/previous animation pair of one entity. Readers
// always observe a whole pair; writers replace it with a single swap.
type Slots struct {
	pair atomic.Pointer[Pair]
}

// Load returns the latest published pair.
func (s *Slots) Load() Pair {
	if p := s.pair.Load(); p != nil {
		return *p
	}
	return Pair{}
}

// Start publishes d as the current animation. The outgoing animation is kept
// as the previous slot, frozen at now, only if it was still running. A
// repeated start of the same descriptor is ignored. Start reports whether
// the pair changed.
func (s *Slots) Start(d Descriptor, now int64) bool {
	next := &Pair{Current: &d}
	for {
		old := s.pair.Load()
		if old != nil && old.Current != nil {
			if *old.Current == d {
				return false
			}
			if old.Current.ActiveAt(now) {
				next.Previous = old.Current.Supersede(now)
			} else {
				next.Previous = nil
			}
		}
		if s.pair.CompareAndSwap(old, next) {
			return true
		}
	}
}

// Settle drops the previous slot once it no longer contributes to the
// blend. A concurrent Start always wins over Settle.
func (s *Slots) Settle(e *Engine, now int64) {
	old := s.pair.Load()
	if old == nil || old.Previous == nil {
		return
	}
	if e.Phase(old.Current, old.Previous, now) == PhaseBlendingFromPrevious {
		return
	}
	s.pair.CompareAndSwap(old, &Pair{Current: old.Current})
}

// Reset clears both slots.
func (s *Slots) Reset() {
	s.pair.Store(nil)
}
