package anim

// ShouldBlendPrevious reports whether a superseded animation still feeds the
// from-side of the current blend. It holds while the current animation sits
// in its first keyframe interval and the previous one would not yet have
// finished on its own, measured at now rather than at cancellation.
func ShouldBlendPrevious(prev *Superseded, currentFrom int, now int64) bool {
	if prev == nil {
		return false
	}
	return currentFrom == 0 && now-prev.CreatedAt-prev.Duration < 0
}
