package anim

import "sort"

// Progress is a resolved position inside an animation. Value is a
// percentage in [0, 100]; From and To bracket it within the keyframe keys.
type Progress struct {
	From  int
	To    int
	Value float64
}

// Resolve computes the progress of a live animation at now. A nil
// descriptor or table yields the inert zero Progress.
func Resolve(d *Descriptor, now int64, table *KeyframeTable) Progress {
	if d == nil || table == nil {
		return Progress{}
	}
	return table.bracket(percentOf(now-d.CreatedAt, d.Duration))
}

// ResolveSuperseded computes the progress of a preempted animation, frozen at
// its cancellation instant.
func ResolveSuperseded(s *Superseded, table *KeyframeTable) Progress {
	if s == nil || table == nil {
		return Progress{}
	}
	return table.bracket(percentOf(s.CanceledAt-s.CreatedAt, s.Duration))
}

// percentOf converts elapsed time to a clamped percentage. A non-positive
// duration counts as already complete.
func percentOf(elapsed, duration int64) float64 {
	if duration <= 0 {
		return 100
	}
	p := 100 * float64(elapsed) / float64(duration)
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// bracket finds the greatest key <= value (0 if none) and the key after it
// (100 past the last key).
func (t *KeyframeTable) bracket(value float64) Progress {
	keys := t.Keyframes
	i := sort.Search(len(keys), func(i int) bool {
		return float64(keys[i].Percent) > value
	})

	p := Progress{Value: value, To: 100}
	if i > 0 {
		p.From = keys[i-1].Percent
	}
	if i < len(keys) {
		p.To = keys[i].Percent
	}
	return p
}

// frame returns the keyframe stored exactly at percent, or nil.
func (t *KeyframeTable) frame(percent int) *Keyframe {
	keys := t.Keyframes
	i := sort.Search(len(keys), func(i int) bool {
		return keys[i].Percent >= percent
	})
	if i < len(keys) && keys[i].Percent == percent {
		return &keys[i]
	}
	return nil
}

// target returns the keyframe blended towards at percent. Past the last key
// the last keyframe is held as if it sat at 100.
func (t *KeyframeTable) target(percent int) *Keyframe {
	if kf := t.frame(percent); kf != nil {
		return kf
	}
	if percent == 100 && len(t.Keyframes) > 0 {
		return &t.Keyframes[len(t.Keyframes)-1]
	}
	return nil
}

func (k *Keyframe) part(id string) (Transform, bool) {
	if k == nil {
		return Transform{}, false
	}
	tr, ok := k.Parts[id]
	return tr, ok
}
