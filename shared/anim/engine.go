package anim

import "time"

// Phase is the position of a body within an animation transition. It is
// always derived from timestamps and never stored.
type Phase int

const (
	PhaseNeutral Phase = iota
	PhaseBlendingFromPrevious
	PhaseBlendingWithinCurrent
	PhaseHoldAtFinal
)

var phaseNames = map[Phase]string{
	PhaseNeutral:               "neutral",
	PhaseBlendingFromPrevious:  "blending_from_previous",
	PhaseBlendingWithinCurrent: "blending_within_current",
	PhaseHoldAtFinal:           "hold_at_final",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// NowMillis is the default engine clock.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// Engine turns animation descriptors into body part transforms. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	lookup Lookup
	now    func() int64
}

// NewEngine creates an engine reading keyframes from lookup.
func NewEngine(lookup Lookup) *Engine {
	return &Engine{lookup: lookup, now: NowMillis}
}

// WithClock returns a copy of the engine that reads time from now.
func (e *Engine) WithClock(now func() int64) *Engine {
	return &Engine{lookup: e.lookup, now: now}
}

// Now returns the engine clock reading.
func (e *Engine) Now() int64 {
	return e.now()
}

// Compute evaluates the transforms at the engine clock's current instant.
func (e *Engine) Compute(current *Descriptor, previous *Superseded, parts []string) map[string]Transform {
	return e.ComputeTransforms(current, previous, parts, e.now())
}

// ComputeTransforms returns a transform for every requested part at now.
// Missing animations, tables or part entries degrade to the zero transform;
// the function never fails.
func (e *Engine) ComputeTransforms(current *Descriptor, previous *Superseded, parts []string, now int64) map[string]Transform {
	out := make(map[string]Transform, len(parts))
	if current == nil || len(parts) == 0 {
		return out
	}

	table := e.table(current.Name)
	if table == nil {
		for _, id := range parts {
			out[id] = Transform{}
		}
		return out
	}

	cur := Resolve(current, now, table)
	fromKF := table.frame(cur.From)
	toKF := table.target(cur.To)
	t := Ease(easeTowards(toKF, cur.To), ProgressBetween(cur.From, cur.To, cur.Value))

	var (
		crossfade      bool
		oldFrom, oldTo *Keyframe
		oldT           float64
	)
	if ShouldBlendPrevious(previous, cur.From, now) {
		if prevTable := e.table(previous.Name); prevTable != nil {
			old := ResolveSuperseded(previous, prevTable)
			oldFrom = prevTable.frame(old.From)
			oldTo = prevTable.target(old.To)
			oldT = Ease(easeTowards(oldTo, old.To), ProgressBetween(old.From, old.To, old.Value))
			crossfade = true
		}
	}

	for _, id := range parts {
		from, _ := fromKF.part(id)
		if crossfade {
			if old, ok := blendPart(oldFrom, oldTo, id, oldT); ok {
				from = old
			}
		}
		to, _ := toKF.part(id)
		out[id] = Blend(from, to, t)
	}
	return out
}

// Phase classifies the transition state of a descriptor pair at now.
func (e *Engine) Phase(current *Descriptor, previous *Superseded, now int64) Phase {
	if current == nil {
		return PhaseNeutral
	}
	table := e.table(current.Name)
	if table == nil {
		return PhaseNeutral
	}

	cur := Resolve(current, now, table)
	if cur.Value >= 100 {
		return PhaseHoldAtFinal
	}
	if ShouldBlendPrevious(previous, cur.From, now) && e.table(previous.Name) != nil {
		return PhaseBlendingFromPrevious
	}
	return PhaseBlendingWithinCurrent
}

func (e *Engine) table(name string) *KeyframeTable {
	if e.lookup == nil {
		return nil
	}
	return e.lookup.Table(name)
}

// blendPart interpolates one part inside a keyframe interval. It reports
// false when neither keyframe mentions the part.
func blendPart(from, to *Keyframe, id string, t float64) (Transform, bool) {
	a, okFrom := from.part(id)
	b, okTo := to.part(id)
	if !okFrom && !okTo {
		return Transform{}, false
	}
	return Blend(a, b, t), true
}

// easeTowards returns the curve of the keyframe being approached. A held
// last keyframe standing in for 100 blends linearly.
func easeTowards(kf *Keyframe, percent int) string {
	if kf == nil || kf.Percent != percent {
		return ""
	}
	return kf.Ease
}
