// Package anim reconstructs per-body-part transforms from discrete animation
// start events. It is shared by client and server and must stay free of
// ebiten or any graphics dependency so the dedicated server stays headless.
package anim

// Descriptor names a playing animation and times it. Timestamps are epoch
// milliseconds on the server clock and are never re-quantized.
type Descriptor struct {
	Name      string
	CreatedAt int64
	Duration  int64 // ms
}

// End returns the instant the animation finishes on its own.
func (d Descriptor) End() int64 {
	return d.CreatedAt + d.Duration
}

// ActiveAt reports whether the animation is still running at now.
func (d Descriptor) ActiveAt(now int64) bool {
	return now < d.End()
}

// Supersede freezes d at canceledAt.
func (d Descriptor) Supersede(canceledAt int64) *Superseded {
	return &Superseded{Descriptor: d, CanceledAt: canceledAt}
}

// Superseded is an animation that was preempted by a newer one. Its progress
// is frozen at CanceledAt.
type Superseded struct {
	Descriptor
	CanceledAt int64
}

// Transform is a body part offset and rotation in renderer units.
type Transform struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Rotation float64 `yaml:"rotation"`
}

// PartFrame maps a body-part id to its transform at one keyframe.
type PartFrame map[string]Transform

// Keyframe is a percentage-of-duration checkpoint.
type Keyframe struct {
	Percent int
	Ease    string // easing applied when blending towards this keyframe
	Parts   PartFrame
}

// KeyframeTable holds an animation's keyframes sorted by Percent.
type KeyframeTable struct {
	Name      string
	Duration  int64 // default duration in ms used when the server starts it
	Keyframes []Keyframe
}

// Lookup resolves an animation name to its keyframe table. Table returns nil
// when the name is unknown.
type Lookup interface {
	Table(name string) *KeyframeTable
}

// LookupFunc adapts a function to Lookup.
type LookupFunc func(name string) *KeyframeTable

func (f LookupFunc) Table(name string) *KeyframeTable {
	return f(name)
}
