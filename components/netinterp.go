package components

import "github.com/yohamta/donburi"

// NetInterpData smooths a fighter's position between server snapshots.
type NetInterpData struct {
	PrevX, PrevY     float64
	TargetX, TargetY float64
	T                float64
	Initialized      bool
}

var NetInterp = donburi.NewComponentType[NetInterpData]()

// Retarget starts a new interpolation from the rendered position to (x, y).
// The first target is taken as-is.
func (d *NetInterpData) Retarget(fromX, fromY, x, y float64) {
	if !d.Initialized {
		d.PrevX, d.PrevY = x, y
		d.TargetX, d.TargetY = x, y
		d.T = 1
		d.Initialized = true
		return
	}
	d.PrevX, d.PrevY = fromX, fromY
	d.TargetX, d.TargetY = x, y
	d.T = 0
}

// Advance moves T forward by step and returns the interpolated position.
func (d *NetInterpData) Advance(step float64) (float64, float64) {
	d.T += step
	if d.T > 1 {
		d.T = 1
	}
	return d.PrevX + (d.TargetX-d.PrevX)*d.T, d.PrevY + (d.TargetY-d.PrevY)*d.T
}
