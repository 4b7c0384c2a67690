package components

import "testing"

func TestNetInterpFirstTargetSnaps(t *testing.T) {
	var d NetInterpData
	d.Retarget(0, 0, 50, 80)

	x, y := d.Advance(0.25)
	if x != 50 || y != 80 {
		t.Errorf("first target = (%v, %v), want (50, 80)", x, y)
	}
}

func TestNetInterpAdvances(t *testing.T) {
	var d NetInterpData
	d.Retarget(0, 0, 0, 0)
	d.Retarget(0, 0, 100, 40)

	if x, y := d.Advance(0.5); x != 50 || y != 20 {
		t.Errorf("halfway = (%v, %v), want (50, 20)", x, y)
	}
	if x, y := d.Advance(0.75); x != 100 || y != 40 {
		t.Errorf("overshoot = (%v, %v), want clamp at (100, 40)", x, y)
	}
}
