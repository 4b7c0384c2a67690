package anim

import (
	"math"
	"reflect"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func assertTransform(t *testing.T, label string, got, want Transform) {
	t.Helper()
	if !approx(got.X, want.X) || !approx(got.Y, want.Y) || !approx(got.Rotation, want.Rotation) {
		t.Errorf("%s = %+v, want %+v", label, got, want)
	}
}

func exampleTable() *KeyframeTable {
	return &KeyframeTable{
		Name:     "example",
		Duration: 1000,
		Keyframes: []Keyframe{
			{Percent: 0, Parts: PartFrame{"head": {X: 0, Y: 0, Rotation: 0}}},
			{Percent: 40, Parts: PartFrame{"head": {X: 10, Y: 0, Rotation: 0}}},
			{Percent: 60, Parts: PartFrame{"head": {X: 10, Y: 5, Rotation: 0}}},
		},
	}
}

// windup moves armRight.x from 0 to 100 over its whole duration.
func windupTable() *KeyframeTable {
	return &KeyframeTable{
		Name: "windup",
		Keyframes: []Keyframe{
			{Percent: 0, Parts: PartFrame{"armRight": {X: 0}}},
			{Percent: 100, Parts: PartFrame{"armRight": {X: 100}}},
		},
	}
}

func punchTable() *KeyframeTable {
	return &KeyframeTable{
		Name: "punch",
		Keyframes: []Keyframe{
			{Percent: 0, Parts: PartFrame{"armRight": {X: 200}, "head": {Y: -30}}},
			{Percent: 50, Parts: PartFrame{"armRight": {X: 300}, "head": {Y: -30}}},
			{Percent: 100, Parts: PartFrame{"armRight": {X: 400}, "head": {Y: -30}}},
		},
	}
}

func newTestEngine(tables ...*KeyframeTable) *Engine {
	return NewEngine(NewLibrary(tables...))
}

func TestComputeTransforms_WorkedExample(t *testing.T) {
	e := newTestEngine(exampleTable())
	current := &Descriptor{Name: "example", CreatedAt: 10_000, Duration: 1000}

	got := e.ComputeTransforms(current, nil, []string{"head"}, 10_500)

	assertTransform(t, "head", got["head"], Transform{X: 10, Y: 2.5, Rotation: 0})
}

func TestComputeTransforms_Determinism(t *testing.T) {
	e := newTestEngine(windupTable(), punchTable())
	current := &Descriptor{Name: "punch", CreatedAt: 500, Duration: 1000}
	previous := (&Descriptor{Name: "windup", CreatedAt: 0, Duration: 1000}).Supersede(500)
	parts := []string{"armRight", "head", "legLeft"}

	first := e.ComputeTransforms(current, previous, parts, 730)
	for i := 0; i < 5; i++ {
		again := e.ComputeTransforms(current, previous, parts, 730)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("call %d returned %+v, first call returned %+v", i, again, first)
		}
	}
}

func TestComputeTransforms_BoundaryAtCreation(t *testing.T) {
	table := &KeyframeTable{
		Name: "wave",
		Keyframes: []Keyframe{
			{Percent: 0, Parts: PartFrame{"armLeft": {X: 1, Y: 2, Rotation: 3}}},
			{Percent: 50, Parts: PartFrame{"armLeft": {X: 9, Y: 9, Rotation: 9}}},
		},
	}
	e := newTestEngine(table)
	current := &Descriptor{Name: "wave", CreatedAt: 2000, Duration: 400}

	got := e.ComputeTransforms(current, nil, []string{"armLeft"}, 2000)

	if got["armLeft"] != (Transform{X: 1, Y: 2, Rotation: 3}) {
		t.Errorf("armLeft at creation = %+v, want exact first keyframe", got["armLeft"])
	}
}

func TestComputeTransforms_Saturation(t *testing.T) {
	tests := []struct {
		name  string
		table *KeyframeTable
		part  string
		want  Transform
	}{
		{
			name:  "explicit 100 key",
			table: punchTable(),
			part:  "armRight",
			want:  Transform{X: 400},
		},
		{
			name:  "last key held as 100",
			table: exampleTable(),
			part:  "head",
			want:  Transform{X: 10, Y: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(tt.table)
			current := &Descriptor{Name: tt.table.Name, CreatedAt: 0, Duration: 1000}

			for _, now := range []int64{1000, 1001, 5000, 1 << 40} {
				got := e.ComputeTransforms(current, nil, []string{tt.part}, now)
				if got[tt.part] != tt.want {
					t.Errorf("now=%d %s = %+v, want exact %+v", now, tt.part, got[tt.part], tt.want)
				}
			}
		})
	}
}

func TestComputeTransforms_CrossfadeActivation(t *testing.T) {
	e := newTestEngine(windupTable(), punchTable())
	// windup canceled at 50% of its own duration; punch starts right then.
	previous := (&Descriptor{Name: "windup", CreatedAt: 0, Duration: 1000}).Supersede(500)
	current := &Descriptor{Name: "punch", CreatedAt: 500, Duration: 1000}

	got := e.ComputeTransforms(current, previous, []string{"armRight"}, 700)

	// punch is 20% in: t = 20/50 = 0.4 from the frozen windup pose x=50.
	assertTransform(t, "armRight", got["armRight"], Transform{X: 50 + (300-50)*0.4})

	// A later cancellation freezes a different pose, proving the freeze point
	// drives the from-side rather than the current instant.
	later := (&Descriptor{Name: "windup", CreatedAt: 0, Duration: 1000}).Supersede(700)
	got = e.ComputeTransforms(current, later, []string{"armRight"}, 700)
	assertTransform(t, "armRight (canceled at 700)", got["armRight"], Transform{X: 70 + (300-70)*0.4})
}

func TestComputeTransforms_CrossfadeOnlyForOverlappingParts(t *testing.T) {
	e := newTestEngine(windupTable(), punchTable())
	previous := (&Descriptor{Name: "windup", CreatedAt: 0, Duration: 1000}).Supersede(500)
	current := &Descriptor{Name: "punch", CreatedAt: 500, Duration: 1000}

	got := e.ComputeTransforms(current, previous, []string{"head"}, 500)

	// windup has no head entry, so punch's own first keyframe is used.
	assertTransform(t, "head", got["head"], Transform{Y: -30})
}

func TestComputeTransforms_CrossfadeSuppression(t *testing.T) {
	tests := []struct {
		name     string
		previous *Superseded
		now      int64
		want     Transform
	}{
		{
			// Previous still within its natural duration, but punch is past
			// its first keyframe (60%: from=50, to=100, t=0.2).
			name:     "current past first keyframe",
			previous: (&Descriptor{Name: "windup", CreatedAt: 0, Duration: 5000}).Supersede(500),
			now:      1100,
			want:     Transform{X: 300 + (400-300)*0.2},
		},
		{
			// Punch still in its first interval (20%), but windup would have
			// finished on its own by now.
			name:     "previous naturally finished",
			previous: (&Descriptor{Name: "windup", CreatedAt: 0, Duration: 600}).Supersede(500),
			now:      700,
			want:     Transform{X: 200 + (300-200)*0.4},
		},
	}

	e := newTestEngine(windupTable(), punchTable())
	current := &Descriptor{Name: "punch", CreatedAt: 500, Duration: 1000}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.ComputeTransforms(current, tt.previous, []string{"armRight"}, tt.now)
			assertTransform(t, "armRight", got["armRight"], tt.want)
		})
	}
}

func TestComputeTransforms_MissingDataSafety(t *testing.T) {
	e := newTestEngine(exampleTable())

	t.Run("unknown animation", func(t *testing.T) {
		current := &Descriptor{Name: "nope", CreatedAt: 0, Duration: 1000}
		previous := (&Descriptor{Name: "example", CreatedAt: 0, Duration: 5000}).Supersede(10)
		got := e.ComputeTransforms(current, previous, []string{"head", "torso"}, 100)
		if len(got) != 2 {
			t.Fatalf("got %d parts, want 2", len(got))
		}
		for id, tr := range got {
			if tr != (Transform{}) {
				t.Errorf("%s = %+v, want zero transform", id, tr)
			}
		}
	})

	t.Run("part missing from keyframes", func(t *testing.T) {
		current := &Descriptor{Name: "example", CreatedAt: 0, Duration: 1000}
		got := e.ComputeTransforms(current, nil, []string{"legLeft"}, 500)
		if tr, ok := got["legLeft"]; !ok || tr != (Transform{}) {
			t.Errorf("legLeft = %+v (present=%v), want zero transform", tr, ok)
		}
	})

	t.Run("nil lookup", func(t *testing.T) {
		got := NewEngine(nil).ComputeTransforms(&Descriptor{Name: "example", Duration: 10}, nil, []string{"head"}, 5)
		if got["head"] != (Transform{}) {
			t.Errorf("head = %+v, want zero transform", got["head"])
		}
	})
}

func TestComputeTransforms_EmptyInputs(t *testing.T) {
	e := newTestEngine(exampleTable())
	current := &Descriptor{Name: "example", CreatedAt: 0, Duration: 1000}

	if got := e.ComputeTransforms(nil, nil, []string{"head"}, 10); got == nil || len(got) != 0 {
		t.Errorf("nil current returned %+v, want empty map", got)
	}
	if got := e.ComputeTransforms(current, nil, nil, 10); got == nil || len(got) != 0 {
		t.Errorf("no parts returned %+v, want empty map", got)
	}
}

func TestComputeTransforms_FirstKeyNotZero(t *testing.T) {
	table := &KeyframeTable{
		Name: "late",
		Keyframes: []Keyframe{
			{Percent: 20, Parts: PartFrame{"head": {X: 10}}},
			{Percent: 80, Parts: PartFrame{"head": {X: 20}}},
		},
	}
	e := newTestEngine(table)
	current := &Descriptor{Name: "late", CreatedAt: 0, Duration: 100}

	// 10%: blends from the neutral pose towards the first key.
	got := e.ComputeTransforms(current, nil, []string{"head"}, 10)
	assertTransform(t, "head", got["head"], Transform{X: 5})
}

func TestComputeTransforms_EasedKeyframe(t *testing.T) {
	table := &KeyframeTable{
		Name: "eased",
		Keyframes: []Keyframe{
			{Percent: 0, Parts: PartFrame{"torso": {X: 0}}},
			{Percent: 100, Ease: "inQuad", Parts: PartFrame{"torso": {X: 100}}},
		},
	}
	e := newTestEngine(table)
	current := &Descriptor{Name: "eased", CreatedAt: 0, Duration: 1000}

	got := e.ComputeTransforms(current, nil, []string{"torso"}, 500)
	assertTransform(t, "torso", got["torso"], Transform{X: 25})
}

func TestCompute_UsesEngineClock(t *testing.T) {
	e := newTestEngine(exampleTable()).WithClock(func() int64 { return 10_500 })
	current := &Descriptor{Name: "example", CreatedAt: 10_000, Duration: 1000}

	got := e.Compute(current, nil, []string{"head"})
	assertTransform(t, "head", got["head"], Transform{X: 10, Y: 2.5})
}

func TestPhase(t *testing.T) {
	e := newTestEngine(windupTable(), punchTable())
	current := &Descriptor{Name: "punch", CreatedAt: 500, Duration: 1000}
	previous := (&Descriptor{Name: "windup", CreatedAt: 0, Duration: 1000}).Supersede(500)

	tests := []struct {
		name     string
		current  *Descriptor
		previous *Superseded
		now      int64
		want     Phase
	}{
		{"no animation", nil, nil, 700, PhaseNeutral},
		{"unknown animation", &Descriptor{Name: "nope", Duration: 10}, nil, 5, PhaseNeutral},
		{"crossfading", current, previous, 700, PhaseBlendingFromPrevious},
		{"no previous", current, nil, 700, PhaseBlendingWithinCurrent},
		{"past first key", current, previous, 1100, PhaseBlendingWithinCurrent},
		{"finished", current, previous, 1500, PhaseHoldAtFinal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Phase(tt.current, tt.previous, tt.now); got != tt.want {
				t.Errorf("Phase = %s, want %s", got, tt.want)
			}
		})
	}
}
