package anim

import (
	"sync"
	"testing"
)

func TestSlots_Start(t *testing.T) {
	var s Slots

	if p := s.Load(); p.Current != nil || p.Previous != nil {
		t.Fatalf("empty slots = %+v, want zero pair", p)
	}

	idle := Descriptor{Name: "idle", CreatedAt: 0, Duration: 1000}
	if !s.Start(idle, 0) {
		t.Fatal("first Start reported no change")
	}
	if p := s.Load(); p.Current == nil || *p.Current != idle || p.Previous != nil {
		t.Fatalf("after first start = %+v", p)
	}

	punch := Descriptor{Name: "punch", CreatedAt: 400, Duration: 300}
	s.Start(punch, 400)
	p := s.Load()
	if p.Previous == nil {
		t.Fatal("interrupted idle was not kept as previous")
	}
	if p.Previous.Descriptor != idle || p.Previous.CanceledAt != 400 {
		t.Errorf("previous = %+v, want idle canceled at 400", p.Previous)
	}

	if s.Start(punch, 450) {
		t.Error("repeated start of the same descriptor changed the pair")
	}

	// punch finished on its own at 700; nothing to crossfade from.
	walk := Descriptor{Name: "walk", CreatedAt: 900, Duration: 800}
	s.Start(walk, 900)
	if p := s.Load(); p.Previous != nil || *p.Current != walk {
		t.Errorf("after natural finish = %+v, want walk with no previous", p)
	}
}

func TestSlots_Settle(t *testing.T) {
	e := newTestEngine(windupTable(), punchTable())
	var s Slots
	s.Start(Descriptor{Name: "windup", CreatedAt: 0, Duration: 1000}, 0)
	s.Start(Descriptor{Name: "punch", CreatedAt: 500, Duration: 1000}, 500)

	s.Settle(e, 700)
	if s.Load().Previous == nil {
		t.Fatal("Settle dropped previous while still crossfading")
	}

	// punch reaches its 50% key at 1000.
	s.Settle(e, 1000)
	p := s.Load()
	if p.Previous != nil {
		t.Errorf("Settle kept previous after the crossfade window: %+v", p.Previous)
	}
	if p.Current == nil || p.Current.Name != "punch" {
		t.Errorf("Settle changed current: %+v", p.Current)
	}
}

func TestSlots_Reset(t *testing.T) {
	var s Slots
	s.Start(Descriptor{Name: "idle", Duration: 10}, 0)
	s.Reset()
	if p := s.Load(); p.Current != nil {
		t.Errorf("after Reset = %+v", p)
	}
}

func TestSlots_ConcurrentReadersSeeWholePairs(t *testing.T) {
	var s Slots
	const starts = 2000

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := int64(1); i <= starts; i++ {
			// Each animation lasts long enough to be interrupted by the next.
			s.Start(Descriptor{Name: "step", CreatedAt: i, Duration: 10}, i)
		}
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < starts; i++ {
				p := s.Load()
				if p.Current == nil || p.Previous == nil {
					continue
				}
				if p.Previous.CreatedAt != p.Current.CreatedAt-1 || p.Previous.CanceledAt != p.Current.CreatedAt {
					t.Errorf("torn pair: current=%+v previous=%+v", p.Current, p.Previous)
					return
				}
			}
		}()
	}
	wg.Wait()
}
