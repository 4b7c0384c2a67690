package systems

import (
	"fmt"
	"testing"
)

func TestKillFeedExpiresAndCaps(t *testing.T) {
	var f KillFeed
	for i := 0; i < 6; i++ {
		f.Push(fmt.Sprintf("ko %d", i), int64(i)*1000)
	}

	got := f.Lines(5500)
	want := []string{"ko 2", "ko 3", "ko 4", "ko 5"}
	if len(got) != len(want) {
		t.Fatalf("Lines() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}

	if got := f.Lines(8500); len(got) != 1 || got[0] != "ko 5" {
		t.Errorf("Lines(8500) = %v, want [ko 5]", got)
	}
}
