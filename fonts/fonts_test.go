package fonts

import "testing"

func TestAdvance(t *testing.T) {
	if got := Advance(Small.Get(), "abcd"); got != 28 {
		t.Errorf("Advance() = %d, want 28 for four 7px glyphs", got)
	}
}

func TestUnknownFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown font")
		}
	}()
	FontName("nope").Get()
}
