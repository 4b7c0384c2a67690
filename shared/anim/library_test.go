package anim

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

const punchYAML = `
animations:
  punch:
    duration: 320
    keyframes:
      - at: 40
        ease: outQuad
        parts:
          armRight: {x: 14, y: -28, rotation: -1.5}
      - at: 0
        parts:
          armRight: {x: 4, y: -28, rotation: 0.6}
          head: {x: 0, y: -44, rotation: 0}
  guard:
    keyframes:
      - at: 0
        parts:
          armLeft: {x: 2, y: -30, rotation: -0.4}
`

func TestParseTables_Valid(t *testing.T) {
	tables, err := ParseTables([]byte(punchYAML))
	if err != nil {
		t.Fatalf("ParseTables: %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("got %d tables, want 2", len(tables))
	}
	if tables[0].Name != "guard" || tables[1].Name != "punch" {
		t.Errorf("tables not sorted by name: %s, %s", tables[0].Name, tables[1].Name)
	}

	punch := tables[1]
	if punch.Duration != 320 {
		t.Errorf("Duration = %d, want 320", punch.Duration)
	}
	if punch.Keyframes[0].Percent != 0 || punch.Keyframes[1].Percent != 40 {
		t.Errorf("keyframes not sorted: %d, %d", punch.Keyframes[0].Percent, punch.Keyframes[1].Percent)
	}
	if got := punch.Keyframes[1].Parts["armRight"]; got != (Transform{X: 14, Y: -28, Rotation: -1.5}) {
		t.Errorf("armRight at 40 = %+v", got)
	}
	if punch.Keyframes[1].Ease != "outQuad" {
		t.Errorf("Ease = %q, want outQuad", punch.Keyframes[1].Ease)
	}
}

func TestParseTables_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			yaml:    "animations: [",
			wantErr: "decode yaml",
		},
		{
			name:    "missing at",
			yaml:    "animations:\n  a:\n    keyframes:\n      - parts: {}\n",
			wantErr: "missing 'at'",
		},
		{
			name:    "at out of range",
			yaml:    "animations:\n  a:\n    keyframes:\n      - at: 101\n",
			wantErr: "outside 0..100",
		},
		{
			name:    "duplicate key",
			yaml:    "animations:\n  a:\n    keyframes:\n      - at: 10\n      - at: 10\n",
			wantErr: "duplicate keyframe",
		},
		{
			name:    "unknown ease",
			yaml:    "animations:\n  a:\n    keyframes:\n      - at: 10\n        ease: wobble\n",
			wantErr: "unknown ease",
		},
		{
			name:    "negative duration",
			yaml:    "animations:\n  a:\n    duration: -1\n",
			wantErr: "negative duration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTables([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected an error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadLibrary(t *testing.T) {
	fsys := fstest.MapFS{
		"keyframes/fighter.yaml": {Data: []byte(punchYAML)},
		"keyframes/idle.yml": {Data: []byte(`
animations:
  idle:
    duration: 1200
    keyframes:
      - at: 0
        parts: {head: {x: 0, y: -44, rotation: 0}}
`)},
		"keyframes/README.md": {Data: []byte("not a table")},
	}

	lib, err := LoadLibrary(fsys, "keyframes")
	if err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}

	names := lib.Names()
	if strings.Join(names, ",") != "guard,idle,punch" {
		t.Errorf("Names = %v", names)
	}
	if d, ok := lib.Duration("idle"); !ok || d != 1200 {
		t.Errorf("Duration(idle) = %d, %v", d, ok)
	}
	if lib.Table("punch") == nil {
		t.Error("Table(punch) = nil")
	}
}

func TestLoadLibrary_Errors(t *testing.T) {
	t.Run("duplicate across files", func(t *testing.T) {
		fsys := fstest.MapFS{
			"k/a.yaml": {Data: []byte(punchYAML)},
			"k/b.yaml": {Data: []byte("animations:\n  punch:\n    duration: 10\n")},
		}
		_, err := LoadLibrary(fsys, "k")
		if err == nil || !strings.Contains(err.Error(), "defined in both") {
			t.Errorf("err = %v, want duplicate definition error", err)
		}
	})

	t.Run("missing dir", func(t *testing.T) {
		if _, err := LoadLibrary(fstest.MapFS{}, "nope"); err == nil {
			t.Error("expected an error for a missing directory")
		}
	})
}

func TestLibrary_MissingTableLoggedOnce(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	lib := NewLibrary(exampleTable())
	lib.SetLogger(log)

	for i := 0; i < 10; i++ {
		if lib.Table("kick") != nil {
			t.Fatal("Table(kick) returned a table")
		}
	}
	lib.Table("")
	lib.Table("example")

	entries := hook.AllEntries()
	if len(entries) != 1 {
		t.Fatalf("logged %d entries, want 1", len(entries))
	}
	if entries[0].Level != logrus.WarnLevel || entries[0].Data["animation"] != "kick" {
		t.Errorf("unexpected entry: level=%s data=%v", entries[0].Level, entries[0].Data)
	}
}

func TestLibrary_ReloadKeepsTablesOnError(t *testing.T) {
	good := fstest.MapFS{"k/a.yaml": {Data: []byte(punchYAML)}}
	bad := fstest.MapFS{"k/a.yaml": {Data: []byte("animations:\n  x:\n    keyframes:\n      - at: 500\n")}}

	lib, err := LoadLibrary(good, "k")
	if err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}
	if err := lib.Reload(bad, "k"); err == nil {
		t.Fatal("Reload accepted an invalid table")
	}
	if lib.Table("punch") == nil {
		t.Error("failed reload dropped the previous tables")
	}
}

func TestNewLibrary_SortsKeyframes(t *testing.T) {
	lib := NewLibrary(&KeyframeTable{
		Name:      "shuffled",
		Keyframes: []Keyframe{{Percent: 60}, {Percent: 0}, {Percent: 30}},
	})
	kfs := lib.Table("shuffled").Keyframes
	for i := 1; i < len(kfs); i++ {
		if kfs[i-1].Percent >= kfs[i].Percent {
			t.Fatalf("keyframes not ascending: %+v", kfs)
		}
	}
}
