package anim

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/automoto/stickbrawl/shared/logger"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type tableFile struct {
	Animations map[string]tableSpec `yaml:"animations"`
}

type tableSpec struct {
	Duration  int64          `yaml:"duration"`
	Keyframes []keyframeSpec `yaml:"keyframes"`
}

type keyframeSpec struct {
	At    *int                 `yaml:"at"`
	Ease  string               `yaml:"ease,omitempty"`
	Parts map[string]Transform `yaml:"parts"`
}

// Library is a set of keyframe tables keyed by animation name. Reads are
// lock-free; a reload swaps the whole set at once.
type Library struct {
	tables  atomic.Pointer[map[string]*KeyframeTable]
	missing sync.Map // animation name -> struct{}, logged once per table set
	log     logrus.FieldLogger
}

// NewLibrary builds a library from tables already in memory. Keyframes are
// sorted; later tables replace earlier ones with the same name.
func NewLibrary(tables ...*KeyframeTable) *Library {
	l := &Library{log: logger.For("keyframes")}
	l.swap(indexTables(tables))
	return l
}

// LoadLibrary reads every *.yaml / *.yml file in dir.
func LoadLibrary(fsys fs.FS, dir string) (*Library, error) {
	tables, err := loadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	l := &Library{log: logger.For("keyframes")}
	l.swap(tables)
	return l, nil
}

// SetLogger replaces the logger used for diagnostics.
func (l *Library) SetLogger(log logrus.FieldLogger) {
	l.log = log
}

// Reload replaces the table set with the contents of dir. On error the
// current set stays in place.
func (l *Library) Reload(fsys fs.FS, dir string) error {
	tables, err := loadDir(fsys, dir)
	if err != nil {
		return err
	}
	l.swap(tables)
	return nil
}

// Table returns the keyframe table for name, or nil. An unknown non-empty
// name is logged once.
func (l *Library) Table(name string) *KeyframeTable {
	if t, ok := l.current()[name]; ok {
		return t
	}
	if name != "" {
		if _, seen := l.missing.LoadOrStore(name, struct{}{}); !seen {
			l.log.WithField("animation", name).Warn("keyframe table not found")
		}
	}
	return nil
}

// Duration returns the default duration of the named animation.
func (l *Library) Duration(name string) (int64, bool) {
	t, ok := l.current()[name]
	if !ok {
		return 0, false
	}
	return t.Duration, true
}

// Names returns the loaded animation names in sorted order.
func (l *Library) Names() []string {
	tables := l.current()
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (l *Library) current() map[string]*KeyframeTable {
	if m := l.tables.Load(); m != nil {
		return *m
	}
	return nil
}

func (l *Library) swap(tables map[string]*KeyframeTable) {
	l.tables.Store(&tables)
	l.missing.Range(func(k, _ any) bool {
		l.missing.Delete(k)
		return true
	})
}

func indexTables(tables []*KeyframeTable) map[string]*KeyframeTable {
	out := make(map[string]*KeyframeTable, len(tables))
	for _, t := range tables {
		if t == nil {
			continue
		}
		sort.SliceStable(t.Keyframes, func(i, j int) bool {
			return t.Keyframes[i].Percent < t.Keyframes[j].Percent
		})
		out[t.Name] = t
	}
	return out
}

func loadDir(fsys fs.FS, dir string) (map[string]*KeyframeTable, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read keyframe dir %s: %w", dir, err)
	}

	tables := make(map[string]*KeyframeTable)
	sources := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || !isTableFile(entry.Name()) {
			continue
		}
		p := path.Join(dir, entry.Name())
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		parsed, err := ParseTables(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		for _, t := range parsed {
			if prev, dup := sources[t.Name]; dup {
				return nil, fmt.Errorf("animation %q defined in both %s and %s", t.Name, prev, p)
			}
			sources[t.Name] = p
			tables[t.Name] = t
		}
	}
	return tables, nil
}

// ParseTables decodes and validates one keyframe YAML document. Tables are
// returned sorted by name with keyframes sorted by percent.
func ParseTables(data []byte) ([]*KeyframeTable, error) {
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	names := make([]string, 0, len(file.Animations))
	for name := range file.Animations {
		names = append(names, name)
	}
	sort.Strings(names)

	tables := make([]*KeyframeTable, 0, len(names))
	for _, name := range names {
		t, err := buildTable(name, file.Animations[name])
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

func buildTable(name string, spec tableSpec) (*KeyframeTable, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("animation with empty name")
	}
	if spec.Duration < 0 {
		return nil, fmt.Errorf("animation %q: negative duration %d", name, spec.Duration)
	}

	t := &KeyframeTable{
		Name:      name,
		Duration:  spec.Duration,
		Keyframes: make([]Keyframe, 0, len(spec.Keyframes)),
	}
	seen := make(map[int]bool, len(spec.Keyframes))
	for i, kf := range spec.Keyframes {
		if kf.At == nil {
			return nil, fmt.Errorf("animation %q: keyframe #%d missing 'at'", name, i)
		}
		at := *kf.At
		if at < 0 || at > 100 {
			return nil, fmt.Errorf("animation %q: keyframe at %d outside 0..100", name, at)
		}
		if seen[at] {
			return nil, fmt.Errorf("animation %q: duplicate keyframe at %d", name, at)
		}
		seen[at] = true
		if !KnownEase(kf.Ease) {
			return nil, fmt.Errorf("animation %q: keyframe at %d: unknown ease %q", name, at, kf.Ease)
		}
		parts := make(PartFrame, len(kf.Parts))
		for id, tr := range kf.Parts {
			parts[id] = tr
		}
		t.Keyframes = append(t.Keyframes, Keyframe{Percent: at, Ease: kf.Ease, Parts: parts})
	}

	sort.Slice(t.Keyframes, func(i, j int) bool {
		return t.Keyframes[i].Percent < t.Keyframes[j].Percent
	})
	return t, nil
}

func isTableFile(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
