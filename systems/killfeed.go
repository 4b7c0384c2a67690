package systems

const (
	feedLines    = 4
	feedLifetime = 4000 // ms
)

type feedLine struct {
	text string
	at   int64
}

// KillFeed keeps the most recent knockout messages for the HUD.
type KillFeed struct {
	lines []feedLine
}

// Push adds a line, dropping the oldest beyond the feed length.
func (f *KillFeed) Push(text string, now int64) {
	f.lines = append(f.lines, feedLine{text: text, at: now})
	if len(f.lines) > feedLines {
		f.lines = f.lines[len(f.lines)-feedLines:]
	}
}

// Lines returns the lines younger than the feed lifetime, oldest first.
func (f *KillFeed) Lines(now int64) []string {
	out := make([]string, 0, len(f.lines))
	for _, l := range f.lines {
		if now-l.at < feedLifetime {
			out = append(out, l.text)
		}
	}
	return out
}
