package anim

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// Watch reloads the library from the directory dir on disk whenever a
// keyframe file in it changes. Bursts of events are coalesced. A reload that
// fails keeps the tables already loaded. Watching stops when ctx is done.
// The returned channel receives the result of every reload attempt and is
// closed when watching stops; receiving from it is optional.
func (l *Library) Watch(ctx context.Context, dir string) (<-chan error, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	results := make(chan error, 1)
	go l.watchLoop(ctx, w, dir, results)
	return results, nil
}

func (l *Library) watchLoop(ctx context.Context, w *fsnotify.Watcher, dir string, results chan<- error) {
	defer close(results)
	defer w.Close()

	log := l.log.WithField("dir", dir)
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isTableFile(event.Name) {
				continue
			}
			pending = time.After(reloadDebounce)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.WithError(err).Warn("keyframe watcher error")
		case <-pending:
			pending = nil
			err := l.Reload(os.DirFS(dir), ".")
			if err != nil {
				log.WithError(err).Error("keyframe reload failed, keeping previous tables")
			} else {
				log.WithField("animations", len(l.Names())).Info("keyframes reloaded")
			}
			select {
			case results <- err:
			default:
			}
		}
	}
}
