package snapshot

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/thimo234/ha-energy-chard/internal/util"
)

// PushEvent signals that the snapshot file changed and should be re-read.
type PushEvent struct {
	Path      string
	Operation string
}

// Watcher turns writes to the snapshot file into push events. Editors and
// integrations often replace the file atomically, so the parent directory is
// watched and events are filtered down to the snapshot's filename. An
// optional polling interval covers filesystems without change notification.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	events  chan PushEvent
	done    chan struct{}
}

// NewWatcher starts watching the snapshot at path. A refresh of zero
// disables the polling fallback.
func NewWatcher(path string, refresh time.Duration) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	w := &Watcher{
		watcher: watcher,
		path:    abs,
		events:  make(chan PushEvent, 16),
		done:    make(chan struct{}),
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}

	go w.processEvents()
	if refresh > 0 {
		go w.poll(refresh)
	}

	return w, nil
}

func (w *Watcher) processEvents() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.emit(PushEvent{Path: w.path, Operation: event.Op.String()})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			util.LogError("Snapshot watch error: " + err.Error())

		case <-w.done:
			return
		}
	}
}

// poll re-emits on an interval when the file's mtime moved, as a fallback
// for filesystems that drop notifications.
func (w *Watcher) poll(refresh time.Duration) {
	ticker := time.NewTicker(refresh)
	defer ticker.Stop()

	var lastMod time.Time
	for {
		select {
		case <-ticker.C:
			info, err := os.Stat(w.path)
			if err != nil {
				continue
			}
			if info.ModTime().After(lastMod) {
				lastMod = info.ModTime()
				w.emit(PushEvent{Path: w.path, Operation: "POLL"})
			}
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) emit(event PushEvent) {
	select {
	case w.events <- event:
	default:
		// A pending event already forces a re-read; drop the extra one.
	}
}

// Events returns the push event stream.
func (w *Watcher) Events() <-chan PushEvent {
	return w.events
}

// Close stops watching.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
