package browse

import (
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kirolabs/steering/internal/template"
)

// Watcher monitors the templates directory and coalesces filesystem
// events into refresh signals for the browse model. Rapid event bursts
// (editor saves produce several) are debounced into a single signal.
type Watcher struct {
	fsw      *fsnotify.Watcher
	events   chan struct{}
	stopCh   chan struct{}
	debounce time.Duration
}

// NewWatcher creates a Watcher for the given templates directory.
// The directory must exist; callers with an unset or missing path
// should skip watching and rely on manual refresh.
func NewWatcher(dir string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		events:   make(chan struct{}, 1),
		stopCh:   make(chan struct{}),
		debounce: 300 * time.Millisecond,
	}
	go w.loop()
	return w, nil
}

// Events returns the channel refresh signals are delivered on.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Close stops the watch loop and releases the underlying watcher.
func (w *Watcher) Close() error {
	close(w.stopCh)
	return w.fsw.Close()
}

// loop translates fsnotify events into debounced refresh signals.
// Only events for .md entries (or directory-level changes) count.
func (w *Watcher) loop() {
	var timer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case <-w.stopCh:
			if timer != nil {
				timer.Stop()
			}
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerCh = timer.C
		case <-timerCh:
			timerCh = nil
			select {
			case w.events <- struct{}{}:
			default: // a refresh is already pending
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// Watch errors degrade to manual refresh; the listing
			// itself re-reads the directory on every pass.
		}
	}
}

// relevant reports whether a filesystem event can change the listing.
func relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return strings.HasSuffix(event.Name, template.Extension)
}
