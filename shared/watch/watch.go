// Package watch reports changes to project files on disk.
package watch

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debounce is how long a file must stay quiet before its change is reported.
const Debounce = 100 * time.Millisecond

type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// New watches dirs for changes to project files, external levels, maps,
// tilesets and images.
func New(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	// pending holds the time of the latest event per file. A file is only
	// reported once it has been quiet for Debounce.
	pending := make(map[string]time.Time)
	timer := time.NewTimer(Debounce)
	timer.Stop()
	var fire <-chan time.Time

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !IsProjectFile(event.Name) {
				continue
			}
			pending[event.Name] = time.Now()
			if fire == nil {
				timer.Reset(Debounce)
				fire = timer.C
			}
		case now := <-fire:
			fire = nil
			ready, wait := settled(pending, now)
			for _, name := range ready {
				select {
				case w.Events <- name:
				case <-w.closeCh:
					return
				}
			}
			if len(pending) > 0 {
				timer.Reset(wait)
				fire = timer.C
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			timer.Stop()
			return
		}
	}
}

// settled removes and returns, sorted, the files quiet for at least
// Debounce at now. wait is how long until the next pending file settles.
func settled(pending map[string]time.Time, now time.Time) (ready []string, wait time.Duration) {
	for name, last := range pending {
		left := Debounce - now.Sub(last)
		if left <= 0 {
			ready = append(ready, name)
			delete(pending, name)
			continue
		}
		if wait == 0 || left < wait {
			wait = left
		}
	}
	sort.Strings(ready)
	return ready, wait
}

// IsProjectFile reports whether a change to path can alter an import.
func IsProjectFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ldtk", ".ldtkl", ".json", ".tmx", ".tsx", ".png", ".gif", ".jpg", ".jpeg", ".bmp", ".webp":
		return true
	}
	return false
}

// Drain collects every event already queued without blocking.
func (w *Watcher) Drain() []string {
	var names []string
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return names
			}
			names = append(names, name)
		default:
			return names
		}
	}
}
