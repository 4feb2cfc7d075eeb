// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package demo

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDebounce is the quiet period after the last change before
// a watched configuration is reloaded.
const DefaultWatchDebounce = 250 * time.Millisecond

// Watcher reloads a configuration file whenever it changes on disk.
type Watcher struct {
	watcher   *fsnotify.Watcher
	path      string
	debounce  time.Duration
	onReload  func(Config)
	onError   func(error)
	stopCh    chan struct{}
	stoppedCh chan struct{}
	stopOnce  sync.Once
}

// WatchConfig starts watching path. onReload receives every successfully
// parsed configuration; onError, if non-nil, receives parse and watch
// errors. Both run on the watcher's goroutine.
func WatchConfig(path string, debounce time.Duration, onReload func(Config), onError func(error)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("demo: watch config: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	// Editors that save by renaming replace the file, so watch its directory.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("demo: watch config: %w", err)
	}

	w := &Watcher{
		watcher:   fw,
		path:      path,
		debounce:  debounce,
		onReload:  onReload,
		onError:   onError,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Close stops watching and waits for the watcher goroutine to exit.
func (w *Watcher) Close() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	<-w.stoppedCh
}

func (w *Watcher) loop() {
	defer close(w.stoppedCh)
	defer w.watcher.Close()

	absPath, _ := filepath.Abs(w.path)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.stopCh:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.matches(ev, absPath) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C

		case <-fire:
			timer, fire = nil, nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.report(err)
		}
	}
}

func (w *Watcher) matches(ev fsnotify.Event, absPath string) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	if filepath.Base(ev.Name) == filepath.Base(w.path) {
		return true
	}
	evAbs, _ := filepath.Abs(ev.Name)
	return evAbs == absPath
}

func (w *Watcher) reload() {
	cfg, err := LoadConfig(w.path)
	if err != nil {
		w.report(err)
		return
	}
	if w.onReload != nil {
		w.onReload(cfg)
	}
}

func (w *Watcher) report(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}
