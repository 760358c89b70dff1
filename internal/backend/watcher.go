package backend

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Kind represents the type of data carried by an Event.
type Kind int

const (
	// KindConfig carries reloaded settings from the watched config file.
	KindConfig Kind = iota
	// KindFrame carries a snapshot of the frame published by the UI.
	KindFrame
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindFrame:
		return "frame"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Event conveys updated data or an error.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// LoadFunc reads and decodes the watched file.
type LoadFunc func(path string) (interface{}, error)

// Watcher reloads a config file whenever it changes on disk and publishes the
// result as KindConfig events.
type Watcher struct {
	path     string
	interval time.Duration
	load     LoadFunc

	fs *fsnotify.Watcher

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher watches path. The parent directory is watched rather than the
// file so editors that replace the file on save are still seen. Reloads are
// spaced at least interval apart.
func NewWatcher(path string, interval time.Duration, load LoadFunc) (*Watcher, error) {
	if load == nil {
		return nil, fmt.Errorf("watch %s: no loader", path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     abs,
		interval: interval,
		load:     load,
		fs:       fsw,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	w.wg.Add(1)
	go w.run()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher and releases the underlying inotify handle.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the watch goroutine has exited and the events channel is
// closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) run() {
	defer w.wg.Done()
	defer w.fs.Close()

	throttle := newThrottle(w.interval)
	for {
		select {
		case <-w.ctx.Done():
			return
		case evt, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.relevant(evt) {
				continue
			}
			if !throttle.wait(w.ctx) {
				return
			}
			w.drain()
			data, err := w.load(w.path)
			if !w.emit(Event{Kind: KindConfig, Data: data, Err: err}) {
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			if !w.emit(Event{Kind: KindConfig, Err: err}) {
				return
			}
		}
	}
}

func (w *Watcher) relevant(evt fsnotify.Event) bool {
	if filepath.Clean(evt.Name) != w.path {
		return false
	}
	return evt.Has(fsnotify.Write) || evt.Has(fsnotify.Create) || evt.Has(fsnotify.Rename)
}

// drain discards change notifications that queued up while throttled; the
// next load reads the file once for all of them.
func (w *Watcher) drain() {
	for {
		select {
		case _, ok := <-w.fs.Events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

func (w *Watcher) emit(evt Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}
