package shell

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"dotcanvas/internal/settings"
)

const watchDebounce = 100 * time.Millisecond

// Watcher reloads a config file whenever it changes on disk.
type Watcher struct {
	fw   *fsnotify.Watcher
	done chan struct{}
	once sync.Once
	err  error
}

// Watch starts watching path. The directory is watched rather than the file
// so editors that replace the file on save are still seen. Bursts of events
// are debounced into one reload. onChange and onError run on the watcher
// goroutine.
func Watch(ctx context.Context, path string, onChange func(settings.GridConfig), onError func(error)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	target := filepath.Clean(path)
	if err := fw.Add(filepath.Dir(target)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}
	w := &Watcher{fw: fw, done: make(chan struct{})}
	go w.loop(ctx, target, onChange, onError)
	return w, nil
}

func (w *Watcher) loop(ctx context.Context, target string, onChange func(settings.GridConfig), onError func(error)) {
	defer close(w.done)
	debounce := time.NewTimer(watchDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	defer debounce.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			pending = true
			debounce.Reset(watchDebounce)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			onError(err)
		case <-debounce.C:
			if !pending {
				continue
			}
			pending = false
			c, err := settings.LoadFile(target)
			if err != nil {
				onError(err)
				continue
			}
			onChange(c)
		}
	}
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	w.once.Do(func() {
		w.err = w.fw.Close()
		<-w.done
	})
	return w.err
}
