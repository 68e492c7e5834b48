// Package devreload flushes cached templates when files under a template
// directory change, so edits show up without restarting the server.
package devreload

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	rendertemplate "github.com/goliatone/go-elements/pkg/render/template"
)

const defaultDebounce = 200 * time.Millisecond

// Watcher calls Flush on its target after a burst of file events settles.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	target   rendertemplate.Flusher
	root     string
	debounce time.Duration
	logger   *zap.Logger
	flushes  int
	doneCh   chan struct{}
	running  bool
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets how long events must be quiet before flushing.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// New watches root and every directory below it.
func New(root string, target rendertemplate.Flusher, options ...Option) (*Watcher, error) {
	if target == nil {
		return nil, fmt.Errorf("devreload: flush target is required")
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("devreload: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("devreload: %s is not a directory", root)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("devreload: create watcher: %w", err)
	}
	w := &Watcher{
		watcher:  fw,
		target:   target,
		root:     root,
		debounce: defaultDebounce,
		logger:   zap.NewNop(),
		doneCh:   make(chan struct{}),
	}
	for _, opt := range options {
		if opt != nil {
			opt(w)
		}
	}
	err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return fw.Add(path)
		}
		return nil
	})
	if err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("devreload: watch %s: %w", root, err)
	}
	return w, nil
}

// Start runs the event loop until ctx is done or Close is called.
func (w *Watcher) Start(ctx context.Context) {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	go w.run(ctx)
}

// Flushes reports how many times the target was flushed.
func (w *Watcher) Flushes() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.flushes
}

// Close stops watching and waits for the loop to exit.
func (w *Watcher) Close() error {
	w.mu.Lock()
	running := w.running
	w.mu.Unlock()

	err := w.watcher.Close()
	if running {
		<-w.doneCh
	}
	return err
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.watcher.Add(event.Name); err != nil {
						w.logger.Warn("watch new directory", zap.String("path", event.Name), zap.Error(err))
					}
				}
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("template change", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			if pending && !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)
			pending = true
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("template watcher error", zap.Error(err))
		case <-timer.C:
			pending = false
			w.target.Flush()
			w.mu.Lock()
			w.flushes++
			w.mu.Unlock()
			w.logger.Info("templates reloaded", zap.String("root", w.root))
		}
	}
}
