// Package watch re-runs generation when Go sources change.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Handler is called with the changed files of one debounced batch. Calls
// never overlap.
type Handler func(ctx context.Context, changed []string) error

// Options configures a Watcher.
type Options struct {
	// Debounce is the quiet period that closes a batch.
	Debounce time.Duration
	// IgnoreFiles are base names never reported, e.g. the generated file.
	IgnoreFiles []string
	// IgnoreDirs are directory base names not watched.
	IgnoreDirs []string
	Logger     *zap.Logger
}

// DefaultOptions returns the default watcher options.
func DefaultOptions() Options {
	return Options{
		Debounce:   200 * time.Millisecond,
		IgnoreDirs: []string{".git", "vendor", "testdata", "node_modules"},
	}
}

// Watcher watches directory trees for changes to .go files.
type Watcher struct {
	fs      *fsnotify.Watcher
	handler Handler
	opts    Options
	log     *zap.Logger
}

// New watches every directory under roots.
func New(roots []string, handler Handler, opts Options) (*Watcher, error) {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultOptions().Debounce
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	w := &Watcher{fs: fw, handler: handler, opts: opts, log: log}

	for _, root := range roots {
		if err := w.addRecursive(root); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	return w, nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walking %s: %w", path, err)
		}

		if !d.IsDir() {
			return nil
		}

		if path != root && w.ignoredDir(d.Name()) {
			return filepath.SkipDir
		}

		if err := w.fs.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}

		return nil
	})
}

func (w *Watcher) ignoredDir(name string) bool {
	return strings.HasPrefix(name, ".") || slices.Contains(w.opts.IgnoreDirs, name)
}

// relevant reports whether an event path is a source file worth a rerun.
func (w *Watcher) relevant(path string) bool {
	base := filepath.Base(path)
	if !strings.HasSuffix(base, ".go") || strings.HasPrefix(base, ".") {
		return false
	}

	return !slices.Contains(w.opts.IgnoreFiles, base)
}

// Run delivers batches to the handler until ctx is done. Handler errors
// are logged and do not stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	var (
		batch []string
		timer *time.Timer
		fire  <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}

			if event.Has(fsnotify.Create) {
				w.watchNewDir(event.Name)
			}

			if event.Has(fsnotify.Chmod) || !w.relevant(event.Name) {
				continue
			}

			if !slices.Contains(batch, event.Name) {
				batch = append(batch, event.Name)
			}

			if timer == nil {
				timer = time.NewTimer(w.opts.Debounce)
			} else {
				timer.Reset(w.opts.Debounce)
			}

			fire = timer.C

		case <-fire:
			changed := batch
			batch, fire = nil, nil

			w.log.Debug("sources changed", zap.Strings("files", changed))

			if err := w.handler(ctx, changed); err != nil && !errors.Is(err, context.Canceled) {
				w.log.Error("regeneration failed", zap.Error(err))
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}

			w.log.Warn("watch error", zap.Error(err))
		}
	}
}

// watchNewDir starts watching directories created after New.
func (w *Watcher) watchNewDir(path string) {
	if w.ignoredDir(filepath.Base(path)) {
		return
	}

	if err := w.addRecursive(path); err != nil {
		// Not a directory, or already gone.
		w.log.Debug("not watching", zap.String("path", path), zap.Error(err))
	}
}
