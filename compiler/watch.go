package compiler

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch runs Generate once and again every time a document below
// opts.Source changes. Bursts of events are coalesced until no event arrived
// for opts.Debounce. onRun, if not nil, receives the outcome of every run;
// failed runs do not stop the watch.
//
// Watch blocks until ctx is cancelled and returns ctx.Err().
func Watch(ctx context.Context, opts Options, onRun func(*Result, error)) error {
	if err := opts.validate(); err != nil {
		return err
	}
	logger := opts.logger()
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if onRun == nil {
		onRun = func(*Result, error) {}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	source, err := filepath.Abs(opts.Source)
	if err != nil {
		return fmt.Errorf("resolve source: %w", err)
	}
	schema, err := filepath.Abs(opts.Schema)
	if err != nil {
		return fmt.Errorf("resolve schema: %w", err)
	}
	w := &watch{
		watcher: watcher,
		logger:  logger,
		source:  source,
		schema:  schema,
		ignore:  opts.Ignore,
	}
	if err := w.setup(); err != nil {
		return err
	}

	onRun(Generate(ctx, opts))
	logger.Info("watching shapes", slog.String("path", w.source))

	timer := time.NewTimer(debounce)
	timer.Stop()
	pending := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			pending++
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", slog.String("error", err.Error()))

		case <-timer.C:
			if pending == 0 {
				continue
			}
			logger.Debug("shapes changed", slog.Int("events", pending))
			pending = 0
			onRun(Generate(ctx, opts))
		}
	}
}

type watch struct {
	watcher *fsnotify.Watcher
	logger  *slog.Logger
	source  string
	schema  string
	ignore  []string
}

// setup adds every directory below the source. A file source, or one that
// does not exist yet, is watched through its parent directory.
func (w *watch) setup() error {
	info, err := os.Stat(w.source)
	if err == nil && info.IsDir() {
		return w.addTree(w.source)
	}
	parent := filepath.Dir(w.source)
	if err := w.watcher.Add(parent); err != nil {
		return fmt.Errorf("watch %s: %w", parent, err)
	}
	return nil
}

func (w *watch) addTree(root string) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && slices.Contains(w.ignore, d.Name()) {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}
	return nil
}

// relevant reports whether event touches the source. Newly created
// directories are added to the watch as a side effect.
func (w *watch) relevant(event fsnotify.Event) bool {
	name := filepath.Clean(event.Name)
	if name == w.schema || event.Op == fsnotify.Chmod {
		return false
	}
	if name != w.source && !strings.HasPrefix(name, w.source+string(filepath.Separator)) {
		return false
	}
	if slices.Contains(w.ignore, filepath.Base(name)) {
		return false
	}
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(name); err == nil && info.IsDir() {
			if err := w.addTree(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
				w.logger.Warn("watch directory", slog.String("path", name), slog.String("error", err.Error()))
			}
		}
	}
	return true
}
