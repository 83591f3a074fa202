package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Carmen-Shannon/oxy-orbit/engine/controls"
)

// DefaultDebounce is how long the watcher waits after the last change before reloading.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reloads a config file whenever it changes on disk.
// Only the newest successfully loaded config is kept pending on Configs; hosts apply it
// between frames with OrbitControls.SetConfig. Load failures are logged and sent on Errors
// when there is room.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	logger   *slog.Logger

	Configs chan controls.Config
	Errors  chan error

	closeCh chan struct{}
	doneCh  chan struct{}
	once    sync.Once
}

// WatcherOption is a functional option for configuring a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the quiet period before a reload.
//
// Parameters:
//   - d: debounce duration (values <= 0 keep the default)
//
// Returns:
//   - WatcherOption: functional option to set the debounce
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithWatchLogger sets the logger for reload failures. Defaults to slog.Default().
//
// Parameters:
//   - logger: the logger to use
//
// Returns:
//   - WatcherOption: functional option to set the logger
func WithWatchLogger(logger *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// NewWatcher watches path for changes. The containing directory is watched so that
// editors replacing the file by rename are still seen.
//
// Parameters:
//   - path: a .toml, .yaml or .yml file
//   - options: functional options to configure the watcher
//
// Returns:
//   - *Watcher: the running watcher
//   - error: ErrUnsupportedFormat, or an error from fsnotify
func NewWatcher(path string, options ...WatcherOption) (*Watcher, error) {
	if _, err := FormatFromPath(path); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	w := &Watcher{
		watcher:  fw,
		path:     abs,
		debounce: DefaultDebounce,
		logger:   slog.Default(),
		Configs:  make(chan controls.Config, 1),
		Errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	for _, option := range options {
		option(w)
	}
	go w.run()
	return w, nil
}

// Close stops the watcher and closes Configs and Errors.
// Safe to call multiple times.
//
// Returns:
//   - error: the error from closing the underlying fsnotify watcher
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.doneCh
		close(w.Configs)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.doneCh)

	var reload <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			reload = time.After(w.debounce)
		case <-reload:
			reload = nil
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", "path", w.path, "error", err)
			w.sendError(err)
		case <-w.closeCh:
			return
		}
	}
}

// reload loads the file and publishes it, replacing any config not yet consumed.
func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.logger.Warn("config reload failed", "path", w.path, "error", err)
		w.sendError(err)
		return
	}
	w.logger.Debug("config reloaded", "path", w.path)

	select {
	case w.Configs <- cfg:
	default:
		select {
		case <-w.Configs:
		default:
		}
		w.Configs <- cfg
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
