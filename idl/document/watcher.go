package document

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/teranos/webidl/errors"
	"github.com/teranos/webidl/logger"
)

// DefaultDebounce is how long the watcher waits after the last change
// before reloading.
const DefaultDebounce = 500 * time.Millisecond

// ReloadFunc receives each successfully reloaded document.
type ReloadFunc func(*Document) error

// Watcher reloads a document whenever its file changes.
type Watcher struct {
	Path     string
	Debounce time.Duration
	Logger   *zap.SugaredLogger
}

// NewWatcher creates a Watcher for path. A non-positive debounce uses
// DefaultDebounce and a nil logger falls back to the global logger.
func NewWatcher(path string, debounce time.Duration, log *zap.SugaredLogger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{Path: path, Debounce: debounce, Logger: log}
}

// Run watches the document until ctx is cancelled, then returns nil.
// Bursts of changes are collapsed into one reload. Documents that fail to
// load are logged and skipped; errors returned by onReload are logged too.
//
// The containing directory is watched so that editors which replace the file
// by rename are still seen.
func (w *Watcher) Run(ctx context.Context, onReload ReloadFunc) error {
	log := logger.ChildLogger(logger.OrGlobal(w.Logger), logger.FieldFile, w.Path)

	abs, err := filepath.Abs(w.Path)
	if err != nil {
		return errors.Wrapf(err, "failed to resolve %s", w.Path)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create fsnotify watcher")
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(abs)); err != nil {
		return errors.Wrapf(err, "failed to watch %s", filepath.Dir(abs))
	}
	log.Infow("watching document")

	var (
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
			log.Debugw("document watcher stopped")
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !isDocumentChange(event, abs) {
				continue
			}
			log.Debugw("document changed", "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.Debounce)
			} else {
				timer.Reset(w.Debounce)
			}
			fire = timer.C

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warnw("document watcher error", logger.FieldError, err.Error())

		case <-fire:
			fire = nil
			w.reload(log, onReload)
		}
	}
}

func (w *Watcher) reload(log *zap.SugaredLogger, onReload ReloadFunc) {
	doc, err := Load(w.Path)
	if err != nil {
		log.Errorw("document reload failed", logger.FieldError, err.Error())
		return
	}
	if err := onReload(doc); err != nil {
		log.Errorw("document reload callback failed", logger.FieldError, err.Error())
	}
}

func isDocumentChange(event fsnotify.Event, path string) bool {
	if filepath.Clean(event.Name) != path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
