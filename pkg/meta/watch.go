package meta

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// DefaultDebounce collapses bursts of editor writes into one rebuild.
const DefaultDebounce = 500 * time.Millisecond

// Watcher re-runs Build whenever the record or the template changes.
type Watcher struct {
	opts     Options
	debounce time.Duration
	log      *slog.Logger
	onBuild  func(Values, error)
	watcher  *fsnotify.Watcher
	files    map[string]bool
}

// NewWatcher prepares a watcher. onBuild, when set, is called after every
// rebuild with its outcome.
func NewWatcher(opts Options, debounce time.Duration, log *slog.Logger, onBuild func(Values, error)) (w *Watcher, err error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if log == nil {
		log = slog.Default()
	}

	files := make(map[string]bool, 2)
	for _, path := range []string{opts.RecordPath, opts.TemplatePath} {
		var absPath string
		absPath, err = filepath.Abs(path)
		if err != nil {
			err = errors.Wrapf(err, "failed to resolve path: %s", path)
			return w, err
		}
		files[absPath] = true
	}

	var fsw *fsnotify.Watcher
	fsw, err = fsnotify.NewWatcher()
	if err != nil {
		err = errors.Wrap(err, "failed to create file watcher")
		return w, err
	}

	// Directories are watched rather than files so that editors replacing
	// the file on save are still noticed.
	for path := range files {
		dir := filepath.Dir(path)
		err = fsw.Add(dir)
		if err != nil {
			_ = fsw.Close()
			err = errors.Wrapf(err, "failed to watch directory: %s", dir)
			return w, err
		}
	}

	w = &Watcher{
		opts:     opts,
		debounce: debounce,
		log:      log,
		onBuild:  onBuild,
		watcher:  fsw,
		files:    files,
	}
	return w, err
}

// Run processes file events until ctx is done. The underlying watcher is
// closed on return.
func (w *Watcher) Run(ctx context.Context) (err error) {
	defer w.watcher.Close()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	w.log.Info("watching for changes", "record", w.opts.RecordPath, "template", w.opts.TemplatePath)

	for {
		select {
		case <-ctx.Done():
			return err
		case event, ok := <-w.watcher.Events:
			if !ok {
				return err
			}
			if !w.relevant(event) {
				continue
			}
			w.log.Debug("change detected", "file", event.Name, "op", event.Op.String())
			timer.Reset(w.debounce)
		case <-timer.C:
			w.rebuild()
		case watchErr, ok := <-w.watcher.Errors:
			if !ok {
				return err
			}
			w.log.Error("watcher error", "error", watchErr)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) (ok bool) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return ok
	}

	absPath, err := filepath.Abs(event.Name)
	if err != nil {
		return ok
	}

	ok = w.files[absPath]
	return ok
}

func (w *Watcher) rebuild() {
	values, err := Build(w.opts)
	if err != nil {
		w.log.Error("rebuild failed", "error", err)
	} else {
		w.log.Info("page rebuilt", "output", w.opts.OutputPath, "title", values.Title)
	}

	if w.onBuild != nil {
		w.onBuild(values, err)
	}
}
