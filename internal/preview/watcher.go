package preview

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// rebuildDebounce coalesces bursts of filesystem events (editor save,
// directory copy) into one rebuild.
const rebuildDebounce = 300 * time.Millisecond

// watcher triggers a rebuild callback when markdown under the docs dir
// changes.
type watcher struct {
	fsw      *fsnotify.Watcher
	onChange func()

	mu    sync.Mutex
	timer *time.Timer
}

func newWatcher(docsDir string, onChange func()) (*watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &watcher{fsw: fsw, onChange: onChange}

	// Watch the whole tree; fsnotify is not recursive on its own.
	err = filepath.WalkDir(docsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && !strings.HasPrefix(d.Name(), ".") {
			return fsw.Add(path)
		}
		return nil
	})
	if err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return w, nil
}

// Run consumes events until ctx is canceled.
func (w *watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if w.relevant(ev) {
				w.schedule()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Warn("Docs watcher error", "error", err)
		}
	}
}

func (w *watcher) relevant(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	// New directories need watching too; Add on a plain file is harmless.
	if ev.Op&fsnotify.Create != 0 {
		_ = w.fsw.Add(ev.Name)
	}
	return strings.EqualFold(filepath.Ext(ev.Name), ".md")
}

func (w *watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(rebuildDebounce, w.onChange)
}

func (w *watcher) Close() {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	_ = w.fsw.Close()
}
