package prefabs

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports character directories whose definition or sprites changed
// on disk. Events carries the character directory name relative to the root.
type Watcher struct {
	watcher *fsnotify.Watcher
	root    string
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches each character directory under root together with its
// sprite directories. fsnotify is not recursive, so every directory is added
// explicitly.
func NewWatcher(root string, characters []string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, name := range characters {
		for _, dir := range watchDirs(filepath.Join(root, name)) {
			if err := w.Add(dir); err != nil {
				_ = w.Close()
				return nil, err
			}
		}
	}

	watcher := &Watcher{
		watcher: w,
		root:    root,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

// reloadDelay is how long a character must stay quiet before its change is
// reported, so a burst of writes yields one event after the last one.
const reloadDelay = 100 * time.Millisecond

func (w *Watcher) run() {
	defer close(w.done)
	pending := make(map[string]time.Time)
	tick := time.NewTicker(reloadDelay / 4)
	defer tick.Stop()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isSpecFile(event.Name) && !isImageFile(event.Name) {
				continue
			}
			name, ok := characterFor(w.root, event.Name)
			if !ok {
				continue
			}
			pending[name] = time.Now().Add(reloadDelay)
		case now := <-tick.C:
			for name, due := range pending {
				if now.Before(due) {
					continue
				}
				delete(pending, name)
				select {
				case w.Events <- name:
				case <-w.closeCh:
					return
				}
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func watchDirs(charDir string) []string {
	dirs := []string{charDir}
	sprites, err := filepath.Glob(filepath.Join(charDir, "sprites", "*"))
	if err != nil {
		return dirs
	}
	for _, dir := range sprites {
		if isDir(dir) {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// characterFor maps a changed file back to the character directory it
// belongs to.
func characterFor(root, changed string) (string, bool) {
	rel, err := filepath.Rel(root, changed)
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	if rel == "." || strings.HasPrefix(rel, "../") {
		return "", false
	}
	name, rest, ok := strings.Cut(rel, "/")
	if !ok || rest == "" {
		return "", false
	}
	return name, true
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}
