package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changed stylesheets in watched files and directories.
type Watcher struct {
	watcher   *fsnotify.Watcher
	recursive bool

	mu     sync.Mutex
	dirs   map[string]bool
	paths  map[string]bool
	ignore map[string]bool
}

// NewWatcher returns a new Watcher.
func NewWatcher(recursive bool) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		watcher:   watcher,
		recursive: recursive,
		dirs:      map[string]bool{},
		paths:     map[string]bool{},
		ignore:    map[string]bool{},
	}, nil
}

// Close closes the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// IgnoreNext skips the next write to filename, which is used for files written by the rewriter itself.
func (w *Watcher) IgnoreNext(filename string) {
	if filename == "" {
		return
	}
	w.mu.Lock()
	w.ignore[filepath.Clean(filename)] = true
	w.mu.Unlock()
}

func (w *Watcher) ignored(filename string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.ignore[filename] {
		delete(w.ignore, filename)
		return true
	}
	return false
}

// AddPath adds a file or directory to watch.
func (w *Watcher) AddPath(root string) error {
	info, err := os.Lstat(root)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	root = filepath.Clean(root)
	w.paths[root] = true
	if info.Mode().IsRegular() {
		return w.addDir(filepath.Dir(root))
	} else if !info.Mode().IsDir() {
		return nil
	} else if !w.recursive {
		return w.addDir(root)
	}
	return fs.WalkDir(osFS{}, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		} else if !d.IsDir() {
			return nil
		} else if w.dirs[path] {
			return fs.SkipDir
		}
		return w.addDir(path)
	})
}

func (w *Watcher) addDir(dir string) error {
	if w.dirs[dir] {
		return nil
	} else if err := w.watcher.Add(dir); err != nil {
		return err
	}
	w.dirs[dir] = true
	return nil
}

// watched returns true if filename is a watched file or lies within a watched directory.
func (w *Watcher) watched(filename string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path := range w.paths {
		if path == filename || path == "." && !filepath.IsAbs(filename) {
			return true
		} else if strings.HasPrefix(filename, path+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// Run watches for changes and sends the names of written files.
func (w *Watcher) Run() chan string {
	files := make(chan string, 10)
	go func() {
		changetimes := map[string]time.Time{}
		for w.watcher.Events != nil && w.watcher.Errors != nil {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					w.watcher.Events = nil
					break
				}

				filename := filepath.Clean(event.Name)
				if !w.watched(filename) {
					break
				}

				info, err := os.Lstat(filename)
				if err != nil {
					break
				} else if info.Mode().IsDir() {
					if w.recursive && event.Op&fsnotify.Create == fsnotify.Create {
						if err := w.AddPath(filename); err != nil {
							Error.Println(err)
						}
					}
				} else if info.Mode().IsRegular() && event.Op&fsnotify.Write == fsnotify.Write {
					if w.ignored(filename) {
						break
					}
					if t, ok := changetimes[filename]; !ok || 100*time.Millisecond < time.Since(t) {
						time.Sleep(100 * time.Millisecond) // wait for the write to finish
						files <- filename
						changetimes[filename] = time.Now()
					}
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					w.watcher.Errors = nil
					break
				}
				Error.Println(err)
			}
		}
		close(files)
	}()
	return files
}
