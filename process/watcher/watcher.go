package watcher

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Handler is invoked once per stable new file, with its full path.
type Handler func(path string)

// Watcher runs a debounced fsnotify watch over a hot folder of receipt images
// and feeds stable files to a worker pool.
type Watcher struct {
	dir      string
	workers  int
	settle   time.Duration
	handler  Handler
	stopOnce sync.Once
	stopCh   chan struct{}
}

// New builds a watcher over dir. workers <= 0 means one worker.
func New(dir string, workers int, handler Handler) *Watcher {
	if workers <= 0 {
		workers = 1
	}
	return &Watcher{
		dir:     dir,
		workers: workers,
		settle:  300 * time.Millisecond,
		handler: handler,
		stopCh:  make(chan struct{}),
	}
}

// Run blocks until Stop is called, dispatching each newly created image file
// to the handler once its Create event has settled.
func (w *Watcher) Run() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer fsw.Close()
	if err := fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	log.Printf("watching %s (debounced)...", w.dir)

	fileCh := make(chan string, 256)
	go w.debounce(fsw, fileCh)

	var wg sync.WaitGroup
	for i := 0; i < w.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range fileCh {
				w.handler(filepath.Join(w.dir, name))
			}
		}()
	}
	wg.Wait()
	return nil
}

// Stop terminates Run. Safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
}

// debounce collects Create events and forwards a file name only after no new
// event for it arrived within the settle window, so half-written files are
// not processed.
func (w *Watcher) debounce(fsw *fsnotify.Watcher, fileCh chan<- string) {
	defer close(fileCh)
	pending := map[string]time.Time{}
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-w.stopCh:
			return
		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			if ev.Op&fsnotify.Create == fsnotify.Create {
				name := filepath.Base(ev.Name)
				if !IsSupportedExt(name) {
					continue
				}
				pending[name] = time.Now()
			}
		case <-ticker.C:
			now := time.Now()
			for name, t := range pending {
				if now.Sub(t) > w.settle { // stable
					fileCh <- name
					delete(pending, name)
				}
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			log.Printf("watch error: %v", err)
		}
	}
}

// IsSupportedExt reports whether name looks like a receipt image we handle.
func IsSupportedExt(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return true
	}
	return false
}
