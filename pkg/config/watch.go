package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a settings file whenever it is written.
// Only the latest valid settings are kept until they are consumed.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan Settings
	wg      sync.WaitGroup
}

// Watch starts watching filePath. The parent directory is watched so that
// editors replacing the file are noticed too.
func Watch(filePath string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(filePath)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filePath, err)
	}

	w := &Watcher{
		path:    filepath.Clean(filePath),
		watcher: fw,
		updates: make(chan Settings, 1),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Updates delivers freshly loaded settings
func (w *Watcher) Updates() <-chan Settings {
	return w.updates
}

// Close stops the watcher and waits for its goroutine
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			s, err := Load(w.path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Ignoring settings change: %v\n", err)
				continue
			}
			w.publish(s)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "Settings watcher error: %v\n", err)
		}
	}
}

func (w *Watcher) publish(s Settings) {
	select {
	case w.updates <- s:
		return
	default:
	}
	// Replace the unread value
	select {
	case <-w.updates:
	default:
	}
	w.updates <- s
}
