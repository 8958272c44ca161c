package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const settle = 100 * time.Millisecond

// configWatcher watches the directory holding the config file, since editors
// often save by replacing the file.
type configWatcher struct {
	name string
	w    *fsnotify.Watcher
}

func newConfigWatcher(path string) (*configWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, err
	}
	return &configWatcher{name: filepath.Base(abs), w: w}, nil
}

func (c *configWatcher) Close() error { return c.w.Close() }

// Run calls changed once a burst of changes to the file has settled, until
// ctx is done.  Errors from changed are logged.
func (c *configWatcher) Run(ctx context.Context, changed func() error) error {
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-c.w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != c.name || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			fire = time.After(settle)
		case err, ok := <-c.w.Errors:
			if !ok {
				return nil
			}
			log.Println("watch:", err)
		case <-fire:
			fire = nil
			log.Println("config changed")
			if err := changed(); err != nil {
				log.Println(err)
			}
		}
	}
}

func interruptContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}
