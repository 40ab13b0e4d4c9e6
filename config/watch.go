package config

import (
	"path/filepath"

	"jenkins/pkg/log"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Watcher reloads a config file when it changes on disk.
type Watcher struct {
	w    *fsnotify.Watcher
	done chan struct{}
}

// Watch calls onChange with the reloaded config every time path is written.
// Configs failing validation are logged and skipped.
func Watch(path string, onChange func(*Config)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	// watch the directory so editors replacing the file are seen too
	if err = fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, errors.Wrapf(err, "watch %s", abs)
	}
	w := &Watcher{w: fw, done: make(chan struct{})}
	go w.loop(abs, onChange)
	return w, nil
}

func (w *Watcher) loop(path string, onChange func(*Config)) {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			c, err := Load(path)
			if err != nil {
				log.Errorf("config reload %s fail:%v", path, err)
				continue
			}
			log.Infof("config %s reloaded", path)
			onChange(c)
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			log.Warnf("config watch %s error:%v", path, err)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	err := w.w.Close()
	<-w.done
	return errors.WithStack(err)
}
