// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// Watcher reloads a config file whenever it changes on disk.
// Reloaded configs are delivered on [Watcher.Configs]; only the
// most recent one is kept if the receiver falls behind.
type Watcher struct {
	file    string
	base    *Config
	watcher *fsnotify.Watcher
	configs chan *Config
	done    chan struct{}
}

// Watch starts watching the given config file. Each reload starts
// from a copy of base and applies the file on top of it. Invalid
// files are logged and skipped.
func Watch(file string, base *Config) (*Watcher, error) {
	fn, err := homedir.Expand(file)
	if err != nil {
		return nil, err
	}
	fn, err = filepath.Abs(fn)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// watch the directory, as editors often replace the file
	if err := fw.Add(filepath.Dir(fn)); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{
		file:    fn,
		base:    base.Clone(),
		watcher: fw,
		configs: make(chan *Config, 1),
		done:    make(chan struct{}),
	}
	go w.watch()
	return w, nil
}

// Configs returns the channel on which reloaded configs are sent.
func (w *Watcher) Configs() <-chan *Config { return w.configs }

// Close stops watching.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *Watcher) watch() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.file {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("config watcher", "err", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg := w.base.Clone()
	if err := Open(cfg, w.file); err != nil {
		slog.Warn("config reload skipped", "file", w.file, "err", err)
		return
	}
	if err := cfg.Validate(); err != nil {
		slog.Warn("config reload skipped", "file", w.file, "err", err)
		return
	}
	slog.Info("config reloaded", "file", w.file)
	// keep only the latest
	select {
	case <-w.configs:
	default:
	}
	w.configs <- cfg
}
