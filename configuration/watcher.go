// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/logger"
)

// Watcher - re-read the configuration file whenever it is written
//
// the directory is watched so that editors which replace the file
// are also seen
type Watcher struct {
	log       *logger.L
	fileName  string
	variables map[string]string
	watcher   *fsnotify.Watcher
	reload    func(*Configuration)
}

// NewWatcher - reload is only called with a configuration that parsed
func NewWatcher(log *logger.L, fileName string, variables map[string]string, reload func(*Configuration)) (*Watcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}
	if _, err := os.Stat(filePath); nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(filePath)); nil != err {
		_ = watcher.Close()
		return nil, err
	}

	return &Watcher{
		log:       log,
		fileName:  filePath,
		variables: variables,
		watcher:   watcher,
		reload:    reload,
	}, nil
}

// Run - background process
func (w *Watcher) Run(args interface{}, shutdown <-chan struct{}) {
	defer w.watcher.Close()

	log := w.log
	log.Infof("watching: %q", w.fileName)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Base(event.Name) != filepath.Base(w.fileName) {
				continue loop
			}
			log.Debugf("file event: %v", event)

			if isRemove(event) {
				log.Warnf("configuration: %q removed", w.fileName)
				continue loop
			}
			if !isChange(event) {
				continue loop
			}

			c, err := Get(w.fileName, w.variables)
			if nil != err {
				log.Errorf("failed to read configuration from: %q  error: %s", w.fileName, err)
				continue loop
			}
			log.Info("configuration reloaded")
			w.reload(c)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watcher error: %s", err)
		}
	}
	log.Info("stopped")
}

func isRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove || event.Op&fsnotify.Rename == fsnotify.Rename
}

func isChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create
}
