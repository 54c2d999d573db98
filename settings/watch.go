// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

// Watch watches the given settings file and sends the newly loaded
// settings on the returned channel each time the file is written.
// Files that fail to load are logged and skipped. The channel is
// closed once the context is done.
//
// The directory of the file is watched rather than the file itself,
// so that editors which replace the file on save are seen.
func Watch(ctx context.Context, filename string) (<-chan *Settings, error) {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return nil, errors.Wrap(err, "settings.Watch")
	}
	fn, err = filepath.Abs(fn)
	if err != nil {
		return nil, errors.Wrap(err, "settings.Watch")
	}
	if _, err := FormatForFile(fn); err != nil {
		return nil, errors.Wrap(err, "settings.Watch")
	}
	watch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "settings.Watch")
	}
	if err := watch.Add(filepath.Dir(fn)); err != nil {
		watch.Close()
		return nil, errors.Wrap(err, "settings.Watch")
	}
	ch := make(chan *Settings, 1)
	go func() {
		defer close(ch)
		defer watch.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watch.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != fn || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				s, err := Open(fn)
				if err != nil {
					slog.Warn("settings.Watch: could not load settings, keeping previous", "file", fn, "err", err)
					continue
				}
				select {
				case ch <- s:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watch.Errors:
				if !ok {
					return
				}
				slog.Error("settings.Watch", "file", fn, "err", err)
			}
		}
	}()
	return ch, nil
}
