//-----------------------------------------------------------------------------
// Copyright (c) 2024-present The zortex authors
//
// This file is part of zortex.
//
// zortex is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2024-present The zortex authors
//-----------------------------------------------------------------------------

// Package store maintains a directory of zortex article files as a queryable
// collection, kept current through a notify.Notifier.
package store

import (
	"context"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/t-wilkinson/zortex/article"
	"github.com/t-wilkinson/zortex/logging"
	"github.com/t-wilkinson/zortex/store/notify"
)

// State signals the internal state of the store.
type State uint8

// Constants for states
const (
	StateCreated  State = iota // Store is created
	StateStarting              // Store is starting up, directory is being scanned
	StateWorking               // Store is working, directory scan is complete
	StateMissing               // Directory is missing
	StateStopping              // Store is shutting down
)

// DirStore indexes the articles of one directory, by file name, article
// name, and tag. It consumes the event stream of a notifier to keep the
// index current.
type DirStore struct {
	logger   *slog.Logger
	dir      string
	notifier notify.Notifier

	mx      sync.RWMutex
	state   State
	entries map[string]*article.Article // key: file name
	curMap  map[string]*article.Article // nil if no directory scan is in progress

	initial     chan struct{} // closed after the first directory scan
	initialOnce sync.Once
}

// New creates a directory store that keeps itself current via the given
// notifier. The notifier is owned by the store after Start.
func New(logger *slog.Logger, dir string, n notify.Notifier) *DirStore {
	return &DirStore{
		logger:   logger,
		dir:      dir,
		notifier: n,
		state:    StateCreated,
		initial:  make(chan struct{}),
	}
}

// AwaitInitialScan blocks until the first directory scan is complete or the
// context is cancelled.
func (ds *DirStore) AwaitInitialScan(ctx context.Context) error {
	select {
	case <-ds.initial:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Start the store. The directory scan of the notifier runs asynchronously;
// use State to observe its progress.
func (ds *DirStore) Start() {
	ds.mx.Lock()
	ds.state = StateStarting
	ds.mx.Unlock()
	go ds.eventLoop()
}

// Refresh asks the notifier for a full directory re-scan.
func (ds *DirStore) Refresh() { ds.notifier.Refresh() }

// Stop the store. No further events will be processed.
func (ds *DirStore) Stop() {
	ds.mx.Lock()
	ds.state = StateStopping
	ds.mx.Unlock()
	ds.notifier.Close()
}

// State returns the current state of the store.
func (ds *DirStore) State() State {
	ds.mx.RLock()
	state := ds.state
	ds.mx.RUnlock()
	return state
}

// NumArticles returns the number of indexed articles.
func (ds *DirStore) NumArticles() int {
	ds.mx.RLock()
	num := len(ds.entries)
	ds.mx.RUnlock()
	return num
}

// Article returns the article with the given name, or nil if there is none.
// File name (with or without the extension) and article name both match.
func (ds *DirStore) Article(name string) *article.Article {
	ds.mx.RLock()
	defer ds.mx.RUnlock()
	if art, found := ds.entries[name]; found {
		return art
	}
	if art, found := ds.entries[name+article.Extension]; found {
		return art
	}
	for _, art := range ds.entries {
		if art.Name == name {
			return art
		}
	}
	return nil
}

// Articles returns all indexed articles, sorted by name.
func (ds *DirStore) Articles() []*article.Article {
	ds.mx.RLock()
	result := make([]*article.Article, 0, len(ds.entries))
	for _, art := range ds.entries {
		result = append(result, art)
	}
	ds.mx.RUnlock()
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// SelectTag returns all articles carrying the given tag, sorted by name.
func (ds *DirStore) SelectTag(tag string) []*article.Article {
	var result []*article.Article
	ds.mx.RLock()
	for _, art := range ds.entries {
		for _, t := range art.Tags {
			if t == tag {
				result = append(result, art)
				break
			}
		}
	}
	ds.mx.RUnlock()
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// Tags returns a mapping of all tags to the sorted names of the articles
// carrying them.
func (ds *DirStore) Tags() map[string][]string {
	result := make(map[string][]string)
	ds.mx.RLock()
	for _, art := range ds.entries {
		for _, t := range art.Tags {
			result[t] = append(result[t], art.Name)
		}
	}
	ds.mx.RUnlock()
	for _, names := range result {
		sort.Strings(names)
	}
	return result
}

func (ds *DirStore) eventLoop() {
	for ev := range ds.notifier.Events() {
		switch ev.Op {
		case notify.Error:
			ds.logger.Error("Notifier confused", "err", ev.Err)
		case notify.List:
			ds.onListEvent(ev.Name)
		case notify.Update:
			ds.onUpdateEvent(ev.Name)
		case notify.Delete:
			ds.onDeleteEvent(ev.Name)
		case notify.Destroy:
			ds.onDestroyEvent()
		default:
			ds.logger.Error("Unknown notification event", "op", ev.Op, "name", ev.Name)
		}
	}
}

func (ds *DirStore) onListEvent(name string) {
	if name == "" {
		ds.mx.Lock()
		if ds.curMap != nil {
			ds.entries = ds.curMap
			ds.curMap = nil
		} else if ds.entries == nil {
			ds.entries = make(map[string]*article.Article)
		}
		if ds.state != StateStopping {
			ds.state = StateWorking
		}
		num := len(ds.entries)
		ds.mx.Unlock()
		ds.initialOnce.Do(func() { close(ds.initial) })
		ds.logger.Debug("Directory scanned", "articles", num)
		return
	}
	if !isArticleFile(name) {
		return
	}
	art, err := article.Load(filepath.Join(ds.dir, name))
	if err != nil {
		ds.logger.Error("Unable to load article", "err", err, "name", name)
		return
	}
	ds.mx.Lock()
	if ds.curMap == nil {
		ds.curMap = make(map[string]*article.Article)
	}
	ds.curMap[name] = art
	ds.mx.Unlock()
}

func (ds *DirStore) onUpdateEvent(name string) {
	if !isArticleFile(name) {
		logging.LogTrace(ds.logger, "Not an article file", "name", name)
		return
	}
	art, err := article.Load(filepath.Join(ds.dir, name))
	if err != nil {
		ds.logger.Error("Unable to load updated article", "err", err, "name", name)
		ds.onDeleteEvent(name)
		return
	}
	ds.mx.Lock()
	if ds.curMap != nil {
		ds.curMap[name] = art
	} else {
		if ds.entries == nil {
			ds.entries = make(map[string]*article.Article)
		}
		ds.entries[name] = art
	}
	ds.mx.Unlock()
	ds.logger.Debug("Article updated", "name", name)
}

func (ds *DirStore) onDeleteEvent(name string) {
	ds.mx.Lock()
	if ds.curMap != nil {
		delete(ds.curMap, name)
	}
	delete(ds.entries, name)
	ds.mx.Unlock()
	ds.logger.Debug("Article deleted", "name", name)
}

func (ds *DirStore) onDestroyEvent() {
	ds.mx.Lock()
	ds.entries = nil
	ds.curMap = nil
	if ds.state != StateStopping {
		ds.state = StateMissing
	}
	ds.mx.Unlock()
	ds.logger.Warn("Directory destroyed", "dir", ds.dir)
}

func isArticleFile(name string) bool {
	return strings.HasSuffix(name, article.Extension)
}
