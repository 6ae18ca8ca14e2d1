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

// Package notify provides some notification services to be used by a store.
package notify

import (
	"fmt"
	"log/slog"
	"os"
)

// EventOp describe a notification operation.
type EventOp uint8

// Valid constants for event operations.
const (
	_       EventOp = iota
	Error           // Error while operating
	List            // List directory content, if Name == "" the listing is complete
	Destroy         // Directory destroyed
	Update          // File was created/updated
	Delete          // File was removed
)

func (op EventOp) String() string {
	switch op {
	case Error:
		return "ERROR"
	case List:
		return "LIST"
	case Destroy:
		return "DESTROY"
	case Update:
		return "UPDATE"
	case Delete:
		return "DELETE"
	}
	return fmt.Sprintf("UNKNOWN(%d)", op)
}

// Event represents a single event.
type Event struct {
	Op   EventOp
	Name string
	Err  error // only valid for Op == Error
}

// Notifier send events about their container and content.
type Notifier interface {
	// Events returns the channel where events will be sent.
	Events() <-chan Event

	// Refresh the complete directory list.
	Refresh()

	// Close the notifier, no further events will be sent.
	Close()
}

// EntryFetcher return a list of (file) names of a directory.
type EntryFetcher interface {
	Fetch() ([]string, error)
}

type dirPathFetcher struct {
	dirPath string
}

func newDirPathFetcher(dirPath string) EntryFetcher { return &dirPathFetcher{dirPath} }

func (dpf *dirPathFetcher) Fetch() ([]string, error) {
	entries, err := os.ReadDir(dpf.dirPath)
	if err != nil {
		return nil, err
	}
	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			result = append(result, entry.Name())
		}
	}
	return result, nil
}

// listDirElements write all files within the directory path as events to the
// given channel. The event sequence ends with a list event without a name.
func listDirElements(logger *slog.Logger, fetcher EntryFetcher, events chan<- Event, done <-chan struct{}) bool {
	names, err := fetcher.Fetch()
	if err != nil {
		select {
		case events <- Event{Op: Error, Err: err}:
		case <-done:
			return false
		}
	}
	for _, name := range names {
		logger.Debug("File listed", "name", name)
		select {
		case events <- Event{Op: List, Name: name}:
		case <-done:
			return false
		}
	}

	select {
	case events <- Event{Op: List}:
	case <-done:
		return false
	}
	return true
}
