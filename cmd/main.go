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

// Package cmd provides the commands to call zortex from the command line.
package cmd

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/t-wilkinson/zortex/encoder"
	"github.com/t-wilkinson/zortex/logging"
)

func init() {
	RegisterCommand(Command{
		Name: "help",
		Func: func(*flag.FlagSet) (int, error) {
			fmt.Println("Available commands:")
			for _, name := range List() {
				fmt.Printf("- %q\n", name)
			}
			return 0, nil
		},
	})
	RegisterCommand(Command{
		Name:   "version",
		Func:   func(*flag.FlagSet) (int, error) { return 0, nil },
		Header: true,
	})
	RegisterCommand(Command{
		Name: "file",
		Func: cmdFile,
		SetFlags: func(fs *flag.FlagSet) {
			fs.String("t", encoder.EncoderSz.String(), "target output encoding")
		},
	})
	RegisterCommand(Command{
		Name: "index",
		Func: cmdIndex,
		SetFlags: func(fs *flag.FlagSet) {
			fs.String("d", ".", "article directory")
			fs.Bool("tags", false, "list the tag index too")
		},
	})
	RegisterCommand(Command{
		Name:   "run",
		Func:   cmdRun,
		Header: true,
		SetFlags: func(fs *flag.FlagSet) {
			fs.String("d", ".", "article directory")
			fs.Bool("simple", false, "do not watch the file system, re-scan on demand only")
		},
	})
}

var progInfo = struct {
	name    string
	version string
	time    time.Time
}{name: "zortex"}

func newLogger(fs *flag.FlagSet) *slog.Logger {
	level := slog.LevelInfo
	if flg := fs.Lookup("l"); flg != nil {
		if val := flg.Value.String(); val != "" {
			level = logging.ParseLevel(val)
		}
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				a.Value = slog.StringValue(logging.LevelStringPad(a.Value.Any().(slog.Level)))
			}
			return a
		},
	}))
}

func printHeader() {
	fmt.Printf("%s %s (%s@%s/%s)\n",
		progInfo.name, progInfo.version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Println("Licensed under the latest version of the EUPL (European Union Public License)")
	if !progInfo.time.IsZero() && progInfo.time.Unix() > 0 {
		fmt.Println("Build time:", progInfo.time.Format(time.RFC3339))
	}
}

func executeCommand(name string, args ...string) int {
	command, ok := Get(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", name)
		return 1
	}
	fs := command.GetFlags()
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: unable to parse flags: %v %v\n", name, args, err)
		return 1
	}
	if command.Header {
		printHeader()
	}
	exitCode, err := command.Func(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
	}
	return exitCode
}

// Main is the real entrypoint of zortex.
func Main(progName, buildVersion string) int {
	info := retrieveVCSInfo(buildVersion)
	fullVersion := info.revision
	if info.dirty {
		fullVersion += "-dirty"
	}
	progInfo.name = progName
	progInfo.version = fullVersion
	progInfo.time = info.time
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		return executeCommand("help")
	}
	return executeCommand(args[0], args[1:]...)
}

type vcsInfo struct {
	revision string
	dirty    bool
	time     time.Time
}

func retrieveVCSInfo(version string) vcsInfo {
	buildTime := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return vcsInfo{revision: version, dirty: false, time: buildTime}
	}
	result := vcsInfo{revision: version, time: buildTime}
	for _, kv := range info.Settings {
		switch kv.Key {
		case "vcs.revision":
			revision := "+" + kv.Value
			if len(revision) > 11 {
				revision = revision[:11]
			}
			result.revision = version + revision
		case "vcs.modified":
			if kv.Value == "true" {
				result.dirty = true
			}
		case "vcs.time":
			if t, err := time.Parse(time.RFC3339, kv.Value); err == nil {
				result.time = t
			}
		}
	}
	return result
}
