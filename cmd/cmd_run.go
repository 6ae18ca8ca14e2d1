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

package cmd

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/t-wilkinson/zortex/logging"
	"github.com/t-wilkinson/zortex/store"
	"github.com/t-wilkinson/zortex/store/notify"
)

// ---------- Subcommand: run ------------------------------------------------

func cmdRun(fs *flag.FlagSet) (int, error) {
	dir := fs.Lookup("d").Value.String()
	logger := newLogger(fs)

	var n notify.Notifier
	var err error
	if fs.Lookup("simple").Value.String() == "true" {
		n, err = notify.NewSimpleDirNotifier(logger.With("notify", "simple"), dir)
	} else {
		n, err = notify.NewFSDirNotifier(logger.With("notify", "fs"), dir)
	}
	if err != nil {
		logger.Error("Unable to create directory supervisor", "err", err)
		return 2, err
	}
	ds := store.New(logger.With("sub", "store"), dir, n)
	ds.Start()
	defer ds.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	err = ds.AwaitInitialScan(ctx)
	cancel()
	if err != nil {
		return 2, err
	}
	logging.LogMandatory(logger, "Watching article directory", "dir", dir, "articles", ds.NumArticles())

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	sig := <-sigs
	logger.Info("Shutting down", "signal", sig.String())
	return 0, nil
}
