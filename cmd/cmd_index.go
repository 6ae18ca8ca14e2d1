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
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/t-wilkinson/zortex/encoder"
	"github.com/t-wilkinson/zortex/store"
	"github.com/t-wilkinson/zortex/store/notify"
)

// ---------- Subcommand: index ----------------------------------------------

func cmdIndex(fs *flag.FlagSet) (int, error) {
	dir := fs.Lookup("d").Value.String()
	logger := newLogger(fs)
	n, err := notify.NewSimpleDirNotifier(logger.With("notify", "simple"), dir)
	if err != nil {
		return 2, err
	}
	ds := store.New(logger.With("sub", "store"), dir, n)
	ds.Start()
	defer ds.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err = ds.AwaitInitialScan(ctx); err != nil {
		return 2, err
	}

	enc := encoder.Create(encoder.EncoderText)
	for _, art := range ds.Articles() {
		fmt.Printf("%-30s %s\n", art.Name, strings.Join(art.Tags, ", "))
		if ins := art.Blocks.FirstParagraphInlines(); len(ins) > 0 {
			var sb strings.Builder
			if err = enc.WriteInlines(&sb, &ins); err == nil {
				fmt.Printf("    %s\n", firstLine(sb.String()))
			}
		}
	}
	if fs.Lookup("tags").Value.String() == "true" {
		tags := ds.Tags()
		fmt.Println()
		for _, tag := range slices.Sorted(maps.Keys(tags)) {
			fmt.Printf("@%-29s %s\n", tag, strings.Join(tags[tag], ", "))
		}
	}
	return 0, nil
}

// firstLine cuts a rendered paragraph down to its first line for the listing.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
