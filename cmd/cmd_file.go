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
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/t-wilkinson/zortex/article"
	"github.com/t-wilkinson/zortex/ast"
	"github.com/t-wilkinson/zortex/encoder"
)

// ---------- Subcommand: file -----------------------------------------------

func cmdFile(fs *flag.FlagSet) (int, error) {
	enc := fs.Lookup("t").Value.String()
	art, err := getInput(fs.Args())
	if art == nil {
		return 2, err
	}
	encdr := encoder.Create(encoder.ParseEnum(enc))
	if encdr == nil {
		fmt.Fprintf(os.Stderr, "Unknown format %q\n", enc)
		return 2, nil
	}
	err = encdr.WriteArticle(os.Stdout, &ast.Article{
		Name:   art.Name,
		Tags:   art.Tags,
		Blocks: art.Blocks,
	})
	if err != nil {
		return 2, err
	}
	fmt.Println()

	return 0, nil
}

func getInput(args []string) (*article.Article, error) {
	if len(args) < 1 {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return article.Parse("", src), nil
	}
	return article.Load(args[0])
}
