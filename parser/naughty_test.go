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

package parser_test

import (
	"io"
	"testing"

	"github.com/t-wilkinson/zortex/encoder"
	"github.com/t-wilkinson/zortex/input"
	"github.com/t-wilkinson/zortex/parser"
)

// Test all parser / encoder with a list of "naughty strings", i.e. unusual
// strings that often crash software.

var naughtyStrings = []string{
	"",
	"\x00",
	"\n\n\n",
	"\t \t",
	"@@",
	"@@@@@@@@",
	"@",
	"#",
	"#######",
	"- ",
	"1. ",
	"```",
	"$",
	"***",
	"******",
	"`",
	"[",
	"[]()",
	"[](",
	"undefined",
	"NaN",
	"0/0",
	"$1.00",
	"1E+02",
	"-0.5e+5",
	"0xabad1dea",
	",./;'[]\\-=",
	"<>?:\"{}|_+",
	"!@#$%^&*()`~",
	"‪تست‬",
	"Ω≈ç√∫˜µ≤≥÷",
	"Ⱥ Ⱦ",
	"😍",
	"👩🏽",
	"表ポあA鷗ŒéＢ逍Üßªąñ丂㐀𠀀",
	"ด้้้้้็็็็็้้้้้็็็็",
	"Ｔｈｅ ｑｕｉｃｋ ｂｒｏｗｎ",
	"˙ɐnbᴉlɐ ɐuƃɐɯ ǝɹolop",
	"𝕋𝕙𝕖 𝕢𝕦𝕚𝕔𝕜",
	"<script>alert(123)</script>",
	"'; DROP TABLE articles; --",
	"%s%s%s%s%s%s",
	"{0}{1}",
	"../../../etc/passwd",
	"\uFEFFbom",
	"�",
	"a\xc5z", // invalid UTF-8
}

func getAllParser() (result []*parser.Info) {
	for _, pname := range parser.GetSyntaxes() {
		pinfo := parser.Get(pname)
		if pname == pinfo.Name {
			result = append(result, pinfo)
		}
	}
	return result
}

func getAllEncoder() (result []encoder.Encoder) {
	for _, enc := range encoder.GetEncodings() {
		result = append(result, encoder.Create(enc))
	}
	return result
}

func TestNaughtyStringParser(t *testing.T) {
	pinfos := getAllParser()
	if len(pinfos) == 0 {
		t.Fatal("no parser found")
	}
	encoders := getAllEncoder()
	if len(encoders) == 0 {
		t.Fatal("no encoder found")
	}
	for _, pinfo := range pinfos {
		for _, s := range naughtyStrings {
			bs := parser.ParseBlocks(input.NewInput([]byte(s)), pinfo.Name)
			for _, enc := range encoders {
				if err := enc.WriteBlocks(io.Discard, &bs); err != nil {
					t.Errorf("parser %q, input %q: %v", pinfo.Name, s, err)
				}
			}
		}
	}
}
