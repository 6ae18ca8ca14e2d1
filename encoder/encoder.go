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

// Package encoder provides a generic interface to encode the abstract syntax
// tree into some text form.
package encoder

import (
	"io"

	"github.com/t-wilkinson/zortex/ast"
)

// Encoder is an interface that allows to encode different parts of an article.
type Encoder interface {
	// WriteArticle encodes a whole article and writes it to the Writer.
	WriteArticle(io.Writer, *ast.Article) error

	// WriteBlocks encodes a block slice.
	WriteBlocks(io.Writer, *ast.BlockSlice) error

	// WriteInlines encodes an inline slice.
	WriteInlines(io.Writer, *ast.InlineSlice) error
}

// Enum identifies the type of encoding.
type Enum uint8

// Values for Enum.
const (
	EncoderUnknown Enum = iota
	EncoderSz
	EncoderText
	EncoderZortex
)

var mapEnumName = map[Enum]string{
	EncoderSz:     "sz",
	EncoderText:   "text",
	EncoderZortex: "zortex",
}

func (e Enum) String() string {
	if name, found := mapEnumName[e]; found {
		return name
	}
	return "*Unknown*"
}

// ParseEnum returns the encoding enum of the given string.
func ParseEnum(name string) Enum {
	for enum, enumName := range mapEnumName {
		if name == enumName {
			return enum
		}
	}
	return EncoderUnknown
}

// Create builds a new encoder with the given options.
func Create(enc Enum) Encoder {
	switch enc {
	case EncoderSz:
		return (*szEncoder)(nil)
	case EncoderText:
		return (*TextEncoder)(nil)
	case EncoderZortex:
		return (*zxEncoder)(nil)
	}
	return nil
}

// GetEncodings returns all registered encodings, ordered by encoding value.
func GetEncodings() []Enum {
	return []Enum{EncoderSz, EncoderText, EncoderZortex}
}
